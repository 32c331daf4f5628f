package http

import (
	"net/http"
	"path/filepath"
)

// Pages maps page routes to their shell files under the web root.
var Pages = map[string]string{
	"/":             "index.html",
	"/login":        "login.html",
	"/about":        "about.html",
	"/providers":    "providers.html",
	"/tts":          "tts.html",
	"/tts/cartesia": "tts-cartesia.html",
	"/stt":          "stt.html",
}

// PagesHandler serves the static page shells. The route gate runs before it.
type PagesHandler struct {
	Root string
}

func (h *PagesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, ok := Pages[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	http.ServeFile(w, r, filepath.Join(h.Root, name))
}

package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/voicelab/internal/gateway/gate"
	"github.com/aussiebroadwan/voicelab/internal/gateway/service"
	"github.com/aussiebroadwan/voicelab/pkg/httpx"
	"github.com/aussiebroadwan/voicelab/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/aussiebroadwan/voicelab/api/gateway" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options holds the router settings that come from configuration.
type Options struct {
	BuildVersion string
	WebRoot      string
	LandingPath  string
	Limits       httpx.RateLimitProfiles
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	opts      Options
	startTime time.Time
	logger    *slog.Logger
	tokens    TokenStore
	health    HealthChecker
	registry  *prometheus.Registry
	metrics   *httpx.Metrics

	SessionService  *service.SessionService
	ResourceService *service.ResourceService
}

func NewRouter(
	opts Options,
	tokens TokenStore,
	health HealthChecker,
	registry *prometheus.Registry,
	logger *slog.Logger,
) *Router {
	if opts.LandingPath == "" {
		opts.LandingPath = "/providers"
	}

	r := &Router{
		Mux:       http.NewServeMux(),
		opts:      opts,
		startTime: time.Now(),
		logger:    logger,
		tokens:    tokens,
		health:    health,
		registry:  registry,
		metrics:   httpx.NewMetrics(registry, "voicelab_gateway"),
	}

	gateCfg := gate.DefaultConfig(tokens)
	gateCfg.LandingPath = opts.LandingPath

	// Request logging wraps the gate so redirects are logged too
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		gate.Middleware(gateCfg),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerResources()
	r.registerPages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			VoiceLab Gateway API
//	@version		0.1.0
//	@description	Browser facing session layer for VoiceLab. Holds the backend session token in an
//	@description	HTTP-only cookie and relays text-to-speech calls to the backend.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/voicelab
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						access_token
//	@description				Session cookie set by POST /api/auth/login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers h under pattern, labelled for metrics by that pattern.
func (r *Router) handle(pattern string, h http.Handler, mws ...httpx.Middleware) {
	mws = append([]httpx.Middleware{r.metrics.Instrument(pattern)}, mws...)
	r.Mux.Handle(pattern, httpx.Chain(h, mws...))
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		Sessions: r.SessionService,
		Tokens:   r.tokens,
	}

	// POST /login - strict rate limit by IP + username (credential stuffing)
	r.handle("POST /api/auth/login", http.HandlerFunc(h.HandleLogin),
		httpx.RateLimitByIPAndJSONField(r.opts.Limits.Strict, "username"),
	)

	// POST /logout - cookie optional, always succeeds
	r.handle("POST /api/auth/logout", http.HandlerFunc(h.HandleLogout),
		httpx.RateLimitByIP(r.opts.Limits.Lenient),
	)

	r.handle("GET /api/auth/me", http.HandlerFunc(h.HandleMe),
		httpx.RequireSession(r.tokens),
		httpx.RateLimitBySession(r.opts.Limits.Lenient),
	)
}

func (r *Router) registerResources() {
	h := &ResourceHandler{
		Resources: r.ResourceService,
		Tokens:    r.tokens,
	}

	// Generation spends provider quota - moderate limit per session
	generate := []httpx.Middleware{
		httpx.RequireSession(r.tokens),
		httpx.RateLimitBySession(r.opts.Limits.Moderate),
	}
	read := []httpx.Middleware{
		httpx.RequireSession(r.tokens),
		httpx.RateLimitBySession(r.opts.Limits.Lenient),
	}

	r.handle("POST /api/tts/generate", http.HandlerFunc(h.HandleTTSGenerate), generate...)
	r.handle("GET /api/tts/voices", http.HandlerFunc(h.HandleTTSVoices), read...)
	r.handle("GET /api/tts/history", http.HandlerFunc(h.HandleTTSHistory), read...)

	r.handle("POST /api/cartesia/generate", http.HandlerFunc(h.HandleCartesiaGenerate), generate...)
	r.handle("GET /api/cartesia/voices", http.HandlerFunc(h.HandleCartesiaVoices), read...)
	r.handle("GET /api/cartesia/models", http.HandlerFunc(h.HandleCartesiaModels), read...)
	r.handle("GET /api/cartesia/languages", http.HandlerFunc(h.HandleCartesiaLanguages), read...)

	r.handle("GET /api/stt/status", http.HandlerFunc(h.HandleSTTStatus), read...)
}

func (r *Router) registerPages() {
	pages := &PagesHandler{Root: r.opts.WebRoot}

	for path := range Pages {
		pattern := "GET " + path
		if path == "/" {
			pattern = "GET /{$}"
		}
		r.handle(pattern, pages)
	}
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.handle("GET /livez", LivezHandler(r.startTime, r.opts.BuildVersion),
		httpx.RateLimitByIP(r.opts.Limits.Lenient),
	)
	r.handle("GET /readyz", ReadyzHandler(r.startTime, r.opts.BuildVersion, r.health),
		httpx.RateLimitByIP(r.opts.Limits.Lenient),
	)

	r.Mux.Handle("GET /metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
}

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/aussiebroadwan/voicelab/internal/gateway/service"
	"github.com/aussiebroadwan/voicelab/pkg/httpx"
	"github.com/aussiebroadwan/voicelab/pkg/slogx"
	"github.com/aussiebroadwan/voicelab/pkg/voicesdk"
)

// maxGenerateBody bounds generation request bodies.
const maxGenerateBody = 1 << 20

// ResourceHandler relays provider calls for the session in the request
// context. Bodies pass through untouched and are never logged.
type ResourceHandler struct {
	Resources *service.ResourceService
	Tokens    tokenClearer
}

func (h *ResourceHandler) relay(w http.ResponseWriter, r *http.Request, op service.Operation) {
	r = r.WithContext(slogx.With(r.Context(), "operation", string(op)))

	var body []byte
	if r.Method == http.MethodPost {
		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxGenerateBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				voicesdk.NewAPIError(http.StatusRequestEntityTooLarge, "Request body too large").WriteError(w)
				return
			}
			voicesdk.NewAPIError(http.StatusBadRequest, "Invalid request body").WriteError(w)
			return
		}
		body = raw
	}

	token := httpx.TokenFromContext(r.Context())
	resp, err := h.Resources.Do(r.Context(), op, token, r.URL.RawQuery, body)
	if err != nil {
		writeServiceError(w, r, h.Tokens, err)
		return
	}
	httpx.WriteRawJSON(w, resp.StatusCode, resp.Body)
}

// HandleTTSGenerate synthesizes speech with ElevenLabs.
//
//	@Summary		Generate speech (ElevenLabs)
//	@Description	Validates the text and forwards the request body unchanged to the backend.
//	@Tags			TTS
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		voicesdk.GenerateRequest	true	"Generation request"
//	@Success		200		{object}	voicesdk.GenerateResponse	"Audio as a data URL"
//	@Failure		400		{object}	voicesdk.ErrorResponse		"Missing or oversized text"
//	@Failure		401		{object}	voicesdk.ErrorResponse		"No session"
//	@Failure		429		{object}	voicesdk.ErrorResponse		"Provider quota or rate limit"
//	@Failure		500		{object}	voicesdk.ErrorResponse		"Backend unreachable"
//	@Router			/api/tts/generate [post].
func (h *ResourceHandler) HandleTTSGenerate(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, service.TTSGenerate)
}

// HandleTTSVoices lists ElevenLabs voices.
//
//	@Summary		List voices (ElevenLabs)
//	@Tags			TTS
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	voicesdk.VoicesResponse
//	@Failure		401	{object}	voicesdk.ErrorResponse	"No session"
//	@Failure		500	{object}	voicesdk.ErrorResponse	"Backend unreachable"
//	@Router			/api/tts/voices [get].
func (h *ResourceHandler) HandleTTSVoices(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, service.TTSVoices)
}

// HandleTTSHistory lists past generations.
//
//	@Summary		Generation history
//	@Tags			TTS
//	@Security		CookieAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size"		default(10)
//	@Param			offset	query		int	false	"Page offset"	default(0)
//	@Success		200		{object}	voicesdk.HistoryResponse
//	@Failure		401		{object}	voicesdk.ErrorResponse	"No session"
//	@Router			/api/tts/history [get].
func (h *ResourceHandler) HandleTTSHistory(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, service.TTSHistory)
}

// HandleCartesiaGenerate synthesizes speech with Cartesia.
//
//	@Summary		Generate speech (Cartesia)
//	@Tags			Cartesia
//	@Security		CookieAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		voicesdk.CartesiaGenerateRequest	true	"Generation request"
//	@Success		200		{object}	voicesdk.GenerateResponse			"Audio as a data URL"
//	@Failure		400		{object}	voicesdk.ErrorResponse				"Missing or oversized text"
//	@Failure		401		{object}	voicesdk.ErrorResponse				"No session"
//	@Failure		500		{object}	voicesdk.ErrorResponse				"Backend unreachable"
//	@Router			/api/cartesia/generate [post].
func (h *ResourceHandler) HandleCartesiaGenerate(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, service.CartesiaGenerate)
}

// HandleCartesiaVoices lists Cartesia voices.
//
//	@Summary		List voices (Cartesia)
//	@Tags			Cartesia
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	voicesdk.VoicesResponse
//	@Failure		401	{object}	voicesdk.ErrorResponse	"No session"
//	@Router			/api/cartesia/voices [get].
func (h *ResourceHandler) HandleCartesiaVoices(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, service.CartesiaVoices)
}

// HandleCartesiaModels lists Cartesia models.
//
//	@Summary		List models (Cartesia)
//	@Tags			Cartesia
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	voicesdk.ModelsResponse
//	@Failure		401	{object}	voicesdk.ErrorResponse	"No session"
//	@Router			/api/cartesia/models [get].
func (h *ResourceHandler) HandleCartesiaModels(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, service.CartesiaModels)
}

// HandleCartesiaLanguages lists Cartesia languages.
//
//	@Summary		List languages (Cartesia)
//	@Tags			Cartesia
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	voicesdk.LanguagesResponse
//	@Failure		401	{object}	voicesdk.ErrorResponse	"No session"
//	@Router			/api/cartesia/languages [get].
func (h *ResourceHandler) HandleCartesiaLanguages(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, service.CartesiaLanguages)
}

// HandleSTTStatus reports speech-to-text availability.
//
//	@Summary		Speech-to-text status
//	@Tags			STT
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	voicesdk.STTStatusResponse
//	@Failure		401	{object}	voicesdk.ErrorResponse	"No session"
//	@Router			/api/stt/status [get].
func (h *ResourceHandler) HandleSTTStatus(w http.ResponseWriter, r *http.Request) {
	h.relay(w, r, service.STTStatus)
}

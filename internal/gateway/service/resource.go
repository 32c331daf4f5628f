package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/voicelab/internal/gateway/backend"
	"github.com/aussiebroadwan/voicelab/internal/gateway/domain"
)

// Operation names a proxied resource call.
type Operation string

const (
	TTSGenerate       Operation = "tts.generate"
	TTSVoices         Operation = "tts.voices"
	TTSHistory        Operation = "tts.history"
	CartesiaGenerate  Operation = "cartesia.generate"
	CartesiaVoices    Operation = "cartesia.voices"
	CartesiaModels    Operation = "cartesia.models"
	CartesiaLanguages Operation = "cartesia.languages"
	STTStatus         Operation = "stt.status"
)

type route struct {
	method     string
	path       string
	failure    string
	generation bool
	query      bool
}

var routes = map[Operation]route{
	TTSGenerate:       {http.MethodPost, "/api/tts/generate", "Failed to generate audio", true, false},
	TTSVoices:         {http.MethodGet, "/api/tts/voices", "Failed to get voices", false, false},
	TTSHistory:        {http.MethodGet, "/api/tts/history", "Failed to get history", false, true},
	CartesiaGenerate:  {http.MethodPost, "/api/cartesia/generate", "Failed to generate audio", true, false},
	CartesiaVoices:    {http.MethodGet, "/api/cartesia/voices", "Failed to get voices", false, false},
	CartesiaModels:    {http.MethodGet, "/api/cartesia/models", "Failed to get models", false, false},
	CartesiaLanguages: {http.MethodGet, "/api/cartesia/languages", "Failed to get languages", false, false},
	STTStatus:         {http.MethodGet, "/api/stt/status", "Failed to get status", false, false},
}

// ErrUnknownOperation is returned for operations missing from the table.
var ErrUnknownOperation = errors.New("unknown resource operation")

// ResourceService relays provider calls for an authenticated session.
// Bodies are forwarded and returned unchanged and never logged.
type ResourceService struct {
	Backend       Backend
	MaxTextLength int
}

// Do runs op with token. rawQuery is only forwarded for operations that take
// query parameters.
func (s *ResourceService) Do(
	ctx context.Context,
	op Operation,
	token, rawQuery string,
	body []byte,
) (*backend.Response, error) {
	rt, ok := routes[op]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, op)
	}
	if token == "" {
		return nil, ErrUnauthenticated
	}

	if rt.generation {
		if _, err := domain.ParseGenerationRequest(body, s.MaxTextLength); err != nil {
			return nil, &ValidationError{Message: s.validationMessage(err)}
		}
	} else {
		body = nil
	}
	if !rt.query {
		rawQuery = ""
	}

	resp, err := s.Backend.Forward(ctx, string(op), rt.method, rt.path, rawQuery, token, body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if !resp.OK() {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    resp.Message(rt.failure),
		}
	}
	return resp, nil
}

func (s *ResourceService) validationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrTextRequired):
		return "Text is required"
	case errors.Is(err, domain.ErrTextTooLong):
		return fmt.Sprintf("Text must be at most %d characters", s.MaxTextLength)
	default:
		return "Invalid request body"
	}
}

package voicesdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// GenerateSpeech synthesizes speech with ElevenLabs.
func (s *Session) GenerateSpeech(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	var out GenerateResponse
	if err := s.call(ctx, http.MethodPost, "/api/tts/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Voices lists ElevenLabs voices.
func (s *Session) Voices(ctx context.Context) ([]Voice, error) {
	var out VoicesResponse
	if err := s.call(ctx, http.MethodGet, "/api/tts/voices", nil, &out); err != nil {
		return nil, err
	}
	return out.Voices, nil
}

// History lists past generations, newest first. Zero values use the
// backend defaults.
func (s *Session) History(ctx context.Context, limit, offset int) (*HistoryResponse, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}

	path := "/api/tts/history"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out HistoryResponse
	if err := s.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CartesiaGenerate synthesizes speech with Cartesia.
func (s *Session) CartesiaGenerate(ctx context.Context, req CartesiaGenerateRequest) (*GenerateResponse, error) {
	var out GenerateResponse
	if err := s.call(ctx, http.MethodPost, "/api/cartesia/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CartesiaVoices lists Cartesia voices.
func (s *Session) CartesiaVoices(ctx context.Context) ([]Voice, error) {
	var out VoicesResponse
	if err := s.call(ctx, http.MethodGet, "/api/cartesia/voices", nil, &out); err != nil {
		return nil, err
	}
	return out.Voices, nil
}

// CartesiaModels lists Cartesia models.
func (s *Session) CartesiaModels(ctx context.Context) ([]Model, error) {
	var out ModelsResponse
	if err := s.call(ctx, http.MethodGet, "/api/cartesia/models", nil, &out); err != nil {
		return nil, err
	}
	return out.Models, nil
}

// CartesiaLanguages lists Cartesia languages.
func (s *Session) CartesiaLanguages(ctx context.Context) ([]Language, error) {
	var out LanguagesResponse
	if err := s.call(ctx, http.MethodGet, "/api/cartesia/languages", nil, &out); err != nil {
		return nil, err
	}
	return out.Languages, nil
}

// CartesiaCatalog fetches voices, models and languages concurrently. The
// first failure cancels the remaining calls.
func (s *Session) CartesiaCatalog(ctx context.Context) (*Catalog, error) {
	var cat Catalog
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		voices, err := s.CartesiaVoices(gctx)
		cat.Voices = voices
		return err
	})
	g.Go(func() error {
		models, err := s.CartesiaModels(gctx)
		cat.Models = models
		return err
	})
	g.Go(func() error {
		languages, err := s.CartesiaLanguages(gctx)
		cat.Languages = languages
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// STTStatus reports speech-to-text availability.
func (s *Session) STTStatus(ctx context.Context) (*STTStatusResponse, error) {
	var out STTStatusResponse
	if err := s.call(ctx, http.MethodGet, "/api/stt/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidBody  = errors.New("domain: invalid request body")
	ErrTextRequired = errors.New("domain: text is required")
	ErrTextTooLong  = errors.New("domain: text too long")
)

// DefaultMaxTextLength caps the characters submitted for synthesis.
const DefaultMaxTextLength = 5000

// GenerationRequest covers the fields shared by the ElevenLabs and Cartesia
// generate calls. Provider specific fields are left in the raw body, which
// is forwarded unchanged.
type GenerationRequest struct {
	Text     string  `json:"text"`
	VoiceID  *string `json:"voice_id,omitempty"`
	ModelID  *string `json:"model_id,omitempty"`
	Language *string `json:"language,omitempty"`
}

// ParseGenerationRequest decodes body and checks it. maxLen <= 0 disables
// the length check.
func ParseGenerationRequest(body []byte, maxLen int) (*GenerationRequest, error) {
	var req GenerationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, ErrInvalidBody
	}
	if err := req.Validate(maxLen); err != nil {
		return nil, err
	}
	return &req, nil
}

// Validate requires non-blank text of at most maxLen characters.
func (r *GenerationRequest) Validate(maxLen int) error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrTextRequired
	}
	if maxLen > 0 && utf8.RuneCountInString(r.Text) > maxLen {
		return ErrTextTooLong
	}
	return nil
}

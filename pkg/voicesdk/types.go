package voicesdk

import "time"

// ============================================================================
// Session Types
// ============================================================================

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by a successful login. The session token itself
// is only ever carried in the HTTP-only cookie.
type LoginResponse struct {
	User    User   `json:"user"`
	Message string `json:"message"`
}

// MessageResponse is a bare {"message": "..."} body (logout).
type MessageResponse struct {
	Message string `json:"message"`
}

// User describes the authenticated account.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse is the error envelope every gateway endpoint uses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ============================================================================
// Speech Generation Types
// ============================================================================

// GenerateRequest asks ElevenLabs for speech. Nil fields use provider
// defaults.
type GenerateRequest struct {
	Text            string   `json:"text"`
	VoiceID         string   `json:"voice_id,omitempty"`
	Stability       *float64 `json:"stability,omitempty"`
	SimilarityBoost *float64 `json:"similarity_boost,omitempty"`
	Style           *float64 `json:"style,omitempty"`
	UseSpeakerBoost *bool    `json:"use_speaker_boost,omitempty"`
	ModelID         string   `json:"model_id,omitempty"`
	Language        string   `json:"language,omitempty"`
	IsMultiSpeaker  bool     `json:"is_multi_speaker,omitempty"`
}

// CartesiaGenerateRequest asks Cartesia for speech.
type CartesiaGenerateRequest struct {
	Text     string   `json:"text"`
	VoiceID  string   `json:"voice_id,omitempty"`
	ModelID  string   `json:"model_id,omitempty"` // backend default: sonic-3
	Language string   `json:"language,omitempty"`
	Speed    *float64 `json:"speed,omitempty"`
	Volume   *float64 `json:"volume,omitempty"`
	Emotion  string   `json:"emotion,omitempty"`
}

// GenerateResponse carries the synthesized audio as a data URL.
type GenerateResponse struct {
	RequestID string    `json:"request_id"`
	AudioURL  string    `json:"audio_url"`
	Text      string    `json:"text"`
	VoiceID   *string   `json:"voice_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================================================================
// Catalog Types
// ============================================================================

// Voice is a provider voice. Labels is only populated by ElevenLabs.
type Voice struct {
	VoiceID     string            `json:"voice_id"`
	Name        string            `json:"name"`
	Category    string            `json:"category,omitempty"`
	Description string            `json:"description,omitempty"`
	PreviewURL  *string           `json:"preview_url,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// VoicesResponse is returned by both voice listing endpoints.
type VoicesResponse struct {
	Voices []Voice `json:"voices"`
}

// Model is a Cartesia model.
type Model struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ModelsResponse is returned by GET /api/cartesia/models.
type ModelsResponse struct {
	Models []Model `json:"models"`
}

// Language is a Cartesia language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LanguagesResponse is returned by GET /api/cartesia/languages.
type LanguagesResponse struct {
	Languages []Language `json:"languages"`
}

// Catalog bundles everything needed to build a Cartesia request form.
type Catalog struct {
	Voices    []Voice
	Models    []Model
	Languages []Language
}

// ============================================================================
// History and Status Types
// ============================================================================

// HistoryItem is one past generation.
type HistoryItem struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	VoiceID   *string   `json:"voice_id"`
	AudioURL  *string   `json:"audio_url"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse is returned by GET /api/tts/history.
type HistoryResponse struct {
	Requests []HistoryItem `json:"requests"`
	Total    int           `json:"total"`
}

// STTStatusResponse is returned by GET /api/stt/status.
type STTStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	// Status is "ok" or "degraded"
	Status string `json:"status"`

	// Uptime is the service uptime (e.g. "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the build version
	Version string `json:"version,omitempty"`

	// Checks holds dependency results (readyz only)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of the gateway's dependencies.
type HealthChecks struct {
	// Backend is "ok" or "error: ..." for the backend /health probe
	Backend string `json:"backend"`
}

package domain

import (
	"encoding/json"
	"time"
)

// User is the backend's description of the authenticated user. The gateway
// relays it as an opaque JSON document; the typed view exists for logging
// and the CLI.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResult is what a successful login yields. Token never leaves the
// gateway except inside the session cookie.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time // zero when the backend token carries no exp
	User      json.RawMessage
	Message   string
}

// DefaultLoginMessage is used when the backend omits one.
const DefaultLoginMessage = "Login successful"

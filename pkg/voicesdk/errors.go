package voicesdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/voicelab/pkg/httpx"
)

// APIError is a gateway error response. The server writes it with
// WriteError; the SDK returns it for every non-2xx answer.
type APIError struct {
	// StatusCode is the HTTP status code
	StatusCode int `json:"-"`

	// Message is the human readable reason
	Message string `json:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("voicelab: %d: %s", e.StatusCode, e.Message)
}

// WriteError writes the {"error": "..."} envelope.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Message)
}

// NewAPIError creates an APIError.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

var (
	// ErrNotAuthenticated is returned when no session cookie was sent.
	ErrNotAuthenticated = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    httpx.MsgNotAuthenticated,
	}

	// ErrInternal is returned when the backend could not be reached.
	ErrInternal = &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error",
	}
)

// IsUnauthorized reports whether err is a 401 from the gateway.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// parseErrorResponse builds an APIError from a non-2xx response body.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Error == "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: er.Error}
}

package backend

import (
	"encoding/json"
	"fmt"
	"time"
)

// APIError is the structured error body the order backend returns. Anything
// that does not decode into this shape is reported through Generic instead,
// so transport noise never reaches callers unshaped.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Path       string `json:"path"`
	Timestamp  string `json:"timestamp"`

	// Context names the operation that failed, e.g. "update order status".
	Context string `json:"-"`
}

func (e *APIError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s (status %d)", e.Context, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Success bool            `json:"success"`
}

// Generic synthesizes an APIError for responses whose shape was not
// recognized.
func Generic(statusCode int, context, path string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    "unknown error",
		Path:       path,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Context:    context,
	}
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidToken marks a table access token the backend rejected as
// invalid or expired. Callers use errors.Is to tell "rescan the QR code"
// apart from "retry the request".
var ErrInvalidToken = errors.New("invalid or expired table token")

// APIError is any non-2xx answer from the backend. The raw body is kept
// for diagnostics.
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Body: body}

	// Prefer the backend's message field, fall back to the reason phrase.
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		apiErr.Message = env.Message
	} else {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

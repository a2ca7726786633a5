package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/iudanet/takenotes/pkg/api"
)

var (
	// ErrUnauthorized is returned when the server rejects the bearer token (HTTP 401)
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNetwork wraps transport failures: DNS, refused connections, timeouts, cancellation
	ErrNetwork = errors.New("network error")

	// ErrMalformedResponse is returned when a 2xx body does not match the expected schema
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is returned for any non-2xx response
type StatusError struct {
	Message    string // server supplied message, or the raw body
	StatusCode int
	structured bool // Message came from a JSON error body
}

func newStatusError(code int, body []byte) *StatusError {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Text() != "" {
		return &StatusError{StatusCode: code, Message: errResp.Text(), structured: true}
	}
	return &StatusError{StatusCode: code, Message: strings.TrimSpace(string(body))}
}

func (e *StatusError) Error() string {
	if e.structured {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrUnauthorized) match a 401
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

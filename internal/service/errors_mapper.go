package service

import (
	"errors"

	"github.com/cosplitz/cosplitz-client/internal/adapter"
)

// errorMessage converts a transport error into the user-facing text stored on
// LastError. Candidates, in order: the backend-provided message carried by
// [*adapter.APIError], the error's own text for non-HTTP failures, and
// finally the supplied fallback.
func errorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		// a bare status line reads as noise, prefer the fallback
		return fallback
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return fallback
}

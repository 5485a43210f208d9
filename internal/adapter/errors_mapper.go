package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx resty response into a [*APIError].
// Returns nil for any 2xx status.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Message:    extractServerMessage(resp.Body()),
	}
}

// extractServerMessage probes the response body for a human-readable
// message. Candidates, in order: "message", "error", "detail". A non-JSON
// body is used verbatim when it is short enough to be a message.
func extractServerMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		if len(trimmed) <= 256 && !strings.HasPrefix(trimmed, "<") {
			return trimmed
		}
		return ""
	}

	for _, field := range []string{"message", "error", "detail"} {
		if msg, ok := payload[field].(string); ok && msg != "" {
			return msg
		}
	}

	return ""
}

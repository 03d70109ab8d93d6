package agentapi

import (
	"encoding/json"
	"net/http"
	"strings"

	ai "github.com/spetersoncode/agentchat"
)

// maxErrorBody caps how much of a failed response body is read for the
// error message.
const maxErrorBody = 8 * 1024

// classifyStatus maps a non-2xx response to a categorized error.
func classifyStatus(status int, body []byte) error {
	msg := errorMessage(body)
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ai.NewPermanentError(msg, status, nil)
	case status == http.StatusBadRequest:
		return ai.NewUserInputError(msg, status, nil)
	case status == http.StatusTooManyRequests || status == http.StatusRequestTimeout || status >= 500:
		return ai.NewTransientError(msg, status, nil)
	default:
		return ai.NewPermanentError(msg, status, nil)
	}
}

// errorMessage extracts a human-readable message from an error body,
// preferring a JSON {"message": ...} envelope over the raw text.
func errorMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return strings.TrimSpace(string(body))
}

package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// APIError is a response the backend answered but refused: a non-2xx status
// or an envelope with success=false. Message is the backend's own text when
// one was given (moderation rejections arrive this way, naming the detected
// item).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed with status %d", e.Status)
}

func newAPIError(status int, body []byte) *APIError {
	var env response[json.RawMessage]
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &APIError{Status: status, Message: env.Message}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		cut := 200
		// Back up so the cut lands on a rune boundary.
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	return &APIError{Status: status, Message: msg}
}

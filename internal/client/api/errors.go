package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrNotAnImage is returned by upload methods when the payload does not
// sniff as an image. Checked client-side so a doomed multipart request is
// never sent.
var ErrNotAnImage = fmt.Errorf("file is not an image")

// Error is a non-2xx response normalized to a single human-readable message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unauthorized reports whether the server rejected the credential itself.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

func newError(status int, body []byte) *Error {
	return &Error{Status: status, Message: normalizeMessage(body)}
}

// normalizeMessage extracts a best-effort message from an error body:
// the JSON "detail" field, else the first field carrying a validation-error
// string array (fields scanned in sorted order so the choice is
// deterministic), else the raw body text.
func normalizeMessage(body []byte) string {
	raw := strings.TrimSpace(string(body))

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || len(payload) == 0 {
		if raw == "" {
			return "request failed"
		}
		return raw
	}

	if d, ok := payload["detail"]; ok {
		var detail string
		if json.Unmarshal(d, &detail) == nil && detail != "" {
			return detail
		}
	}

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var msgs []string
		if json.Unmarshal(payload[k], &msgs) == nil && len(msgs) > 0 {
			return msgs[0]
		}
	}

	return raw
}

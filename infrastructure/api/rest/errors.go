// ABOUTME: Maps backend HTTP status codes and error bodies onto the core error types
// ABOUTME: 404 is not found, 401/403 unauthorized, 422 validation, anything else external

package rest

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	coreerrors "articles-app-client/core/errors"
)

const apiName = "articles-api"

// maxMessageLen bounds raw bodies copied into error messages
const maxMessageLen = 200

// resource names what a request was about, for error messages
type resource struct {
	kind string
	id   string
}

// errorBody is the backend's error envelope
type errorBody struct {
	Errors  map[string]json.RawMessage `json:"errors"`
	Message string                     `json:"message"`
}

func checkStatus(status int, body []byte, target resource) error {
	if status >= 200 && status < 300 {
		return nil
	}

	fields, message := parseErrorBody(body)
	if message == "" {
		message = http.StatusText(status)
	}

	switch status {
	case http.StatusNotFound:
		return &coreerrors.NotFoundError{Resource: target.kind, ID: target.id}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &coreerrors.UnauthorizedError{StatusCode: status, Message: message}
	case http.StatusUnprocessableEntity:
		if len(fields) == 0 {
			return &coreerrors.ValidationError{Field: target.kind, Message: message}
		}
		return &coreerrors.ValidationError{Fields: fields, Message: message}
	default:
		return &coreerrors.ExternalAPIError{StatusCode: status, Message: message, API: apiName}
	}
}

// parseErrorBody understands {"errors":{"field":["msg"]}}, {"errors":{"field":"msg"}}
// and {"message":"..."}; anything else becomes a truncated plain message
func parseErrorBody(body []byte) (map[string][]string, string) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, ""
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return nil, truncate(trimmed, maxMessageLen)
	}

	if len(eb.Errors) == 0 {
		return nil, eb.Message
	}

	fields := make(map[string][]string, len(eb.Errors))
	for name, raw := range eb.Errors {
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			fields[name] = list
			continue
		}
		var single string
		if err := json.Unmarshal(raw, &single); err == nil {
			fields[name] = []string{single}
		}
	}

	if eb.Message != "" {
		return fields, eb.Message
	}
	return fields, coreerrors.FormatFields(fields)
}

// truncate cuts s to at most limit bytes without splitting a UTF-8 sequence
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

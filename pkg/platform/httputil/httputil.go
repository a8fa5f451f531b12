// Package httputil centralizes JSON response and error envelope rendering so
// every handler speaks the same shape.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "tracegrid/pkg/domain-errors"
)

// WriteJSON renders v as a JSON body with the given status. Encoding failures
// after the header is written cannot be recovered, so they are swallowed.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a coded domain error into the JSON error envelope.
// Internal errors omit the description so store and wiring details never reach
// clients; all other codes include it to help callers fix their request.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := map[string]string{
		"error": string(code),
	}
	if code != dErrors.CodeInternal {
		if msg := dErrors.MessageOf(err); msg != "" {
			body["error_description"] = msg
		}
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}

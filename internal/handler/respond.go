package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/goaltime/goaltime/internal/validation"
)

// envelope is the JSON response shape. Data may be null (e.g. the journal
// entry for a day the user has not written), Message carries the toast text
// the client shows after a mutation.
type envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type errorResponse struct {
	Error  string                 `json:"error"`
	Fields validation.FieldErrors `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(envelope{Data: data, Message: message})
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}

// respondFieldErrors reports validation failures per field at 422.
func respondFieldErrors(w http.ResponseWriter, fields validation.FieldErrors) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(errorResponse{Error: "Validation failed", Fields: fields})
}

// respondInternal logs the failure with context and returns a generic 500.
func respondInternal(w http.ResponseWriter, what string, err error) {
	slog.Error(what, "error", err)
	respondError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
}

// decodeJSON parses the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(dst)
	if err != nil {
		return errors.New("invalid request body")
	}
	return nil
}

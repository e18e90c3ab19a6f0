package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrorResponse represents an error returned by the admin API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Per-field validation messages
	Fields map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func isValidationError(err error) bool {
	var verrs validation.Errors
	return errors.As(err, &verrs)
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validation.Errors
	errors.As(err, &verrs)

	fields := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		fields[field] = ferr.Error()
	}
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  "Validation failed",
		Fields: fields,
	})
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Dan9191/finance-ledger/internal/service"
)

const internalErrorMessage = "Internal server error"

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(v)
}

// validationMessage strips the sentinel prefix from a validation error,
// leaving the part meant for the client.
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
}

// writeServiceError maps service errors onto status codes. Anything
// unclassified is a store failure and gets a generic body; the service
// has already logged the cause.
func writeServiceError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, service.ErrDuplicateLogin):
		writeMessage(w, http.StatusConflict, "Username already exists.")
	case errors.Is(err, service.ErrAuthenticationFailed):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials.")
	case errors.Is(err, service.ErrNotFound):
		writeMessage(w, http.StatusNotFound, notFound)
	default:
		writeMessage(w, http.StatusInternalServerError, internalErrorMessage)
	}
}

package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bancoreal/transfer-service/internal/commons"
	"github.com/bancoreal/transfer-service/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("http write response failed", err, nil)
	}
}

// statusForError maps the engine's domain errors onto HTTP statuses. The
// duplicate/same-account/insufficient cases are unprocessable requests, a
// stale optimistic lock is a conflict the caller may retry by resubmitting.
func statusForError(err error, message string) int {
	switch {
	case errors.Is(err, commons.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, commons.ErrDuplicateEmail),
		errors.Is(err, commons.ErrDuplicateDocument),
		errors.Is(err, commons.ErrSameAccount),
		errors.Is(err, commons.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, commons.ErrVersionConflict):
		return http.StatusConflict
	case message == "validation failed":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

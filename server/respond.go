package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jbarros/go-timeclock-server/authn"
	"github.com/jbarros/go-timeclock-server/internal/apperr"
)

const contentTypeJSON = "application/json; charset=utf-8"

// APIResponse is the success envelope for every endpoint.
type APIResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the failure envelope for every endpoint.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}

func writeJSON(w http.ResponseWriter, statusCode int, message string, data any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Message: message, Data: data})
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Status:    statusCode,
		Message:   message,
		Timestamp: time.Now(),
		Path:      r.URL.Path,
	})
}

// writeServiceError maps the service error kinds onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, authn.ErrInvalidCredentials), errors.Is(err, authn.ErrInvalidToken):
		writeError(w, r, http.StatusUnauthorized, err.Error())
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"tracklist/internal/application"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errResponse struct {
	Error string `json:"error"`
}

func errorBody(msg string) errResponse {
	return errResponse{Error: msg}
}

// statusFor maps application errors to HTTP status codes.
func statusFor(err error) int {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr), errors.Is(err, application.ErrSortKeyNotOffered):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrDesignLoad):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

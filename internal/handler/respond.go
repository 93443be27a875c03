package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/repository"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError mapea los sentinels del servicio a HTTP. Lo que no
// reconoce es infraestructura: se loguea el detalle y sale un 500 genérico,
// nunca el error crudo de Mongo.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, "missing fields")
	case errors.Is(err, service.ErrInvalidMood):
		writeError(w, http.StatusBadRequest, "invalid mood")
	case errors.Is(err, repository.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "email already in use")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		log.Printf("[http] error interno: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
	}
}

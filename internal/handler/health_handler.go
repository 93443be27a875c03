package handler

import (
	"net/http"
	"time"
)

// @Summary Healthcheck
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

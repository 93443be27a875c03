package handler

import (
	"encoding/json"
	"net/http"

	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/models"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/service"

	"github.com/go-chi/chi/v5"
)

type MeHandler struct {
	svc *service.ProfileService
}

func NewMeHandler(s *service.ProfileService) *MeHandler {
	return &MeHandler{svc: s}
}

type meResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Favorites []string `json:"favorites"`
	Mood      string   `json:"mood"`
}

func toMeResponse(u *models.UserDoc) meResponse {
	favs := u.Favorites
	if favs == nil {
		favs = []string{}
	}
	return meResponse{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Favorites: favs,
		Mood:      u.MoodOrDefault(),
	}
}

// @Summary Usuario actual
// @Tags me
// @Produce json
// @Success 200 {object} meResponse
// @Failure 401 {object} map[string]string
// @Router /api/me [get]
func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	u := UserFromContext(r.Context())
	if u == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, toMeResponse(u))
}

type moodRequest struct {
	Mood string `json:"mood"`
}

// @Summary Cambiar mood
// @Description mood: happy|chill|sad|energetic, vacío para limpiar
// @Tags me
// @Accept json
// @Produce json
// @Param body body moodRequest true "mood"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /api/me/mood [put]
func (h *MeHandler) SetMood(w http.ResponseWriter, r *http.Request) {
	u := UserFromContext(r.Context())
	if u == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req moodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := h.svc.SetMood(r.Context(), u.ID, req.Mood); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

type favoriteRequest struct {
	MovieID string `json:"movieId"`
}

// @Summary Agregar favorito
// @Tags me
// @Accept json
// @Produce json
// @Param body body favoriteRequest true "movieId"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /api/me/favorites [post]
func (h *MeHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	u := UserFromContext(r.Context())
	if u == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req favoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := h.svc.AddFavorite(r.Context(), u.ID, req.MovieID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// @Summary Quitar favorito
// @Tags me
// @Produce json
// @Param movieId path string true "movieId"
// @Success 200 {object} map[string]bool
// @Router /api/me/favorites/{movieId} [delete]
func (h *MeHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	u := UserFromContext(r.Context())
	if u == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	movieID := chi.URLParam(r, "movieId")
	if err := h.svc.RemoveFavorite(r.Context(), u.ID, movieID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/models"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/service"
)

type AuthHandler struct {
	svc     *service.AuthService
	cookies CookiePolicy
}

func NewAuthHandler(s *service.AuthService, cookies CookiePolicy) *AuthHandler {
	return &AuthHandler{svc: s, cookies: cookies}
}

// userResponse es la proyección pública: nunca lleva el hash del password.
type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResponse(u *models.UserDoc) userResponse {
	return userResponse{
		ID:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Register
// @Description Crea un usuario nuevo y deja la sesión iniciada (cookie)
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "datos"
// @Success 201 {object} userResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	token, u, err := h.svc.Register(r.Context(), service.RegisterUserData{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.cookies.SetSessionCookie(w, token)
	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credenciales"
// @Success 200 {object} userResponse
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	token, u, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.cookies.SetSessionCookie(w, token)
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// @Summary Logout
// @Description Borra la cookie de sesión; siempre responde ok
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

package handler

import (
	"net/http"

	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/auth"
)

const SessionCookieName = "token"

// CookiePolicy concentra las flags de la cookie de sesión que antes estaban
// repetidas ruta por ruta. Se resuelve una sola vez a partir del entorno:
// en producción el frontend vive en otro dominio, así que hace falta
// SameSite=None + Secure; en local alcanza con Lax sin HTTPS.
type CookiePolicy struct {
	Secure   bool
	SameSite http.SameSite
}

func CookiePolicyFor(production bool) CookiePolicy {
	if production {
		return CookiePolicy{Secure: true, SameSite: http.SameSiteNoneMode}
	}
	return CookiePolicy{Secure: false, SameSite: http.SameSiteLaxMode}
}

func (p CookiePolicy) SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
		MaxAge:   int(auth.TokenTTL.Seconds()),
	})
}

// ClearSessionCookie borra la cookie; borrar una cookie que no existe
// también es éxito (logout idempotente).
func (p CookiePolicy) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.SameSite,
		MaxAge:   -1,
	})
}

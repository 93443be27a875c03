package handler

import (
	"context"
	"net/http"

	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/models"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/service"
)

type ctxKey string

const CtxUser ctxKey = "user"

// RequireAuth devuelve un middleware que saca el token de la cookie,
// resuelve la sesión contra el servicio y mete el usuario en el contexto.
// Sin cookie, token inválido/vencido o usuario borrado: 401.
func RequireAuth(svc *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if c, err := r.Cookie(SessionCookieName); err == nil {
				token = c.Value
			}

			u, err := svc.ResolveSession(r.Context(), token)
			if err != nil {
				writeServiceError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), CtxUser, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext helper para sacar el usuario autenticado del contexto.
func UserFromContext(ctx context.Context) *models.UserDoc {
	if v := ctx.Value(CtxUser); v != nil {
		if u, ok := v.(*models.UserDoc); ok {
			return u
		}
	}
	return nil
}

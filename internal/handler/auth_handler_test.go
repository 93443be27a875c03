package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/auth"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/models"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/repository"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fake en memoria del repositorio, igual que en los tests del servicio
type fakeStore struct {
	byID map[primitive.ObjectID]*models.UserDoc
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: map[primitive.ObjectID]*models.UserDoc{}}
}

func (f *fakeStore) FindByEmail(ctx context.Context, email string) (*models.UserDoc, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error) {
	return f.byID[id], nil
}

func (f *fakeStore) Insert(ctx context.Context, u *models.UserDoc) error {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	u.ID = primitive.NewObjectID()
	f.byID[u.ID] = u
	return nil
}

func (f *fakeStore) SetMood(ctx context.Context, id primitive.ObjectID, mood string) error {
	u, ok := f.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if mood == "" {
		u.Mood = nil
	} else {
		m := mood
		u.Mood = &m
	}
	return nil
}

func (f *fakeStore) AddFavorite(ctx context.Context, id primitive.ObjectID, movieID string) error {
	u, ok := f.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.Favorites = append(u.Favorites, movieID)
	return nil
}

func (f *fakeStore) RemoveFavorite(ctx context.Context, id primitive.ObjectID, movieID string) error {
	u, ok := f.byID[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	var favs []string
	for _, v := range u.Favorites {
		if v != movieID {
			favs = append(favs, v)
		}
	}
	u.Favorites = favs
	return nil
}

// newTestRouter arma el router igual que main, con el fake como store.
func newTestRouter(t *testing.T) (*chi.Mux, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	authSvc := service.NewAuthService(store, auth.NewTokenCodec("test-secret"))
	profileSvc := service.NewProfileService(store)

	cookies := CookiePolicyFor(false)
	authH := NewAuthHandler(authSvc, cookies)
	meH := NewMeHandler(profileSvc)

	r := chi.NewRouter()
	r.Post("/api/auth/register", authH.Register)
	r.Post("/api/auth/login", authH.Login)
	r.Post("/api/auth/logout", authH.Logout)
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(authSvc))
		r.Route("/api/me", func(r chi.Router) {
			r.Get("/", meH.Me)
			r.Put("/mood", meH.SetMood)
			r.Post("/favorites", meH.AddFavorite)
			r.Delete("/favorites/{movieId}", meH.RemoveFavorite)
		})
	})
	return r, store
}

func doJSON(t *testing.T, r http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatal("no vino la cookie de sesión")
	return nil
}

func TestRegister_SetsCookieAndProjection(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"name":"Ann","email":"Ann@X.com","password":"pw123456"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ann", resp["name"])
	assert.Equal(t, "ann@x.com", resp["email"])
	assert.NotEmpty(t, resp["id"])
	// la proyección pública jamás incluye el hash
	assert.NotContains(t, w.Body.String(), "passwordHash")

	c := sessionCookie(t, w)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, int(auth.TokenTTL.Seconds()), c.MaxAge)
	assert.NotEmpty(t, c.Value)
}

func TestRegister_Duplicate409(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"name":"Ann","email":"ann@x.com","password":"pw123456"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"name":"Bea","email":" ANN@x.com ","password":"otropw"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already in use")
}

func TestRegister_MissingFields400(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", `esto no es json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_OkAndInvalid(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"name":"Ann","email":"ann@x.com","password":"pw123456"}`)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"ann@x.com","password":"pw123456"}`)
	require.Equal(t, http.StatusOK, w.Code)
	sessionCookie(t, w)

	// password malo y email inexistente: misma respuesta exacta
	wrong := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"ann@x.com","password":"wrong"}`)
	nouser := doJSON(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"nadie@x.com","password":"pw123456"}`)

	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, nouser.Code)
	assert.JSONEq(t, wrong.Body.String(), nouser.Body.String())
}

func TestLogout_Idempotent(t *testing.T) {
	r, _ := newTestRouter(t)

	// sin sesión previa también es éxito
	w := doJSON(t, r, http.MethodPost, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	c := sessionCookie(t, w)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}

func TestMe_WithSession(t *testing.T) {
	r, _ := newTestRouter(t)

	reg := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"name":"Ann","email":"ann@x.com","password":"pw123456"}`)
	c := sessionCookie(t, reg)

	w := doJSON(t, r, http.MethodGet, "/api/me", "", c)
	require.Equal(t, http.StatusOK, w.Code)

	var resp meResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ann", resp.Name)
	assert.Equal(t, "ann@x.com", resp.Email)
	assert.Equal(t, []string{}, resp.Favorites)
	// sin mood elegido la proyección devuelve "neutral"
	assert.Equal(t, models.MoodDefault, resp.Mood)
}

func TestMe_Unauthorized(t *testing.T) {
	r, _ := newTestRouter(t)

	// sin cookie
	w := doJSON(t, r, http.MethodGet, "/api/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// cookie con token adulterado
	w = doJSON(t, r, http.MethodGet, "/api/me", "",
		&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_MoodAndFavoritesFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	reg := doJSON(t, r, http.MethodPost, "/api/auth/register",
		`{"name":"Ann","email":"ann@x.com","password":"pw123456"}`)
	c := sessionCookie(t, reg)

	w := doJSON(t, r, http.MethodPut, "/api/me/mood", `{"mood":"chill"}`, c)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/me/mood", `{"mood":"enojado"}`, c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/me/favorites", `{"movieId":"tt0133093"}`, c)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/me/favorites", `{"movieId":"tt0111161"}`, c)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/me", "", c)
	require.Equal(t, http.StatusOK, w.Code)
	var resp meResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "chill", resp.Mood)
	assert.Equal(t, []string{"tt0133093", "tt0111161"}, resp.Favorites)

	w = doJSON(t, r, http.MethodDelete, "/api/me/favorites/tt0133093", "", c)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/me", "", c)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"tt0111161"}, resp.Favorites)
}

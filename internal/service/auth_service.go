package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/auth"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/cache"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/models"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TTL en segundos del usuario cacheado en Redis para ResolveSession.
const userCacheTTL = 300

// UserStore es lo que AuthService y ProfileService necesitan del repositorio
// de usuarios; en tests se reemplaza por un fake.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.UserDoc, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error)
	Insert(ctx context.Context, u *models.UserDoc) error
	SetMood(ctx context.Context, id primitive.ObjectID, mood string) error
	AddFavorite(ctx context.Context, id primitive.ObjectID, movieID string) error
	RemoveFavorite(ctx context.Context, id primitive.ObjectID, movieID string) error
}

type AuthService struct {
	users  UserStore
	tokens *auth.TokenCodec
}

type RegisterUserData struct {
	Name     string
	Email    string
	Password string
}

func NewAuthService(users UserStore, tokens *auth.TokenCodec) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// NormalizeEmail recorta espacios y pasa a minúsculas; el email normalizado
// es la clave natural de login.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ================== REGISTER & LOGIN ==================

// Register crea un usuario nuevo y emite su token de sesión.
func (s *AuthService) Register(ctx context.Context, data RegisterUserData) (string, *models.UserDoc, error) {
	email := NormalizeEmail(data.Email)
	if data.Name == "" || email == "" || data.Password == "" {
		return "", nil, ErrValidation
	}

	// chequeo previo solo para responder 409 con buen mensaje; el índice
	// único de Mongo es quien decide de verdad (ver repository.Insert)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, repository.ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	u := &models.UserDoc{
		Name:         data.Name,
		Email:        email,
		PasswordHash: hash,
		Favorites:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Insert(ctx, u); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(u.ID.Hex(), u.Email)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDoc, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, ErrValidation
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		// solo en el log distinguimos email desconocido de password malo
		log.Printf("[auth] login: email desconocido %s", email)
		return "", nil, ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, u.PasswordHash) {
		log.Printf("[auth] login: password incorrecto para %s", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID.Hex(), u.Email)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// ================== SESIÓN ==================

// ResolveSession valida el token de la cookie y carga el usuario. Un token
// firmado cuyo usuario ya no existe también es 401 (token huérfano).
func (s *AuthService) ResolveSession(ctx context.Context, tokenStr string) (*models.UserDoc, error) {
	if tokenStr == "" {
		return nil, ErrUnauthorized
	}

	claims, err := s.tokens.Verify(tokenStr)
	if err != nil {
		return nil, ErrUnauthorized
	}

	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	// cache read-through: el doc cacheado no incluye el hash (json:"-"),
	// pero después del login ya no hace falta
	var cached models.UserDoc
	if ok, err := cache.GetJSON(ctx, userCacheKey(claims.UserID), &cached); err == nil && ok {
		return &cached, nil
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUnauthorized
	}

	if err := cache.SetJSON(ctx, userCacheKey(claims.UserID), u, userCacheTTL); err != nil {
		log.Printf("[auth] no se pudo cachear usuario %s: %v", claims.UserID, err)
	}
	return u, nil
}

func userCacheKey(id string) string {
	return "user:" + id
}

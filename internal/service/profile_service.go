package service

import (
	"context"
	"log"

	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/cache"
	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileService maneja lo que el usuario edita de su propio perfil:
// favoritos y mood. Cada escritura invalida el usuario cacheado para que
// la próxima ResolveSession lo relea de Mongo.
type ProfileService struct {
	users UserStore
}

func NewProfileService(users UserStore) *ProfileService {
	return &ProfileService{users: users}
}

// SetMood guarda el mood elegido; con "" lo limpia.
func (s *ProfileService) SetMood(ctx context.Context, userID primitive.ObjectID, mood string) error {
	if mood != "" && !models.ValidMood(mood) {
		return ErrInvalidMood
	}
	if err := s.users.SetMood(ctx, userID, mood); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

// AddFavorite agrega un movieId a la lista (el orden de inserción importa,
// y se permiten repetidos).
func (s *ProfileService) AddFavorite(ctx context.Context, userID primitive.ObjectID, movieID string) error {
	if movieID == "" {
		return ErrValidation
	}
	if err := s.users.AddFavorite(ctx, userID, movieID); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *ProfileService) RemoveFavorite(ctx context.Context, userID primitive.ObjectID, movieID string) error {
	if movieID == "" {
		return ErrValidation
	}
	if err := s.users.RemoveFavorite(ctx, userID, movieID); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *ProfileService) invalidate(ctx context.Context, userID primitive.ObjectID) {
	if err := cache.Del(ctx, userCacheKey(userID.Hex())); err != nil {
		log.Printf("[profile] no se pudo invalidar cache de %s: %v", userID.Hex(), err)
	}
}

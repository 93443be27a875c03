package repository

import (
	"context"
	"errors"
	"time"

	"github.com/santhoshreddyyarava0108/Movie-Recommend-Backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateEmail lo produce Insert cuando el índice único de email rechaza
// el documento. El chequeo previo del servicio es solo para dar mejor mensaje;
// el índice es la defensa real contra la carrera check-then-insert.
var ErrDuplicateEmail = errors.New("email already in use")

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// EnsureIndexes crea el índice único sobre email. Se llama una vez al arrancar.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.UserDoc, error) {
	var u models.UserDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &u, err
}

// Insert guarda el usuario nuevo y le asigna el _id generado.
func (r *UserRepository) Insert(ctx context.Context, u *models.UserDoc) error {
	res, err := r.col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

// SetMood actualiza el mood del usuario. Con mood vacío lo borra ($unset).
func (r *UserRepository) SetMood(ctx context.Context, id primitive.ObjectID, mood string) error {
	update := bson.M{
		"$set": bson.M{"updatedAt": nowRFC3339()},
	}
	if mood == "" {
		update["$unset"] = bson.M{"mood": ""}
	} else {
		update["$set"].(bson.M)["mood"] = mood
	}
	return r.updateByID(ctx, id, update)
}

// AddFavorite agrega el movieId al final de la lista (se permiten repetidos).
func (r *UserRepository) AddFavorite(ctx context.Context, id primitive.ObjectID, movieID string) error {
	return r.updateByID(ctx, id, bson.M{
		"$push": bson.M{"favorites": movieID},
		"$set":  bson.M{"updatedAt": nowRFC3339()},
	})
}

// RemoveFavorite quita todas las apariciones del movieId.
func (r *UserRepository) RemoveFavorite(ctx context.Context, id primitive.ObjectID, movieID string) error {
	return r.updateByID(ctx, id, bson.M{
		"$pull": bson.M{"favorites": movieID},
		"$set":  bson.M{"updatedAt": nowRFC3339()},
	})
}

func (r *UserRepository) updateByID(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Moods válidos para el perfil. "neutral" no se guarda: es el valor que se
// devuelve al cliente cuando el usuario todavía no eligió ninguno.
const (
	MoodHappy     = "happy"
	MoodChill     = "chill"
	MoodSad       = "sad"
	MoodEnergetic = "energetic"

	MoodDefault = "neutral"
)

func ValidMood(m string) bool {
	switch m {
	case MoodHappy, MoodChill, MoodSad, MoodEnergetic:
		return true
	}
	return false
}

type UserDoc struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	Favorites    []string           `json:"favorites" bson:"favorites"`
	Mood         *string            `json:"mood,omitempty" bson:"mood,omitempty"`
	CreatedAt    string             `json:"createdAt" bson:"createdAt"`
	UpdatedAt    string             `json:"updatedAt" bson:"updatedAt"`
}

// MoodOrDefault devuelve el mood guardado o "neutral" si no hay.
func (u *UserDoc) MoodOrDefault() string {
	if u.Mood == nil || *u.Mood == "" {
		return MoodDefault
	}
	return *u.Mood
}

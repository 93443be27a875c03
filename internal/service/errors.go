package service

import "errors"

// Errores que los handlers traducen a códigos HTTP. Cualquier otro error es
// infraestructura (Mongo/Redis caídos) y sale como 500 genérico.
var (
	ErrValidation = errors.New("missing fields")

	// mismo error para "email desconocido" y "password incorrecto", así la
	// respuesta no permite enumerar cuentas
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUnauthorized = errors.New("unauthorized")

	ErrInvalidMood = errors.New("invalid mood")
)

package entity

import "time"

// Admin es el titular de credenciales del panel. Se aprovisiona fuera de la API
// pública (cmd/create_admin); no existe registro self-service.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt; nunca se expone en respuestas
	Email        string
	CreatedAt    time.Time
}

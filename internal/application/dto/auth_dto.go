package dto

// LoginRequest entrada de POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminProfile perfil redactado del admin (nunca incluye el hash de password).
type AdminProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResponse salida de login: token firmado + perfil redactado.
type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	Admin   AdminProfile `json:"admin"`
}

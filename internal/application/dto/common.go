package dto

// ErrorResponse cuerpo de error HTTP. Errors solo se incluye en fallos de validación.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError detalle por campo en errores de validación (espejo de domain.FieldError).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

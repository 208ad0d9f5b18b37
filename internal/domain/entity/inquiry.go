package entity

import "time"

// Tamaños de botella del catálogo.
const (
	BottleSize250ml = "250ml"
	BottleSize500ml = "500ml"
	BottleSize1L    = "1L"
)

// Estados del ciclo de vida de un inquiry. New es el único estado inicial;
// cualquier transición entre los tres estados es válida (un admin puede revertir).
const (
	StatusNew       = "New"
	StatusContacted = "Contacted"
	StatusConverted = "Converted"
)

// Estilos de etiqueta para la personalización del logo.
const (
	LabelStyleClassic     = "Classic"
	LabelStylePremium     = "Premium"
	LabelStyleTraditional = "Traditional"
)

// ValidBottleSize indica si s es uno de los tamaños del catálogo.
func ValidBottleSize(s string) bool {
	return s == BottleSize250ml || s == BottleSize500ml || s == BottleSize1L
}

// ValidStatus indica si s es un estado reconocido de inquiry.
func ValidStatus(s string) bool {
	return s == StatusNew || s == StatusContacted || s == StatusConverted
}

// Inquiry es un lead enviado desde el sitio público.
// CreatedAt se fija una sola vez en la creación; Status solo lo muta un admin.
type Inquiry struct {
	ID           string
	Name         string
	BusinessName string
	Phone        string
	City         string
	BottleSize   string // 250ml | 500ml | 1L
	Quantity     string // texto libre: tasa o cantidad, ej. "100/week"
	Address      string
	Message      string
	LogoURL      string // URL pública en el media host
	LabelStyle   string // Classic | Premium | Traditional (opcional)
	Status       string // New | Contacted | Converted
	CreatedAt    time.Time
}

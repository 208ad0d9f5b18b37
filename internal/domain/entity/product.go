package entity

import "time"

// Product es una entrada del catálogo (una por tamaño de botella, por convención).
type Product struct {
	ID           string
	Size         string // 250ml | 500ml | 1L
	PriceRange   string // texto libre, ej. "₹8 - ₹12 per bottle"
	MOQ          int    // cantidad mínima de pedido
	Description  string
	ImageURL     string
	DeliveryTime string // texto libre, ej. "5-7 days"
	CreatedAt    time.Time
}

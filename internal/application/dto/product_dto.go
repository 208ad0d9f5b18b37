package dto

import "time"

// CreateProductRequest entrada del admin para crear una entrada del catálogo.
type CreateProductRequest struct {
	Size         string `json:"size" validate:"required,oneof=250ml 500ml 1L"`
	PriceRange   string `json:"priceRange"`
	MOQ          int    `json:"moq" validate:"required,min=1"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl" validate:"omitempty,url"`
	DeliveryTime string `json:"deliveryTime"`
}

// UpdateProductRequest actualización parcial; solo los campos presentes se aplican.
type UpdateProductRequest struct {
	Size         *string `json:"size" validate:"omitempty,oneof=250ml 500ml 1L"`
	PriceRange   *string `json:"priceRange"`
	MOQ          *int    `json:"moq" validate:"omitempty,min=1"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"imageUrl" validate:"omitempty,url"`
	DeliveryTime *string `json:"deliveryTime"`
}

// ProductResponse salida de una entrada del catálogo.
type ProductResponse struct {
	ID           string    `json:"id"`
	Size         string    `json:"size"`
	PriceRange   string    `json:"priceRange,omitempty"`
	MOQ          int       `json:"moq"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	DeliveryTime string    `json:"deliveryTime,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProductListResponse catálogo completo, ordenado por size.
type ProductListResponse struct {
	Success bool              `json:"success"`
	Data    []ProductResponse `json:"data"`
}

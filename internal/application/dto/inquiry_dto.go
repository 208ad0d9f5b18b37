package dto

import "time"

// CreateInquiryRequest entrada pública para crear un inquiry.
// Status y CreatedAt no se aceptan del cliente: el use case los fija siempre.
type CreateInquiryRequest struct {
	Name         string `json:"name" validate:"required"`
	BusinessName string `json:"businessName" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	City         string `json:"city" validate:"required"`
	BottleSize   string `json:"bottleSize" validate:"required,oneof=250ml 500ml 1L"`
	Quantity     string `json:"quantity" validate:"required"`
	Address      string `json:"address"`
	Message      string `json:"message"`
	LogoURL      string `json:"logoUrl" validate:"omitempty,url"`
	LabelStyle   string `json:"labelStyle" validate:"omitempty,oneof=Classic Premium Traditional"`
}

// UpdateInquiryStatusRequest entrada del admin para cambiar el estado.
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=New Contacted Converted"`
}

// InquiryResponse salida de un inquiry.
type InquiryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	BusinessName string    `json:"businessName"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	BottleSize   string    `json:"bottleSize"`
	Quantity     string    `json:"quantity"`
	Address      string    `json:"address,omitempty"`
	Message      string    `json:"message,omitempty"`
	LogoURL      string    `json:"logoUrl,omitempty"`
	LabelStyle   string    `json:"labelStyle,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// InquiryListResponse página de inquiries con los metadatos que consume el panel.
type InquiryListResponse struct {
	Success     bool              `json:"success"`
	Data        []InquiryResponse `json:"data"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	Total       int64             `json:"total"`
}

// InquiryCreatedResponse envelope del alta pública.
type InquiryCreatedResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    InquiryResponse `json:"data"`
}

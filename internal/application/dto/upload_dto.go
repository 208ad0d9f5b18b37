package dto

// UploadResponse salida de POST /api/upload.
type UploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

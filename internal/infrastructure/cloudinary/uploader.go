package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/shivuu-aqua/aqua-api/internal/application/ports"
	"github.com/shivuu-aqua/aqua-api/internal/domain"
	"github.com/shivuu-aqua/aqua-api/pkg/config"
)

// Verificar en tiempo de compilación que Client implementa MediaUploader.
var _ ports.MediaUploader = (*Client)(nil)

// MaxUploadBytes techo de tamaño de imagen: 5 MiB, igual que el sitio original.
const MaxUploadBytes = 5 * 1024 * 1024

const defaultBaseURL = "https://api.cloudinary.com"

// Client adaptador del media host (Cloudinary Upload API) usando net/http.
// No requiere el SDK oficial; es una sola llamada firmada.
type Client struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador.
func NewClient(cfg config.CloudinaryConfig) *Client {
	return &Client{
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    cfg.Folder,
		baseURL:   defaultBaseURL,
		httpClient: &http.Client{
			// Timeout de red de 20 s; la subida nunca queda colgada.
			Timeout: 20 * time.Second,
		},
	}
}

type uploadAPIResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload valida la imagen (MIME y tamaño, antes de tocar la red) y la sube a la
// carpeta fija configurada. Devuelve la URL pública estable y el public_id del
// proveedor. Un fallo del proveedor se reporta como domain.ErrExternalService
// sin dejar nada persistido.
func (c *Client) Upload(ctx context.Context, data []byte, mimeType string) (*ports.UploadResult, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, domain.NewValidationError(domain.FieldError{
			Field: "logo", Message: "only image files are allowed",
		})
	}
	if len(data) == 0 {
		return nil, domain.NewValidationError(domain.FieldError{
			Field: "logo", Message: "logo file is required",
		})
	}
	if len(data) > MaxUploadBytes {
		return nil, domain.NewValidationError(domain.FieldError{
			Field: "logo", Message: "file must not exceed 5MB",
		})
	}
	if c.cloudName == "" || c.apiKey == "" || c.apiSecret == "" {
		return nil, fmt.Errorf("cloudinary: credenciales no configuradas")
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "logo")
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(data); err != nil {
		return nil, err
	}
	fields := map[string]string{
		"api_key":   c.apiKey,
		"timestamp": timestamp,
		"folder":    c.folder,
		"signature": c.sign(timestamp),
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExternalService, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrExternalService, err)
	}

	var out uploadAPIResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: respuesta no es JSON (HTTP %d)", domain.ErrExternalService, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK || out.Error != nil {
		msg := "upload rechazado"
		if out.Error != nil {
			msg = out.Error.Message
		}
		return nil, fmt.Errorf("%w: %s (HTTP %d)", domain.ErrExternalService, msg, resp.StatusCode)
	}
	if out.SecureURL == "" {
		return nil, fmt.Errorf("%w: respuesta sin secure_url", domain.ErrExternalService)
	}

	return &ports.UploadResult{URL: out.SecureURL, PublicID: out.PublicID}, nil
}

// sign firma la petición según el esquema de Cloudinary: SHA-1 de los
// parámetros ordenados (sin api_key ni file) concatenados con el api_secret.
func (c *Client) sign(timestamp string) string {
	toSign := fmt.Sprintf("folder=%s&timestamp=%s%s", c.folder, timestamp, c.apiSecret)
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}

package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivuu-aqua/aqua-api/internal/domain"
	"github.com/shivuu-aqua/aqua-api/pkg/config"
)

func testClient(baseURL string) *Client {
	c := NewClient(config.CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "key123",
		APISecret: "secret123",
		Folder:    "shivuu-aqua/logos",
	})
	if baseURL != "" {
		c.baseURL = baseURL
	}
	return c
}

func TestUpload_OK(t *testing.T) {
	var gotPath string
	var gotFields map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotFields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			gotFields[k] = v[0]
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"secure_url": "https://res.cloudinary.com/demo/image/upload/v1/shivuu-aqua/logos/abc.png",
			"public_id":  "shivuu-aqua/logos/abc",
		})
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).Upload(context.Background(), []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/v1/shivuu-aqua/logos/abc.png", result.URL)
	assert.Equal(t, "shivuu-aqua/logos/abc", result.PublicID)

	assert.Equal(t, "/v1_1/demo/image/upload", gotPath)
	assert.Equal(t, "key123", gotFields["api_key"])
	assert.Equal(t, "shivuu-aqua/logos", gotFields["folder"])

	// La firma debe coincidir con el esquema del proveedor
	toSign := fmt.Sprintf("folder=%s&timestamp=%ssecret123", "shivuu-aqua/logos", gotFields["timestamp"])
	sum := sha1.Sum([]byte(toSign))
	assert.Equal(t, hex.EncodeToString(sum[:]), gotFields["signature"])
}

func TestUpload_ProveedorFalla(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "upload failed"},
		})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Upload(context.Background(), []byte("png-bytes"), "image/png")
	assert.ErrorIs(t, err, domain.ErrExternalService)
	assert.Contains(t, err.Error(), "upload failed")
}

func TestUpload_RespuestaSinSecureURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"public_id": "x"})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Upload(context.Background(), []byte("png-bytes"), "image/png")
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestUpload_RespuestaNoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Upload(context.Background(), []byte("png-bytes"), "image/png")
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

// Los pre-checks locales rechazan sin tocar la red.
func TestUpload_PreChecksSinRed(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls++
	}))
	defer srv.Close()
	client := testClient(srv.URL)

	// MIME no imagen
	_, err := client.Upload(context.Background(), []byte("data"), "application/pdf")
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "only image files are allowed", ve.Fields[0].Message)

	// Archivo vacío
	_, err = client.Upload(context.Background(), nil, "image/png")
	_, ok = domain.AsValidationError(err)
	require.True(t, ok)

	// Por encima de 5MB
	_, err = client.Upload(context.Background(), bytes.Repeat([]byte("a"), MaxUploadBytes+1), "image/png")
	ve, ok = domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "file must not exceed 5MB", ve.Fields[0].Message)

	assert.Equal(t, 0, calls, "ningún pre-check debe generar tráfico al proveedor")
}

func TestUpload_ContextoCancelado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := testClient(srv.URL).Upload(ctx, []byte("png-bytes"), "image/png")
	assert.ErrorIs(t, err, domain.ErrExternalService, "el error de red se reporta como fallo del proveedor")
}

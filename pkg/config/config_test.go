package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Los caracteres especiales del password deben quedar URL-encoded en el DSN.
func TestDBConfig_DSNEncodeaPassword(t *testing.T) {
	cfg := DBConfig{
		Host:     "db.example.com",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:w/rd",
		DBName:   "shivuu_aqua",
		SSLMode:  "require",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aw%2Frd")
	assert.Contains(t, dsn, "db.example.com:5432")
	assert.Contains(t, dsn, "sslmode=require")
}

// DATABASE_URL completo tiene prioridad sobre los campos sueltos.
func TestDBConfig_ConnectionStringPrefiereURL(t *testing.T) {
	cfg := DBConfig{
		DatabaseURL: "postgresql://u:p@supabase.co:6543/postgres?sslmode=require",
		Host:        "ignorado",
	}
	assert.Equal(t, cfg.DatabaseURL, cfg.ConnectionString())
}

func TestSMTPConfig_Enabled(t *testing.T) {
	assert.False(t, SMTPConfig{}.Enabled())
	assert.False(t, SMTPConfig{Host: "smtp.example.com"}.Enabled(), "sin destinatario no hay envío")
	assert.True(t, SMTPConfig{Host: "smtp.example.com", AdminEmail: "owner@shivuuaqua.com"}.Enabled())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.Equal(t, 7, cfg.JWT.ExpDays)
	assert.Equal(t, 100, cfg.RateLimit.Max)
	assert.Equal(t, 10, cfg.RateLimit.UploadMax)
	assert.Equal(t, "shivuu-aqua/logos", cfg.Cloudinary.Folder)
}

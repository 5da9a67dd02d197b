package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_NAME", "testdb")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("COMMISSION_RATE", "0.25")
	os.Setenv("MAX_DOWNLOADS", "5")
	os.Setenv("DOWNLOAD_TTL", "48h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 0.25, cfg.CommissionRate)
	assert.Equal(t, 5, cfg.MaxDownloads)
	assert.Equal(t, 48*time.Hour, cfg.DownloadTTL)

	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_HOST")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("COMMISSION_RATE")
	os.Unsetenv("MAX_DOWNLOADS")
	os.Unsetenv("DOWNLOAD_TTL")
}

func TestLoadConfig_Defaults(t *testing.T) {
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("COMMISSION_RATE")
	os.Unsetenv("MAX_DOWNLOADS")
	os.Unsetenv("MAX_UPLOAD_SIZE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 0.30, cfg.CommissionRate)
	assert.Equal(t, 3, cfg.MaxDownloads)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadSize)
	assert.Equal(t, 7*24*time.Hour, cfg.DownloadTTL)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	os.Setenv("COMMISSION_RATE", "not-a-number")
	os.Setenv("MAX_DOWNLOADS", "many")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, 0.30, cfg.CommissionRate)
	assert.Equal(t, 3, cfg.MaxDownloads)

	os.Unsetenv("COMMISSION_RATE")
	os.Unsetenv("MAX_DOWNLOADS")
}

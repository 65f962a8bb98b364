package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EnvMode(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/cms?sslmode=disable")
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("STORAGE_TYPE", "cloudflare_r2")
	t.Setenv("STORAGE_BUCKET", "cms-media")

	LoadConfig()
	cfg := GetConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "postgres://user:pass@db:5432/cms?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "cloudflare_r2", cfg.Storage.Type)
	assert.Equal(t, "cms-media", cfg.Storage.Bucket)
}

func TestLoadConfig_EnvModeDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/cms")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("STORAGE_TYPE", "")

	LoadConfig()
	cfg := GetConfig()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.EqualValues(t, 10*1024*1024, cfg.Upload.MaxSize)
	assert.Contains(t, cfg.Upload.AllowedTypes, "image/webp")
	assert.Equal(t, 85, cfg.Upload.ImageQuality)
	assert.Equal(t, 2560, cfg.Upload.MaxDimension)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

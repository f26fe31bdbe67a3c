package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.SecretKey.Access = strings.Repeat("a", minProductionSecretLength)
	cfg.SecretKey.Refresh = strings.Repeat("r", minProductionSecretLength)
	cfg.Storage = &StorageConfig{Provider: StorageMemory}
	cfg.applyDefaults()

	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, EnvDevelopment, cfg.Env.Env)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, defaultPort, cfg.HTTP.Port)
	assert.Equal(t, "*", cfg.HTTP.CorsOrigin)
	assert.Equal(t, defaultRateLimitMax, cfg.HTTP.RateLimit.Max)
	assert.Equal(t, 2*defaultRateLimitMax, cfg.HTTP.RateLimit.ReadingMax)
	assert.Equal(t, time.Hour, cfg.HTTP.RateLimit.PasswordWindow)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultRefreshTokenTTL, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, StorageCloudinary, cfg.Storage.Provider)
	assert.Equal(t, int64(defaultUploadMaxSize), cfg.Storage.MaxUploadSize)
	assert.Equal(t, []string{"image/jpeg", "image/png", "image/webp", "image/gif"}, cfg.Storage.AllowedMimes)
	assert.Equal(t, "manga-uploads", cfg.Storage.Cloudinary.Folder)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, defaultPoolMonitorInterval, cfg.Database.PoolMonitorInterval)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Env = EnvProduction
	cfg.HTTP.RateLimit.Max = 50
	cfg.applyDefaults()

	assert.Equal(t, "info", cfg.Env.Log.Level)
	assert.Equal(t, 50, cfg.HTTP.RateLimit.Max)
	assert.Equal(t, 100, cfg.HTTP.RateLimit.ReadingMax)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "unknown env",
			mutate:  func(cfg *Config) { cfg.Env.Env = "staging" },
			wantErr: "env.env must be one of",
		},
		{
			name:    "missing secrets",
			mutate:  func(cfg *Config) { cfg.SecretKey.Refresh = "" },
			wantErr: "secretKey.access and secretKey.refresh are required",
		},
		{
			name: "short secrets in production",
			mutate: func(cfg *Config) {
				cfg.Env.Env = EnvProduction
				cfg.SecretKey.Access = "short"
			},
			wantErr: "jwt secrets must be at least 32 characters in production",
		},
		{
			name:    "short secrets outside production",
			mutate:  func(cfg *Config) { cfg.SecretKey.Access = "short" },
			wantErr: "",
		},
		{
			name:    "bad port",
			mutate:  func(cfg *Config) { cfg.HTTP.Port = 70000 },
			wantErr: "http.port must be between 1 and 65535",
		},
		{
			name:    "bcrypt cost out of range",
			mutate:  func(cfg *Config) { cfg.Auth.BcryptCost = 40 },
			wantErr: "auth.bcryptCost must be between 4 and 31",
		},
		{
			name:    "cloudinary without credentials",
			mutate:  func(cfg *Config) { cfg.Storage.Provider = StorageCloudinary },
			wantErr: "storage.cloudinary.cloudName is required for provider cloudinary",
		},
		{
			name:    "file storage without dir",
			mutate:  func(cfg *Config) { cfg.Storage.Provider = StorageFile },
			wantErr: "storage.file.dir is required for provider file",
		},
		{
			name:    "unknown storage provider",
			mutate:  func(cfg *Config) { cfg.Storage.Provider = "ftp" },
			wantErr: "storage.provider must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{raw: "7d", want: 7 * 24 * time.Hour},
		{raw: "30d", want: 30 * 24 * time.Hour},
		{raw: "15m", want: 15 * time.Minute},
		{raw: " 1h30m ", want: 90 * time.Minute},
		{raw: "", want: 0},
		{raw: "xd", wantErr: true},
		{raw: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseDuration(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Env = EnvProduction
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"mangahub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_RedactsSensitiveAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo, false))

	logger.Info("login",
		slog.String("email", "reader@example.com"),
		slog.String("password", "Secret123"),
		slog.Group("body", slog.String("refreshToken", "abc"), slog.String("title", "Berserk")),
	)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "reader@example.com", record["email"])
	assert.Equal(t, redactedValue, record["password"])

	body, ok := record["body"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, redactedValue, body["refreshToken"])
	assert.Equal(t, "Berserk", body["title"])
}

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"password", true},
		{"Authorization", true},
		{"refresh_token", true},
		{"api-key", true},
		{"userName", false},
		{"status", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSensitiveKey(tt.key))
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNew_WritesToLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := &config.Config{}
	cfg.Env.Log.Level = "info"
	cfg.Env.Log.Dir = dir
	cfg.Env.ServiceName = "mangahub"

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)
	logger.Info("hello")

	content, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"service":"mangahub"`)
	assert.Contains(t, string(content), `"msg":"hello"`)
}

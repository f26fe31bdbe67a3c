package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"rateLimit": map[string]any{
			"authMax":        10,
			"passwordWindow": "1h",
		},
		"storage": map[string]any{
			"maxUploadSize": 0,
			"cloudinary": map[string]any{
				"cloudName": "",
				"apiSecret": "",
			},
		},
		"qrcode": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "RATELIMIT_AUTHMAX", want: "rateLimit.authMax"},
		{envKey: "RATELIMIT_PASSWORDWINDOW", want: "rateLimit.passwordWindow"},
		{envKey: "STORAGE_MAXUPLOADSIZE", want: "storage.maxUploadSize"},
		{envKey: "STORAGE_CLOUDINARY_CLOUDNAME", want: "storage.cloudinary.cloudName"},
		{envKey: "QRCODE_BASEURL", want: "qrcode.baseUrl"},
		{envKey: "STORAGE_CLOUDINARY__APISECRET", want: "storage.cloudinary.apiSecret"},
		{envKey: "STORAGE_B2_BUCKET", want: "storage.b2.bucket"},
		{envKey: "READER_THEME", want: "reader.theme"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

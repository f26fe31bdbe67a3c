package qrcode

import (
	"testing"

	"mangahub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, qrCfg *config.QRCodeConfig) *qrcodeService {
	t.Helper()

	svc, err := NewQRCodeService(&config.Config{QRCode: qrCfg})
	require.NoError(t, err)

	return svc.(*qrcodeService)
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: tt.level, BaseURL: "https://manga.example"})
			assert.Equal(t, recoveryLevel(tt.level), svc.level)
			assert.Equal(t, 128, svc.size)
		})
	}
}

func TestQRCodeService_GenerateMangaShareQR(t *testing.T) {
	svc := newService(t, &config.QRCodeConfig{BaseURL: "https://manga.example/"})

	png, err := svc.GenerateMangaShareQR("one-piece")
	require.NoError(t, err)
	require.Greater(t, len(png), 4)

	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeService_GenerateMangaShareQR_InvalidSlug(t *testing.T) {
	svc := newService(t, nil)

	_, err := svc.GenerateMangaShareQR("Not A Slug")
	assert.Error(t, err)
	assert.Equal(t, defaultSize, svc.size)
}

func TestQRCodeService_ParseMangaShareQR(t *testing.T) {
	svc := newService(t, &config.QRCodeConfig{BaseURL: "https://manga.example"})

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{"share link", "https://manga.example/mangas/one-piece", "one-piece", false},
		{"trailing slash", "https://manga.example/mangas/one-piece/", "one-piece", false},
		{"foreign host", "https://evil.example/mangas/one-piece", "", true},
		{"not a manga link", "https://manga.example/users/me", "", true},
		{"empty slug", "https://manga.example/mangas/", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseMangaShareQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

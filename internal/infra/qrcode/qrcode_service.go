// Package qrcode renders share codes for manga pages.
package qrcode

import (
	"net/url"
	"strings"

	"mangahub/config"
	"mangahub/internal/domain/service"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize     = 256
	mangaPathPrefix = "/mangas/"
)

type qrcodeService struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL *url.URL
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	base, err := url.Parse(strings.TrimRight(qrCfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "invalid qrcode base url")
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:    size,
		level:   recoveryLevel(qrCfg.ErrorCorrectionLevel),
		baseURL: base,
	}, nil
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateMangaShareQR renders a PNG QR code pointing at the manga page.
func (s *qrcodeService) GenerateMangaShareQR(mangaSlug string) ([]byte, error) {
	if !slug.IsSlug(mangaSlug) {
		return nil, errors.Errorf("invalid manga slug %q", mangaSlug)
	}

	link := s.baseURL.JoinPath(mangaPathPrefix, mangaSlug)

	png, err := qrcode.Encode(link.String(), s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// ParseMangaShareQR returns the slug encoded in a share link.
func (s *qrcodeService) ParseMangaShareQR(qrData string) (string, error) {
	link, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR code data")
	}

	if s.baseURL.Host != "" && link.Host != s.baseURL.Host {
		return "", errors.Errorf("QR code points to foreign host %q", link.Host)
	}

	idx := strings.LastIndex(link.Path, mangaPathPrefix)
	if idx < 0 {
		return "", errors.New("QR code is not a manga share link")
	}

	mangaSlug := strings.Trim(link.Path[idx+len(mangaPathPrefix):], "/")
	if !slug.IsSlug(mangaSlug) {
		return "", errors.Errorf("invalid manga slug %q", mangaSlug)
	}

	return mangaSlug, nil
}

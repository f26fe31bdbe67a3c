package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateMangaShareQR renders a PNG QR code linking to a manga page.
	GenerateMangaShareQR(slug string) ([]byte, error)

	// ParseMangaShareQR extracts the manga slug from scanned QR code content.
	ParseMangaShareQR(qrData string) (string, error)
}

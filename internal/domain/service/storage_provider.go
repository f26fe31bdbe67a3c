package service

import "context"

// UploadOptions controls how an image is stored.
type UploadOptions struct {
	Folder            string
	Filename          string // Random hex name when empty.
	ContentType       string
	MaxWidth          int // Images larger than MaxWidth x MaxHeight are shrunk to fit; 0 disables.
	MaxHeight         int
	Quality           int // JPEG quality, 80 when zero.
	GenerateThumbnail bool
	ThumbnailWidth    int // 300 when zero.
	ThumbnailHeight   int // 400 when zero.
}

// UploadResult describes a stored image.
type UploadResult struct {
	URL          string  `json:"url"`
	PublicID     string  `json:"publicId"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Format       string  `json:"format"`
	Size         int64   `json:"size"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty"`
}

// StorageProvider stores images with one of the configured object storage vendors.
type StorageProvider interface {
	// Name identifies the backing vendor.
	Name() string
	Upload(ctx context.Context, data []byte, opts UploadOptions) (*UploadResult, error)
	// UploadMany stores every file, suffixing the file names with their 1-based position.
	UploadMany(ctx context.Context, files [][]byte, opts UploadOptions) ([]*UploadResult, error)
	// Delete removes the object and, best effort, its thumbnail.
	Delete(ctx context.Context, publicID string) error
	DeleteMany(ctx context.Context, publicIDs []string) error
	GetURL(publicID string) string
	GetThumbnailURL(publicID string) string
}

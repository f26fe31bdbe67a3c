package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"mangahub/config"
	"mangahub/internal/domain/service"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
)

const (
	cloudinaryDeliveryTransformation = "q_auto,f_auto"
	cloudinaryNotFound               = "not found"
)

// cloudinaryProvider delegates resizing and thumbnails to Cloudinary's server-side transformations.
type cloudinaryProvider struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger *slog.Logger
}

func newCloudinaryProvider(cfg *config.StorageConfig, logger *slog.Logger) (*cloudinaryProvider, error) {
	cld, err := cloudinary.NewFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cloudinary client")
	}
	cld.Config.URL.Secure = true

	return &cloudinaryProvider{
		cld:    cld,
		folder: cfg.Cloudinary.Folder,
		logger: logger,
	}, nil
}

func (p *cloudinaryProvider) Name() string {
	return config.StorageCloudinary
}

func (p *cloudinaryProvider) Upload(ctx context.Context, data []byte, opts service.UploadOptions) (*service.UploadResult, error) {
	params := uploader.UploadParams{
		Folder:       p.folder,
		PublicID:     opts.Filename,
		ResourceType: "auto",
	}
	if opts.Folder != "" {
		params.Folder = opts.Folder
	}
	if opts.MaxWidth > 0 || opts.MaxHeight > 0 {
		params.Transformation = limitTransformation(opts)
	}

	res, err := p.cld.Upload.Upload(ctx, bytes.NewReader(data), params)
	if err != nil {
		return nil, errors.Wrap(err, "cloudinary upload failed")
	}
	if res.Error.Message != "" {
		return nil, errors.Errorf("cloudinary upload failed: %s", res.Error.Message)
	}

	result := &service.UploadResult{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Width:    res.Width,
		Height:   res.Height,
		Format:   res.Format,
		Size:     int64(res.Bytes),
	}

	if opts.GenerateThumbnail {
		thumbnailURL := p.transformedURL(res.PublicID, fillTransformation(opts.ThumbnailWidth, opts.ThumbnailHeight))
		result.ThumbnailURL = &thumbnailURL
	}

	return result, nil
}

func (p *cloudinaryProvider) UploadMany(ctx context.Context, files [][]byte, opts service.UploadOptions) ([]*service.UploadResult, error) {
	return uploadConcurrently(ctx, files, opts, p.Upload)
}

// Delete destroys the asset. Thumbnails are derived on the fly, so there is nothing else to remove.
func (p *cloudinaryProvider) Delete(ctx context.Context, publicID string) error {
	res, err := p.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return errors.Wrapf(err, "failed to delete %s", publicID)
	}
	if res.Error.Message != "" {
		return errors.Errorf("failed to delete %s: %s", publicID, res.Error.Message)
	}
	if res.Result == cloudinaryNotFound {
		p.logger.DebugContext(ctx, "asset already gone", slog.String("public_id", publicID))
	}

	return nil
}

func (p *cloudinaryProvider) DeleteMany(ctx context.Context, publicIDs []string) error {
	for _, id := range publicIDs {
		if err := p.Delete(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

func (p *cloudinaryProvider) GetURL(publicID string) string {
	return p.transformedURL(publicID, cloudinaryDeliveryTransformation)
}

func (p *cloudinaryProvider) GetThumbnailURL(publicID string) string {
	return p.transformedURL(publicID, fillTransformation(0, 0))
}

func (p *cloudinaryProvider) transformedURL(publicID, transformation string) string {
	asset, err := p.cld.Image(publicID)
	if err != nil {
		p.logger.Warn("failed to build asset url", slog.String("public_id", publicID), slog.Any("error", err))

		return ""
	}
	asset.Transformation = transformation

	url, err := asset.String()
	if err != nil {
		p.logger.Warn("failed to build asset url", slog.String("public_id", publicID), slog.Any("error", err))

		return ""
	}

	return url
}

// limitTransformation shrinks uploads larger than the configured box.
func limitTransformation(opts service.UploadOptions) string {
	parts := []string{"c_limit"}
	if opts.MaxWidth > 0 {
		parts = append(parts, fmt.Sprintf("w_%d", opts.MaxWidth))
	}
	if opts.MaxHeight > 0 {
		parts = append(parts, fmt.Sprintf("h_%d", opts.MaxHeight))
	}
	if opts.Quality > 0 {
		parts = append(parts, fmt.Sprintf("q_%d", opts.Quality))
	} else {
		parts = append(parts, "q_auto")
	}

	return strings.Join(parts, ",")
}

func fillTransformation(width, height int) string {
	if width <= 0 {
		width = defaultThumbnailWidth
	}
	if height <= 0 {
		height = defaultThumbnailHeight
	}

	return fmt.Sprintf("c_fill,w_%d,h_%d,%s", width, height, cloudinaryDeliveryTransformation)
}

package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"mangahub/internal/domain/service"
	"mangahub/internal/util"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// uploadConcurrency bounds the number of in-flight uploads of one UploadMany call.
const uploadConcurrency = 4

var errObjectNotFound = errors.New("object not found")

// objectStore is the minimal key/value surface the image pipeline needs from a vendor.
type objectStore interface {
	put(ctx context.Context, key string, data []byte, contentType string) error
	// remove returns errObjectNotFound when nothing is stored under key.
	remove(ctx context.Context, key string) error
	url(key string) string
	close() error
}

// objectProvider processes images locally and writes them to a plain object store.
// Thumbnails are stored as a second object next to the original.
type objectProvider struct {
	name   string
	store  objectStore
	logger *slog.Logger
}

func newObjectProvider(name string, store objectStore, logger *slog.Logger) *objectProvider {
	return &objectProvider{
		name:   name,
		store:  store,
		logger: logger,
	}
}

func (p *objectProvider) Name() string {
	return p.name
}

func (p *objectProvider) Upload(ctx context.Context, data []byte, opts service.UploadOptions) (*service.UploadResult, error) {
	processed, err := processImage(data, opts)
	if err != nil {
		return nil, err
	}

	filename := opts.Filename
	if filename == "" {
		if filename, err = util.RandomHex(16); err != nil {
			return nil, errors.Wrap(err, "failed to generate file name")
		}
	}
	key := path.Join(opts.Folder, filename)

	if err := p.store.put(ctx, key, processed.data, "image/"+processed.format); err != nil {
		return nil, errors.Wrapf(err, "failed to store %s", key)
	}

	result := &service.UploadResult{
		URL:      p.store.url(key),
		PublicID: key,
		Width:    processed.width,
		Height:   processed.height,
		Format:   processed.format,
		Size:     int64(len(processed.data)),
	}

	if opts.GenerateThumbnail {
		thumbnail, err := renderThumbnail(processed.img, opts)
		if err != nil {
			return nil, err
		}

		thumbnailKey := key + thumbnailSuffix
		if err := p.store.put(ctx, thumbnailKey, thumbnail, "image/jpeg"); err != nil {
			return nil, errors.Wrapf(err, "failed to store %s", thumbnailKey)
		}

		thumbnailURL := p.store.url(thumbnailKey)
		result.ThumbnailURL = &thumbnailURL
	}

	p.logger.DebugContext(ctx, "image stored",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(result.Size)),
		slog.Bool("thumbnail", opts.GenerateThumbnail),
	)

	return result, nil
}

func (p *objectProvider) UploadMany(ctx context.Context, files [][]byte, opts service.UploadOptions) ([]*service.UploadResult, error) {
	return uploadConcurrently(ctx, files, opts, p.Upload)
}

func (p *objectProvider) Delete(ctx context.Context, publicID string) error {
	if err := p.store.remove(ctx, publicID); err != nil && !errors.Is(err, errObjectNotFound) {
		return errors.Wrapf(err, "failed to delete %s", publicID)
	}

	if err := p.store.remove(ctx, publicID+thumbnailSuffix); err != nil && !errors.Is(err, errObjectNotFound) {
		p.logger.WarnContext(ctx, "failed to delete thumbnail",
			slog.String("key", publicID+thumbnailSuffix),
			slog.Any("error", err),
		)
	}

	return nil
}

func (p *objectProvider) DeleteMany(ctx context.Context, publicIDs []string) error {
	for _, id := range publicIDs {
		if err := p.Delete(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

func (p *objectProvider) GetURL(publicID string) string {
	return p.store.url(publicID)
}

func (p *objectProvider) GetThumbnailURL(publicID string) string {
	return p.store.url(publicID + thumbnailSuffix)
}

func (p *objectProvider) Close() error {
	return p.store.close()
}

type uploadFunc func(ctx context.Context, data []byte, opts service.UploadOptions) (*service.UploadResult, error)

// uploadConcurrently runs upload for every file with bounded parallelism, keeping the input order.
// A fixed file name is suffixed with the 1-based position of the file.
func uploadConcurrently(ctx context.Context, files [][]byte, opts service.UploadOptions, upload uploadFunc) ([]*service.UploadResult, error) {
	results := make([]*service.UploadResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)

	for i, data := range files {
		fileOpts := opts
		if opts.Filename != "" {
			fileOpts.Filename = fmt.Sprintf("%s-%d", opts.Filename, i+1)
		}

		g.Go(func() error {
			result, err := upload(gctx, data, fileOpts)
			if err != nil {
				return errors.Wrapf(err, "file %d", i+1)
			}
			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

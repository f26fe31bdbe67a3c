package storage

import (
	"bytes"
	"image"

	"mangahub/internal/domain/service"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	// Registers the webp decoder with image.Decode.
	_ "golang.org/x/image/webp"
)

const (
	defaultQuality         = 80
	thumbnailQuality       = 70
	defaultThumbnailWidth  = 300
	defaultThumbnailHeight = 400
	thumbnailSuffix        = "-thumbnail"
)

// processedImage is what ends up in the bucket for the primary object.
type processedImage struct {
	data   []byte
	img    image.Image
	width  int
	height int
	format string
}

// processImage decodes data and, when a maximum size is set, shrinks it to fit inside
// the box and re-encodes it as JPEG. Images are never enlarged.
func processImage(data []byte, opts service.UploadOptions) (*processedImage, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "unsupported image")
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	bounds := img.Bounds()
	out := &processedImage{
		data:   data,
		img:    img,
		width:  bounds.Dx(),
		height: bounds.Dy(),
		format: format,
	}

	if opts.MaxWidth <= 0 && opts.MaxHeight <= 0 {
		return out, nil
	}

	maxWidth, maxHeight := opts.MaxWidth, opts.MaxHeight
	if maxWidth <= 0 {
		maxWidth = out.width
	}
	if maxHeight <= 0 {
		maxHeight = out.height
	}

	resized := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	quality := opts.Quality
	if quality <= 0 {
		quality = defaultQuality
	}

	encoded, err := encodeJPEG(resized, quality)
	if err != nil {
		return nil, err
	}

	resizedBounds := resized.Bounds()
	out.data = encoded
	out.img = resized
	out.width = resizedBounds.Dx()
	out.height = resizedBounds.Dy()
	out.format = "jpeg"

	return out, nil
}

// renderThumbnail crops img to cover the thumbnail box.
func renderThumbnail(img image.Image, opts service.UploadOptions) ([]byte, error) {
	width, height := opts.ThumbnailWidth, opts.ThumbnailHeight
	if width <= 0 {
		width = defaultThumbnailWidth
	}
	if height <= 0 {
		height = defaultThumbnailHeight
	}

	return encodeJPEG(imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos), thumbnailQuality)
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, errors.Wrap(err, "failed to encode jpeg")
	}

	return buf.Bytes(), nil
}

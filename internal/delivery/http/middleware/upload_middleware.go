package middleware

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"mangahub/config"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/usecase"
	"mangahub/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	keyUploads        = "uploads"
	// multipartOverhead covers boundaries, part headers and small form fields.
	multipartOverhead = 1 << 20
)

// UploadMiddleware reads multipart files into memory after checking size and content type.
type UploadMiddleware struct {
	maxSize int64
	allowed []string
}

// NewUploadMiddleware creates the upload middleware from the storage limits.
func NewUploadMiddleware(cfg *config.Config) *UploadMiddleware {
	return &UploadMiddleware{
		maxSize: cfg.Storage.MaxUploadSize,
		allowed: cfg.Storage.AllowedMimes,
	}
}

// Single accepts exactly one file under field.
func (m *UploadMiddleware) Single(field string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limit := m.limitBody(c, 1)

			header, err := c.FormFile(field)
			if err != nil {
				if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
					return domainerrors.ErrNoFileUploaded
				}

				return formError(err, limit)
			}

			upload, err := m.read(header)
			if err != nil {
				return err
			}

			c.Set(keyUploads, []*usecase.FileUpload{upload})

			return next(c)
		}
	}
}

// Multiple accepts up to maxFiles files under field.
func (m *UploadMiddleware) Multiple(field string, maxFiles int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limit := m.limitBody(c, maxFiles)

			form, err := c.MultipartForm()
			if err != nil {
				if errors.Is(err, http.ErrNotMultipart) {
					return domainerrors.ErrNoFileUploaded
				}

				return formError(err, limit)
			}

			headers := form.File[field]
			if len(headers) == 0 {
				return domainerrors.ErrNoFileUploaded
			}
			if len(headers) > maxFiles {
				return domainerrors.NewBadRequestError("Too many files. Maximum: %d", maxFiles)
			}

			uploads := make([]*usecase.FileUpload, 0, len(headers))
			for _, header := range headers {
				upload, err := m.read(header)
				if err != nil {
					return err
				}
				uploads = append(uploads, upload)
			}

			c.Set(keyUploads, uploads)

			return next(c)
		}
	}
}

// limitBody caps the whole request before the form is parsed; the global body limit skips multipart requests.
func (m *UploadMiddleware) limitBody(c echo.Context, maxFiles int) int64 {
	limit := m.maxSize*int64(maxFiles) + multipartOverhead
	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response(), req.Body, limit)

	return limit
}

func formError(err error, limit int64) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return domainerrors.NewAppError(http.StatusRequestEntityTooLarge,
			"Upload too large. Maximum request size: "+util.FormatBytes(limit))
	}

	return errors.Wrap(err, "failed to read multipart form")
}

func (m *UploadMiddleware) read(header *multipart.FileHeader) (*usecase.FileUpload, error) {
	if header.Size > m.maxSize {
		return nil, m.tooLarge()
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, m.maxSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded file")
	}
	if int64(len(data)) > m.maxSize {
		return nil, m.tooLarge()
	}

	// Trust the bytes, not the client supplied Content-Type.
	detected := mimetype.Detect(data)
	if !mimetype.EqualsAny(detected.String(), m.allowed...) {
		return nil, domainerrors.NewBadRequestError("Invalid file type. Allowed: %s", strings.Join(m.allowed, ", "))
	}

	return &usecase.FileUpload{
		Filename:    header.Filename,
		ContentType: detected.String(),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

func (m *UploadMiddleware) tooLarge() error {
	return domainerrors.NewBadRequestError("File too large. Maximum size: %s", util.FormatBytes(m.maxSize))
}

// Uploads returns the files stored by Single or Multiple.
func Uploads(c echo.Context) []*usecase.FileUpload {
	uploads, _ := c.Get(keyUploads).([]*usecase.FileUpload)

	return uploads
}

// Upload returns the first stored file, or nil.
func Upload(c echo.Context) *usecase.FileUpload {
	uploads := Uploads(c)
	if len(uploads) == 0 {
		return nil
	}

	return uploads[0]
}

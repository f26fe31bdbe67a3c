package middleware

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"mangahub/config"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/usecase"
	"mangahub/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type formFile struct {
	field, name string
	data        []byte
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func multipartContext(t *testing.T, files ...formFile) echo.Context {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func newTestUploadMiddleware(maxSize int64) *UploadMiddleware {
	cfg := &config.Config{Storage: &config.StorageConfig{
		MaxUploadSize: maxSize,
		AllowedMimes:  []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
	}}

	return NewUploadMiddleware(cfg)
}

func collect(out *[]*usecase.FileUpload) echo.HandlerFunc {
	return func(c echo.Context) error {
		*out = Uploads(c)

		return nil
	}
}

func TestUploadMiddleware_Single(t *testing.T) {
	data := pngBytes(t)

	t.Run("sniffs the content type", func(t *testing.T) {
		var uploads []*usecase.FileUpload
		c := multipartContext(t, formFile{field: "file", name: "cover.jpg", data: data})

		err := newTestUploadMiddleware(10<<20).Single("file")(collect(&uploads))(c)

		require.NoError(t, err)
		require.Len(t, uploads, 1)
		assert.Equal(t, "cover.jpg", uploads[0].Filename)
		assert.Equal(t, "image/png", uploads[0].ContentType)
		assert.Equal(t, int64(len(data)), uploads[0].Size)
		assert.Same(t, uploads[0], Upload(c))
	})

	t.Run("rejects other types", func(t *testing.T) {
		c := multipartContext(t, formFile{field: "file", name: "notes.png", data: []byte("just some text")})

		err := newTestUploadMiddleware(10<<20).Single("file")(collect(new([]*usecase.FileUpload)))(c)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		assert.Equal(t, "Invalid file type. Allowed: image/jpeg, image/png, image/webp, image/gif", appErr.Message())
	})

	t.Run("rejects large files", func(t *testing.T) {
		c := multipartContext(t, formFile{field: "file", name: "big.png", data: data})

		err := newTestUploadMiddleware(16).Single("file")(collect(new([]*usecase.FileUpload)))(c)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "File too large. Maximum size: 16B", appErr.Message())
	})

	t.Run("missing file", func(t *testing.T) {
		c := multipartContext(t, formFile{field: "other", name: "cover.png", data: data})

		err := newTestUploadMiddleware(10<<20).Single("file")(collect(new([]*usecase.FileUpload)))(c)

		assert.ErrorIs(t, err, domainerrors.ErrNoFileUploaded)
	})

	t.Run("not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader([]byte(`{}`)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := echo.New().NewContext(req, httptest.NewRecorder())

		err := newTestUploadMiddleware(10<<20).Single("file")(collect(new([]*usecase.FileUpload)))(c)

		assert.ErrorIs(t, err, domainerrors.ErrNoFileUploaded)
	})
}

func TestUploadMiddleware_Multiple(t *testing.T) {
	data := pngBytes(t)

	t.Run("keeps form order", func(t *testing.T) {
		var uploads []*usecase.FileUpload
		c := multipartContext(t,
			formFile{field: "files", name: "01.png", data: data},
			formFile{field: "files", name: "02.png", data: data},
		)

		err := newTestUploadMiddleware(10<<20).Multiple("files", 5)(collect(&uploads))(c)

		require.NoError(t, err)
		require.Len(t, uploads, 2)
		assert.Equal(t, "01.png", uploads[0].Filename)
		assert.Equal(t, "02.png", uploads[1].Filename)
	})

	t.Run("too many files", func(t *testing.T) {
		c := multipartContext(t,
			formFile{field: "files", name: "01.png", data: data},
			formFile{field: "files", name: "02.png", data: data},
		)

		err := newTestUploadMiddleware(10<<20).Multiple("files", 1)(collect(new([]*usecase.FileUpload)))(c)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Too many files. Maximum: 1", appErr.Message())
	})

	t.Run("one bad file fails the request", func(t *testing.T) {
		c := multipartContext(t,
			formFile{field: "files", name: "01.png", data: data},
			formFile{field: "files", name: "02.txt", data: []byte("plain text")},
		)

		err := newTestUploadMiddleware(10<<20).Multiple("files", 5)(collect(new([]*usecase.FileUpload)))(c)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	})
}

func TestUploadMiddleware_CapsRequestBody(t *testing.T) {
	// The body exceeds maxSize*maxFiles plus overhead, so parsing stops before any per-file check.
	padding := bytes.Repeat([]byte{0}, multipartOverhead)
	data := append(pngBytes(t), padding...)

	t.Run("multiple", func(t *testing.T) {
		c := multipartContext(t,
			formFile{field: "files", name: "01.png", data: data},
			formFile{field: "files", name: "02.png", data: data},
		)

		err := newTestUploadMiddleware(16).Multiple("files", 1)(collect(new([]*usecase.FileUpload)))(c)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusRequestEntityTooLarge, appErr.HTTPCode())
	})

	t.Run("single", func(t *testing.T) {
		c := multipartContext(t, formFile{field: "file", name: "big.png", data: data})

		err := newTestUploadMiddleware(16).Single("file")(collect(new([]*usecase.FileUpload)))(c)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusRequestEntityTooLarge, appErr.HTTPCode())
		assert.Equal(t, "Upload too large. Maximum request size: "+util.FormatBytes(16+multipartOverhead), appErr.Message())
	})
}

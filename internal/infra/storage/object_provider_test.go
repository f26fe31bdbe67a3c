package storage

import (
	"bytes"
	"context"
	"image/color"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"mangahub/config"
	"mangahub/internal/domain/service"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newTestProvider(t *testing.T) (*objectProvider, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	provider := newObjectProvider(config.StorageMemory, newBlobStore(bucket, "https://cdn.example.com/"), logger)
	t.Cleanup(func() { _ = provider.Close() })

	return provider, bucket
}

func pngImage(t *testing.T, width, height int) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := imaging.New(width, height, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))

	return buf.Bytes()
}

func TestObjectProvider_Upload_WithThumbnail(t *testing.T) {
	provider, bucket := newTestProvider(t)
	ctx := context.Background()

	result, err := provider.Upload(ctx, pngImage(t, 640, 480), service.UploadOptions{
		Folder:            "mangas/abc",
		Filename:          "cover",
		GenerateThumbnail: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "mangas/abc/cover", result.PublicID)
	assert.Equal(t, "https://cdn.example.com/mangas/abc/cover", result.URL)
	assert.Equal(t, 640, result.Width)
	assert.Equal(t, 480, result.Height)
	assert.Equal(t, "png", result.Format)
	require.NotNil(t, result.ThumbnailURL)
	assert.Equal(t, "https://cdn.example.com/mangas/abc/cover-thumbnail", *result.ThumbnailURL)

	for _, key := range []string{"mangas/abc/cover", "mangas/abc/cover-thumbnail"} {
		exists, err := bucket.Exists(ctx, key)
		require.NoError(t, err)
		assert.True(t, exists, key)
	}

	thumbnail, err := bucket.ReadAll(ctx, "mangas/abc/cover-thumbnail")
	require.NoError(t, err)
	decoded, err := imaging.Decode(bytes.NewReader(thumbnail))
	require.NoError(t, err)
	assert.Equal(t, defaultThumbnailWidth, decoded.Bounds().Dx())
	assert.Equal(t, defaultThumbnailHeight, decoded.Bounds().Dy())
}

func TestObjectProvider_Upload_Resize(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		opts       service.UploadOptions
		wantWidth  int
		wantHeight int
		wantFormat string
	}{
		{
			name:       "shrinks to fit inside the box",
			width:      1000,
			height:     500,
			opts:       service.UploadOptions{MaxWidth: 200, MaxHeight: 200},
			wantWidth:  200,
			wantHeight: 100,
			wantFormat: "jpeg",
		},
		{
			name:       "never enlarges",
			width:      100,
			height:     50,
			opts:       service.UploadOptions{MaxWidth: 800, MaxHeight: 800},
			wantWidth:  100,
			wantHeight: 50,
			wantFormat: "jpeg",
		},
		{
			name:       "width only",
			width:      400,
			height:     800,
			opts:       service.UploadOptions{MaxWidth: 100},
			wantWidth:  100,
			wantHeight: 200,
			wantFormat: "jpeg",
		},
		{
			name:       "no limits keeps the original",
			width:      30,
			height:     20,
			wantWidth:  30,
			wantHeight: 20,
			wantFormat: "png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, _ := newTestProvider(t)

			result, err := provider.Upload(context.Background(), pngImage(t, tt.width, tt.height), tt.opts)
			require.NoError(t, err)

			assert.Equal(t, tt.wantWidth, result.Width)
			assert.Equal(t, tt.wantHeight, result.Height)
			assert.Equal(t, tt.wantFormat, result.Format)
			assert.Nil(t, result.ThumbnailURL)
		})
	}
}

func TestObjectProvider_Upload_RandomName(t *testing.T) {
	provider, _ := newTestProvider(t)

	result, err := provider.Upload(context.Background(), pngImage(t, 10, 10), service.UploadOptions{Folder: "users/1"})
	require.NoError(t, err)

	name := strings.TrimPrefix(result.PublicID, "users/1/")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), name)
}

func TestObjectProvider_Upload_RejectsNonImage(t *testing.T) {
	provider, _ := newTestProvider(t)

	_, err := provider.Upload(context.Background(), []byte("not an image"), service.UploadOptions{})
	assert.Error(t, err)
}

func TestObjectProvider_UploadMany_KeepsOrderAndSuffixes(t *testing.T) {
	provider, bucket := newTestProvider(t)
	ctx := context.Background()

	files := [][]byte{pngImage(t, 10, 10), pngImage(t, 20, 10), pngImage(t, 30, 10), pngImage(t, 40, 10), pngImage(t, 50, 10)}

	results, err := provider.UploadMany(ctx, files, service.UploadOptions{Folder: "chapters/x", Filename: "page"})
	require.NoError(t, err)
	require.Len(t, results, len(files))

	for i, result := range results {
		assert.Equal(t, "chapters/x/page-"+string(rune('1'+i)), result.PublicID)
		assert.Equal(t, (i+1)*10, result.Width)

		exists, err := bucket.Exists(ctx, result.PublicID)
		require.NoError(t, err)
		assert.True(t, exists)
	}
}

func TestObjectProvider_UploadMany_FailsOnBadFile(t *testing.T) {
	provider, _ := newTestProvider(t)

	_, err := provider.UploadMany(context.Background(), [][]byte{pngImage(t, 10, 10), []byte("junk")}, service.UploadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file 2")
}

func TestObjectProvider_Delete(t *testing.T) {
	provider, bucket := newTestProvider(t)
	ctx := context.Background()

	withThumb, err := provider.Upload(ctx, pngImage(t, 10, 10), service.UploadOptions{Filename: "a", GenerateThumbnail: true})
	require.NoError(t, err)
	withoutThumb, err := provider.Upload(ctx, pngImage(t, 10, 10), service.UploadOptions{Filename: "b"})
	require.NoError(t, err)

	require.NoError(t, provider.Delete(ctx, withoutThumb.PublicID), "missing thumbnail is ignored")
	require.NoError(t, provider.DeleteMany(ctx, []string{withThumb.PublicID}))

	for _, key := range []string{"a", "a-thumbnail", "b"} {
		exists, err := bucket.Exists(ctx, key)
		require.NoError(t, err)
		assert.False(t, exists, key)
	}

	assert.NoError(t, provider.Delete(ctx, "never-uploaded"))
}

func TestObjectProvider_URLs(t *testing.T) {
	provider, _ := newTestProvider(t)

	assert.Equal(t, "https://cdn.example.com/mangas/1/cover", provider.GetURL("mangas/1/cover"))
	assert.Equal(t, "https://cdn.example.com/mangas/1/cover-thumbnail", provider.GetThumbnailURL("mangas/1/cover"))
	assert.Equal(t, config.StorageMemory, provider.Name())
}

func TestCloudinaryTransformations(t *testing.T) {
	assert.Equal(t, "c_limit,w_1200,q_auto", limitTransformation(service.UploadOptions{MaxWidth: 1200}))
	assert.Equal(t, "c_limit,w_800,h_600,q_90", limitTransformation(service.UploadOptions{MaxWidth: 800, MaxHeight: 600, Quality: 90}))
	assert.Equal(t, "c_fill,w_300,h_400,q_auto,f_auto", fillTransformation(0, 0))
	assert.Equal(t, "c_fill,w_150,h_200,q_auto,f_auto", fillTransformation(150, 200))
}

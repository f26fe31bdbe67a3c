package storage

import (
	"context"
	"fmt"
	"strings"

	"mangahub/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const (
	cacheControl      = "public, max-age=31536000"
	defaultFileURL    = "/uploads"
	defaultMemoryURL  = "memory://uploads"
	backblazeFilePath = "/file/"
)

// blobStore writes objects through a portable gocloud bucket.
type blobStore struct {
	bucket  *blob.Bucket
	baseURL string
}

func newBlobStore(bucket *blob.Bucket, baseURL string) *blobStore {
	return &blobStore{
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *blobStore) put(ctx context.Context, key string, data []byte, contentType string) error {
	return s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: cacheControl,
	})
}

func (s *blobStore) remove(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return errObjectNotFound
	}

	return err
}

func (s *blobStore) url(key string) string {
	return s.baseURL + "/" + key
}

func (s *blobStore) close() error {
	return s.bucket.Close()
}

// openBucket opens the bucket of a blob-backed provider and returns the public base URL of its objects.
func openBucket(ctx context.Context, cfg *config.StorageConfig) (*blob.Bucket, string, error) {
	switch cfg.Provider {
	case config.StorageS3:
		client := newS3Client(cfg.S3.Region, cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, "")
		bucket, err := s3blob.OpenBucket(ctx, client, cfg.S3.Bucket, nil)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to open s3 bucket")
		}

		return bucket, fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3.Bucket, cfg.S3.Region), nil

	case config.StorageBackblaze:
		region := cfg.Backblaze.Region
		if region == "" {
			region = cfg.S3.Region
		}
		client := newS3Client(region, cfg.Backblaze.KeyID, cfg.Backblaze.AppKey, cfg.Backblaze.Endpoint)
		bucket, err := s3blob.OpenBucket(ctx, client, cfg.Backblaze.BucketName, nil)
		if err != nil {
			return nil, "", errors.Wrap(err, "failed to open backblaze bucket")
		}

		downloadURL := cfg.Backblaze.DownloadURL
		if downloadURL == "" {
			downloadURL = cfg.Backblaze.Endpoint
		}

		return bucket, strings.TrimRight(downloadURL, "/") + backblazeFilePath + cfg.Backblaze.BucketName, nil

	case config.StorageFile:
		bucket, err := fileblob.OpenBucket(cfg.File.Dir, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, "", errors.Wrapf(err, "failed to open directory %s", cfg.File.Dir)
		}

		baseURL := cfg.File.BaseURL
		if baseURL == "" {
			baseURL = defaultFileURL
		}

		return bucket, baseURL, nil

	case config.StorageMemory:
		return memblob.OpenBucket(nil), defaultMemoryURL, nil

	default:
		return nil, "", errors.Errorf("provider %s is not blob based", cfg.Provider)
	}
}

// newS3Client builds a client with static credentials. A non-empty endpoint targets an
// S3-compatible service such as Backblaze B2 with path-style addressing.
func newS3Client(region, accessKeyID, secretAccessKey, endpoint string) *s3.Client {
	return s3.New(s3.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
	}, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

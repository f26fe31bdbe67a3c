package storage

import (
	"bytes"
	"context"
	"strings"

	supabase "github.com/supabase-community/storage-go"
)

// supabaseStore writes objects to a public Supabase Storage bucket.
type supabaseStore struct {
	client     *supabase.Client
	bucket     string
	publicBase string
}

func newSupabaseStore(projectURL, key, bucket string) *supabaseStore {
	projectURL = strings.TrimRight(projectURL, "/")

	return &supabaseStore{
		client:     supabase.NewClient(projectURL+"/storage/v1", key, nil),
		bucket:     bucket,
		publicBase: projectURL + "/storage/v1/object/public/" + bucket,
	}
}

func (s *supabaseStore) put(_ context.Context, key string, data []byte, contentType string) error {
	upsert := true
	_, err := s.client.UploadFile(s.bucket, key, bytes.NewReader(data), supabase.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})

	return err
}

// remove succeeds for missing keys; the storage API reports only the objects it deleted.
func (s *supabaseStore) remove(_ context.Context, key string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{key})

	return err
}

func (s *supabaseStore) url(key string) string {
	return s.publicBase + "/" + key
}

func (s *supabaseStore) close() error {
	return nil
}

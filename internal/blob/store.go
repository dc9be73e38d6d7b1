package blob

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// Store keeps product images in a gocloud bucket. BaseURL is the public
// prefix the stored keys are served under.
type Store struct {
	Bucket  *blob.Bucket
	BaseURL string
}

func Open(ctx context.Context, bucketURL, baseURL string) (*Store, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("blob: open bucket: %w", err)
	}
	return &Store{
		Bucket:  bucket,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Store writes the blob under key and returns its public URL.
func (s *Store) Store(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	w, err := s.Bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("blob: new writer: %w", err)
	}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("blob: write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("blob: close writer: %w", err)
	}
	return s.BaseURL + "/" + key, nil
}

// Delete removes the blob under key. Returns false without an error when the
// blob does not exist.
func (s *Store) Delete(ctx context.Context, key string) (bool, error) {
	exists, err := s.Bucket.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("blob: exists: %w", err)
	}
	if !exists {
		return false, nil
	}
	if err := s.Bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("blob: delete: %w", err)
	}
	return true, nil
}

func (s *Store) Close() error {
	return s.Bucket.Close()
}

// KeyFromURL maps a public URL produced by Store back to its bucket key.
func (s *Store) KeyFromURL(url string) string {
	return strings.TrimPrefix(url, s.BaseURL+"/")
}

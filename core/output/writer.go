package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"json-cooker/core/storage"

	"github.com/minio/minio-go/v7"
)

// Writer persists a named artifact.
type Writer interface {
	Write(ctx context.Context, name string, value any) error
}

// FileWriter writes artifacts to <dir>/<name>.json.
type FileWriter struct {
	dir string
}

// NewFileWriter creates a writer rooted at dir.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

// Path returns the file an artifact name is written to.
func (w *FileWriter) Path(name string) string {
	return filepath.Join(w.dir, filepath.FromSlash(name)+".json")
}

// Write encodes value and replaces the artifact file. The bytes go to a
// temporary file in the same directory first, so readers never observe a
// partially written artifact.
func (w *FileWriter) Write(ctx context.Context, name string, value any) error {
	if err := validName(name); err != nil {
		return err
	}
	data, err := Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	target := w.Path(name)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

// BucketWriter mirrors artifacts to an object storage bucket.
type BucketWriter struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketWriter creates a writer storing objects as <prefix>/<name>.json in bucket.
func NewBucketWriter(client storage.Client, bucket, prefix string) *BucketWriter {
	return &BucketWriter{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// Key returns the object key an artifact name is stored under.
func (w *BucketWriter) Key(name string) string {
	return path.Join(w.prefix, name+".json")
}

// EnsureBucket creates the target bucket when it does not exist yet.
func (w *BucketWriter) EnsureBucket(ctx context.Context) error {
	exists, err := w.client.BucketExists(ctx, w.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := w.client.MakeBucket(ctx, w.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", w.bucket, err)
	}
	return nil
}

// Write uploads the encoded artifact, replacing any previous object.
func (w *BucketWriter) Write(ctx context.Context, name string, value any) error {
	if err := validName(name); err != nil {
		return err
	}
	data, err := Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	_, err = w.client.PutObject(ctx, w.bucket, w.Key(name), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return nil
}

// MultiWriter writes every artifact to all of its writers.
type MultiWriter []Writer

// Write calls every writer, even after a failure, and joins their errors.
func (m MultiWriter) Write(ctx context.Context, name string, value any) error {
	var errs []error
	for _, w := range m {
		if err := w.Write(ctx, name, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func validName(name string) error {
	clean := path.Clean(name)
	if name == "" || clean != name || strings.HasPrefix(clean, "../") || clean == ".." || path.IsAbs(clean) {
		return fmt.Errorf("invalid artifact name %q", name)
	}
	return nil
}

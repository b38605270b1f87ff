// Package storage provides the object storage client used to mirror cooked
// artifacts to an S3 compatible bucket.
//
// It wraps the MinIO Go client behind a small Client interface so the mirror
// writer can be tested with the mock in core/storage/mocks. Both AWS S3 and
// self-hosted MinIO instances are supported.
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the bucket on first use.
//   - PutObject: Uploads one artifact.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage

// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the summary reporter can keep its rendered
// artifact in AWS S3 or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: ensure the artifact bucket exists.
//   - PutObject: uploads content (with size and options).
//   - StatObject: checks an object without downloading it.
//   - GetObject: retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "countries")
package storage

// Package blobstore provides storage abstraction for literal lists and reports.
//
// A Store reads blobs of newline-separated literals and writes reports
// back. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, read through mmap
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 with range reads and managed uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Compression
//
// Blob names ending in ".zst" or ".lz4" are transparently decompressed by
// ReadLiterals and compressed by PutBlob.
//
// # URIs
//
// ParseURI splits "s3://bucket/key", "minio://bucket/key" and plain paths
// into a scheme, a bucket and a key so callers can pick a Store.
package blobstore

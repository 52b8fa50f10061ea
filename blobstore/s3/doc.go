// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "literals/")
//
//	lits, err := blobstore.ReadLiterals(ctx, store, "batch-001.txt.zst")
//
// # Features
//
//   - Range reads, so large blobs are fetched in bounded chunks
//   - Managed (multipart) uploads with CRC32C checksums for reports
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3

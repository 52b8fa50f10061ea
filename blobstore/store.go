package blobstore

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/hupe1980/numlit/internal/mmap"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrNegativeOffset is returned by Blob.ReadAt for offsets below zero.
var ErrNegativeOffset = mmap.ErrNegativeOffset

// Store is an abstraction for reading and writing named blobs.
type Store interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Put writes a blob atomically, replacing any existing blob.
	Put(ctx context.Context, name string, data []byte) error
	// List returns the sorted names of all blobs starting with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	// ReadAt reads len(p) bytes at off. It returns io.EOF when the blob
	// ends before len(p) bytes, and ErrNegativeOffset for off < 0.
	// A blob that ends before its Size reports io.ErrUnexpectedEOF.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Mappable is an optional interface for Blobs that support memory mapping.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	// This is a zero-copy operation if supported.
	Bytes() ([]byte, error)
}

// ReadAll returns the whole content of b.
//
// For a Mappable blob the result aliases the mapping and is valid only
// until b is closed.
func ReadAll(ctx context.Context, b Blob) ([]byte, error) {
	if m, ok := b.(Mappable); ok {
		return m.Bytes()
	}

	buf := make([]byte, b.Size())
	var off int
	for off < len(buf) {
		n, err := b.ReadAt(ctx, buf[off:], int64(off))
		off += n
		if errors.Is(err, io.EOF) {
			if off < len(buf) {
				// The blob is shorter than its Size.
				return nil, io.ErrUnexpectedEOF
			}
			break
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, io.ErrNoProgress
		}
	}
	return buf[:off], nil
}

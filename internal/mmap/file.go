package mmap

import (
	"errors"
	"io"
	"math"
	"os"
	"sync"
)

var (
	// ErrClosed is returned by reads on a closed File.
	ErrClosed = errors.New("mmap: file closed")
	// ErrTooLarge is returned when the file does not fit the address space.
	ErrTooLarge = errors.New("mmap: file too large")
	// ErrNegativeOffset is returned by ReadAt for offsets below zero.
	ErrNegativeOffset = errors.New("mmap: negative offset")
)

// File is a read-only view of a whole file.
type File struct {
	mu      sync.RWMutex
	size    int
	data    []byte
	release func() error
	closed  bool
}

var _ io.ReaderAt = (*File)(nil)

// Open maps the file at path.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return OpenFile(f)
}

// OpenFile maps f. The view stays valid after f is closed.
func OpenFile(f *os.File) (*File, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() > math.MaxInt {
		return nil, ErrTooLarge
	}

	// Zero-length mappings are rejected by the OS.
	if fi.Size() == 0 {
		return &File{}, nil
	}

	data, release, err := mapSequential(f, int(fi.Size()))
	if err != nil {
		return nil, err
	}
	return &File{size: len(data), data: data, release: release}, nil
}

// Len is the file size in bytes. It stays valid after Close.
func (f *File) Len() int {
	return f.size
}

// Bytes returns the mapped content.
func (f *File) Bytes() ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return nil, ErrClosed
	}
	return f.data, nil
}

// ReadAt copies from the file at off. It returns io.EOF when fewer than
// len(p) bytes remain, including offsets at or past the end.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	switch {
	case f.closed:
		return 0, ErrClosed
	case off < 0:
		return 0, ErrNegativeOffset
	case off >= int64(len(f.data)):
		return 0, io.EOF
	}

	n := copy(p, f.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Close releases the mapping. Further calls are no-ops.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true

	if f.release == nil {
		return nil
	}
	err := f.release()
	f.data = nil
	return err
}

package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("1\n2\n")
	require.NoError(t, store.Put(ctx, "b/x.txt", data))
	require.NoError(t, store.Put(ctx, "a.txt", []byte("3")))

	// Mutating the input after Put has no effect.
	data[0] = 'X'

	blob, err := store.Open(ctx, "b/x.txt")
	require.NoError(t, err)
	defer blob.Close()

	got, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", string(got))

	n, err := blob.ReadAt(ctx, make([]byte, 8), 2)
	assert.Equal(t, 2, n)
	assert.Equal(t, io.EOF, err)

	_, err = blob.ReadAt(ctx, make([]byte, 1), -1)
	assert.ErrorIs(t, err, ErrNegativeOffset)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b/x.txt"}, names)

	names, err = store.List(ctx, "b/")
	require.NoError(t, err)
	assert.Equal(t, []string{"b/x.txt"}, names)

	require.NoError(t, store.Delete(ctx, "a.txt"))
	_, err = store.Open(ctx, "a.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

type chunkedBlob struct {
	data  []byte
	chunk int
}

func (b *chunkedBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	if off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p[:min(len(p), b.chunk)], b.data[off:])
	return n, nil
}

func (b *chunkedBlob) Close() error { return nil }
func (b *chunkedBlob) Size() int64  { return int64(len(b.data)) }

func TestReadAllShortReads(t *testing.T) {
	b := &chunkedBlob{data: []byte("0123456789abcdef"), chunk: 3}

	got, err := ReadAll(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", string(got))
}

// shrunkBlob claims more bytes than it holds.
type shrunkBlob struct {
	chunkedBlob
	size int64
}

func (b *shrunkBlob) Size() int64 { return b.size }

func TestReadAllTruncated(t *testing.T) {
	b := &shrunkBlob{chunkedBlob: chunkedBlob{data: []byte("1\n12"), chunk: 2}, size: 7}

	_, err := ReadAll(context.Background(), b)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

package blobstore

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressionFor(t *testing.T) {
	tests := map[string]Compression{
		"a.txt":         CompressionNone,
		"a.txt.zst":     CompressionZSTD,
		"dir/a.zstd":    CompressionZSTD,
		"a.lz4":         CompressionLZ4,
		"report.json":   CompressionNone,
		"lz4/plain.txt": CompressionNone,
	}
	for name, want := range tests {
		assert.Equal(t, want, CompressionFor(name), name)
	}

	assert.Equal(t, ".zst", CompressionZSTD.String())
	assert.Equal(t, ".lz4", CompressionLZ4.String())
	assert.Equal(t, "none", CompressionNone.String())
}

func TestCompressRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("0x_dead_beef\n-12345\n"), 500)

	for _, c := range []Compression{CompressionNone, CompressionZSTD, CompressionLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			enc, err := Compress(c, data)
			require.NoError(t, err)
			if c != CompressionNone {
				assert.Less(t, len(enc), len(data))
			}

			dec, err := Decompress(c, enc)
			require.NoError(t, err)
			assert.Equal(t, data, dec)
		})
	}
}

func TestDecompressCorrupt(t *testing.T) {
	_, err := Decompress(CompressionZSTD, []byte("not zstd"))
	assert.Error(t, err)

	_, err = Decompress(CompressionLZ4, []byte("not lz4"))
	assert.Error(t, err)

	_, err = Decompress(Compression(99), nil)
	assert.Error(t, err)
	_, err = Compress(Compression(99), nil)
	assert.Error(t, err)
}

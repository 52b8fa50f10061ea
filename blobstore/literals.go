package blobstore

import (
	"bytes"
	"context"
	"fmt"
)

// ReadLiterals reads the named blob from s and splits it into literals.
// Blobs named *.zst or *.lz4 are decompressed first.
func ReadLiterals(ctx context.Context, s Store, name string) ([]string, error) {
	b, err := s.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("blobstore: open %s: %w", name, err)
	}
	defer b.Close()

	return ReadBlobLiterals(ctx, b, name)
}

// ReadBlobLiterals is ReadLiterals on an open blob. name only selects the
// compression. b stays open.
func ReadBlobLiterals(ctx context.Context, b Blob, name string) ([]string, error) {
	data, err := ReadAll(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("blobstore: read %s: %w", name, err)
	}

	data, err = Decompress(CompressionFor(name), data)
	if err != nil {
		return nil, fmt.Errorf("blobstore: decode %s: %w", name, err)
	}

	// SplitLiterals copies, so data may alias a mapping.
	return SplitLiterals(data), nil
}

// SplitLiterals splits data into one literal per line.
//
// Surrounding spaces, tabs and carriage returns are trimmed. Blank lines
// and lines starting with '#' are skipped. Everything else, including
// text that is not a valid literal, is returned for the parser to judge.
func SplitLiterals(data []byte) []string {
	var out []string
	for len(data) > 0 {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}

		line = bytes.Trim(line, " \t\r")
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		out = append(out, string(line))
	}
	return out
}

// PutBlob writes data to s under name, compressing it according to the
// extension of name.
func PutBlob(ctx context.Context, s Store, name string, data []byte) error {
	enc, err := Compress(CompressionFor(name), data)
	if err != nil {
		return fmt.Errorf("blobstore: encode %s: %w", name, err)
	}
	if err := s.Put(ctx, name, enc); err != nil {
		return fmt.Errorf("blobstore: put %s: %w", name, err)
	}
	return nil
}

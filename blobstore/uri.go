package blobstore

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Scheme identifies the backend a URI refers to.
type Scheme string

// Supported schemes.
const (
	SchemeLocal Scheme = "file"
	SchemeS3    Scheme = "s3"
	SchemeMinIO Scheme = "minio"
)

// URI is a parsed blob location.
//
// For SchemeLocal, Bucket is the directory of the file and Key its base
// name, so NewLocalStore(Bucket) opens it as Key.
type URI struct {
	Scheme Scheme
	Bucket string
	Key    string
}

// String renders u back into URI form.
func (u URI) String() string {
	if u.Scheme == SchemeLocal {
		return filepath.Join(u.Bucket, u.Key)
	}
	return string(u.Scheme) + "://" + u.Bucket + "/" + u.Key
}

// ParseURI parses "s3://bucket/key", "minio://bucket/key", "file://path"
// or a plain file system path.
func ParseURI(raw string) (URI, error) {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok {
		return localURI(raw)
	}

	switch Scheme(scheme) {
	case SchemeLocal:
		return localURI(rest)
	case SchemeS3, SchemeMinIO:
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" {
			return URI{}, fmt.Errorf("blobstore: missing bucket in %q", raw)
		}
		key = strings.TrimPrefix(path.Clean("/"+key), "/")
		if key == "" {
			return URI{}, fmt.Errorf("blobstore: missing key in %q", raw)
		}
		return URI{Scheme: Scheme(scheme), Bucket: bucket, Key: key}, nil
	default:
		return URI{}, fmt.Errorf("blobstore: unsupported scheme %q", scheme)
	}
}

func localURI(p string) (URI, error) {
	if p == "" {
		return URI{}, fmt.Errorf("blobstore: empty path")
	}
	dir, file := filepath.Split(filepath.Clean(p))
	if file == "" {
		return URI{}, fmt.Errorf("blobstore: %q names a directory", p)
	}
	if dir == "" {
		dir = "."
	}
	return URI{Scheme: SchemeLocal, Bucket: dir, Key: file}, nil
}

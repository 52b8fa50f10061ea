package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/numlit/blobstore"
	minioblob "github.com/hupe1980/numlit/blobstore/minio"
	s3blob "github.com/hupe1980/numlit/blobstore/s3"
	"github.com/hupe1980/numlit/config"
	"github.com/hupe1980/numlit/scan"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// stores resolves URIs to blob stores. Cloud clients are created on first
// use and shared by every bucket.
type stores struct {
	cfg config.Config

	mu          sync.Mutex
	s3Client    *s3.Client
	minioClient *minio.Client
}

func newStores(cfg config.Config) *stores {
	return &stores{cfg: cfg}
}

func (s *stores) open(ctx context.Context, u blobstore.URI) (blobstore.Store, error) {
	switch u.Scheme {
	case blobstore.SchemeLocal:
		return blobstore.NewLocalStore(u.Bucket), nil
	case blobstore.SchemeS3:
		client, err := s.s3Conn(ctx)
		if err != nil {
			return nil, err
		}
		return s3blob.NewStore(client, u.Bucket, ""), nil
	case blobstore.SchemeMinIO:
		client, err := s.minioConn()
		if err != nil {
			return nil, err
		}
		return minioblob.NewStore(client, u.Bucket, ""), nil
	default:
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
}

func (s *stores) targets(ctx context.Context, uris []string) ([]scan.Target, error) {
	targets := make([]scan.Target, 0, len(uris))
	for _, raw := range uris {
		u, err := blobstore.ParseURI(raw)
		if err != nil {
			return nil, err
		}
		store, err := s.open(ctx, u)
		if err != nil {
			return nil, err
		}
		targets = append(targets, scan.Target{Store: store, Name: u.Key, Source: raw})
	}
	return targets, nil
}

func (s *stores) put(ctx context.Context, raw string, data []byte) error {
	u, err := blobstore.ParseURI(raw)
	if err != nil {
		return err
	}
	store, err := s.open(ctx, u)
	if err != nil {
		return err
	}
	return blobstore.PutBlob(ctx, store, u.Key, data)
}

func (s *stores) s3Conn(ctx context.Context) (*s3.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.s3Client != nil {
		return s.s3Client, nil
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if s.cfg.S3.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(s.cfg.S3.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	s.s3Client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if s.cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.S3.Endpoint)
		}
		o.UsePathStyle = s.cfg.S3.UsePathStyle
	})
	return s.s3Client, nil
}

func (s *stores) minioConn() (*minio.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.minioClient != nil {
		return s.minioClient, nil
	}

	mc := s.cfg.MinIO
	if mc.Endpoint == "" {
		return nil, fmt.Errorf("minio: no endpoint configured")
	}

	client, err := minio.New(mc.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(mc.AccessKey, mc.SecretKey, ""),
		Secure: mc.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: %w", err)
	}
	s.minioClient = client
	return client, nil
}

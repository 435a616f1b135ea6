package oss

import (
	"context"

	"vidtube.com/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// New picks the backend named by blob.backend ("minio" or "s3").
func New(ctx context.Context) (BlobStore, error) {
	switch config.ConfigInfo.Blob.Backend {
	case "s3":
		return NewS3Store(ctx)
	case "", "minio":
		return NewMinioStore(ctx)
	default:
		hlog.Warnf("unknown blob backend %q, using minio", config.ConfigInfo.Blob.Backend)
		return NewMinioStore(ctx)
	}
}

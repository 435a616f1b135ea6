package oss

import (
	"context"
	"fmt"
	"strings"

	"vidtube.com/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type MinioStore struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

func NewMinioStore(ctx context.Context) (*MinioStore, error) {
	cfg := config.ConfigInfo.Minio
	hlog.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", cfg.Endpoint, cfg.AccessKey)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket error: %w", err)
		}
	}

	base := cfg.PublicBase
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + cfg.Endpoint
	}
	hlog.Info("Connect Minio Success")
	return &MinioStore{client: client, bucket: cfg.Bucket, publicBase: strings.TrimSuffix(base, "/")}, nil
}

func (m *MinioStore) Upload(ctx context.Context, localPath string) (string, error) {
	defer removeLocal(localPath)

	name, contentType, err := objectName(localPath)
	if err != nil {
		return "", errors.WithMessage(err, "read upload")
	}
	if _, err = m.client.FPutObject(ctx, m.bucket, name, localPath, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return "", errors.WithMessagef(err, "upload %s", name)
	}
	return fmt.Sprintf("%s/%s/%s", m.publicBase, m.bucket, name), nil
}

func (m *MinioStore) Delete(ctx context.Context, rawURL string) bool {
	key, ok := keyFromURL(rawURL, m.bucket)
	if !ok {
		return false
	}
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		hlog.CtxWarnf(ctx, "Failed to delete %s: %v", key, err)
		return false
	}
	return true
}

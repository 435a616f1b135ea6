package oss

import (
	"context"
	"fmt"
	"os"

	"vidtube.com/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type S3Store struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Store(ctx context.Context) (*S3Store, error) {
	cfg := config.ConfigInfo.S3
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	hlog.Infof("Using S3 bucket %s in %s", cfg.Bucket, cfg.Region)
	return &S3Store{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		region: cfg.Region,
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, localPath string) (string, error) {
	defer removeLocal(localPath)

	name, contentType, err := objectName(localPath)
	if err != nil {
		return "", errors.WithMessage(err, "read upload")
	}
	file, err := os.Open(localPath)
	if err != nil {
		return "", errors.WithMessage(err, "open upload")
	}
	defer file.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.WithMessagef(err, "upload %s", name)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, name), nil
}

func (s *S3Store) Delete(ctx context.Context, rawURL string) bool {
	key, ok := keyFromURL(rawURL, s.bucket)
	if !ok {
		return false
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		hlog.CtxWarnf(ctx, "Failed to delete %s: %v", key, err)
		return false
	}
	return true
}

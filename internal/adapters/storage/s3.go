package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Storage stores attachments as objects in an S3-compatible bucket.
type S3Storage struct {
	Bucket string
	Prefix string
	cli    *s3.Client
}

var _ portsrepo.ObjectStorage = (*S3Storage)(nil)

// S3Options configures the S3 backend. An empty Endpoint uses AWS itself;
// otherwise path-style addressing is used so MinIO and friends work.
type S3Options struct {
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string
	AccessKey string
	SecretKey string
}

func NewS3Storage(ctx context.Context, opts S3Options) (*S3Storage, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{AccessKeyID: opts.AccessKey, SecretAccessKey: opts.SecretKey},
		}))
	}
	if opts.Endpoint != "" {
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{URL: opts.Endpoint, SigningRegion: opts.Region}, nil
			})))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	cli := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = opts.Endpoint != ""
	})

	return &S3Storage{
		Bucket: opts.Bucket,
		Prefix: strings.Trim(opts.Prefix, "/"),
		cli:    cli,
	}, nil
}

func (s *S3Storage) objectKey(key string) string {
	if s.Prefix == "" {
		return key
	}
	return path.Join(s.Prefix, key)
}

func (s *S3Storage) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	fullKey := s.objectKey(key)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(fullKey),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := manager.NewUploader(s.cli).Upload(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", fullKey, err)
	}
	return fullKey, nil
}

func (s *S3Storage) Delete(ctx context.Context, ref string) error {
	_, err := s.cli.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(ref),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", ref, err)
	}
	return nil
}

package storage

import (
	"bytes"
	"context"
	"io"

	"directorio/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3Store struct {
	publicURLs
	client s3API
	bucket string
}

// newS3Store targets AWS or any S3-compatible endpoint such as Cloudflare R2.
func newS3Store(ctx context.Context, cfg *config.StorageConfig, urls publicURLs) (*s3Store, error) {
	if cfg.S3.Bucket == "" {
		return nil, errors.New("s3 bucket is required for the s3 provider")
	}
	if cfg.PublicBaseURL == "" {
		return nil, errors.New("storage publicBaseUrl is required for the s3 provider")
	}

	region := cfg.S3.Region
	if region == "" {
		region = "auto"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.S3.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Store{publicURLs: urls, client: client, bucket: cfg.S3.Bucket}, nil
}

// Put uploads the image and returns its public URL.
// The body is buffered because request signing needs a seekable payload.
func (s *s3Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", key)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", key)
	}

	return s.URL(key), nil
}

// Delete removes key. S3 deletes are idempotent.
func (s *s3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	return errors.Wrapf(err, "failed to delete %s", key)
}

package storage

import (
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	aws_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	EndpointURL     string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

// S3Source serves corpus documents out of an S3 (or MinIO) bucket.
type S3Source struct {
	downloader *manager.Downloader
	bucket     string
	prefix     string
}

func NewS3Source(ctx context.Context, cfg S3Config, bucket, prefix string) (*S3Source, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) { // nolint:staticcheck
		if cfg.EndpointURL != "" {
			return aws.Endpoint{ // nolint:staticcheck
				PartitionID:       "aws",
				URL:               cfg.EndpointURL,
				HostnameImmutable: true, // Important for MinIO
			}, nil
		}
		// fallback to default AWS endpoint resolution
		return aws.Endpoint{}, &aws.EndpointNotFoundError{} // nolint:staticcheck
	})

	loadOpts := []func(*aws_config.LoadOptions) error{
		aws_config.WithRegion(cfg.Region),
		aws_config.WithEndpointResolverWithOptions(resolver), // nolint:staticcheck
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, aws_config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := aws_config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.EndpointURL != ""
	})

	return &S3Source{
		downloader: manager.NewDownloader(client),
		bucket:     bucket,
		prefix:     prefix,
	}, nil
}

func (s *S3Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	key := name
	if s.prefix != "" {
		key = path.Join(s.prefix, name)
	}

	buf := manager.NewWriteAtBuffer(nil)
	_, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("could not download s3://%s/%s: %w", s.bucket, key, err)
	}
	return buf.Bytes(), nil
}

package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source fetches corpus documents (the HR policy PDF and the employee data
// JSON) by name from wherever the deployment keeps them.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// NewSource picks a backend from the corpus location: "s3://bucket[/prefix]"
// selects S3, anything else is treated as a local directory.
func NewSource(ctx context.Context, location string, s3cfg S3Config) (Source, error) {
	if strings.HasPrefix(location, "s3://") {
		bucket, prefix, err := splitS3Path(location)
		if err != nil {
			return nil, err
		}
		return NewS3Source(ctx, s3cfg, bucket, prefix)
	}
	return NewLocalSource(location), nil
}

type LocalSource struct {
	dir string
}

func NewLocalSource(dir string) *LocalSource {
	return &LocalSource{dir: dir}
}

func (s *LocalSource) Fetch(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("could not read corpus file %s: %w", name, err)
	}
	return data, nil
}

func splitS3Path(location string) (bucket, prefix string, err error) {
	trimmed := strings.TrimPrefix(location, "s3://")
	if trimmed == "" {
		return "", "", fmt.Errorf("invalid s3 corpus location %q", location)
	}

	parts := strings.SplitN(trimmed, "/", 2)
	bucket = parts[0]
	if len(parts) == 2 {
		prefix = parts[1]
	}
	return bucket, prefix, nil
}

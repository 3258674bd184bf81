package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "employees.json"), []byte(`{}`), 0644))

	src := NewLocalSource(dir)

	data, err := src.Fetch(context.Background(), "employees.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), data)

	_, err = src.Fetch(context.Background(), "missing.pdf")
	assert.Error(t, err)
}

func TestSplitS3Path(t *testing.T) {
	bucket, prefix, err := splitS3Path("s3://hr-corpus/policies")
	require.NoError(t, err)
	assert.Equal(t, "hr-corpus", bucket)
	assert.Equal(t, "policies", prefix)

	bucket, prefix, err = splitS3Path("s3://hr-corpus")
	require.NoError(t, err)
	assert.Equal(t, "hr-corpus", bucket)
	assert.Equal(t, "", prefix)

	_, _, err = splitS3Path("s3://")
	assert.Error(t, err)
}

func TestNewSourcePicksLocal(t *testing.T) {
	src, err := NewSource(context.Background(), t.TempDir(), S3Config{})
	require.NoError(t, err)
	_, ok := src.(*LocalSource)
	assert.True(t, ok)
}

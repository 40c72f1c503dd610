package config

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestS3Config() *S3Config {
	awsCfg := aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("test-key", "test-secret", ""),
	}
	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: "test-bucket",
	}
}

func TestNewS3ConfigDefaultBucket(t *testing.T) {
	t.Setenv("S3_BUCKET_NAME", "")
	t.Setenv("AWS_REGION", "us-east-1")

	cfg, err := NewS3Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "kinlog-meal-photos", cfg.BucketName)

	t.Setenv("S3_BUCKET_NAME", "custom-bucket")
	cfg, err = NewS3Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "custom-bucket", cfg.BucketName)
}

// Presigning is pure request signing, so it works without network access.
func TestGeneratePresignedURL(t *testing.T) {
	cfg := newTestS3Config()

	url, err := cfg.GeneratePresignedURL(context.Background(), "meal-photos/abc.jpg", time.Hour)
	require.NoError(t, err)

	assert.Contains(t, url, "test-bucket")
	assert.Contains(t, url, "meal-photos/abc.jpg")
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=3600")
}

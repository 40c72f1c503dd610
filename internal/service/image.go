package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/kinlog/backend/config"
)

// presignTTL matches the pending-match cache lifetime: an uploaded photo
// only needs to stay fetchable until the analysis is confirmed or abandoned.
const presignTTL = 24 * time.Hour

// ImageService stores uploaded meal photos in S3 and hands back the URL the
// recognition pipeline works from.
type ImageService struct {
	s3Config *config.S3Config
	presign  bool
}

// NewImageService creates a new ImageService instance. With presign set the
// service hands out presigned URLs instead of public ones, for buckets that
// do not allow public reads.
func NewImageService(s3Config *config.S3Config, presign bool) *ImageService {
	return &ImageService{
		s3Config: s3Config,
		presign:  presign,
	}
}

// UploadMealPhoto uploads image data to S3 and returns its URL
func (s *ImageService) UploadMealPhoto(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image data")
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("meal-photos/%s%s", uuid.New().String(), extensionFor(contentType))

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	url, err := s.photoURL(ctx, key)
	if err != nil {
		return "", err
	}
	log.Printf("[ImageService] Successfully uploaded meal photo to S3: %s", key)

	return url, nil
}

func (s *ImageService) photoURL(ctx context.Context, key string) (string, error) {
	if s.presign {
		url, err := s.s3Config.GeneratePresignedURL(ctx, key, presignTTL)
		if err != nil {
			return "", fmt.Errorf("failed to presign photo URL: %w", err)
		}
		return url, nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

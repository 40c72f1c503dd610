package service

import (
	"context"

	"github.com/kinlog/backend/internal/menu"
)

// Recognizer abstracts the external vision API so the meal log service can
// be tested without network access.
type Recognizer interface {
	Recognize(ctx context.Context, imageURL string) ([]menu.Candidate, error)
}

// Ensure implementations satisfy the interfaces
var _ Recognizer = (*RecognitionService)(nil)

// ImageStore abstracts photo storage for the upload handler.
type ImageStore interface {
	UploadMealPhoto(ctx context.Context, data []byte, contentType string) (string, error)
}

var _ ImageStore = (*ImageService)(nil)

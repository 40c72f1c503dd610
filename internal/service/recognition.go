package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kinlog/backend/internal/menu"
)

// maxRecognitionResults caps how many recognizer candidates are kept and
// stored with a log; the vision API returns a long tail of low-probability
// guesses that only add noise.
const maxRecognitionResults = 3

// RecognitionService calls the external LogMeal-style vision API that turns
// a meal photo into (label, probability) candidates.
type RecognitionService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// recognitionResponse mirrors the relevant part of the vision API payload.
type recognitionResponse struct {
	RecognitionResults []menu.Candidate `json:"recognition_results"`
}

// NewRecognitionService creates a new RecognitionService instance
func NewRecognitionService() (*RecognitionService, error) {
	apiKey := os.Getenv("LOGMEAL_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("LOGMEAL_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("LOGMEAL_API_KEY or LOGMEAL_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("LOGMEAL_API_URL")
	if apiURL == "" {
		apiURL = "https://api.logmeal.es/v2/image/recognition/complete"
	}

	return &RecognitionService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Recognize downloads the photo at imageURL and submits it to the vision
// API, returning at most maxRecognitionResults candidates. Callers decide
// whether to retry; this client does not.
func (s *RecognitionService) Recognize(ctx context.Context, imageURL string) ([]menu.Candidate, error) {
	imageData, err := s.downloadImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "food.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recognition request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recognition response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[RecognitionService] API request failed with status %d: %s", resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("recognition API returned status %d", resp.StatusCode)
	}

	var result recognitionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode recognition response: %w", err)
	}

	candidates := result.RecognitionResults
	if len(candidates) > maxRecognitionResults {
		candidates = candidates[:maxRecognitionResults]
	}

	return candidates, nil
}

func (s *RecognitionService) downloadImage(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create image request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image, status: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/NutritionScanner/nutrivision-backend/models"
)

// Hosted inference models used by the detection endpoints.
const (
	FoodModelURL     = "https://api-inference.huggingface.co/models/nateraw/food"
	FruitVegModelURL = "https://api-inference.huggingface.co/models/jazzmacedo/fruits-and-vegetables-detector-36"
)

const (
	defaultMaxRetries = 3
	defaultRetryDelay = 5 * time.Second
)

// InferenceClient posts raw image bytes to a HuggingFace hosted
// inference model. One client per model URL; the retry state machine
// around the asynchronously loading backend is shared.
type InferenceClient struct {
	APIURL     string
	Token      string
	MaxRetries int
	RetryDelay time.Duration
	HTTPClient *http.Client
}

func NewInferenceClient(apiURL, token string) *InferenceClient {
	return &InferenceClient{
		APIURL:     apiURL,
		Token:      token,
		MaxRetries: defaultMaxRetries,
		RetryDelay: defaultRetryDelay,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// prediction covers both the ordered-list response and the legacy
// single-object response of the hosted models.
type prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify sends the image and returns the top prediction.
//
// 503 means the model is still loading and is retried after RetryDelay;
// transport errors are retried the same way. 401, 404, a malformed 200
// body and every other status are terminal on first occurrence. No
// sleep follows the final attempt.
func (c *InferenceClient) Classify(ctx context.Context, image []byte, contentType string) (models.ClassificationResult, error) {
	var zero models.ClassificationResult
	if c.Token == "" {
		return zero, ErrMissingCredential
	}

	for attempt := 1; attempt <= c.MaxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL, bytes.NewReader(image))
		if err != nil {
			return zero, fmt.Errorf("failed to build inference request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.Token)
		req.Header.Set("Content-Type", contentType)

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			if attempt == c.MaxRetries {
				return zero, fmt.Errorf("%w: %v", ErrNetwork, err)
			}
			log.Printf("[WARN] network error on attempt %d/%d, retrying: %v", attempt, c.MaxRetries, err)
			if err := sleepCtx(ctx, c.RetryDelay); err != nil {
				return zero, err
			}
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return zero, fmt.Errorf("failed to read inference response: %w", readErr)
		}

		switch resp.StatusCode {
		case http.StatusOK:
			return parsePredictions(body)

		case http.StatusServiceUnavailable:
			if attempt == c.MaxRetries {
				return zero, ErrModelLoading
			}
			log.Printf("[INFO] model is loading, retrying in %s (attempt %d/%d)", c.RetryDelay, attempt, c.MaxRetries)
			if err := sleepCtx(ctx, c.RetryDelay); err != nil {
				return zero, err
			}

		case http.StatusUnauthorized:
			return zero, ErrUnauthorized

		case http.StatusNotFound:
			return zero, ErrModelNotFound

		default:
			return zero, &UpstreamError{StatusCode: resp.StatusCode, Detail: errorDetail(body)}
		}
	}

	return zero, ErrModelLoading
}

// parsePredictions accepts either a non-empty array ordered by
// descending confidence or a legacy single prediction object.
func parsePredictions(body []byte) (models.ClassificationResult, error) {
	var list []prediction
	if err := json.Unmarshal(body, &list); err == nil {
		if len(list) == 0 {
			return models.ClassificationResult{}, ErrMalformedResponse
		}
		return models.ClassificationResult{Label: list[0].Label, Confidence: list[0].Score}, nil
	}

	var single prediction
	if err := json.Unmarshal(body, &single); err == nil && single.Label != "" {
		return models.ClassificationResult{Label: single.Label, Confidence: single.Score}, nil
	}

	return models.ClassificationResult{}, ErrMalformedResponse
}

// errorDetail prefers the JSON error field, falling back to raw body.
func errorDetail(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(body)
}

// sleepCtx waits for d unless the request context ends first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

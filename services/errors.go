package services

import (
	"errors"
	"fmt"
)

// Errors from the inference upstream. Only ErrModelLoading and
// ErrNetwork follow a retry loop; everything else is terminal on the
// first response that produces it.
var (
	ErrMissingCredential = errors.New("HUGGINGFACE_TOKEN not configured")
	ErrImageNotFound     = errors.New("image file not found")
	ErrUnauthorized      = errors.New("unauthorized: check your HuggingFace token")
	ErrModelNotFound     = errors.New("model not found: verify the model name and URL")
	ErrMalformedResponse = errors.New("invalid inference response format")
	ErrModelLoading      = errors.New("model failed to load after multiple retries")
	ErrNetwork           = errors.New("network error calling inference API")
)

// Errors from the barcode lookup upstream.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrIncompleteData  = errors.New("incomplete data")
)

// Errors from the user store.
var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// UpstreamError carries the status and detail of an inference response
// outside the explicitly handled status codes.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("inference API error %d: %s", e.StatusCode, e.Detail)
}

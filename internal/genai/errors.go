package genai

import "errors"

var (
	// ErrMissingAPIKey indicates no API key is configured. The chat
	// and video features are disabled in that case, nothing else is.
	ErrMissingAPIKey = errors.New("generative api key not configured")

	// ErrInvalidAPIKey indicates the upstream rejected the configured
	// key, typically reported as a missing-entity response on the
	// video endpoints.
	ErrInvalidAPIKey = errors.New("generative api key rejected")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("generative request timed out")

	// ErrUpstream indicates the provider returned a failure response.
	ErrUpstream = errors.New("generative provider error")

	// ErrEmptyResult indicates the provider answered successfully but
	// produced no usable content.
	ErrEmptyResult = errors.New("generative provider returned no content")
)

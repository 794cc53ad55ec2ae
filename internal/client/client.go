// Package client talks to the remote sentiment classifiers.
package client

import (
	"context"
	"errors"

	"github.com/Rorical/RoriSense/internal/models"
)

const (
	// FallbackMessage is shown when the endpoint fails without saying why.
	FallbackMessage = "Failed to analyze text"
	// RetryMessage is shown when the request never produced a usable answer.
	RetryMessage = "Failed to analyze text. Please try again."
)

// Analyzer classifies one text. Implementations issue exactly one remote
// call per invocation and never retry.
type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

// RequestError is any failure between sending a request and decoding its
// answer. Message is safe to show to the user.
type RequestError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// MessageFor returns the user-facing message for err.
func MessageFor(err error) string {
	if err == nil {
		return ""
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return RetryMessage
}

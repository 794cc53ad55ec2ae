package models

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// AnalysisRequest is one submission to the sentiment endpoint.
type AnalysisRequest struct {
	ID   string `json:"-" yaml:"-"`
	Text string `json:"text" yaml:"text"`
}

// NewAnalysisRequest trims text and assigns a fresh request id.
func NewAnalysisRequest(text string) AnalysisRequest {
	return AnalysisRequest{
		ID:   uuid.NewString(),
		Text: strings.TrimSpace(text),
	}
}

// AnalysisResult is the endpoint's classification of one text.
// ProbabilityPositive and ProbabilityNegative are percentages and are not
// checked to sum to 100.
type AnalysisResult struct {
	Sentiment           string  `json:"sentiment" yaml:"sentiment"`
	Confidence          float64 `json:"confidence" yaml:"confidence"`
	ProbabilityPositive float64 `json:"probability_positive" yaml:"probability_positive"`
	ProbabilityNegative float64 `json:"probability_negative" yaml:"probability_negative"`
	OriginalText        string  `json:"original_text" yaml:"original_text"`
	CleanedText         string  `json:"cleaned_text,omitempty" yaml:"cleaned_text,omitempty"`
}

// IsPositive reports whether the label reads "positive" in any case.
func (r AnalysisResult) IsPositive() bool {
	return strings.EqualFold(r.Sentiment, "positive")
}

// Tone maps the label to a display tone.
func (r AnalysisResult) Tone() Tone {
	if r.IsPositive() {
		return TonePositive
	}
	return ToneNegative
}

// HealthStatus is the payload of the endpoint's /health route.
type HealthStatus struct {
	Status           string  `json:"status" yaml:"status"`
	ModelLoaded      bool    `json:"model_loaded" yaml:"model_loaded"`
	VectorizerLoaded bool    `json:"vectorizer_loaded" yaml:"vectorizer_loaded"`
	ModelType        *string `json:"model_type" yaml:"model_type"`
	VectorizerType   *string `json:"vectorizer_type" yaml:"vectorizer_type"`
}

// Healthy reports whether the endpoint says it can serve predictions.
func (h HealthStatus) Healthy() bool {
	return h.Status == "healthy" && h.ModelLoaded && h.VectorizerLoaded
}

// FormatPercent renders v with the shortest exact decimal form followed by "%".
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// ClampPercent limits v to [0, 100] for bar widths.
func ClampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

// Summary is a plain one-paragraph rendering of r.
func (r AnalysisResult) Summary() string {
	return r.Sentiment + " (Confidence: " + FormatPercent(r.Confidence) + ")" +
		"\nPositive " + FormatPercent(r.ProbabilityPositive) +
		" / Negative " + FormatPercent(r.ProbabilityNegative) +
		"\n" + r.OriginalText
}

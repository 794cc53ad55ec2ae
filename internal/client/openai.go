package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/Rorical/RoriSense/internal/models"
)

// DefaultOpenAIModel is used when a profile names no model.
const DefaultOpenAIModel = "gpt-4o-mini"

const classifierPrompt = `You are a binary sentiment classifier.
Read the user's text and reply with only a JSON object of the form
{"probability_positive": <number>, "probability_negative": <number>}
where both numbers are percentages between 0 and 100 that sum to 100.`

// OpenAIAnalyzer classifies text with a chat completion model.
type OpenAIAnalyzer struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewOpenAIAnalyzer builds an analyzer. baseURL may be empty for the
// public API.
func NewOpenAIAnalyzer(apiKey, baseURL, model string, logger *slog.Logger) *OpenAIAnalyzer {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenAIAnalyzer{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		logger: logger,
	}
}

type probabilities struct {
	ProbabilityPositive float64 `json:"probability_positive"`
	ProbabilityNegative float64 `json:"probability_negative"`
}

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	start := time.Now()
	log := a.logger.With(slog.String("request_id", req.ID), slog.String("model", a.model))

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifierPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.Text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		log.Error("[OpenAIAnalyzer] Chat completion failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))

		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return nil, &RequestError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message, Err: err}
		}
		return nil, &RequestError{Message: RetryMessage, Err: fmt.Errorf("OpenAI API error: %w", err)}
	}

	if len(resp.Choices) == 0 {
		return nil, &RequestError{Message: RetryMessage, Err: errors.New("no choices in completion")}
	}

	var probs probabilities
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &probs); err != nil {
		log.Error("[OpenAIAnalyzer] Failed to unmarshal completion", slog.String("error", err.Error()))
		return nil, &RequestError{Message: RetryMessage, Err: fmt.Errorf("failed to unmarshal completion: %w", err)}
	}

	result, err := resultFromProbabilities(req.Text, probs)
	if err != nil {
		return nil, &RequestError{Message: RetryMessage, Err: err}
	}

	log.Info("[OpenAIAnalyzer] Analysis request successful",
		slog.String("sentiment", result.Sentiment),
		slog.Duration("elapsed", time.Since(start)))
	return result, nil
}

// resultFromProbabilities normalises the pair to percentages and derives the
// label and confidence the same way the /predict endpoint does.
func resultFromProbabilities(text string, p probabilities) (*models.AnalysisResult, error) {
	if p.ProbabilityPositive < 0 || p.ProbabilityNegative < 0 {
		return nil, fmt.Errorf("negative probability in completion: %+v", p)
	}
	total := p.ProbabilityPositive + p.ProbabilityNegative
	if total == 0 {
		return nil, errors.New("completion carried no probabilities")
	}

	positive := p.ProbabilityPositive / total * 100
	negative := p.ProbabilityNegative / total * 100

	sentiment := "Negative"
	if positive >= negative {
		sentiment = "Positive"
	}

	return &models.AnalysisResult{
		Sentiment:           sentiment,
		Confidence:          round2(math.Max(positive, negative)),
		ProbabilityPositive: round2(positive),
		ProbabilityNegative: round2(negative),
		OriginalText:        text,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriSense/internal/models"
)

func completionBody(content string) string {
	body := map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	}
	data, _ := json.Marshal(body)
	return string(data)
}

func newOpenAITestAnalyzer(t *testing.T, handler http.HandlerFunc) *OpenAIAnalyzer {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAIAnalyzer("test-key", srv.URL+"/v1", "", quietLogger())
}

func TestOpenAIAnalyzer_Analyze(t *testing.T) {
	var gotModel string
	a := newOpenAITestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotModel, _ = req["model"].(string)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completionBody(`{"probability_positive": 87.5, "probability_negative": 12.5}`))
	})

	result, err := a.Analyze(context.Background(), models.NewAnalysisRequest("Fantastic support!"))
	require.NoError(t, err)

	assert.Equal(t, DefaultOpenAIModel, gotModel)
	assert.Equal(t, "Positive", result.Sentiment)
	assert.Equal(t, 87.5, result.Confidence)
	assert.Equal(t, 87.5, result.ProbabilityPositive)
	assert.Equal(t, 12.5, result.ProbabilityNegative)
	assert.Equal(t, "Fantastic support!", result.OriginalText)
}

func TestOpenAIAnalyzer_APIError(t *testing.T) {
	a := newOpenAITestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
	})

	_, err := a.Analyze(context.Background(), models.NewAnalysisRequest("text"))
	require.Error(t, err)
	assert.Equal(t, "Incorrect API key provided", MessageFor(err))
}

func TestOpenAIAnalyzer_UnparsableCompletion(t *testing.T) {
	a := newOpenAITestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, completionBody("positive, probably"))
	})

	_, err := a.Analyze(context.Background(), models.NewAnalysisRequest("text"))
	require.Error(t, err)
	assert.Equal(t, RetryMessage, MessageFor(err))
}

func TestResultFromProbabilities(t *testing.T) {
	result, err := resultFromProbabilities("meh", probabilities{ProbabilityPositive: 0.2, ProbabilityNegative: 0.6})
	require.NoError(t, err)
	assert.Equal(t, "Negative", result.Sentiment)
	assert.Equal(t, 75.0, result.Confidence)
	assert.Equal(t, 25.0, result.ProbabilityPositive)
	assert.Equal(t, 75.0, result.ProbabilityNegative)

	_, err = resultFromProbabilities("x", probabilities{})
	assert.Error(t, err)

	_, err = resultFromProbabilities("x", probabilities{ProbabilityPositive: -1, ProbabilityNegative: 50})
	assert.Error(t, err)
}

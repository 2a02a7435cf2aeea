package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"study-buddy/backend/internal/apperr"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), apperr.CodeTimeout},
		{"grpc exhausted", status.Error(codes.ResourceExhausted, "slow down"), apperr.CodeRateLimit},
		{"grpc unauthenticated", status.Error(codes.Unauthenticated, "bad key"), apperr.CodeAuth},
		{"grpc unavailable", status.Error(codes.Unavailable, "down"), apperr.CodeTransport},
		{"grpc other", status.Error(codes.Internal, "oops"), apperr.CodeUpstream},
		{"openai 429", &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests, Message: "rate"}, apperr.CodeRateLimit},
		{"openai 401", &openai.APIError{HTTPStatusCode: http.StatusUnauthorized, Message: "key"}, apperr.CodeAuth},
		{"openai 503", &openai.RequestError{HTTPStatusCode: http.StatusServiceUnavailable, Err: errors.New("x")}, apperr.CodeTransport},
		{"gemini deadline", genai.APIError{Code: http.StatusGatewayTimeout, Status: "DEADLINE_EXCEEDED", Message: "deadline"}, apperr.CodeTimeout},
		{"gemini unavailable", genai.APIError{Code: http.StatusServiceUnavailable, Status: "UNAVAILABLE", Message: "overloaded"}, apperr.CodeTransport},
		{"gemini exhausted", genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED", Message: "quota"}, apperr.CodeRateLimit},
		{"gemini invalid key", genai.APIError{Code: http.StatusBadRequest, Status: "INVALID_ARGUMENT", Message: "API key not valid. Please pass a valid API key."}, apperr.CodeAuth},
		{"gemini wrapped 504", fmt.Errorf("generate: %w", genai.APIError{Code: http.StatusGatewayTimeout}), apperr.CodeTimeout},
		{"gemini internal", genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL", Message: "oops"}, apperr.CodeUpstream},
		{"gemini rest quota", errors.New("Error 429, Message: Resource has been exhausted, Status: RESOURCE_EXHAUSTED"), apperr.CodeRateLimit},
		{"gemini rest key", errors.New("Error 400, Message: API key not valid. Please pass a valid API key."), apperr.CodeAuth},
		{"unknown", errors.New("something odd"), apperr.CodeUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyError(tt.err)
			assert.True(t, apperr.Is(err, apperr.KindCompletion))
			assert.Equal(t, tt.want, apperr.CodeOf(err))
			assert.Equal(t, tt.err, errors.Unwrap(err))
		})
	}
}

func TestClassifyError_KeepsAppErrors(t *testing.T) {
	original := apperr.Completion(apperr.CodeAuth, "no key", nil)
	assert.Same(t, original, classifyError(original))
	assert.NoError(t, classifyError(nil))
}

func TestErrorMessage(t *testing.T) {
	msg := ErrorMessage(apperr.Completion(apperr.CodeUpstream, "completion request failed", errors.New("500")))
	assert.Equal(t, "Error: completion request failed: 500\n\nPlease make sure you've added your API key (GEMINI_API_KEY or OPENAI_API_KEY).", msg)
}

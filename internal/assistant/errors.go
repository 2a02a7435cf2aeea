package assistant

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"study-buddy/backend/internal/apperr"
)

// credentialHint is appended to every completion failure shown to the user.
const credentialHint = "Please make sure you've added your API key (GEMINI_API_KEY or OPENAI_API_KEY)."

// ErrorMessage renders a completion failure as user-visible text.
func ErrorMessage(err error) string {
	return "Error: " + err.Error() + "\n\n" + credentialHint
}

// classifyError maps a provider error onto a completion error code.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Completion(completionCode(err), "completion request failed", err)
}

func completionCode(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperr.CodeTimeout
	case errors.Is(err, context.Canceled):
		return apperr.CodeTransport
	}

	var geminiErr genai.APIError
	if errors.As(err, &geminiErr) {
		return geminiCode(geminiErr)
	}
	var geminiPtr *genai.APIError
	if errors.As(err, &geminiPtr) && geminiPtr != nil {
		return geminiCode(*geminiPtr)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return codeForHTTPStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return codeForHTTPStatus(reqErr.HTTPStatusCode)
	}

	if s, ok := status.FromError(err); ok && s.Code() != codes.Unknown {
		switch s.Code() {
		case codes.ResourceExhausted:
			return apperr.CodeRateLimit
		case codes.Unauthenticated, codes.PermissionDenied:
			return apperr.CodeAuth
		case codes.DeadlineExceeded:
			return apperr.CodeTimeout
		case codes.Unavailable:
			return apperr.CodeTransport
		}
		return apperr.CodeUpstream
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return apperr.CodeTimeout
		}
		return apperr.CodeTransport
	}

	// Last resort for errors that only carry the status in their text.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "resource_exhausted") || strings.Contains(msg, "429") ||
		strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota"):
		return apperr.CodeRateLimit
	case strings.Contains(msg, "api key") || strings.Contains(msg, "permission_denied") ||
		strings.Contains(msg, "unauthenticated") || strings.Contains(msg, "401") || strings.Contains(msg, "403"):
		return apperr.CodeAuth
	}
	return apperr.CodeUpstream
}

// geminiCode prefers the canonical status name and falls back to the HTTP code.
// An invalid key is reported by Gemini as 400 INVALID_ARGUMENT.
func geminiCode(e genai.APIError) string {
	switch strings.ToUpper(e.Status) {
	case "RESOURCE_EXHAUSTED":
		return apperr.CodeRateLimit
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		return apperr.CodeAuth
	case "DEADLINE_EXCEEDED":
		return apperr.CodeTimeout
	case "UNAVAILABLE":
		return apperr.CodeTransport
	}
	if e.Code == http.StatusBadRequest && strings.Contains(strings.ToLower(e.Message), "api key") {
		return apperr.CodeAuth
	}
	return codeForHTTPStatus(e.Code)
}

func codeForHTTPStatus(code int) string {
	switch {
	case code == http.StatusTooManyRequests:
		return apperr.CodeRateLimit
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return apperr.CodeAuth
	case code == http.StatusGatewayTimeout || code == http.StatusRequestTimeout:
		return apperr.CodeTimeout
	case code == http.StatusBadGateway || code == http.StatusServiceUnavailable:
		return apperr.CodeTransport
	}
	return apperr.CodeUpstream
}

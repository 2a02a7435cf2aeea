package assistant

import (
	"context"
	"errors"
	"time"

	"study-buddy/backend/internal/apperr"
	"study-buddy/backend/internal/assistant/deps"
	"study-buddy/backend/internal/assistant/prompt"
	"study-buddy/backend/internal/model"
	"study-buddy/backend/internal/platform/logger"
)

// DefaultTimeout bounds a single completion call.
const DefaultTimeout = 60 * time.Second

// Result is the outcome of one successful study action.
type Result struct {
	// Request is the validated request with defaults filled in.
	Request prompt.Request
	Output  model.Output
}

// StudyAssistant runs one study action: build the prompt, call the model,
// format the answer.
type StudyAssistant struct {
	client    deps.CompletionClient
	builder   *prompt.Builder
	formatter deps.ResponseFormatter
	timeout   time.Duration
	log       *logger.Logger
}

// Option customises a StudyAssistant.
type Option func(*StudyAssistant)

func WithTimeout(d time.Duration) Option {
	return func(a *StudyAssistant) {
		if d > 0 {
			a.timeout = d
		}
	}
}

func WithFormatter(f deps.ResponseFormatter) Option {
	return func(a *StudyAssistant) { a.formatter = f }
}

func NewStudyAssistant(client deps.CompletionClient, builder *prompt.Builder, formatter deps.ResponseFormatter, log *logger.Logger, opts ...Option) *StudyAssistant {
	a := &StudyAssistant{
		client:    client,
		builder:   builder,
		formatter: formatter,
		timeout:   DefaultTimeout,
		log:       log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Validate checks req without calling the model and returns it with defaults
// filled in.
func (a *StudyAssistant) Validate(req prompt.Request) (prompt.Request, error) {
	return a.builder.Normalize(req)
}

// Run executes req. history is required for chat and ignored otherwise.
//
// For chat the user's question is recorded before the model is called, and
// the answer is recorded only if the call succeeds. A failed call never
// reaches the formatter; the returned error is an *apperr.Error of kind
// completion.
func (a *StudyAssistant) Run(ctx context.Context, req prompt.Request, history deps.ChatHistory) (*Result, error) {
	req, err := a.builder.Normalize(req)
	if err != nil {
		return nil, err
	}
	if req.Mode == model.ModeChat && history == nil {
		return nil, apperr.Validation("chat requires a session")
	}

	p, err := a.builder.Build(req)
	if err != nil {
		return nil, err
	}

	log := a.log.With("mode", req.Mode)
	if req.Mode == model.ModeChat {
		history.Append(model.RoleUser, req.Question)
	}

	start := time.Now()
	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	text, err := a.client.GenerateContent(callCtx, p.String())
	cancel()
	if err != nil {
		err = classifyError(err)
		if errors.Is(err, context.Canceled) {
			log.Info("completion cancelled by client", "elapsed", time.Since(start))
		} else {
			log.Warn("completion failed", "code", apperr.CodeOf(err), "error", err, "elapsed", time.Since(start))
		}
		return nil, err
	}
	log.Info("completion finished", "prompt_chars", len(p), "response_chars", len(text), "elapsed", time.Since(start))

	out := a.formatter.Format(req.Mode, text)
	if req.Mode == model.ModeChat {
		history.Append(model.RoleAssistant, text)
	}
	return &Result{Request: req, Output: out}, nil
}

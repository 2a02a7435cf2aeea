package deps

import (
	"context"

	"study-buddy/backend/internal/model"
)

// CompletionClient abstracts the hosted language model.
type CompletionClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ResponseFormatter shapes raw completion text for display.
type ResponseFormatter interface {
	Format(mode model.Mode, text string) model.Output
}

// ChatHistory is the per-session log of chat turns.
type ChatHistory interface {
	Append(role model.Role, content string)
	Snapshot() []model.ChatTurn
	Clear()
}

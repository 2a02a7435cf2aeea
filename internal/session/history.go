package session

import (
	"sync"

	"study-buddy/backend/internal/model"
)

// History is an ordered, append-only chat log. Clear is the only operation
// that removes turns, and it removes all of them at once.
type History struct {
	mu    sync.Mutex
	turns []model.ChatTurn
}

func NewHistory() *History {
	return &History{}
}

// Append adds one turn at the end.
func (h *History) Append(role model.Role, content string) {
	h.mu.Lock()
	h.turns = append(h.turns, model.ChatTurn{Role: role, Content: content})
	h.mu.Unlock()
}

// Clear empties the log.
func (h *History) Clear() {
	h.mu.Lock()
	h.turns = nil
	h.mu.Unlock()
}

// Snapshot returns a copy of all turns in insertion order. It is never nil.
func (h *History) Snapshot() []model.ChatTurn {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]model.ChatTurn, len(h.turns))
	copy(out, h.turns)
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.turns)
}

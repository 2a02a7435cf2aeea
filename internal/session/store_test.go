package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-buddy/backend/internal/model"
)

func TestStore_GetOrCreate(t *testing.T) {
	s := NewStore(0)

	id, h := s.GetOrCreate("")
	require.NotEmpty(t, id)
	h.Append(model.RoleUser, "hello")

	sameID, same := s.GetOrCreate(id)
	assert.Equal(t, id, sameID)
	assert.Same(t, h, same)
	assert.Equal(t, 1, same.Len())
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	s := NewStore(0)
	_, a := s.GetOrCreate("a")
	_, b := s.GetOrCreate("b")

	a.Append(model.RoleUser, "only in a")

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
}

func TestStore_GetUnknown(t *testing.T) {
	s := NewStore(0)
	_, ok := s.Get("missing")
	assert.False(t, ok)
}

func TestStore_Delete(t *testing.T) {
	s := NewStore(0)
	id, _ := s.GetOrCreate("")
	s.Delete(id)
	_, ok := s.Get(id)
	assert.False(t, ok)
}

func TestStore_Prune(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(time.Hour)
	s.now = func() time.Time { return now }

	s.GetOrCreate("old")
	now = now.Add(45 * time.Minute)
	s.GetOrCreate("fresh")
	now = now.Add(30 * time.Minute)

	assert.Equal(t, 1, s.Prune())
	_, ok := s.Get("old")
	assert.False(t, ok)
	_, ok = s.Get("fresh")
	assert.True(t, ok)
}

func TestStore_PruneDisabled(t *testing.T) {
	s := NewStore(0)
	s.GetOrCreate("x")
	assert.Equal(t, 0, s.Prune())
	assert.Equal(t, 1, s.Len())
}

package export

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-buddy/backend/internal/db"
	"study-buddy/backend/internal/model"
)

func TestFilename(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	assert.Equal(t, "Photosynthesis_explanation.txt", Filename(model.ModeExplain, "Photosynthesis", at))
	assert.Equal(t, "World War II_quiz.txt", Filename(model.ModeQuiz, "World War II", at))
	assert.Equal(t, "Derivatives_flashcards.txt", Filename(model.ModeFlashcards, "Derivatives", at))
	assert.Equal(t, "summary_20260314_092653.txt", Filename(model.ModeSummarize, "ignored", at))
}

func TestFilename_Deterministic(t *testing.T) {
	at := time.Now()
	assert.Equal(t, Filename(model.ModeQuiz, "Cells", at), Filename(model.ModeQuiz, "Cells", at))
}

func TestFilename_UnsafeTopic(t *testing.T) {
	at := time.Now()
	assert.Equal(t, "TCP_IP _ UDP_explanation.txt", Filename(model.ModeExplain, "TCP/IP | UDP", at))
	assert.Equal(t, "__quiz.txt", Filename(model.ModeQuiz, " ../ ", at))
	assert.Equal(t, "untitled_flashcards.txt", Filename(model.ModeFlashcards, "...", at))
}

func newTestStore(t *testing.T) *ArtifactStore {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewArtifactStore(conn)
}

func TestArtifactStore_SaveGet(t *testing.T) {
	store := newTestStore(t)
	store.now = func() time.Time { return time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	saved, err := store.Save(ctx, model.ModeSummarize, "", "- point one\n- point two")
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "summary_20260501_080000.txt", saved.Filename)

	got, err := store.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ModeSummarize, got.Mode)
	assert.Equal(t, "- point one\n- point two", got.Content)
	assert.Equal(t, saved.Filename, got.Filename)
	assert.True(t, saved.CreatedAt.Equal(got.CreatedAt))
}

func TestArtifactStore_GetMissing(t *testing.T) {
	_, err := newTestStore(t).Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArtifactStore_RejectsChat(t *testing.T) {
	_, err := newTestStore(t).Save(context.Background(), model.ModeChat, "", "hi")
	assert.Error(t, err)
}

func TestArtifactStore_DeleteOlderThan(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	store.now = func() time.Time { return base }
	old, err := store.Save(ctx, model.ModeQuiz, "Old", "q")
	require.NoError(t, err)
	store.now = func() time.Time { return base.Add(48 * time.Hour) }
	fresh, err := store.Save(ctx, model.ModeQuiz, "Fresh", "q")
	require.NoError(t, err)

	n, err := store.DeleteOlderThan(ctx, base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = store.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

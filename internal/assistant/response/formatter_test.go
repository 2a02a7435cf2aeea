package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-buddy/backend/internal/model"
)

func TestFormat_PassThrough(t *testing.T) {
	f := NewFormatter()

	for _, mode := range []model.Mode{model.ModeExplain, model.ModeSummarize, model.ModeChat} {
		text := "## Heading\n\n- point one\n---\n- point two"
		out := f.Format(mode, text)
		assert.Equal(t, mode, out.Mode)
		assert.Equal(t, text, out.Text)
		assert.Nil(t, out.Cards)
		assert.Nil(t, out.Questions)
	}
}

func TestFormat_EmptyCompletionSurfacesAsIs(t *testing.T) {
	out := NewFormatter().Format(model.ModeExplain, "")
	assert.Equal(t, "", out.Text)

	out = NewFormatter().Format(model.ModeFlashcards, "")
	assert.Empty(t, out.Cards)
}

func TestFormat_Flashcards(t *testing.T) {
	text := "CARD 1:\nFRONT: x\nBACK: y\n---\nCARD 2:\nFRONT: a\nBACK: b\n---\n"

	out := NewFormatter().Format(model.ModeFlashcards, text)

	require.Len(t, out.Cards, 2)
	assert.Equal(t, text, out.Text)

	first, second := out.Cards[0], out.Cards[1]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, "CARD 1:\nFRONT: x\nBACK: y", first.Content)
	assert.Equal(t, "x", first.Front)
	assert.Equal(t, "y", first.Back)

	assert.Equal(t, 2, second.Index)
	assert.Equal(t, "CARD 2:\nFRONT: a\nBACK: b", second.Content)
	assert.Equal(t, "a", second.Front)
	assert.Equal(t, "b", second.Back)

	for _, c := range out.Cards {
		assert.NotContains(t, c.Content, "---")
		assert.NotEmpty(t, c.Content)
	}
}

func TestFormat_FlashcardsWithoutSeparator(t *testing.T) {
	text := "Mitochondria: the powerhouse of the cell. Ribosomes: protein factories."

	out := NewFormatter().Format(model.ModeFlashcards, text)

	require.Len(t, out.Cards, 1)
	assert.Equal(t, text, out.Cards[0].Content)
	assert.Empty(t, out.Cards[0].Front)
}

func TestSplitCards_SkipsBlankSegments(t *testing.T) {
	cards := SplitCards("---\n\n---CARD 1:\nFRONT: **Osmosis**\n**BACK:** Diffusion of water\n---   \n---")
	require.Len(t, cards, 1)
	assert.Equal(t, "Osmosis", cards[0].Front)
	assert.Equal(t, "Diffusion of water", cards[0].Back)
}

func TestSplitCards_LongerDashRuns(t *testing.T) {
	cards := SplitCards("a\n----\nb\n-----\nc")
	require.Len(t, cards, 3)
	assert.Equal(t, "a", cards[0].Content)
	assert.Equal(t, "b", cards[1].Content)
	assert.Equal(t, "c", cards[2].Content)
}

func TestFormat_Idempotent(t *testing.T) {
	f := NewFormatter()
	for _, tc := range []struct {
		mode model.Mode
		text string
	}{
		{model.ModeFlashcards, "CARD 1:\nFRONT: x\nBACK: y\n---\nCARD 2:\nFRONT: a\nBACK: b"},
		{model.ModeQuiz, sampleQuiz},
		{model.ModeChat, "hello"},
	} {
		assert.Equal(t, f.Format(tc.mode, tc.text), f.Format(tc.mode, tc.text))
	}
}

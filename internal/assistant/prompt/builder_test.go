package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"study-buddy/backend/internal/apperr"
	"study-buddy/backend/internal/model"
)

func TestBuild_ContainsParameters(t *testing.T) {
	b := NewBuilder()

	tests := []struct {
		name string
		req  Request
		want []string
	}{
		{
			name: "explain",
			req:  Request{Mode: model.ModeExplain, Topic: "Photosynthesis", Difficulty: "Advanced", Subject: "Science"},
			want: []string{"Photosynthesis", "Advanced", "Science", "Common misconceptions"},
		},
		{
			name: "summarize",
			req:  Request{Mode: model.ModeSummarize, Text: "Mitochondria are the powerhouse of the cell.", Length: "Detailed"},
			want: []string{"Mitochondria are the powerhouse of the cell.", "Detailed", "detailed summary", "bullet points"},
		},
		{
			name: "quiz",
			req:  Request{Mode: model.ModeQuiz, Topic: "World War II", Count: 7, QuestionType: "True/False", Difficulty: "Hard"},
			want: []string{"World War II", "7", "True/False", "Hard", "Correct Answer:"},
		},
		{
			name: "flashcards",
			req:  Request{Mode: model.ModeFlashcards, Topic: "Derivatives", Count: 12},
			want: []string{"Derivatives", "12", "FRONT:", "BACK:", CardSeparator},
		},
		{
			name: "chat",
			req:  Request{Mode: model.ModeChat, Question: "Why is the sky blue?"},
			want: []string{"Why is the sky blue?", "Related concepts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := b.Build(tt.req)
			require.NoError(t, err)
			require.NotEmpty(t, p)
			for _, w := range tt.want {
				assert.Contains(t, p.String(), w)
			}
		})
	}
}

func TestBuild_TopicEmbeddedVerbatim(t *testing.T) {
	b := NewBuilder()

	for _, topic := range []string{
		"Newton's  laws",
		"Why we ignore previous instructions in history",
	} {
		for _, mode := range []model.Mode{model.ModeExplain, model.ModeQuiz, model.ModeFlashcards} {
			p, err := b.Build(Request{Mode: mode, Topic: topic})
			require.NoError(t, err)
			assert.Contains(t, p.String(), `"`+topic+`"`, "mode %s", mode)
		}
	}
}

func TestBuild_MissingRequiredField(t *testing.T) {
	b := NewBuilder()

	for _, req := range []Request{
		{Mode: model.ModeExplain, Topic: ""},
		{Mode: model.ModeExplain, Topic: "   "},
		{Mode: model.ModeSummarize, Text: ""},
		{Mode: model.ModeQuiz},
		{Mode: model.ModeFlashcards, Count: 10},
		{Mode: model.ModeChat, Question: "\n"},
	} {
		_, err := b.Build(req)
		require.Error(t, err, "mode %s", req.Mode)
		assert.True(t, apperr.Is(err, apperr.KindValidation))
	}
}

func TestBuild_ChatUsesOnlyLatestQuestion(t *testing.T) {
	p, err := NewBuilder().Build(Request{Mode: model.ModeChat, Question: "What is entropy?", Topic: "ignored topic"})
	require.NoError(t, err)
	assert.Contains(t, p.String(), "Question: What is entropy?")
	assert.NotContains(t, p.String(), "ignored topic")
}

func TestBuild_UnknownMode(t *testing.T) {
	_, err := NewBuilder().Build(Request{Mode: "poetry", Topic: "x"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestBuild_SummaryTruncated(t *testing.T) {
	long := strings.Repeat("ж", MaxSummaryChars+500)

	p, err := NewBuilder().Build(Request{Mode: model.ModeSummarize, Text: long})
	require.NoError(t, err)
	assert.Equal(t, MaxSummaryChars, strings.Count(p.String(), "ж"))
}

func TestBuild_SummaryShortTextKeptWhole(t *testing.T) {
	text := strings.Repeat("a", 50)
	p, err := NewBuilder().Build(Request{Mode: model.ModeSummarize, Text: text})
	require.NoError(t, err)
	assert.Contains(t, p.String(), text)
}

func TestBuild_CountRanges(t *testing.T) {
	b := NewBuilder()

	_, err := b.Build(Request{Mode: model.ModeQuiz, Topic: "Cells", Count: 2})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	_, err = b.Build(Request{Mode: model.ModeQuiz, Topic: "Cells", Count: 16})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	_, err = b.Build(Request{Mode: model.ModeFlashcards, Topic: "Cells", Count: 21})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	_, err = b.Build(Request{Mode: model.ModeFlashcards, Topic: "Cells", Count: -1})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	p, err := b.Build(Request{Mode: model.ModeQuiz, Topic: "Cells", Count: MaxQuizQuestions})
	require.NoError(t, err)
	assert.Contains(t, p.String(), "Generate 15 ")
}

func TestNormalize_Defaults(t *testing.T) {
	b := NewBuilder()

	req, err := b.Normalize(Request{Mode: "QUIZ", Topic: "Cells"})
	require.NoError(t, err)
	assert.Equal(t, model.ModeQuiz, req.Mode)
	assert.Equal(t, DefaultQuizQuestions, req.Count)
	assert.Equal(t, "Multiple Choice", req.QuestionType)
	assert.Equal(t, "Easy", req.Difficulty)

	req, err = b.Normalize(Request{Mode: model.ModeExplain, Topic: "Cells", Difficulty: "intermediate", Subject: "computer science"})
	require.NoError(t, err)
	assert.Equal(t, "Intermediate", req.Difficulty)
	assert.Equal(t, "Computer Science", req.Subject)

	req, err = b.Normalize(Request{Mode: model.ModeFlashcards, Topic: "Cells", Subject: "History"})
	require.NoError(t, err)
	assert.Equal(t, DefaultFlashcards, req.Count)
	assert.Empty(t, req.Subject)
}

func TestNormalize_UnknownTier(t *testing.T) {
	_, err := NewBuilder().Normalize(Request{Mode: model.ModeExplain, Topic: "Cells", Difficulty: "Expert"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Beginner, Intermediate, Advanced")
}

func TestTier_Rank(t *testing.T) {
	assert.Less(t, ExplainLevels.Rank("Beginner"), ExplainLevels.Rank("Intermediate"))
	assert.Less(t, ExplainLevels.Rank("Intermediate"), ExplainLevels.Rank("advanced"))
	assert.Less(t, QuizLevels.Rank("Easy"), QuizLevels.Rank("Hard"))
	assert.Equal(t, -1, SummaryLengths.Rank("Huge"))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héllo", TruncateRunes("héllo world", 5))
	assert.Equal(t, "short", TruncateRunes("short", 10))
	assert.Equal(t, "", TruncateRunes("anything", 0))
}

func TestBuild_Deterministic(t *testing.T) {
	b := NewBuilder()
	req := Request{Mode: model.ModeFlashcards, Topic: "Enzymes", Count: 6}
	first, err := b.Build(req)
	require.NoError(t, err)
	second, err := b.Build(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

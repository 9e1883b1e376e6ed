package traversal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionlane/vision-board/internal/domain/questions"
)

func testCatalog(t *testing.T) *questions.Catalog {
	t.Helper()
	c, err := questions.New([]questions.Question{
		{
			ID:     "q1",
			Prompt: "Acquire new skills?",
			Kind:   questions.KindSingleChoice,
			Options: []questions.Option{
				{Label: "Yes", Value: "yes"},
				{Label: "No", Value: "no"},
			},
			SubQuestions: []questions.Question{
				{
					ID:     "q1-1",
					Prompt: "Which ones?",
					Kind:   questions.KindMultiChoice,
					Options: []questions.Option{
						{Label: "Technical", Value: "technical"},
						{Label: "Creative", Value: "creative"},
						{Label: "Other", Value: "other"},
					},
					Condition: &questions.Condition{
						ParentID:       "q1",
						RequiredAnswer: "yes",
					},
				},
			},
		},
		{ID: "q2", Prompt: "Anything else?", Kind: questions.KindText},
	})
	require.NoError(t, err)
	return c
}

func TestNextSkipsUnmetCondition(t *testing.T) {
	e := NewEngine(testCatalog(t))

	answers := map[questions.QuestionID]string{"q1": "no"}
	next, err := e.Next("q1", answers)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, questions.QuestionID("q2"), next.ID)
}

func TestNextEntersMetCondition(t *testing.T) {
	e := NewEngine(testCatalog(t))

	answers := map[questions.QuestionID]string{"q1": "yes"}
	next, err := e.Next("q1", answers)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, questions.QuestionID("q1-1"), next.ID)
}

func TestNextSkipsConditionWithoutParentAnswer(t *testing.T) {
	e := NewEngine(testCatalog(t))

	next, err := e.Next("q1", map[questions.QuestionID]string{})
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, questions.QuestionID("q2"), next.ID)
}

func TestNextNilAtEnd(t *testing.T) {
	e := NewEngine(testCatalog(t))

	next, err := e.Next("q2", map[questions.QuestionID]string{"q1": "no", "q2": "done"})
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestNextUnknownID(t *testing.T) {
	e := NewEngine(testCatalog(t))

	_, err := e.Next("ghost", nil)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

package questions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestions() []Question {
	return []Question{
		{
			ID:     "q1",
			Prompt: "First?",
			Kind:   KindSingleChoice,
			Options: []Option{
				{Label: "Yes", Value: "yes"},
				{Label: "No", Value: "no"},
			},
			SubQuestions: []Question{
				{
					ID:     "q1-1",
					Prompt: "Why yes?",
					Kind:   KindText,
					Condition: &Condition{
						ParentID:       "q1",
						RequiredAnswer: "yes",
					},
				},
			},
		},
		{ID: "q2", Prompt: "Second?", Kind: KindText},
	}
}

func TestFlattenPreOrder(t *testing.T) {
	c, err := New(testQuestions())
	require.NoError(t, err)

	var ids []QuestionID
	for _, q := range c.Flatten() {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []QuestionID{"q1", "q1-1", "q2"}, ids)
	assert.Equal(t, 3, c.Len())
}

func TestPositionAndGet(t *testing.T) {
	c, err := New(testQuestions())
	require.NoError(t, err)

	q, ok := c.Get("q1-1")
	require.True(t, ok)
	assert.Equal(t, "Why yes?", q.Prompt)

	pos, ok := c.Position("q2")
	require.True(t, ok)
	assert.Equal(t, 2, pos)

	_, ok = c.Get("nope")
	assert.False(t, ok)

	assert.Equal(t, QuestionID("q1"), c.First().ID)
}

func TestValidationRejectsDuplicateID(t *testing.T) {
	qs := []Question{
		{ID: "q1", Prompt: "a", Kind: KindText},
		{ID: "q1", Prompt: "b", Kind: KindText},
	}
	_, err := New(qs)
	assert.ErrorContains(t, err, "duplicate")
}

func TestValidationRejectsEmptyID(t *testing.T) {
	_, err := New([]Question{{Prompt: "a", Kind: KindText}})
	assert.ErrorContains(t, err, "empty id")
}

func TestValidationRejectsUnknownConditionParent(t *testing.T) {
	qs := []Question{
		{ID: "q1", Prompt: "a", Kind: KindText},
		{
			ID: "q2", Prompt: "b", Kind: KindText,
			Condition: &Condition{ParentID: "ghost", RequiredAnswer: "yes"},
		},
	}
	_, err := New(qs)
	assert.Error(t, err)
}

func TestValidationRejectsConditionBeforeParent(t *testing.T) {
	qs := []Question{
		{
			ID: "q1", Prompt: "a", Kind: KindText,
			Condition: &Condition{ParentID: "q2", RequiredAnswer: "yes"},
		},
		{ID: "q2", Prompt: "b", Kind: KindText},
	}
	_, err := New(qs)
	assert.Error(t, err)
}

func TestValidationRejectsChoiceWithoutOptions(t *testing.T) {
	_, err := New([]Question{{ID: "q1", Prompt: "a", Kind: KindSingleChoice}})
	assert.Error(t, err)
}

func TestValidationRejectsEmptyCatalog(t *testing.T) {
	_, err := New(nil)
	assert.ErrorContains(t, err, "no questions")
}

func TestLoadFromYAML(t *testing.T) {
	doc := `
questions:
  - id: q1
    category: Test
    prompt: Ready?
    kind: single-choice
    options:
      - { label: "Yes", value: "yes" }
      - { label: "No", value: "no" }
    subQuestions:
      - id: q1-1
        category: Test
        prompt: Why?
        kind: text
        condition:
          parentId: q1
          requiredAnswer: "yes"
  - id: q2
    category: Test
    prompt: Anything else?
    kind: text
`
	path := filepath.Join(t.TempDir(), "questions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	q, ok := c.Get("q1-1")
	require.True(t, ok)
	require.NotNil(t, q.Condition)
	assert.Equal(t, QuestionID("q1"), q.Condition.ParentID)
	assert.Equal(t, "yes", q.Condition.RequiredAnswer)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestHasOption(t *testing.T) {
	q := &Question{Options: []Option{{Label: "Other", Value: "other"}}}
	assert.True(t, q.HasOption("other"))
	assert.False(t, q.HasOption("missing"))
}

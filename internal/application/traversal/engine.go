package traversal

import (
	"fmt"

	"github.com/visionlane/vision-board/internal/domain/questions"
)

// Engine computes forward traversal over a validated catalog. It is
// stateless and safe to share; per-session state lives in State.
type Engine struct {
	catalog *questions.Catalog
}

func NewEngine(c *questions.Catalog) *Engine {
	return &Engine{catalog: c}
}

func (e *Engine) Catalog() *questions.Catalog {
	return e.catalog
}

// Next returns the first question strictly after currentID in the
// flattened sequence whose condition is absent or satisfied by the
// id-keyed answers. A missing answer never satisfies a condition.
// nil means the traversal is complete.
func (e *Engine) Next(currentID questions.QuestionID, answersByID map[questions.QuestionID]string) (*questions.Question, error) {
	pos, ok := e.catalog.Position(currentID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, currentID)
	}
	flat := e.catalog.Flatten()
	for i := pos + 1; i < len(flat); i++ {
		q := flat[i]
		if q.Condition == nil {
			return q, nil
		}
		if got, ok := answersByID[q.Condition.ParentID]; ok && got == q.Condition.RequiredAnswer {
			return q, nil
		}
	}
	return nil, nil
}

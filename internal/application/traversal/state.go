package traversal

import (
	"strings"

	"github.com/visionlane/vision-board/internal/domain/questions"
)

// State is one traversal session: the current question, the linear
// back-navigation history, and the accumulated answers. Answers are
// tracked under the question id (for condition gating) and under the
// prompt text (the AnswerMap handed to collaborators).
type State struct {
	engine  *Engine
	current questions.QuestionID
	history []questions.QuestionID
	answers *AnswerMap
	byID    map[questions.QuestionID]string
	atEnd   bool
	done    bool
}

func NewState(e *Engine) *State {
	first := e.Catalog().First()
	return &State{
		engine:  e,
		current: first.ID,
		history: []questions.QuestionID{first.ID},
		answers: NewAnswerMap(),
		byID:    make(map[questions.QuestionID]string),
	}
}

// Current returns the question being shown, or nil after completion.
func (s *State) Current() *questions.Question {
	if s.done {
		return nil
	}
	q, _ := s.engine.Catalog().Get(s.current)
	return q
}

func (s *State) Completed() bool {
	return s.done
}

// Answers exposes the prompt-keyed answer map. Discarded with the state.
func (s *State) Answers() *AnswerMap {
	return s.answers
}

// PreviousAnswer returns the stored answer for q, for rehydrating the
// widgets when the user navigates back.
func (s *State) PreviousAnswer(q *questions.Question) (string, bool) {
	return s.answers.Get(q.Prompt)
}

// Answer validates raw for the current question, records it, and
// advances to the next visible question. For choice questions raw must
// already be encoded (see EncodeSingleChoice and EncodeMultiChoice).
// Validation failure leaves the state untouched.
//
// When no visible question remains the completion is only staged, not
// committed: the caller hands the answers off to the collaborators and
// calls Finish on success. Until then the final question stays current,
// so a failed hand-off can be retried with the same submission.
func (s *State) Answer(raw string) error {
	if s.done {
		return ErrComplete
	}
	q := s.Current()

	switch q.Kind {
	case questions.KindText:
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return ErrEmptyAnswer
		}
	default:
		if strings.TrimSpace(raw) == "" {
			return ErrNoSelection
		}
	}

	s.answers.Set(q.Prompt, raw)
	s.byID[q.ID] = raw

	next, err := s.engine.Next(s.current, s.byID)
	if err != nil {
		return err
	}
	if next == nil {
		s.atEnd = true
		return nil
	}
	s.atEnd = false
	s.current = next.ID
	s.history = append(s.history, next.ID)
	return nil
}

// AtEnd reports whether the last recorded answer ended the traversal.
func (s *State) AtEnd() bool {
	return s.atEnd
}

// Finish commits a staged completion. No-op unless the traversal is at
// its end; after Finish the state rejects further answers.
func (s *State) Finish() {
	if s.atEnd {
		s.done = true
	}
}

// Back pops the history and returns the question to show again. The
// second return is false when the move was a no-op: already at the
// first question, or the traversal is complete.
func (s *State) Back() (*questions.Question, bool) {
	if s.done || len(s.history) <= 1 {
		return s.Current(), false
	}
	s.atEnd = false
	s.history = s.history[:len(s.history)-1]
	s.current = s.history[len(s.history)-1]
	return s.Current(), true
}

// Progress is completed answers over the full flattened count, as a
// percentage. Conditionally-skipped questions stay in the denominator,
// so a finished traversal with skipped branches lands under 100.
func (s *State) Progress() float64 {
	return float64(s.answers.Len()) / float64(s.engine.Catalog().Len()) * 100
}

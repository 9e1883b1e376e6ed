package questions

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the static question tree. It is configuration data: loaded
// once at startup, validated, and never mutated afterwards.
type Catalog struct {
	questions []Question
	flat      []*Question
	index     map[QuestionID]int // position in flat
}

// Load reads a catalog YAML file and validates it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Questions []Question `yaml:"questions"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return New(doc.Questions)
}

// New builds a catalog from already-decoded questions and validates it.
func New(qs []Question) (*Catalog, error) {
	c := &Catalog{questions: qs}
	c.flat = flatten(qs, nil)
	c.index = make(map[QuestionID]int, len(c.flat))
	for i, q := range c.flat {
		if q.ID == "" {
			return nil, fmt.Errorf("question %d: empty id", i)
		}
		if _, dup := c.index[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		c.index[q.ID] = i
	}
	for i, q := range c.flat {
		if err := c.validate(i, q); err != nil {
			return nil, err
		}
	}
	if len(c.flat) == 0 {
		return nil, fmt.Errorf("catalog has no questions")
	}
	return c, nil
}

func (c *Catalog) validate(pos int, q *Question) error {
	switch q.Kind {
	case KindText:
		if len(q.Options) > 0 {
			return fmt.Errorf("question %q: text questions cannot carry options", q.ID)
		}
	case KindSingleChoice, KindMultiChoice:
		if len(q.Options) == 0 {
			return fmt.Errorf("question %q: choice questions need options", q.ID)
		}
	default:
		return fmt.Errorf("question %q: unknown kind %q", q.ID, q.Kind)
	}
	if q.Condition != nil {
		parent, ok := c.index[q.Condition.ParentID]
		if !ok {
			return fmt.Errorf("question %q: condition references unknown question %q", q.ID, q.Condition.ParentID)
		}
		// The parent must already have been asked when this question is reached.
		if parent >= pos {
			return fmt.Errorf("question %q: condition parent %q does not precede it", q.ID, q.Condition.ParentID)
		}
	}
	return nil
}

// Flatten returns the pre-order linearization: each question before its
// sub-questions, catalog order preserved. The returned slice is shared;
// callers must not mutate it.
func (c *Catalog) Flatten() []*Question {
	return c.flat
}

// Get looks a question up by id. Second return is false if absent.
func (c *Catalog) Get(id QuestionID) (*Question, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return c.flat[i], true
}

// Position returns the index of id in the flattened sequence.
func (c *Catalog) Position(id QuestionID) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// First returns the first question of the flattened sequence.
func (c *Catalog) First() *Question {
	return c.flat[0]
}

// Len is the total number of flattened questions, skippable ones included.
func (c *Catalog) Len() int {
	return len(c.flat)
}

func flatten(qs []Question, out []*Question) []*Question {
	for i := range qs {
		q := &qs[i]
		out = append(out, q)
		out = flatten(q.SubQuestions, out)
	}
	return out
}

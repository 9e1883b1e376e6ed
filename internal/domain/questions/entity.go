package questions

// ID tipe untuk Question
type QuestionID string

// Kind enum
type Kind string

const (
	KindText         Kind = "text"
	KindSingleChoice Kind = "single-choice"
	KindMultiChoice  Kind = "multi-choice"
)

// OptionOther is the reserved option value that asks for free text.
const OptionOther = "other"

// Option is one selectable choice.
type Option struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// Condition gates a sub-question on a specific prior answer value.
type Condition struct {
	ParentID       QuestionID `yaml:"parentId" json:"parent_id"`
	RequiredAnswer string     `yaml:"requiredAnswer" json:"required_answer"`
}

// Question is a node in the catalog tree. Conditional questions only
// appear inside some ancestor's SubQuestions.
type Question struct {
	ID           QuestionID `yaml:"id" json:"id"`
	Category     string     `yaml:"category" json:"category"`
	Prompt       string     `yaml:"prompt" json:"prompt"`
	Kind         Kind       `yaml:"kind" json:"kind"`
	Options      []Option   `yaml:"options,omitempty" json:"options,omitempty"`
	SubQuestions []Question `yaml:"subQuestions,omitempty" json:"sub_questions,omitempty"`
	Condition    *Condition `yaml:"condition,omitempty" json:"condition,omitempty"`
}

// HasOption reports whether value is one of the question's option values.
func (q *Question) HasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

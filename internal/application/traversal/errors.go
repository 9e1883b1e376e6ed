package traversal

import "errors"

// Validation errors are rejected locally: no state change, no collaborator call.
var (
	ErrEmptyAnswer      = errors.New("answer is empty")
	ErrNoSelection      = errors.New("no option selected")
	ErrOtherTextMissing = errors.New("other selected without text")
	ErrUnknownOption    = errors.New("unknown option value")
)

// ErrQuestionNotFound means the flattened catalog does not contain the id
// asked for. With a validated catalog this is a programming error.
var ErrQuestionNotFound = errors.New("question not found in catalog")

// ErrComplete is returned for transitions attempted after completion.
var ErrComplete = errors.New("traversal already complete")

// IsValidation reports whether err is a locally-rejected input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyAnswer) ||
		errors.Is(err, ErrNoSelection) ||
		errors.Is(err, ErrOtherTextMissing) ||
		errors.Is(err, ErrUnknownOption)
}

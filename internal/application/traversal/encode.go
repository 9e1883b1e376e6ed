package traversal

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/visionlane/vision-board/internal/domain/questions"
)

// otherTextLimit caps the free text supplied with the "other" option.
const otherTextLimit = 100

const otherPrefix = "Other: "

// EncodeSingleChoice validates a single-choice selection and returns the
// stored answer string. Selecting the "other" sentinel requires text.
func EncodeSingleChoice(q *questions.Question, value, otherText string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", ErrNoSelection
	}
	if !q.HasOption(value) {
		return "", fmt.Errorf("%w: %s", ErrUnknownOption, value)
	}
	if value == questions.OptionOther {
		return encodeOther(otherText)
	}
	return value, nil
}

// EncodeMultiChoice serializes selected option values as a comma-and-space
// joined list, with "other" replaced by "Other: <text>" and moved to the
// end; other selections keep their order.
func EncodeMultiChoice(q *questions.Question, selected []string, otherText string) (string, error) {
	if len(selected) == 0 {
		return "", ErrNoSelection
	}
	parts := make([]string, 0, len(selected))
	hasOther := false
	for _, v := range selected {
		if !q.HasOption(v) {
			return "", fmt.Errorf("%w: %s", ErrUnknownOption, v)
		}
		if v == questions.OptionOther {
			hasOther = true
			continue
		}
		parts = append(parts, v)
	}
	// The other entry goes last so the free text stays decodable even
	// when it contains the separator.
	if hasOther {
		enc, err := encodeOther(otherText)
		if err != nil {
			return "", err
		}
		parts = append(parts, enc)
	}
	return strings.Join(parts, ", "), nil
}

// DecodeMultiChoice reconstructs the selected option values and the
// "other" text from a previously stored answer, for widget rehydration.
func DecodeMultiChoice(q *questions.Question, stored string) (selected []string, otherText string) {
	// The other text may itself contain ", ", so it cannot be split; it is
	// always the tail of the serialized form.
	if i := strings.Index(stored, otherPrefix); i >= 0 {
		otherText = stored[i+len(otherPrefix):]
		stored = strings.TrimSuffix(stored[:i], ", ")
	}
	for _, part := range strings.Split(stored, ", ") {
		if part != "" && part != questions.OptionOther && q.HasOption(part) {
			selected = append(selected, part)
		}
	}
	if otherText != "" {
		selected = append(selected, questions.OptionOther)
	}
	return selected, otherText
}

// DecodeSingleChoice reconstructs the selected option value and the
// "other" text from a previously stored answer.
func DecodeSingleChoice(stored string) (value, otherText string) {
	if strings.HasPrefix(stored, otherPrefix) {
		return questions.OptionOther, stored[len(otherPrefix):]
	}
	return stored, ""
}

func encodeOther(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrOtherTextMissing
	}
	if len(text) > otherTextLimit {
		// Back off to a rune boundary so the cut never leaves invalid
		// UTF-8 in the stored answer.
		n := otherTextLimit
		for n > 0 && !utf8.RuneStart(text[n]) {
			n--
		}
		text = text[:n]
	}
	return otherPrefix + text, nil
}

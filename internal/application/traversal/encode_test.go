package traversal

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionlane/vision-board/internal/domain/questions"
)

func choiceQuestion() *questions.Question {
	return &questions.Question{
		ID:   "q",
		Kind: questions.KindMultiChoice,
		Options: []questions.Option{
			{Label: "Family", Value: "family"},
			{Label: "Friends", Value: "friends"},
			{Label: "Other", Value: "other"},
		},
	}
}

func TestEncodeSingleChoice(t *testing.T) {
	q := choiceQuestion()

	got, err := EncodeSingleChoice(q, "family", "")
	require.NoError(t, err)
	assert.Equal(t, "family", got)
}

func TestEncodeSingleChoiceOther(t *testing.T) {
	q := choiceQuestion()

	got, err := EncodeSingleChoice(q, "other", "my neighbors")
	require.NoError(t, err)
	assert.Equal(t, "Other: my neighbors", got)
}

func TestEncodeSingleChoiceOtherWithoutText(t *testing.T) {
	q := choiceQuestion()

	_, err := EncodeSingleChoice(q, "other", "  ")
	assert.ErrorIs(t, err, ErrOtherTextMissing)
}

func TestEncodeSingleChoiceUnknownOption(t *testing.T) {
	q := choiceQuestion()

	_, err := EncodeSingleChoice(q, "enemies", "")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestEncodeSingleChoiceEmpty(t *testing.T) {
	_, err := EncodeSingleChoice(choiceQuestion(), "", "")
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestEncodeMultiChoice(t *testing.T) {
	q := choiceQuestion()

	got, err := EncodeMultiChoice(q, []string{"family", "friends"}, "")
	require.NoError(t, err)
	assert.Equal(t, "family, friends", got)
}

func TestEncodeMultiChoiceOtherGoesLast(t *testing.T) {
	q := choiceQuestion()

	got, err := EncodeMultiChoice(q, []string{"other", "family"}, "my book club")
	require.NoError(t, err)
	assert.Equal(t, "family, Other: my book club", got)
}

func TestEncodeMultiChoiceEmptySelection(t *testing.T) {
	_, err := EncodeMultiChoice(choiceQuestion(), nil, "")
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestEncodeMultiChoiceOtherTextTruncated(t *testing.T) {
	q := choiceQuestion()
	long := strings.Repeat("x", 150)

	got, err := EncodeMultiChoice(q, []string{"other"}, long)
	require.NoError(t, err)
	assert.Equal(t, "Other: "+strings.Repeat("x", 100), got)
}

func TestEncodeOtherTextTruncatesOnRuneBoundary(t *testing.T) {
	q := choiceQuestion()
	// "é" is two bytes and starts at byte 99, so a byte-offset cut
	// would leave a dangling lead byte.
	text := strings.Repeat("a", 99) + "éxtra"

	got, err := EncodeSingleChoice(q, "other", text)
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Other: "+strings.Repeat("a", 99), got)
}

func TestMultiChoiceRoundTrip(t *testing.T) {
	q := choiceQuestion()

	stored, err := EncodeMultiChoice(q, []string{"family", "other", "friends"}, "volunteering, mentoring")
	require.NoError(t, err)

	selected, otherText := DecodeMultiChoice(q, stored)
	assert.Equal(t, []string{"family", "friends", "other"}, selected)
	// The free text survives even though it contains the separator.
	assert.Equal(t, "volunteering, mentoring", otherText)
}

func TestDecodeMultiChoiceWithoutOther(t *testing.T) {
	q := choiceQuestion()

	selected, otherText := DecodeMultiChoice(q, "family, friends")
	assert.Equal(t, []string{"family", "friends"}, selected)
	assert.Empty(t, otherText)
}

func TestDecodeSingleChoice(t *testing.T) {
	value, otherText := DecodeSingleChoice("family")
	assert.Equal(t, "family", value)
	assert.Empty(t, otherText)

	value, otherText = DecodeSingleChoice("Other: my neighbors")
	assert.Equal(t, "other", value)
	assert.Equal(t, "my neighbors", otherText)
}

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexPlainText(t *testing.T) {
	tokens := Lex("hello world")
	assert.Equal(t, []Token{{Kind: Text, Text: "hello world"}}, tokens)
}

func TestLexHeaderLevels(t *testing.T) {
	tokens := Lex("# Top\n## Mid\n### Small\nbody")
	assert.Equal(t, []Token{
		{Kind: Header, Level: 1, Text: "Top"},
		{Kind: Header, Level: 2, Text: "Mid"},
		{Kind: Header, Level: 3, Text: "Small"},
		{Kind: Text, Text: "body"},
	}, tokens)
}

func TestLexHeaderOnlyAtLineStart(t *testing.T) {
	tokens := Lex("not a # header")
	assert.Equal(t, []Token{{Kind: Text, Text: "not a # header"}}, tokens)
}

func TestLexBoldBeforeItalic(t *testing.T) {
	tokens := Lex("**strong** and *slanted*")
	assert.Equal(t, []Token{
		{Kind: Bold, Text: "strong"},
		{Kind: Text, Text: " and "},
		{Kind: Italic, Text: "slanted"},
	}, tokens)
}

func TestLexInlineCode(t *testing.T) {
	tokens := Lex("run `go version` now")
	assert.Equal(t, []Token{
		{Kind: Text, Text: "run "},
		{Kind: Code, Text: "go version"},
		{Kind: Text, Text: " now"},
	}, tokens)
}

func TestLexUnterminatedMarkersStayLiteral(t *testing.T) {
	tokens := Lex("a **dangling bold")
	assert.Equal(t, []Token{{Kind: Text, Text: "a **dangling bold"}}, tokens)

	tokens = Lex("lone * star")
	assert.Equal(t, []Token{{Kind: Text, Text: "lone * star"}}, tokens)
}

func TestLexMarkerNotClosedOnSameLine(t *testing.T) {
	tokens := Lex("**spans\nlines** no")
	assert.Equal(t, []Token{
		{Kind: Text, Text: "**spans"},
		{Kind: SoftBreak},
		{Kind: Text, Text: "lines** no"},
	}, tokens)
}

func TestLexListItems(t *testing.T) {
	tokens := Lex("- first\n- **second** item")
	assert.Equal(t, []Token{
		{Kind: ListItem},
		{Kind: Text, Text: "first"},
		{Kind: SoftBreak},
		{Kind: ListItem},
		{Kind: Bold, Text: "second"},
		{Kind: Text, Text: " item"},
	}, tokens)
}

func TestLexDashMidLineIsText(t *testing.T) {
	tokens := Lex("a - b")
	assert.Equal(t, []Token{{Kind: Text, Text: "a - b"}}, tokens)
}

func TestLexBreaks(t *testing.T) {
	tokens := Lex("one\ntwo\n\nthree")
	assert.Equal(t, []Token{
		{Kind: Text, Text: "one"},
		{Kind: SoftBreak},
		{Kind: Text, Text: "two"},
		{Kind: HardBreak},
		{Kind: Text, Text: "three"},
	}, tokens)
}

func TestLexCollapsesExtraBlankLines(t *testing.T) {
	tokens := Lex("one\n\n\n\ntwo")
	assert.Equal(t, []Token{
		{Kind: Text, Text: "one"},
		{Kind: HardBreak},
		{Kind: Text, Text: "two"},
	}, tokens)
}

func TestLexHeaderConsumesItsNewline(t *testing.T) {
	tokens := Lex("# Title\nbody")
	assert.Equal(t, []Token{
		{Kind: Header, Level: 1, Text: "Title"},
		{Kind: Text, Text: "body"},
	}, tokens)
}

func TestLexEmptyInput(t *testing.T) {
	assert.Empty(t, Lex(""))
}

// Package markdown implements the small fixed markdown subset produced
// by the analysis collaborator: headers, bold, italic, inline code,
// unordered list items, and line breaks. A single-pass scanner turns
// the text into typed tokens consumed by the HTML renderer and by the
// PDF page-layout engine.
package markdown

import "strings"

// TokenKind discriminates lexer tokens.
type TokenKind int

const (
	// Text is a plain inline span.
	Text TokenKind = iota
	// Bold is a **...** span.
	Bold
	// Italic is a *...* span.
	Italic
	// Code is a `...` span.
	Code
	// Header is a whole "# ", "## " or "### " line; Level is 1..3.
	// The newline terminating a header is consumed by the header.
	Header
	// ListItem marks a "- " line start; the item's inline tokens follow
	// until the next break.
	ListItem
	// SoftBreak is a single newline between lines.
	SoftBreak
	// HardBreak is a blank line between sections.
	HardBreak
)

// Token is one lexed element. Text carries the content for inline kinds
// and headers; Level is set for Header only.
type Token struct {
	Kind  TokenKind
	Level int
	Text  string
}

// Lex scans src into tokens. Unterminated markers are kept literal.
func Lex(src string) []Token {
	l := &lexer{src: src}
	l.run()
	return l.tokens
}

type lexer struct {
	src       string
	pos       int
	tokens    []Token
	lineStart bool
}

func (l *lexer) run() {
	l.lineStart = true
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			l.emit(Token{Kind: Text, Text: plain.String()})
			plain.Reset()
		}
	}

	for l.pos < len(l.src) {
		if l.lineStart {
			if lvl, rest := l.headerLine(); lvl > 0 {
				flush()
				l.emit(Token{Kind: Header, Level: lvl, Text: rest})
				continue
			}
			if strings.HasPrefix(l.src[l.pos:], "- ") {
				flush()
				l.emit(Token{Kind: ListItem})
				l.pos += 2
				l.lineStart = false
				continue
			}
			l.lineStart = false
		}

		c := l.src[l.pos]
		switch {
		case c == '\n':
			flush()
			if l.pos+1 < len(l.src) && l.src[l.pos+1] == '\n' {
				l.emit(Token{Kind: HardBreak})
				l.pos += 2
				// Collapse any further consecutive blank lines.
				for l.pos < len(l.src) && l.src[l.pos] == '\n' {
					l.pos++
				}
			} else {
				l.emit(Token{Kind: SoftBreak})
				l.pos++
			}
			l.lineStart = true
		case strings.HasPrefix(l.src[l.pos:], "**"):
			if body, n := l.spanUntil("**", 2); n > 0 {
				flush()
				l.emit(Token{Kind: Bold, Text: body})
				l.pos += n
			} else {
				plain.WriteString("**")
				l.pos += 2
			}
		case c == '*':
			if body, n := l.spanUntil("*", 1); n > 0 {
				flush()
				l.emit(Token{Kind: Italic, Text: body})
				l.pos += n
			} else {
				plain.WriteByte('*')
				l.pos++
			}
		case c == '`':
			if body, n := l.spanUntil("`", 1); n > 0 {
				flush()
				l.emit(Token{Kind: Code, Text: body})
				l.pos += n
			} else {
				plain.WriteByte('`')
				l.pos++
			}
		default:
			plain.WriteByte(c)
			l.pos++
		}
	}
	flush()
}

// headerLine matches "# ".."### " at line start; on a match it consumes
// the whole line including its trailing newline and returns the level
// and the header text.
func (l *lexer) headerLine() (int, string) {
	rest := l.src[l.pos:]
	lvl := 0
	for lvl < len(rest) && lvl < 3 && rest[lvl] == '#' {
		lvl++
	}
	if lvl == 0 || lvl >= len(rest) || rest[lvl] != ' ' {
		return 0, ""
	}
	body := rest[lvl+1:]
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		l.pos += lvl + 1 + i + 1
		return lvl, body[:i]
	}
	l.pos += len(rest)
	return lvl, body
}

// spanUntil finds the closing marker on the same line and returns the
// inner text plus total consumed length (markers included). Zero length
// means unterminated.
func (l *lexer) spanUntil(marker string, open int) (string, int) {
	rest := l.src[l.pos+open:]
	end := strings.Index(rest, marker)
	if end <= 0 {
		return "", 0
	}
	body := rest[:end]
	if strings.ContainsRune(body, '\n') {
		return "", 0
	}
	return body, open + end + len(marker)
}

func (l *lexer) emit(t Token) {
	l.tokens = append(l.tokens, t)
}

// Package pdf turns analysis markdown into a paginated, downloadable
// report. The layout engine is independent of the byte-level writer:
// it produces positioned text runs against an injectable width
// measurement, and the writer serializes those runs as a PDF document.
package pdf

import (
	"strings"

	"github.com/visionlane/vision-board/internal/markdown"
)

// Run is one positioned piece of text, uniform in font and weight.
// A wrapped line that mixes bold and regular spans produces one run
// per span, laid out left to right.
type Run struct {
	Text string
	X    float64
	Y    float64
	Size float64
	Bold bool
}

// Page is an ordered sequence of runs, top to bottom.
type Page struct {
	Runs []Run
}

// MeasureFunc reports the rendered width of text at the given size.
type MeasureFunc func(text string, size float64, bold bool) float64

// Layout holds the page geometry and fonts for pagination.
type Layout struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	BodySize   float64
	TitleSize  float64
	Measure    MeasureFunc
}

// DefaultLayout matches the original report: US Letter points, 50pt
// margin, 12pt body, 16pt titles, Times metrics.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:  612,
		PageHeight: 792,
		Margin:     50,
		BodySize:   12,
		TitleSize:  16,
		Measure:    TimesWidth,
	}
}

const listIndent = 20

// fragment is a piece of text with one style.
type fragment struct {
	text string
	bold bool
}

// atom is one unbreakable word; it can span a style boundary, which is
// how a bold word and its plain punctuation suffix stay together.
type atom []fragment

type block struct {
	header bool
	size   float64
	indent float64
	atoms  []atom
}

// Paginate lays the markdown source out into pages of positioned runs.
// Sections are separated by blank lines; headers use the title font and
// list items a fixed indent. Lines are wrapped greedily; a single word
// wider than the writable width is placed alone, never truncated.
func (l Layout) Paginate(src string) []Page {
	if l.Measure == nil {
		l.Measure = TimesWidth
	}
	blocks := l.blocks(markdown.Lex(src))
	lineHeight := l.BodySize * 1.5

	var pages []Page
	page := Page{}
	y := l.PageHeight - l.Margin

	for _, b := range blocks {
		for _, line := range l.wrap(b) {
			if y < l.Margin {
				pages = append(pages, page)
				page = Page{}
				y = l.PageHeight - l.Margin
			}
			x := l.Margin + b.indent
			for _, f := range line {
				page.Runs = append(page.Runs, Run{Text: f.text, X: x, Y: y, Size: b.size, Bold: f.bold})
				x += l.Measure(f.text, b.size, f.bold)
			}
			y -= lineHeight
		}
		// Gap after a section: a full line after headers, half otherwise.
		if b.header {
			y -= lineHeight
		} else {
			y -= lineHeight / 2
		}
	}
	if len(page.Runs) > 0 || len(pages) == 0 {
		pages = append(pages, page)
	}
	return pages
}

// blocks groups lexed tokens into wrap units: headers stand alone,
// everything else accumulates until a blank line. Single newlines
// inside a section become spaces, as in the original renderer.
func (l Layout) blocks(tokens []markdown.Token) []block {
	var out []block
	cur := block{size: l.BodySize}
	var ab atomBuilder

	flush := func() {
		cur.atoms = ab.atoms
		if len(cur.atoms) > 0 {
			out = append(out, cur)
		}
		cur = block{size: l.BodySize}
		ab = atomBuilder{}
	}

	for _, t := range tokens {
		switch t.Kind {
		case markdown.Header:
			flush()
			size := l.TitleSize
			switch t.Level {
			case 2:
				size = l.TitleSize - 2
			case 3:
				size = l.BodySize
			}
			var hb atomBuilder
			hb.add(strings.ReplaceAll(t.Text, "**", ""), false)
			if len(hb.atoms) > 0 {
				out = append(out, block{header: true, size: size, atoms: hb.atoms})
			}
		case markdown.ListItem:
			cur.indent = listIndent
			ab.add("• ", false)
		case markdown.Bold:
			ab.add(t.Text, true)
		case markdown.Italic, markdown.Code, markdown.Text:
			ab.add(t.Text, false)
		case markdown.SoftBreak:
			ab.add(" ", false)
		case markdown.HardBreak:
			flush()
		}
	}
	flush()
	return out
}

// atomBuilder splits incoming styled text on spaces and accumulates
// atoms. Text arriving without a leading space glues onto the previous
// atom across style boundaries.
type atomBuilder struct {
	atoms []atom
	open  bool
}

func (ab *atomBuilder) add(text string, bold bool) {
	for len(text) > 0 {
		word := text
		spaced := false
		if i := strings.IndexByte(text, ' '); i >= 0 {
			word, text, spaced = text[:i], text[i+1:], true
		} else {
			text = ""
		}
		if word == "" {
			ab.open = false
			continue
		}
		if ab.open {
			last := ab.atoms[len(ab.atoms)-1]
			if last[len(last)-1].bold == bold {
				last[len(last)-1].text += word
			} else {
				ab.atoms[len(ab.atoms)-1] = append(last, fragment{text: word, bold: bold})
			}
		} else {
			ab.atoms = append(ab.atoms, atom{{text: word, bold: bold}})
		}
		ab.open = !spaced
	}
}

// wrap greedily packs atoms into lines no wider than the writable
// width, then merges adjacent same-style pieces into per-line
// fragments. Separator spaces ride with the preceding fragment.
func (l Layout) wrap(b block) [][]fragment {
	maxWidth := l.PageWidth - 2*l.Margin - b.indent
	space := l.Measure(" ", b.size, false)

	var lines [][]atom
	var line []atom
	width := 0.0
	for _, a := range b.atoms {
		w := l.atomWidth(a, b.size)
		if len(line) > 0 && width+space+w > maxWidth {
			lines = append(lines, line)
			line, width = nil, 0
		}
		if len(line) > 0 {
			width += space
		}
		line = append(line, a)
		width += w
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}

	out := make([][]fragment, 0, len(lines))
	for _, atoms := range lines {
		var frags []fragment
		for i, a := range atoms {
			if i > 0 {
				frags[len(frags)-1].text += " "
			}
			for _, f := range a {
				if n := len(frags); n > 0 && frags[n-1].bold == f.bold {
					frags[n-1].text += f.text
					continue
				}
				frags = append(frags, f)
			}
		}
		out = append(out, frags)
	}
	return out
}

func (l Layout) atomWidth(a atom, size float64) float64 {
	w := 0.0
	for _, f := range a {
		w += l.Measure(f.text, size, f.bold)
	}
	return w
}

package pdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// charWidth makes every byte one unit wide, so widths equal lengths.
func charWidth(text string, size float64, bold bool) float64 {
	return float64(len(text))
}

// tinyLayout fits one five-character word per line and exactly three
// lines per page.
func tinyLayout() Layout {
	return Layout{
		PageWidth:  25, // writable width 5
		PageHeight: 60, // y: 50, 35, 20, then break
		Margin:     10,
		BodySize:   10, // lineHeight 15
		TitleSize:  14,
		Measure:    charWidth,
	}
}

func TestPaginateBreaksByPageHeight(t *testing.T) {
	// Five words, one per line, three lines per page.
	src := "aaaa bbbb cccc dddd eeee"
	pages := tinyLayout().Paginate(src)

	require.Len(t, pages, 2)
	assert.Len(t, pages[0].Runs, 3)
	assert.Len(t, pages[1].Runs, 2)

	// Full lines and page breaks only; nothing is dropped.
	var all []string
	for _, p := range pages {
		for _, r := range p.Runs {
			all = append(all, r.Text)
		}
	}
	assert.Equal(t, []string{"aaaa", "bbbb", "cccc", "dddd", "eeee"}, all)

	// Each page restarts at the top.
	assert.Equal(t, pages[0].Runs[0].Y, pages[1].Runs[0].Y)
	assert.Greater(t, pages[0].Runs[0].Y, pages[0].Runs[1].Y)
}

func TestWrapGreedy(t *testing.T) {
	l := tinyLayout()
	l.PageWidth = 31 // writable width 11: two 5-wide words + space
	pages := l.Paginate("aaaaa bbbbb ccccc")

	require.Len(t, pages, 1)
	runs := pages[0].Runs
	require.Len(t, runs, 2)
	assert.Equal(t, "aaaaa bbbbb", runs[0].Text)
	assert.Equal(t, "ccccc", runs[1].Text)
}

func TestOverwideWordPlacedAlone(t *testing.T) {
	pages := tinyLayout().Paginate("short " + strings.Repeat("x", 40) + " tail")

	require.Len(t, pages, 1)
	runs := pages[0].Runs
	require.Len(t, runs, 3)
	assert.Equal(t, "short", runs[0].Text)
	assert.Equal(t, strings.Repeat("x", 40), runs[1].Text)
	assert.Equal(t, "tail", runs[2].Text)
}

func TestBoldSpanProducesSeparateRuns(t *testing.T) {
	l := DefaultLayout()
	l.Measure = charWidth
	pages := l.Paginate("**Goal**: grow")

	require.Len(t, pages, 1)
	runs := pages[0].Runs
	require.Len(t, runs, 2)

	assert.Equal(t, "Goal", runs[0].Text)
	assert.True(t, runs[0].Bold)
	assert.Equal(t, ": grow", runs[1].Text)
	assert.False(t, runs[1].Bold)

	// Same line, laid out left to right.
	assert.Equal(t, runs[0].Y, runs[1].Y)
	assert.Equal(t, runs[0].X+charWidth("Goal", 0, true), runs[1].X)
}

func TestHeaderUsesTitleSizeAndStripsBold(t *testing.T) {
	l := DefaultLayout()
	l.Measure = charWidth
	pages := l.Paginate("# **Vision** Plan\nbody text")

	require.Len(t, pages, 1)
	runs := pages[0].Runs
	require.Len(t, runs, 2)

	assert.Equal(t, "Vision Plan", runs[0].Text)
	assert.Equal(t, l.TitleSize, runs[0].Size)
	assert.False(t, runs[0].Bold)

	assert.Equal(t, "body text", runs[1].Text)
	assert.Equal(t, l.BodySize, runs[1].Size)
}

func TestHeaderLevelSizes(t *testing.T) {
	l := DefaultLayout()
	l.Measure = charWidth
	pages := l.Paginate("# One\n## Two\n### Three")

	require.Len(t, pages, 1)
	runs := pages[0].Runs
	require.Len(t, runs, 3)
	assert.Equal(t, l.TitleSize, runs[0].Size)
	assert.Equal(t, l.TitleSize-2, runs[1].Size)
	assert.Equal(t, l.BodySize, runs[2].Size)
}

func TestListItemsIndentedWithBullet(t *testing.T) {
	l := DefaultLayout()
	l.Measure = charWidth
	pages := l.Paginate("- first thing")

	require.Len(t, pages, 1)
	runs := pages[0].Runs
	require.Len(t, runs, 1)
	assert.Equal(t, "• first thing", runs[0].Text)
	assert.Equal(t, l.Margin+listIndent, runs[0].X)
}

func TestSoftBreakJoinsWithSpace(t *testing.T) {
	l := DefaultLayout()
	l.Measure = charWidth
	pages := l.Paginate("one\ntwo")

	require.Len(t, pages, 1)
	runs := pages[0].Runs
	require.Len(t, runs, 1)
	assert.Equal(t, "one two", runs[0].Text)
}

func TestHardBreakSeparatesSections(t *testing.T) {
	l := DefaultLayout()
	l.Measure = charWidth
	pages := l.Paginate("one\n\ntwo")

	require.Len(t, pages, 1)
	runs := pages[0].Runs
	require.Len(t, runs, 2)
	assert.Equal(t, "one", runs[0].Text)
	assert.Equal(t, "two", runs[1].Text)
	assert.Greater(t, runs[0].Y, runs[1].Y)
}

func TestEmptySourceYieldsOneBlankPage(t *testing.T) {
	pages := DefaultLayout().Paginate("")
	require.Len(t, pages, 1)
	assert.Empty(t, pages[0].Runs)
}

func TestTimesWidthScalesWithSize(t *testing.T) {
	small := TimesWidth("Hello", 10, false)
	large := TimesWidth("Hello", 20, false)
	assert.InDelta(t, small*2, large, 0.001)

	// Bold Times is wider than regular for typical text.
	assert.Greater(t, TimesWidth("Hello", 12, true), TimesWidth("Hello", 12, false))
}

package pdf

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProducesValidShell(t *testing.T) {
	doc := string(Render("# Title\n\nSome **bold** body text.", DefaultLayout()))

	assert.True(t, strings.HasPrefix(doc, "%PDF-1.4\n"))
	assert.True(t, strings.HasSuffix(doc, "%%EOF\n"))
	assert.Contains(t, doc, "/Type /Catalog")
	assert.Contains(t, doc, "/BaseFont /Times-Roman")
	assert.Contains(t, doc, "/BaseFont /Times-Bold")
	assert.Contains(t, doc, "startxref")
}

func TestRenderOnePageObjectPerPage(t *testing.T) {
	// Long enough to spill past one US Letter page.
	src := strings.TrimSuffix(strings.Repeat("paragraph of report text\n\n", 60), "\n")
	doc := string(Render(src, DefaultLayout()))

	pageCount := strings.Count(doc, "/Type /Page ")
	assert.Greater(t, pageCount, 1)
	assert.Contains(t, doc, "/Count "+strconv.Itoa(pageCount))
}

func TestRenderBoldRunsUseBoldFont(t *testing.T) {
	doc := string(Render("**strong** plain", DefaultLayout()))
	assert.Contains(t, doc, "/F2 12.00 Tf")
	assert.Contains(t, doc, "/F1 12.00 Tf")
	assert.Contains(t, doc, "(strong) Tj")
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, `a\(b\)c\\d`, escapeText(`a(b)c\d`))
	assert.Equal(t, `\225 point`, escapeText("• point"))
	assert.Equal(t, "caf?", escapeText("café"))
}

package pdf

import (
	"bytes"
	"fmt"
	"strings"
)

// Render lays src out with the layout and serializes the result as a
// PDF 1.4 document using the Times standard fonts. The bytes are
// complete and self-contained; no external resources are referenced.
func Render(src string, layout Layout) []byte {
	pages := layout.Paginate(src)

	var buf bytes.Buffer
	var offsets []int
	buf.WriteString("%PDF-1.4\n")

	addObject := func(body string) int {
		offsets = append(offsets, buf.Len())
		num := len(offsets)
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
		return num
	}

	// Objects 1..4 are fixed: catalog, page tree, regular font, bold font.
	// Page and content objects follow in pairs.
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 5+2*i)
	}
	addObject("<< /Type /Catalog /Pages 2 0 R >>")
	addObject(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pages)))
	addObject("<< /Type /Font /Subtype /Type1 /BaseFont /Times-Roman /Encoding /WinAnsiEncoding >>")
	addObject("<< /Type /Font /Subtype /Type1 /BaseFont /Times-Bold /Encoding /WinAnsiEncoding >>")

	for i, page := range pages {
		contentRef := 6 + 2*i
		addObject(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>",
			layout.PageWidth, layout.PageHeight, contentRef))

		stream := contentStream(page)
		addObject(fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", len(stream), stream))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(offsets)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xref)
	return buf.Bytes()
}

func contentStream(p Page) string {
	var b strings.Builder
	for _, r := range p.Runs {
		font := "/F1"
		if r.Bold {
			font = "/F2"
		}
		fmt.Fprintf(&b, "BT %s %.2f Tf %.2f %.2f Td (%s) Tj ET\n",
			font, r.Size, r.X, r.Y, escapeText(r.Text))
	}
	return b.String()
}

// escapeText maps runes to WinAnsi bytes and escapes PDF string syntax.
// Unmappable runes degrade to '?'.
func escapeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '(' || r == ')' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '•':
			b.WriteString("\\225")
		case r >= 32 && r <= 126:
			b.WriteRune(r)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

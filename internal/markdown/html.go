package markdown

import (
	"fmt"
	"strings"
)

// ToHTML renders the markdown subset as display markup. Headers swallow
// their own line break, so header lines produce no extra <br>. No
// sanitization is performed: the input comes from the trusted analysis
// collaborator, never from raw user input.
func ToHTML(src string) string {
	var b strings.Builder
	tokens := Lex(src)
	inItem := false

	closeItem := func() {
		if inItem {
			b.WriteString("</li>")
			inItem = false
		}
	}

	for _, t := range tokens {
		switch t.Kind {
		case Header:
			closeItem()
			fmt.Fprintf(&b, "<h%d>%s</h%d>", t.Level, t.Text, t.Level)
		case Bold:
			b.WriteString("<strong>" + t.Text + "</strong>")
		case Italic:
			b.WriteString("<em>" + t.Text + "</em>")
		case Code:
			b.WriteString("<code>" + t.Text + "</code>")
		case ListItem:
			inItem = true
			b.WriteString("<li>")
		case Text:
			b.WriteString(t.Text)
		case SoftBreak:
			closeItem()
			b.WriteString("<br>")
		case HardBreak:
			closeItem()
			b.WriteString("<br><br>")
		}
	}
	closeItem()
	return b.String()
}

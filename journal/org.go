// journal/org.go
package journal

import (
	"fmt"
	"strings"
)

var categoryHeadings = map[Category]string{
	Bull: "Bull",
	Bear: "Bear",
	TR:   "TR",
	Bias: "Bias",
}

// FormatBarOrg renders one bar as an Org-mode block suitable for pasting into
// a text journal. Structured facts live in a PROPERTIES drawer for easy
// search; each non-empty category becomes a subsection of list items.
func FormatBarOrg(key BarKey, rec *BarRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("** Bar %s\n", key))
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":BAR: %s\n", key))
	b.WriteString(fmt.Sprintf(":TS: %s\n", rec.TS))
	b.WriteString(":END:\n")

	for _, cat := range Categories {
		list := rec.List(cat)
		if len(list) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("\n*** %s\n", categoryHeadings[cat]))
		for _, text := range list {
			b.WriteString(fmt.Sprintf("- %s\n", text))
		}
	}
	return b.String()
}

// FormatSessionOrg renders every bar holding at least one observation, in
// fixed session order.
func FormatSessionOrg(s Session) string {
	var b strings.Builder
	first := true
	for _, key := range BarOrder {
		rec, ok := s[key]
		if !ok || rec.Empty() {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false
		b.WriteString(FormatBarOrg(key, rec))
	}
	return b.String()
}

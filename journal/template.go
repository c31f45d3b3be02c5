// journal/template.go
package journal

import (
	"regexp"
	"strings"
)

// Template labels carry a "()" marker that is filled with a user-supplied
// detail at add time: "Decent bull bar()" becomes "Decent bull bar(inside)".
const templateMarker = "()"

// IsTemplated reports whether a preset label is a fill-in template.
func IsTemplated(label string) bool {
	return strings.Contains(label, templateMarker)
}

// TemplateBase strips the first marker: "Decent bull bar()" -> "Decent bull bar".
func TemplateBase(label string) string {
	return strings.TrimRight(strings.Replace(label, templateMarker, "", 1), " \t")
}

// ExpandTemplate fills the marker with the detail. Labels without a marker
// get the detail appended in parentheses.
func ExpandTemplate(label, detail string) string {
	if strings.Contains(label, templateMarker) {
		return strings.Replace(label, templateMarker, "("+detail+")", 1)
	}
	return label + " (" + detail + ")"
}

func templatePattern(base string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `\s*\([^()]*\)\s*$`)
}

// latestTemplateMatch returns the index and text of the most recently inserted
// entry expanded from base, or -1 if none exists.
func latestTemplateMatch(list []string, base string) (int, string) {
	pat := templatePattern(base)
	for i := len(list) - 1; i >= 0; i-- {
		if pat.MatchString(list[i]) {
			return i, list[i]
		}
	}
	return -1, ""
}

// MatchesTemplate reports whether text is an expansion of the given base.
func MatchesTemplate(text, base string) bool {
	return templatePattern(base).MatchString(text)
}

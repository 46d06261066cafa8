// Package markup holds the small text helpers and the HTML query facade shared by discovery
// and the page evaluators.
package markup

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// xmlEntities covers the five predefined XML entities and nothing else.
var xmlEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// DecodeXMLEntities decodes &amp; &lt; &gt; &quot; and &#39; in a single pass, so "&amp;lt;"
// becomes "&lt;" rather than "<".
func DecodeXMLEntities(s string) string {
	return xmlEntities.Replace(s)
}

// CollapseWhitespace trims s and folds every run of whitespace into one space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Titleize turns a URL slug such as "merton-abbey" into "Merton Abbey".
func Titleize(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool {
		return r == '-' || r == '_'
	})
	if len(words) == 0 {
		return ""
	}
	// a Caser keeps state, one per call
	caser := cases.Title(language.BritishEnglish)
	return caser.String(strings.Join(words, " "))
}

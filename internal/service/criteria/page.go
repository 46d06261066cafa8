// Package criteria scores a parsed gym page. Every evaluator is a pure function of the Page
// and the compiled rules; evidence strings are built from the same counts as the verdict.
package criteria

import (
	"strings"

	"gym_page_auditor/internal/pkg/markup"
)

// Page is the parsed state shared by all evaluators.
type Page struct {
	Title       string
	Heading     string
	Description string
	// Body is the visible body text, whitespace-collapsed and lower-cased.
	Body     string
	Headings []string
	Images   []markup.Image
	Controls []markup.Control
}

func NewPage(doc *markup.Document) *Page {
	return &Page{
		Title:       doc.Title(),
		Heading:     doc.FirstHeading(),
		Description: doc.MetaDescription(),
		Body:        strings.ToLower(doc.BodyText()),
		Headings:    doc.Headings(),
		Images:      doc.Images(),
		Controls:    doc.Controls(),
	}
}

// metaText joins title, first heading and meta description.
func (p *Page) metaText() string {
	return markup.CollapseWhitespace(p.Title + " " + p.Heading + " " + p.Description)
}

// bodyPrefix returns at most n runes from the start of the body.
func (p *Page) bodyPrefix(n int) string {
	count := 0
	for i := range p.Body {
		if count == n {
			return p.Body[:i]
		}
		count++
	}
	return p.Body
}

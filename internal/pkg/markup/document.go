package markup

import (
	"bytes"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Image carries the attributes the imagery checks look at. Missing attributes are "".
type Image struct {
	Src     string
	Srcset  string
	Alt     string
	Class   string
	Loading string
}

// Control is a link or button in document order.
type Control struct {
	Index int
	Tag   string
	Text  string
	Href  string
}

// Document is a parsed page. All accessors return empty values instead of errors when an
// element is absent.
type Document struct {
	doc *goquery.Document
}

func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

func ParseBytes(body []byte) (*Document, error) {
	return Parse(bytes.NewReader(body))
}

func (d *Document) Title() string {
	return CollapseWhitespace(d.doc.Find("head title").First().Text())
}

// FirstHeading returns the text of the first h1.
func (d *Document) FirstHeading() string {
	return CollapseWhitespace(d.doc.Find("h1").First().Text())
}

// MetaDescription prefers the standard description and falls back to og:description.
func (d *Document) MetaDescription() string {
	for _, sel := range []string{`meta[name="description"]`, `meta[property="og:description"]`} {
		if content, ok := d.doc.Find(sel).First().Attr("content"); ok {
			if v := CollapseWhitespace(content); v != "" {
				return v
			}
		}
	}
	return ""
}

// Headings returns the collapsed text of every h1-h6 in document order.
func (d *Document) Headings() []string {
	var out []string
	d.doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		if text := CollapseWhitespace(s.Text()); text != "" {
			out = append(out, text)
		}
	})
	return out
}

// BodyText is the visible body text with scripts and styles removed, whitespace collapsed.
func (d *Document) BodyText() string {
	body := d.doc.Find("body").First()
	if body.Length() == 0 {
		return ""
	}
	var buf strings.Builder
	for _, n := range body.Nodes {
		writeText(&buf, n)
	}
	return CollapseWhitespace(buf.String())
}

func writeText(buf *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		buf.WriteString(n.Data)
		buf.WriteByte(' ')
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template", "svg":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(buf, c)
	}
}

func (d *Document) Images() []Image {
	var out []Image
	d.doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		out = append(out, Image{
			Src:     strings.TrimSpace(s.AttrOr("src", "")),
			Srcset:  strings.TrimSpace(s.AttrOr("srcset", "")),
			Alt:     s.AttrOr("alt", ""),
			Class:   s.AttrOr("class", ""),
			Loading: strings.ToLower(strings.TrimSpace(s.AttrOr("loading", ""))),
		})
	})
	return out
}

// Controls returns every a and button element in document order.
func (d *Document) Controls() []Control {
	var out []Control
	d.doc.Find("a, button").Each(func(i int, s *goquery.Selection) {
		text := CollapseWhitespace(s.Text())
		if text == "" {
			text = CollapseWhitespace(s.AttrOr("aria-label", s.AttrOr("title", "")))
		}
		out = append(out, Control{
			Index: i,
			Tag:   goquery.NodeName(s),
			Text:  text,
			Href:  strings.TrimSpace(s.AttrOr("href", "")),
		})
	})
	return out
}

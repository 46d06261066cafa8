package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeXMLEntities(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "https://example.com/gyms/bath", want: "https://example.com/gyms/bath"},
		{name: "ampersand", in: "https://example.com/?a=1&amp;b=2", want: "https://example.com/?a=1&b=2"},
		{name: "all five", in: "&lt;&gt;&quot;&#39;&amp;", want: `<>"'&`},
		{name: "single pass", in: "&amp;lt;", want: "&lt;"},
		{name: "other entities untouched", in: "&nbsp;&#160;&apos;", want: "&nbsp;&#160;&apos;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeXMLEntities(tt.in))
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseWhitespace("  a \n\t b   c "))
	assert.Equal(t, "", CollapseWhitespace(" \n "))
}

func TestTitleize(t *testing.T) {
	assert.Equal(t, "Merton Abbey", Titleize("merton-abbey"))
	assert.Equal(t, "Bristol", Titleize("bristol"))
	assert.Equal(t, "", Titleize("--"))
}

const fixture = `<!DOCTYPE html>
<html>
<head>
  <title>  Bath Gym |
    Nuffield Health </title>
  <meta name="description" content="  A   modern gym in Bath. ">
</head>
<body>
  <h1>Bath   Fitness &amp; Wellbeing Gym</h1>
  <script>var ignored = "join now";</script>
  <style>.x { color: red }</style>
  <p>Swimming pool and sauna.</p>
  <h2>Facilities</h2>
  <a href="/gyms/bath/timetable">Timetable</a>
  <button aria-label="Join online"></button>
  <a href="/join">  Join   now </a>
  <img src="/hero.webp" alt="Pool" class="hero" loading="LAZY">
  <img srcset="/a.jpg 1x, /a@2x.jpg 2x">
</body>
</html>`

func TestDocumentAccessors(t *testing.T) {
	doc, err := Parse(strings.NewReader(fixture))
	require.NoError(t, err)

	assert.Equal(t, "Bath Gym | Nuffield Health", doc.Title())
	assert.Equal(t, "Bath Fitness & Wellbeing Gym", doc.FirstHeading())
	assert.Equal(t, "A modern gym in Bath.", doc.MetaDescription())
	assert.Equal(t, []string{"Bath Fitness & Wellbeing Gym", "Facilities"}, doc.Headings())

	body := doc.BodyText()
	assert.Contains(t, body, "Swimming pool and sauna.")
	assert.NotContains(t, body, "ignored")
	assert.NotContains(t, body, "color: red")

	controls := doc.Controls()
	require.Len(t, controls, 3)
	assert.Equal(t, Control{Index: 0, Tag: "a", Text: "Timetable", Href: "/gyms/bath/timetable"}, controls[0])
	assert.Equal(t, Control{Index: 1, Tag: "button", Text: "Join online"}, controls[1])
	assert.Equal(t, Control{Index: 2, Tag: "a", Text: "Join now", Href: "/join"}, controls[2])

	images := doc.Images()
	require.Len(t, images, 2)
	assert.Equal(t, Image{Src: "/hero.webp", Alt: "Pool", Class: "hero", Loading: "lazy"}, images[0])
	assert.Equal(t, "/a.jpg 1x, /a@2x.jpg 2x", images[1].Srcset)
}

func TestDocumentMissingElements(t *testing.T) {
	doc, err := ParseBytes([]byte(`<p>nothing here</p>`))
	require.NoError(t, err)

	assert.Equal(t, "", doc.Title())
	assert.Equal(t, "", doc.FirstHeading())
	assert.Equal(t, "", doc.MetaDescription())
	assert.Empty(t, doc.Headings())
	assert.Empty(t, doc.Images())
	assert.Empty(t, doc.Controls())
	assert.Equal(t, "nothing here", doc.BodyText())
}

func TestMetaDescriptionFallsBackToOpenGraph(t *testing.T) {
	doc, err := ParseBytes([]byte(`<html><head><meta property="og:description" content="OG copy"></head></html>`))
	require.NoError(t, err)
	assert.Equal(t, "OG copy", doc.MetaDescription())
}

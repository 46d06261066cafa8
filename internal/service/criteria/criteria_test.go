package criteria

import (
	"strings"
	"testing"

	"gym_page_auditor/internal/application/rules"
	"gym_page_auditor/internal/pkg/markup"

	"github.com/stretchr/testify/require"
)

func testRules(t *testing.T) *rules.Rules {
	t.Helper()
	r, err := rules.Default()
	require.NoError(t, err)
	return r
}

func pageFromHTML(t *testing.T, src string) *Page {
	t.Helper()
	doc, err := markup.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return NewPage(doc)
}

func images(n int, mutate func(i int, img *markup.Image)) []markup.Image {
	out := make([]markup.Image, n)
	for i := range out {
		out[i] = markup.Image{Src: "/media/club-photo.jpg", Alt: "Club photo"}
		if mutate != nil {
			mutate(i, &out[i])
		}
	}
	return out
}

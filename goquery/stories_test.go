package goquery_test

import (
	"strings"
	"testing"

	"github.com/mjaros/pageblocks/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformer_RecentStories(t *testing.T) {
	t.Parallel()

	t.Run("missing list reports not found", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, pageOf(`<ul><li><a href="/our-stories/x">x</a></li></ul>`))
		_, ok := goquery.NewTransformer().RecentStories(doc)

		assert.False(t, ok)
	})

	t.Run("one row per story with image and card content", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, pageOf(storiesHTML))
		b, ok := goquery.NewTransformer().RecentStories(doc)

		require.True(t, ok)
		assert.Equal(t, "Cards", b.Name)
		assert.Equal(t, 2, b.Columns)
		require.Len(t, b.Rows, 2)

		out := renderNode(t, b.Node())
		assert.Contains(t, out, `<img src="./media_placeholder_story.png" alt="First Story"/>`)
		assert.Contains(t, out, `<p class="card-meta">ONCOLOGY | MAY 2026</p>`)
		assert.Contains(t, out, `<h4><a href="https://www.example.com/our-stories/first">First Story</a></h4>`)
		assert.Contains(t, out, `<p class="read-time">3 Minute Read</p>`)
		assert.Contains(t, out, `<h4><a href="https://www.example.com/our-stories/second">Second Story</a></h4>`)
	})

	t.Run("items without a link yield no row", func(t *testing.T) {
		t.Parallel()

		page := pageOf(`
<ul data-ref="e61">
	<li><a href="/our-stories/with-link"><h4>Linked</h4></a></li>
	<li><h4>No Link</h4></li>
	<li><a href="/our-stories/also-linked"><h4>Also Linked</h4></a></li>
</ul>`)
		doc := parseDoc(t, page)
		b, ok := goquery.NewTransformer().RecentStories(doc)

		require.True(t, ok)
		assert.Len(t, b.Rows, 2)
		assert.NotContains(t, renderNode(t, b.Node()), "No Link")
	})

	t.Run("present but empty list yields header only table", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, pageOf(`<ul data-ref="e61"></ul>`))
		b, ok := goquery.NewTransformer().RecentStories(doc)

		require.True(t, ok)
		assert.Empty(t, b.Rows)
		assert.Equal(t, "<table><tr><td>Cards</td><td></td></tr></table>\n", renderNode(t, b.Node()))
	})

	t.Run("missing card fields degrade to bare row", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, pageOf(`
<ul data-ref="e61">
	<li><a href="/our-stories/bare">bare</a></li>
</ul>`))
		b, ok := goquery.NewTransformer().RecentStories(doc)

		require.True(t, ok)
		require.Len(t, b.Rows, 1)

		out := renderNode(t, b.Node())
		assert.NotContains(t, out, "card-meta")
		assert.NotContains(t, out, "read-time")
		assert.False(t, strings.Contains(out, "<h4>"))
	})
}

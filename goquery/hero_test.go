package goquery_test

import (
	"testing"

	"github.com/mjaros/pageblocks/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformer_FeaturedStory(t *testing.T) {
	t.Parallel()

	t.Run("missing region reports not found", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, pageOf("<div><p>no hero</p></div>"))
		_, ok := goquery.NewTransformer().FeaturedStory(doc)

		assert.False(t, ok)
	})

	t.Run("region without our-stories link reports not found", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, pageOf(`
<section>
	<h2>Patient Stories</h2>
	<a href="https://www.example.com/about">Read more</a>
</section>`))
		_, ok := goquery.NewTransformer().FeaturedStory(doc)

		assert.False(t, ok)
	})

	t.Run("extracts hero fields into a one column block", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, pageOf(heroHTML))
		b, ok := goquery.NewTransformer().FeaturedStory(doc)

		require.True(t, ok)
		assert.Equal(t, "Hero", b.Name)
		assert.Equal(t, 1, b.Columns)
		require.Len(t, b.Rows, 2)

		out := renderNode(t, b.Node())
		assert.Contains(t, out, `<img src="./media_placeholder_hero.png" alt="A Different Kind of Recovery"/>`)
		assert.Contains(t, out, `<p class="date">June 12, 2026</p>`)
		assert.Contains(t, out, "<h2>Patient Stories</h2>")
		assert.Contains(t, out, "<h4>A Different Kind of Recovery</h4>")
		assert.Contains(t, out, `<span class="read-time">4 Minute Read</span>`)
		assert.Contains(t, out, `<a href="https://www.example.com/our-stories/a-different-kind-of-recovery">Read story</a>`)
	})

	t.Run("class date wins over pattern scan when both present", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, pageOf(`
<section>
	<div class="date">June 12, 2026</div>
	<div>January 1, 2020</div>
	<a href="/our-stories/x">Read more</a>
</section>`))
		b, ok := goquery.NewTransformer().FeaturedStory(doc)

		require.True(t, ok)
		out := renderNode(t, b.Node())
		assert.Contains(t, out, `<p class="date">June 12, 2026</p>`)
		assert.NotContains(t, out, "January 1, 2020")
	})

	t.Run("falls back to pattern scan without a date class", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, pageOf(`
<section>
	<div>Not a date</div>
	<div>March 3, 2026</div>
	<a href="/our-stories/x">Read more</a>
</section>`))
		b, ok := goquery.NewTransformer().FeaturedStory(doc)

		require.True(t, ok)
		assert.Contains(t, renderNode(t, b.Node()), `<p class="date">March 3, 2026</p>`)
	})

	t.Run("missing optional fields suppress their elements", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, pageOf(`
<section>
	<a href="/our-stories/x">Read more</a>
</section>`))
		b, ok := goquery.NewTransformer().FeaturedStory(doc)

		require.True(t, ok)
		out := renderNode(t, b.Node())
		assert.NotContains(t, out, "<p")
		assert.NotContains(t, out, "<h2>")
		assert.NotContains(t, out, "<h4>")
		// The URL alone still produces the call to action.
		assert.Contains(t, out, `<a href="/our-stories/x">Read story</a>`)
		assert.NotContains(t, out, "read-time")
	})
}

package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/mjaros/pageblocks"
	"github.com/mjaros/pageblocks/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// Ensure Transformer implements pageblocks.Transformer at compile time.
var _ pageblocks.Transformer = (*goquery.Transformer)(nil)

// Page fragments mirroring the source page structure.
const (
	heroHTML = `
<section>
	<h2>Patient Stories</h2>
	<h4>A Different Kind of Recovery</h4>
	<div class="hero-date">June 12, 2026</div>
	<span data-ref="e58">4 Minute Read</span>
	<a href="https://www.example.com/our-stories/a-different-kind-of-recovery">Read more</a>
</section>`

	videoHTML = `
<div>
	<h2>Beyond the Possible: The Film</h2>
	<p>A look inside the science.</p>
	<button>Watch 2:15</button>
</div>`

	storiesHTML = `
<ul data-ref="e61">
	<li>
		<a href="https://www.example.com/our-stories/first"></a>
		<div data-ref="e71">ONCOLOGY | MAY 2026</div>
		<h4>First Story</h4>
		<span>3 Minute Read</span>
	</li>
	<li>
		<a href="https://www.example.com/our-stories/second"></a>
		<div data-ref="e72">IMMUNOLOGY | APRIL 2026</div>
		<h4>Second Story</h4>
		<span>6 Minute Read</span>
	</li>
</ul>`

	newsHTML = `
<div>
	<h3>Recent News</h3>
	<a href="https://news.abbvie.com/press-release-one">
		<div>August 4, 2026</div>
		<p>Company Announces Results</p>
	</a>
	<a href="https://news.abbvie.com/press-release-two">
		<div>July 28, 2026</div>
		<p>New Collaboration Announced</p>
	</a>
	<a href="https://www.example.com/elsewhere">
		<div>July 1, 2026</div>
		<p>Unrelated Link</p>
	</a>
</div>`
)

func pageOf(fragments ...string) string {
	return "<!DOCTYPE html><html><body>" + strings.Join(fragments, "\n") + "</body></html>"
}

func parseDoc(t *testing.T, pageHTML string) *gq.Document {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(pageHTML))
	require.NoError(t, err)
	return doc
}

func renderNode(t *testing.T, n *html.Node) string {
	t.Helper()
	out, err := pageblocks.RenderHTML(n)
	require.NoError(t, err)
	return out
}

func TestTransformer_Transform(t *testing.T) {
	t.Parallel()

	t.Run("full page produces six elements in fixed order", func(t *testing.T) {
		t.Parallel()

		tr := goquery.NewTransformer()
		nodes, err := tr.Transform(pageOf(heroHTML, videoHTML, storiesHTML, newsHTML), "https://www.example.com/our-stories")

		require.NoError(t, err)
		require.Len(t, nodes, 6)

		assert.Contains(t, renderNode(t, nodes[0]), "<td>Hero</td>")
		assert.Contains(t, renderNode(t, nodes[1]), "<td>Hero (video)</td>")
		assert.Equal(t, "<h2>Recent Stories</h2>\n", renderNode(t, nodes[2]))
		assert.Contains(t, renderNode(t, nodes[3]), "<td>Cards</td>")
		assert.Equal(t, "<h2>Recent News</h2>\n", renderNode(t, nodes[4]))
		assert.Contains(t, renderNode(t, nodes[5]), "<td>Cards (news)</td>")
	})

	t.Run("unmatched page produces empty sequence", func(t *testing.T) {
		t.Parallel()

		tr := goquery.NewTransformer()
		nodes, err := tr.Transform(pageOf("<div><p>Nothing to see here.</p></div>"), "https://www.example.com/")

		require.NoError(t, err)
		assert.Empty(t, nodes)
	})

	t.Run("missing section skips its heading too", func(t *testing.T) {
		t.Parallel()

		tr := goquery.NewTransformer()
		nodes, err := tr.Transform(pageOf(heroHTML, newsHTML), "https://www.example.com/our-stories")

		require.NoError(t, err)
		require.Len(t, nodes, 3)

		rendered := make([]string, len(nodes))
		for i, n := range nodes {
			rendered[i] = renderNode(t, n)
		}
		joined := strings.Join(rendered, "")
		assert.NotContains(t, joined, "Recent Stories")
		assert.Contains(t, joined, "<h2>Recent News</h2>")
	})

	t.Run("custom selectors are honored", func(t *testing.T) {
		t.Parallel()

		sel := goquery.DefaultSelectors()
		sel.StoriesList = `ul[data-ref="alt"]`

		page := pageOf(strings.ReplaceAll(storiesHTML, `data-ref="e61"`, `data-ref="alt"`))
		tr := goquery.NewTransformer(goquery.WithSelectors(sel))
		nodes, err := tr.Transform(page, "https://www.example.com/our-stories")

		require.NoError(t, err)
		require.Len(t, nodes, 2)
		assert.Contains(t, renderNode(t, nodes[1]), "<td>Cards</td>")
	})
}

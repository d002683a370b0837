package htmltomarkdown_test

import (
	"testing"

	"github.com/mjaros/pageblocks"
	"github.com/mjaros/pageblocks/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// Ensure Converter implements pageblocks.Converter at compile time.
var _ pageblocks.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts a hero block table", func(t *testing.T) {
		t.Parallel()

		b := pageblocks.NewBlock("Hero", 1)
		b.AddRow(pageblocks.MarkupCell(`<img src="./media_placeholder_hero.png" alt="Title">`))
		b.AddRow(pageblocks.MarkupCell(`<h4>Title</h4>`))

		rendered, err := pageblocks.RenderHTML(b.Node())
		require.NoError(t, err)

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(rendered)

		require.NoError(t, err)
		assert.Contains(t, md, "Hero")
		assert.Contains(t, md, "|")
		assert.Contains(t, md, "Title")
	})

	t.Run("converts headings and links", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<h2>Recent News</h2><p><a href="https://news.abbvie.com/x">Item</a></p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "## Recent News")
		assert.Contains(t, md, "[Item](https://news.abbvie.com/x)")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, pageblocks.EINVALID, pageblocks.ErrorCode(err))
	})
}

func TestConverter_ConvertNodes(t *testing.T) {
	t.Parallel()

	t.Run("empty sequence yields empty document", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.ConvertNodes(nil)

		require.NoError(t, err)
		assert.Empty(t, md)
	})

	t.Run("converts a node sequence", func(t *testing.T) {
		t.Parallel()

		b := pageblocks.NewBlock("Cards", 2)
		b.AddRow(
			pageblocks.MarkupCell("<p>left</p>"),
			pageblocks.MarkupCell("<p>right</p>"),
		)

		heading := pageblocks.Element("h2")
		heading.AppendChild(pageblocks.Text("Recent Stories"))

		conv := htmltomarkdown.NewConverter()
		md, err := conv.ConvertNodes([]*html.Node{heading, b.Node()})

		require.NoError(t, err)
		assert.Contains(t, md, "## Recent Stories")
		assert.Contains(t, md, "left")
		assert.Contains(t, md, "right")
	})
}

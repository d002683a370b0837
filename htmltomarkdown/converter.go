// Package htmltomarkdown converts rendered block markup to Markdown
// for the document pipeline.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/mjaros/pageblocks"
	"golang.org/x/net/html"
)

// Ensure Converter implements pageblocks.Converter at compile time.
var _ pageblocks.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown. The table plugin is required so
// block tables survive conversion with their name row and column
// layout intact.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pageblocks.Errorf(pageblocks.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// ConvertNodes serializes a transform result and converts it to
// Markdown. An empty node sequence yields an empty document.
func (c *Converter) ConvertNodes(nodes []*html.Node) (string, error) {
	if len(nodes) == 0 {
		return "", nil
	}

	rendered, err := pageblocks.RenderHTML(nodes...)
	if err != nil {
		return "", err
	}

	return c.Convert(rendered)
}

// Package trafilatura extracts page metadata and generic main content
// using go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/mjaros/pageblocks"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pageblocks.MetaExtractor at compile time.
var _ pageblocks.MetaExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura. The importer uses it for the output
// document's title and description, and as a generic content fallback
// when a page matches none of the known block anchors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns page metadata plus the main
// content with boilerplate removed.
func (e *Extractor) Extract(rawHTML string) (*pageblocks.PageMeta, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pageblocks.Errorf(pageblocks.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &pageblocks.PageMeta{
		Title:       result.Metadata.Title,
		Description: result.Metadata.Description,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

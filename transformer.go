package pageblocks

import "golang.org/x/net/html"

// Transformer maps one scraped page into block elements for the
// document conversion pipeline.
type Transformer interface {
	// Transform parses the page HTML and returns the produced elements
	// (block tables and section headings) in document order. Sections
	// whose structural anchor is missing are skipped silently; a page
	// matching none of the known sections yields an empty slice, not
	// an error. The pageURL is the address the HTML was fetched from.
	Transform(html string, pageURL string) ([]*html.Node, error)
}

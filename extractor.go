package pageblocks

// PageMeta holds metadata extracted from a page, plus a generic
// main-content rendering used as a fallback when no known block
// anchors match.
type PageMeta struct {
	// Title is the page title from metadata (meta tags, JSON+LD, etc.).
	Title string

	// Description is the page description from metadata, if present.
	Description string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar) removed.
	ContentHTML string
}

// MetaExtractor extracts page metadata and generic main content.
type MetaExtractor interface {
	Extract(html string) (*PageMeta, error)
}

package pageblocks

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input is
	// expected to be well-formed markup, e.g. rendered block tables.
	Convert(html string) (string, error)
}

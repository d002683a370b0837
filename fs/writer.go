// Package fs provides file-based output for imported documents.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mjaros/pageblocks"
)

// URLToPath converts a page URL to a relative markdown file path.
// Example: https://www.example.com/our-stories/recovery → our-stories/recovery.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	path := u.Path

	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return path + ".md", nil
}

// FormatDocument formats a document with YAML frontmatter for the
// downstream publishing pipeline.
func FormatDocument(doc *pageblocks.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.SourceURL)
	if doc.Title != "" {
		b.WriteString("\ntitle: ")
		b.WriteString(doc.Title)
	}
	b.WriteString("\nimported: ")
	b.WriteString(doc.ImportedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// Ensure Writer implements pageblocks.DocumentWriter at compile time.
var _ pageblocks.DocumentWriter = (*Writer)(nil)

// Writer writes imported documents as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// CreateDocument writes a document to disk as a markdown file and
// records the relative path on the document.
func (w *Writer) CreateDocument(ctx context.Context, doc *pageblocks.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(doc.SourceURL)
	if err != nil {
		return err
	}
	doc.FilePath = relPath

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644)
}

// Package goquery implements the page-to-block transformation using
// CSS selector queries over parsed HTML.
//
// The transformation is bound to one fixed source page: the AbbVie
// "Our Stories" marketing landing page. Each section extractor locates
// its structural anchor and reports false when it is absent; a missing
// anchor skips that section and nothing else.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mjaros/pageblocks"
	"golang.org/x/net/html"
)

// Ensure Transformer implements pageblocks.Transformer at compile time.
var _ pageblocks.Transformer = (*Transformer)(nil)

// Transformer maps the source page into named block tables.
type Transformer struct {
	sel Selectors
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithSelectors overrides the default page selectors.
func WithSelectors(sel Selectors) Option {
	return func(t *Transformer) {
		t.sel = sel
	}
}

// NewTransformer creates a Transformer with default selectors.
func NewTransformer(opts ...Option) *Transformer {
	t := &Transformer{sel: DefaultSelectors()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform parses the page HTML and runs the section extractors in
// fixed order: featured story, video section, recent stories, recent
// news. The two list-based sections are preceded by literal section
// headings. The pageURL is accepted for interface symmetry; extraction
// reads only the document.
func (t *Transformer) Transform(pageHTML string, pageURL string) ([]*html.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, pageblocks.Errorf(pageblocks.EINVALID, "failed to parse HTML: %v", err)
	}

	var out []*html.Node

	if b, ok := t.FeaturedStory(doc); ok {
		out = append(out, b.Node())
	}
	if b, ok := t.VideoSection(doc); ok {
		out = append(out, b.Node())
	}
	if b, ok := t.RecentStories(doc); ok {
		out = append(out, heading(2, headingRecentStories), b.Node())
	}
	if b, ok := t.RecentNews(doc); ok {
		out = append(out, heading(2, markerRecentNews), b.Node())
	}

	return out, nil
}

// sectionWithDirectHeading returns the first generic element whose
// direct child heading of the given level contains the marker phrase.
func sectionWithDirectHeading(doc *goquery.Document, level string, marker string) *goquery.Selection {
	var section *goquery.Selection
	doc.Find("div, span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		h := s.ChildrenFiltered(level).First()
		if h.Length() > 0 && strings.Contains(textOf(h), marker) {
			section = s
			return false
		}
		return true
	})
	return section
}

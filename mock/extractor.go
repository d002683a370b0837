package mock

import "github.com/mjaros/pageblocks"

var _ pageblocks.MetaExtractor = (*MetaExtractor)(nil)

// MetaExtractor is a mock implementation of pageblocks.MetaExtractor.
type MetaExtractor struct {
	ExtractFn func(html string) (*pageblocks.PageMeta, error)
}

func (e *MetaExtractor) Extract(html string) (*pageblocks.PageMeta, error) {
	return e.ExtractFn(html)
}

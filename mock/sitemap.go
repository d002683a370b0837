package mock

import (
	"context"

	"github.com/mjaros/pageblocks"
)

var _ pageblocks.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of pageblocks.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *pageblocks.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *pageblocks.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

package pageblocks

import "context"

// Fetcher retrieves page HTML from URLs.
// Implementations may use browser automation to handle
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the HTML for the URL. Browser-backed
	// implementations wait for the page to render first.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

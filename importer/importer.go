// Package importer orchestrates page imports: fetch, block transform,
// markdown conversion, history recording, and file output.
package importer

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/mjaros/pageblocks"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// Importer coordinates the import of one or more pages.
type Importer struct {
	Fetcher     pageblocks.Fetcher
	Transformer pageblocks.Transformer
	Converter   pageblocks.Converter

	// Meta supplies the document title and, when Fallback is set, a
	// generic main-content rendering for pages that match none of the
	// known block anchors. Optional.
	Meta pageblocks.MetaExtractor

	// Documents records import history. Optional.
	Documents pageblocks.DocumentService

	// Writer persists the markdown output. Optional.
	Writer pageblocks.DocumentWriter

	// Fallback enables generic content extraction for unmatched pages.
	Fallback bool

	// Concurrency caps concurrent page imports. Defaults to 4.
	Concurrency int
}

// Result holds the outcome of an import run.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressImported
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during an import run.
type ProgressEvent struct {
	Type      ProgressType
	URL       string
	Reason    string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

// outcome holds the result of importing a single URL.
type outcome struct {
	url     string
	doc     *pageblocks.Document
	skipped string // non-empty reason when the page produced no new document
	err     error
}

// ImportAll imports the given URLs with bounded concurrency. Per-page
// failures are reported through progress and counted, not returned;
// the returned error reflects context cancellation only.
func (imp *Importer) ImportAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	concurrency := imp.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	progress(ProgressEvent{Type: ProgressStarted, Total: len(urls)})

	outcomes := make(chan outcome, len(urls))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, u := range urls {
		url := u
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out := imp.importOne(gctx, url)
			done := int(completed.Add(1))

			switch {
			case out.err != nil:
				progress(ProgressEvent{Type: ProgressFailed, URL: url, Completed: done, Total: len(urls), Error: out.err})
			case out.skipped != "":
				progress(ProgressEvent{Type: ProgressSkipped, URL: url, Reason: out.skipped, Completed: done, Total: len(urls)})
			default:
				progress(ProgressEvent{Type: ProgressImported, URL: url, Completed: done, Total: len(urls)})
			}

			outcomes <- out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(outcomes)

	result := &Result{}
	for out := range outcomes {
		switch {
		case out.err != nil:
			result.Failed++
		case out.skipped != "":
			result.Skipped++
		default:
			result.Saved++
		}
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: len(urls), Total: len(urls)})
	return result, nil
}

// importOne runs the full pipeline for a single URL.
func (imp *Importer) importOne(ctx context.Context, url string) outcome {
	pageHTML, err := imp.Fetcher.Fetch(ctx, url)
	if err != nil {
		return outcome{url: url, err: fmt.Errorf("fetch: %w", err)}
	}

	nodes, err := imp.Transformer.Transform(pageHTML, url)
	if err != nil {
		return outcome{url: url, err: fmt.Errorf("transform: %w", err)}
	}

	var meta *pageblocks.PageMeta
	if imp.Meta != nil {
		// Metadata extraction is best-effort; the import proceeds
		// without a title if it fails.
		meta, _ = imp.Meta.Extract(pageHTML)
	}

	contentHTML := ""
	if len(nodes) > 0 {
		contentHTML, err = pageblocks.RenderHTML(nodes...)
		if err != nil {
			return outcome{url: url, err: fmt.Errorf("render: %w", err)}
		}
	} else if imp.Fallback && meta != nil && meta.ContentHTML != "" {
		contentHTML = meta.ContentHTML
	}
	if contentHTML == "" {
		return outcome{url: url, skipped: "no content matched"}
	}

	markdown, err := imp.Converter.Convert(contentHTML)
	if err != nil {
		return outcome{url: url, err: fmt.Errorf("convert: %w", err)}
	}

	doc := &pageblocks.Document{
		SourceURL:  url,
		Content:    markdown,
		Blocks:     countBlocks(nodes),
		ImportedAt: time.Now().UTC(),
	}
	if meta != nil {
		doc.Title = meta.Title
	}

	if imp.Documents != nil {
		prior, err := imp.Documents.FindDocumentBySourceURL(ctx, url)
		if err == nil && prior.Content == doc.Content {
			return outcome{url: url, doc: prior, skipped: "unchanged"}
		}
		if err != nil && pageblocks.ErrorCode(err) != pageblocks.ENOTFOUND {
			return outcome{url: url, err: fmt.Errorf("history lookup: %w", err)}
		}
	}

	// The writer runs first so the recorded history row carries the
	// output file path.
	if imp.Writer != nil {
		if err := imp.Writer.CreateDocument(ctx, doc); err != nil {
			return outcome{url: url, err: fmt.Errorf("write: %w", err)}
		}
	}

	if imp.Documents != nil {
		if err := imp.Documents.CreateDocument(ctx, doc); err != nil {
			return outcome{url: url, err: fmt.Errorf("record: %w", err)}
		}
	}

	return outcome{url: url, doc: doc}
}

// countBlocks counts the block tables in a transform result.
func countBlocks(nodes []*html.Node) int {
	n := 0
	for _, node := range nodes {
		if node.Type == html.ElementNode && node.Data == "table" {
			n++
		}
	}
	return n
}

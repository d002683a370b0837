package main

import (
	"fmt"
	"regexp"

	"github.com/mjaros/pageblocks"
	"github.com/mjaros/pageblocks/importer"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	urlFilter, err := compileFilters(c.Filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	urls := []string{c.URL}
	if c.Discover {
		urls, err = deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, urlFilter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pageblocks.ErrorMessage(err))
			return err
		}
		if len(urls) == 0 {
			fmt.Fprintln(deps.Stdout, "No URLs discovered.")
			return nil
		}
	}

	// Dry-run mode: show URLs without importing
	if c.DryRun {
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	progress := func(event importer.ProgressEvent) {
		switch event.Type {
		case importer.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Importing %d pages\n", event.Total)
		case importer.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  skip %s: %s\n", event.URL, event.Reason)
		case importer.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %v\n", event.URL, event.Error)
		}
	}

	result, err := deps.Importer.ImportAll(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error importing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d, skipped %d, failed %d\n",
		result.Saved, result.Skipped, result.Failed)
	return nil
}

// compileFilters compiles regex patterns into a URL filter. Returns nil
// when no patterns are given.
func compileFilters(patterns []string) (*pageblocks.URLFilter, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	filter := &pageblocks.URLFilter{}
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	return filter, nil
}

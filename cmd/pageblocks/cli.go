package main

import (
	"context"
	"io"

	"github.com/mjaros/pageblocks"
	"github.com/mjaros/pageblocks/importer"
	"github.com/mjaros/pageblocks/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Documents pageblocks.DocumentService
	Sitemaps  pageblocks.SitemapService
	Importer  *importer.Importer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetch and transform activity to stderr"`

	Import   ImportCmd   `cmd:"" help:"Import pages and write block markdown"`
	Discover DiscoverCmd `cmd:"" help:"List page URLs discovered from a site's sitemap"`
	List     ListCmd     `cmd:"" help:"List imported documents"`
	Show     ShowCmd     `cmd:"" help:"Show a stored document"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a document from import history"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	URL         string   `arg:"" help:"Page or site URL to import"`
	Out         string   `short:"o" default:"./pages" help:"Output directory for markdown files"`
	Discover    bool     `short:"d" help:"Discover page URLs from the site's sitemap"`
	Filter      []string `short:"F" name:"filter" help:"Filter discovered URLs by regex (repeatable)"`
	Browser     bool     `short:"b" help:"Fetch with a headless browser instead of plain HTTP"`
	DryRun      bool     `help:"Show URLs without importing"`
	Fallback    bool     `help:"Extract generic content from pages with no matching blocks"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent import limit"`
	RPS         float64  `name:"rps" default:"2" help:"Request rate limit per second (HTTP fetcher only)"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL    string   `arg:"" help:"Site URL"`
	Filter []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Source string `short:"s" help:"Filter by source URL"`
	Full   bool   `help:"Show full document content"`
	Limit  int    `default:"50" help:"Maximum number of documents to show"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Document ID"`
}

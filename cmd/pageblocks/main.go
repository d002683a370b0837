package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mjaros/pageblocks"
	"github.com/mjaros/pageblocks/fs"
	"github.com/mjaros/pageblocks/goquery"
	"github.com/mjaros/pageblocks/htmltomarkdown"
	pbhttp "github.com/mjaros/pageblocks/http"
	"github.com/mjaros/pageblocks/importer"
	"github.com/mjaros/pageblocks/rod"
	pbslog "github.com/mjaros/pageblocks/slog"
	"github.com/mjaros/pageblocks/sqlite"
	"github.com/mjaros/pageblocks/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService pageblocks.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pageblocks"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pageblocks --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGEBLOCKS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.DocumentService = sqlite.NewDocumentService(m.DB)
	deps.DB = m.DB
	deps.Documents = m.DocumentService
	deps.Sitemaps = pbhttp.NewSitemapService(nil)

	if cmd == "import" && !cli.Import.DryRun {
		var logger *slog.Logger
		if cli.Verbose {
			logger = slog.New(slog.NewTextHandler(stderr, nil))
		}

		fetcher, err := newFetcher(&cli.Import)
		if err != nil {
			if cli.Import.Browser {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			}
			return fmt.Errorf("failed to create fetcher: %w", err)
		}
		defer fetcher.Close()

		var transformer pageblocks.Transformer = goquery.NewTransformer()
		if logger != nil {
			fetcher = pbslog.NewLoggingFetcher(fetcher, logger)
			transformer = pbslog.NewLoggingTransformer(transformer, logger)
		}

		deps.Importer = &importer.Importer{
			Fetcher:     fetcher,
			Transformer: transformer,
			Converter:   htmltomarkdown.NewConverter(),
			Meta:        trafilatura.NewExtractor(),
			Documents:   m.DocumentService,
			Writer:      fs.NewWriter(cli.Import.Out),
			Fallback:    cli.Import.Fallback,
			Concurrency: cli.Import.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher creates the page fetcher selected by the import flags.
func newFetcher(cmd *ImportCmd) (pageblocks.Fetcher, error) {
	if cmd.Browser {
		return rod.NewFetcher()
	}
	var opts []pbhttp.Option
	if cmd.RPS > 0 {
		opts = append(opts, pbhttp.WithRateLimit(cmd.RPS))
	}
	return pbhttp.NewFetcher(opts...), nil
}

func defaultDBPath() string {
	if path := os.Getenv("PAGEBLOCKS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pageblocks.db"
	}
	dir := filepath.Join(home, ".pageblocks")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pageblocks.db")
}

// Package slog provides logging decorators for pageblocks services.
package slog

import (
	"log/slog"
	"time"

	"github.com/mjaros/pageblocks"
	"golang.org/x/net/html"
)

// Ensure LoggingTransformer implements pageblocks.Transformer.
var _ pageblocks.Transformer = (*LoggingTransformer)(nil)

// LoggingTransformer wraps a Transformer with debug logging for
// section extraction.
type LoggingTransformer struct {
	next   pageblocks.Transformer
	logger *slog.Logger
}

// NewLoggingTransformer creates a new LoggingTransformer.
func NewLoggingTransformer(next pageblocks.Transformer, logger *slog.Logger) *LoggingTransformer {
	return &LoggingTransformer{next: next, logger: logger}
}

// Transform delegates to the wrapped transformer and logs the outcome.
func (t *LoggingTransformer) Transform(pageHTML string, pageURL string) ([]*html.Node, error) {
	begin := time.Now()
	nodes, err := t.next.Transform(pageHTML, pageURL)
	if err != nil {
		t.logger.Error("page transform failed",
			"url", pageURL,
			"error", err,
		)
		return nil, err
	}

	t.logger.Info("page transform",
		"url", pageURL,
		"elements", len(nodes),
		"matched", len(nodes) > 0,
		"duration", time.Since(begin),
	)
	return nodes, nil
}

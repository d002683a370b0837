package slog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mjaros/pageblocks"
	"github.com/mjaros/pageblocks/mock"
	pbslog "github.com/mjaros/pageblocks/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure LoggingFetcher implements pageblocks.Fetcher.
var _ pageblocks.Fetcher = (*pbslog.LoggingFetcher)(nil)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs byte count on success", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}

		f := pbslog.NewLoggingFetcher(next, logger)
		html, err := f.Fetch(context.Background(), "https://www.example.com/")

		require.NoError(t, err)
		assert.NotEmpty(t, html)
		assert.Contains(t, buf.String(), "fetch")
		assert.Contains(t, buf.String(), "bytes=13")
	})

	t.Run("logs failures", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		f := pbslog.NewLoggingFetcher(next, logger)
		_, err := f.Fetch(context.Background(), "https://www.example.com/")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "fetch failed")
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		logger, _ := newTestLogger()
		closed := false
		next := &mock.Fetcher{CloseFn: func() error {
			closed = true
			return nil
		}}

		f := pbslog.NewLoggingFetcher(next, logger)
		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}

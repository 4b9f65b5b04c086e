package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/coursecat"
	"github.com/fwojciec/coursecat/mock"
	ccslog "github.com/fwojciec/coursecat/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query with size and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(_ context.Context, _ coursecat.SearchQuery) (*coursecat.SearchResponse, error) {
				return &coursecat.SearchResponse{HTML: "<p>hello</p>"}, nil
			},
		}

		searcher := ccslog.NewLoggingSearcher(inner, logger)
		resp, err := searcher.Search(context.Background(), coursecat.SearchQuery{Subject: "CSC", Number: 226, Term: 2251})

		require.NoError(t, err)
		assert.Equal(t, "<p>hello</p>", resp.HTML)
		output := buf.String()
		assert.Contains(t, output, "msg=search")
		assert.Contains(t, output, "subject=CSC")
		assert.Contains(t, output, "number=226")
		assert.Contains(t, output, "term=2251")
		assert.Contains(t, output, "bytes=12")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(_ context.Context, _ coursecat.SearchQuery) (*coursecat.SearchResponse, error) {
				return nil, errors.New("connection failed")
			},
		}

		searcher := ccslog.NewLoggingSearcher(inner, logger)
		_, err := searcher.Search(context.Background(), coursecat.SearchQuery{Subject: "CSC", Term: 2251})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}

package mock

import (
	"context"

	"github.com/fwojciec/coursecat"
)

var (
	_ coursecat.Searcher        = (*Searcher)(nil)
	_ coursecat.Decoder         = (*Decoder)(nil)
	_ coursecat.ResponseArchive = (*ResponseArchive)(nil)
)

// Searcher is a mock implementation of coursecat.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, q coursecat.SearchQuery) (*coursecat.SearchResponse, error)
}

func (s *Searcher) Search(ctx context.Context, q coursecat.SearchQuery) (*coursecat.SearchResponse, error) {
	return s.SearchFn(ctx, q)
}

// Decoder is a mock implementation of coursecat.Decoder.
type Decoder struct {
	DecodeFn func(resp *coursecat.SearchResponse) ([]coursecat.Course, error)
}

func (d *Decoder) Decode(resp *coursecat.SearchResponse) ([]coursecat.Course, error) {
	return d.DecodeFn(resp)
}

// ResponseArchive is a mock implementation of coursecat.ResponseArchive.
type ResponseArchive struct {
	ArchiveResponseFn       func(ctx context.Context, resp *coursecat.SearchResponse, reason string) (*coursecat.ArchivedResponse, error)
	FindArchivedResponsesFn func(ctx context.Context) ([]*coursecat.ArchivedResponse, error)
}

func (a *ResponseArchive) ArchiveResponse(ctx context.Context, resp *coursecat.SearchResponse, reason string) (*coursecat.ArchivedResponse, error) {
	return a.ArchiveResponseFn(ctx, resp, reason)
}

func (a *ResponseArchive) FindArchivedResponses(ctx context.Context) ([]*coursecat.ArchivedResponse, error) {
	return a.FindArchivedResponsesFn(ctx)
}

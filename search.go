package coursecat

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// SearchResponse is the body returned by the catalog search endpoint.
// HTML holds the rendered result markup; JSON is an auxiliary payload that
// is not decoded but kept for diagnostics.
type SearchResponse struct {
	HTML string          `json:"html"`
	JSON json.RawMessage `json:"json"`
}

// String returns the markup of the response.
func (r *SearchResponse) String() string {
	return r.HTML
}

// SearchQuery identifies the courses to request from the catalog.
type SearchQuery struct {
	Subject string `json:"subject"`

	// Number restricts the search to a single course. Zero means every
	// course of the subject.
	Number uint32 `json:"number"`

	Term uint32 `json:"term"`
}

// NormalizeSubject returns subject in the form the catalog uses in course
// identifiers: trimmed and upper case.
func NormalizeSubject(subject string) string {
	return strings.ToUpper(strings.TrimSpace(subject))
}

// Validate returns an error if the query contains invalid fields.
func (q *SearchQuery) Validate() error {
	if strings.TrimSpace(q.Subject) == "" {
		return Errorf(EINVALID, "search subject required")
	}
	if q.Term == 0 {
		return Errorf(EINVALID, "search term required")
	}
	return nil
}

// Searcher issues course searches against the catalog.
type Searcher interface {
	// Search returns the raw response for the query.
	// Returns ENOTFOUND if the catalog has no matching courses.
	Search(ctx context.Context, q SearchQuery) (*SearchResponse, error)
}

// Decoder converts search responses into courses.
type Decoder interface {
	// Decode returns one Course per course block in document order.
	// If any course cannot be decoded, Decode returns a
	// *MalformedInputError and no courses.
	Decode(resp *SearchResponse) ([]Course, error)
}

// ArchivedResponse is a search response kept for later diagnosis.
type ArchivedResponse struct {
	ID          string          `json:"id"`
	ContentHash string          `json:"contentHash"`
	Reason      string          `json:"reason"`
	Response    *SearchResponse `json:"response"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ResponseArchive stores responses that failed to decode.
type ResponseArchive interface {
	// ArchiveResponse stores resp with the reason it was archived.
	// Archiving identical markup twice returns the existing entry.
	ArchiveResponse(ctx context.Context, resp *SearchResponse, reason string) (*ArchivedResponse, error)

	// FindArchivedResponses returns archived responses, newest first.
	FindArchivedResponses(ctx context.Context) ([]*ArchivedResponse, error)
}

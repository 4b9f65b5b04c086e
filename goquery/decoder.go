package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/coursecat"
)

// Ensure Decoder implements coursecat.Decoder at compile time.
var _ coursecat.Decoder = (*Decoder)(nil)

// Decoder decodes catalog search responses. It holds no per-call state and
// is safe for concurrent use.
type Decoder struct {
	queries *Queries
}

// NewDecoder creates a Decoder using the given compiled queries.
// If queries is nil, a new set is compiled.
func NewDecoder(queries *Queries) *Decoder {
	if queries == nil {
		queries = NewQueries()
	}
	return &Decoder{queries: queries}
}

// Decode returns one Course per course block of resp, in document order.
// A response without course blocks yields an empty slice. If any course
// fails to decode, Decode returns a *coursecat.MalformedInputError holding
// resp and no courses.
func (d *Decoder) Decode(resp *coursecat.SearchResponse) ([]coursecat.Course, error) {
	if resp == nil {
		return nil, coursecat.Errorf(coursecat.EINVALID, "search response required")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.HTML))
	if err != nil {
		return nil, &coursecat.MalformedInputError{Response: resp, Err: err}
	}

	blocks := doc.FindMatcher(d.queries.Course)
	courses := make([]coursecat.Course, 0, blocks.Length())
	for i := range blocks.Nodes {
		course, err := parseCourse(blocks.Eq(i), d.queries)
		if err != nil {
			return nil, &coursecat.MalformedInputError{Response: resp, Err: err}
		}
		courses = append(courses, course)
	}

	return courses, nil
}

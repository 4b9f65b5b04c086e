// Package catalog synchronizes course catalog searches into local storage.
// It coordinates searching, decoding and persisting of course listings
// for a set of subjects.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/coursecat"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of subjects searched in parallel.
const DefaultConcurrency = 4

// Syncer orchestrates the synchronization of catalog subjects.
type Syncer struct {
	Searcher    coursecat.Searcher
	Decoder     coursecat.Decoder
	Courses     coursecat.CourseService
	Archive     coursecat.ResponseArchive
	Concurrency int
	RetryDelays []time.Duration

	// Logger, if set, receives retry messages.
	Logger LogFunc
}

// Result holds the outcome of a sync operation.
type Result struct {
	Subjects int
	Courses  int
	Sections int
	Failed   int
}

// ProgressEvent reports progress during a sync operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Subject   string
	Courses   int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting sync progress.
type ProgressFunc func(event ProgressEvent)

// subjectResult holds the outcome of searching and decoding one subject.
type subjectResult struct {
	position int
	subject  string
	courses  []coursecat.Course
	err      error
}

// Sync searches every subject for term, decodes the responses and replaces
// the stored courses of each subject. Subject codes are normalized with
// coursecat.NormalizeSubject. Subjects that fail to search, decode or pass
// storage validation are counted and reported through progress; they do
// not abort the others. Responses that fail to decode are kept in the
// archive. Any other storage error stops the sync.
func (s *Syncer) Sync(ctx context.Context, term uint32, subjects []string, progress ProgressFunc) (*Result, error) {
	if term == 0 {
		return nil, coursecat.Errorf(coursecat.EINVALID, "term required")
	}
	if len(subjects) == 0 {
		return &Result{}, nil
	}
	subjects = normalizeSubjects(subjects)

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	total := len(subjects)
	resultCh := make(chan subjectResult, total)
	var completed atomic.Int64

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, subject := range subjects {
			g.Go(func() error {
				resultCh <- s.processSubject(gctx, i, term, subject, delays)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]subjectResult, total)
	for r := range resultCh {
		n := int(completed.Add(1))
		results[r.position] = r
		if progress == nil {
			continue
		}
		if r.err != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: n,
				Total:     total,
				Subject:   r.subject,
				Error:     r.err,
			})
			continue
		}
		progress(ProgressEvent{
			Type:      ProgressCompleted,
			Completed: n,
			Total:     total,
			Subject:   r.subject,
			Courses:   len(r.courses),
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Persist in subject order once every search is done.
	result := &Result{}
	for _, r := range results {
		if r.err != nil {
			result.Failed++
			s.archive(ctx, r.err)
			continue
		}
		if err := s.Courses.ReplaceCourses(ctx, term, r.subject, r.courses); err != nil {
			err = fmt.Errorf("save %s: %w", r.subject, err)
			if coursecat.ErrorCode(err) != coursecat.EINVALID {
				return nil, err
			}
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: total,
					Total:     total,
					Subject:   r.subject,
					Error:     err,
				})
			}
			continue
		}
		result.Subjects++
		result.Courses += len(r.courses)
		for _, c := range r.courses {
			result.Sections += len(c.Sections)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// normalizeSubjects returns a normalized copy of subjects.
func normalizeSubjects(subjects []string) []string {
	out := make([]string, len(subjects))
	for i, subject := range subjects {
		out[i] = coursecat.NormalizeSubject(subject)
	}
	return out
}

// processSubject searches and decodes a single subject.
func (s *Syncer) processSubject(ctx context.Context, position int, term uint32, subject string, delays []time.Duration) subjectResult {
	result := subjectResult{position: position, subject: subject}

	q := coursecat.SearchQuery{Subject: subject, Term: term}
	resp, err := SearchWithRetry(ctx, q, s.Searcher.Search, s.Logger, delays)
	if coursecat.ErrorCode(err) == coursecat.ENOTFOUND {
		result.courses = []coursecat.Course{}
		return result
	}
	if err != nil {
		result.err = fmt.Errorf("search %s: %w", subject, err)
		return result
	}

	courses, err := s.Decoder.Decode(resp)
	if err != nil {
		result.err = fmt.Errorf("decode %s: %w", subject, err)
		return result
	}
	result.courses = courses
	return result
}

// archive stores the response carried by a malformed-input error. Archive
// failures are not fatal to the sync.
func (s *Syncer) archive(ctx context.Context, err error) {
	var malformed *coursecat.MalformedInputError
	if s.Archive == nil || !errors.As(err, &malformed) || malformed.Response == nil {
		return
	}
	reason := malformed.Error()
	if _, aerr := s.Archive.ArchiveResponse(ctx, malformed.Response, reason); aerr != nil && s.Logger != nil {
		s.Logger("  archive failed: %v", aerr)
	}
}

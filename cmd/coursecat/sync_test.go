package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/coursecat"
	"github.com/fwojciec/coursecat/catalog"
	main "github.com/fwojciec/coursecat/cmd/coursecat"
	"github.com/fwojciec/coursecat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints progress and summary", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Syncer: &catalog.Syncer{
				Searcher: &mock.Searcher{
					SearchFn: func(_ context.Context, q coursecat.SearchQuery) (*coursecat.SearchResponse, error) {
						if q.Subject == "BAD" {
							return nil, errors.New("connection refused")
						}
						return &coursecat.SearchResponse{HTML: q.Subject}, nil
					},
				},
				Decoder: &mock.Decoder{
					DecodeFn: func(_ *coursecat.SearchResponse) ([]coursecat.Course, error) {
						return []coursecat.Course{sampleCourse()}, nil
					},
				},
				Courses: &mock.CourseService{
					ReplaceCoursesFn: func(_ context.Context, _ uint32, _ string, _ []coursecat.Course) error {
						return nil
					},
				},
				Concurrency: 1,
				RetryDelays: []time.Duration{},
			},
		}

		cmd := &main.SyncCmd{Subjects: []string{"CSC", "BAD"}, Term: 2251}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Syncing 2 subjects for term 2251")
		assert.Contains(t, stdout.String(), "CSC: 1 courses")
		assert.Contains(t, stdout.String(), "Saved 1 courses, 1 sections from 1 subjects (1 failed)")
		assert.Contains(t, stderr.String(), "skip BAD: search BAD: connection refused")
	})

	t.Run("returns sync errors", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Syncer: &catalog.Syncer{},
		}

		cmd := &main.SyncCmd{Subjects: []string{"CSC"}, Term: 0}
		err := cmd.Run(deps)

		assert.Equal(t, coursecat.EINVALID, coursecat.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error syncing: term required")
	})

	t.Run("fails without syncer", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.SyncCmd{Subjects: []string{"CSC"}, Term: 2251}
		err := cmd.Run(deps)

		assert.Equal(t, coursecat.EINTERNAL, coursecat.ErrorCode(err))
	})
}

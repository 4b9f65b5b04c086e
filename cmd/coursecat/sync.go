package main

import (
	"fmt"

	"github.com/fwojciec/coursecat"
	"github.com/fwojciec/coursecat/catalog"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	if deps.Syncer == nil {
		err := coursecat.Errorf(coursecat.EINTERNAL, "syncer not configured")
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecat.ErrorMessage(err))
		return err
	}

	progress := func(event catalog.ProgressEvent) {
		switch event.Type {
		case catalog.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Syncing %d subjects for term %d\n", event.Total, c.Term)
		case catalog.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s: %d courses\n", event.Completed, event.Total, event.Subject, event.Courses)
		case catalog.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] skip %s: %v\n", event.Completed, event.Total, event.Subject, event.Error)
		case catalog.ProgressFinished:
			// Summary printed after sync completes
		}
	}

	result, err := deps.Syncer.Sync(deps.Ctx, c.Term, c.Subjects, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error syncing: %s\n", coursecat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d courses, %d sections from %d subjects", result.Courses, result.Sections, result.Subjects)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d failed)", result.Failed)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}

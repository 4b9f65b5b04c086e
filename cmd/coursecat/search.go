package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/coursecat"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	c.Subject = coursecat.NormalizeSubject(c.Subject)
	if c.Save && c.Number != 0 {
		err := coursecat.Errorf(coursecat.EINVALID, "--save stores whole subjects; omit the course number")
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecat.ErrorMessage(err))
		return err
	}

	q := coursecat.SearchQuery{Subject: c.Subject, Number: c.Number, Term: c.Term}
	resp, err := deps.Searcher.Search(deps.Ctx, q)
	if coursecat.ErrorCode(err) == coursecat.ENOTFOUND {
		fmt.Fprintf(deps.Stdout, "No courses found for %s in term %d.\n", c.Subject, c.Term)
		return nil
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecat.ErrorMessage(err))
		return err
	}

	courses, err := deps.Decoder.Decode(resp)
	if err != nil {
		reportDecodeError(deps, err)
		return err
	}

	if c.Save {
		if err := deps.Courses.ReplaceCourses(deps.Ctx, c.Term, c.Subject, courses); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", coursecat.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved %d courses for %s.\n", len(courses), c.Subject)
	}

	return renderCourses(deps.Stdout, courses, c.Format)
}

// reportDecodeError prints a decode failure. Malformed responses are
// archived; 'coursecat archive --export ID' writes one back out in the
// form the decode command reads.
func reportDecodeError(deps *Dependencies, err error) {
	fmt.Fprintf(deps.Stderr, "error: %s\n", coursecat.ErrorMessage(err))

	var malformed *coursecat.MalformedInputError
	if !errors.As(err, &malformed) {
		return
	}
	if malformed.Err != nil {
		fmt.Fprintf(deps.Stderr, "  %v\n", malformed.Err)
	}
	if deps.Archive == nil || malformed.Response == nil {
		return
	}
	archived, aerr := deps.Archive.ArchiveResponse(deps.Ctx, malformed.Response, malformed.Error())
	if aerr != nil {
		fmt.Fprintf(deps.Stderr, "  archive failed: %s\n", coursecat.ErrorMessage(aerr))
		return
	}
	fmt.Fprintf(deps.Stderr, "  response archived as %s\n", archived.ID)
}

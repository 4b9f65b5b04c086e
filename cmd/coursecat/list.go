package main

import (
	"fmt"

	"github.com/fwojciec/coursecat"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := coursecat.CourseFilter{Term: &c.Term}
	if c.Subject != "" {
		c.Subject = coursecat.NormalizeSubject(c.Subject)
		filter.Subject = &c.Subject
	}

	courses, err := deps.Courses.FindCourses(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecat.ErrorMessage(err))
		return err
	}

	if len(courses) == 0 {
		fmt.Fprintln(deps.Stdout, "No courses found. Use 'coursecat sync' to fetch some.")
		return nil
	}

	return renderCourseList(deps.Stdout, courses, c.Format)
}

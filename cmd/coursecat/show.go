package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/coursecat"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	c.Subject = coursecat.NormalizeSubject(c.Subject)
	courses, err := deps.Courses.FindCourses(deps.Ctx, coursecat.CourseFilter{
		Term:    &c.Term,
		Subject: &c.Subject,
		Code:    &c.Code,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursecat.ErrorMessage(err))
		return err
	}

	if len(courses) == 0 {
		fmt.Fprintf(deps.Stderr, "error: course %s %d not found in term %d. Use 'coursecat sync %s' to fetch it.\n", c.Subject, c.Code, c.Term, c.Subject)
		return coursecat.Errorf(coursecat.ENOTFOUND, "course %s-%d not found", c.Subject, c.Code)
	}

	for i, course := range courses {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		if err := c.print(deps, course); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", coursecat.ErrorMessage(err))
			return err
		}
	}
	return nil
}

func (c *ShowCmd) print(deps *Dependencies, course *coursecat.Course) error {
	w := deps.Stdout
	fmt.Fprintf(w, "%s %d - %s (%d credits)\n", course.Subject, course.Code, course.Name, course.Credits)
	if course.Description != "" {
		fmt.Fprintf(w, "\n%s\n", course.Description)
	}
	fmt.Fprintln(w)

	if err := renderCourses(w, []coursecat.Course{*course}, FormatTable); err != nil {
		return err
	}

	for _, s := range course.Sections {
		if s.Notes == nil && s.Requisites == nil && s.Restrictions == nil {
			continue
		}
		fmt.Fprintf(w, "\nSection %03d (%s to %s)\n", s.Number, s.BeginDate, s.EndDate)
		for _, a := range []struct {
			label string
			text  *string
		}{
			{"Notes", s.Notes},
			{"Requisites", s.Requisites},
			{"Restrictions", s.Restrictions},
		} {
			if err := printAnnotation(w, deps.Converter, a.label, a.text); err != nil {
				return err
			}
		}
	}
	return nil
}

// printAnnotation renders an optional annotation as indented Markdown.
func printAnnotation(w io.Writer, conv coursecat.Converter, label string, text *string) error {
	if text == nil || strings.TrimSpace(*text) == "" {
		return nil
	}
	md, err := conv.Convert(*text)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  %s:\n", label)
	for _, line := range strings.Split(md, "\n") {
		fmt.Fprintf(w, "    %s\n", line)
	}
	return nil
}

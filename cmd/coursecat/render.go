package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/coursecat"
	"github.com/jedib0t/go-pretty/v6/table"
)

// renderCourses writes courses to w in the requested format. The table
// format lists one row per section.
func renderCourses(w io.Writer, courses []coursecat.Course, format string) error {
	if format == FormatJSON {
		return writeJSON(w, courses)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Course", "Sec", "Type", "Class", "Availability", "Schedule", "Location", "Instructors"})
	for i := range courses {
		c := &courses[i]
		if len(c.Sections) == 0 {
			t.AppendRow(table.Row{c.ID(), "", "", "", "", "", "", ""})
			continue
		}
		for _, s := range c.Sections {
			t.AppendRow(table.Row{
				c.ID(),
				fmt.Sprintf("%03d", s.Number),
				s.Component,
				s.ClassID,
				coursecat.FormatAvailability(s.Availability),
				coursecat.FormatSchedule(s.Schedule),
				s.Location,
				coursecat.FormatInstructors(s.Instructors),
			})
		}
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

// renderCourseList writes a one-row-per-course summary.
func renderCourseList(w io.Writer, courses []*coursecat.Course, format string) error {
	if format == FormatJSON {
		return writeJSON(w, courses)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Course", "Title", "Credits", "Sections", "Open"})
	for _, c := range courses {
		var open int
		for _, s := range c.Sections {
			if s.Availability.Status == coursecat.StatusOpen {
				open++
			}
		}
		t.AppendRow(table.Row{c.ID(), c.Name, c.Credits, len(c.Sections), open})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", len(courses)})
	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

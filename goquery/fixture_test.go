package goquery_test

import (
	"fmt"
	"strings"
)

// sectionRow holds the inner HTML of each cell of a section row.
type sectionRow struct {
	Number       string
	Component    string
	ClassID      string
	Availability string
	Schedule     string
	Location     string
	Instructors  string
	Dates        string
	Links        string

	// Cells overrides the rendered cells when set.
	Cells []string
}

func newSectionRow() sectionRow {
	return sectionRow{
		Number:       "001",
		Component:    "Lecture",
		ClassID:      "12345",
		Availability: `<span class="text-success">Open</span><br>18/20`,
		Schedule:     `<abbr title="Monday - meet">M</abbr><abbr title="Tuesday - does not meet">T</abbr><abbr title="Wednesday - meet">W</abbr><br>10:15 AM - 11:05 AM`,
		Location:     "1231 EB2",
		Instructors:  `<a href="https://example.edu/jdoe">Jane Doe</a>`,
		Dates:        "01/06/25 - 04/22/25",
		Links:        "",
	}
}

func (r sectionRow) html() string {
	cells := r.Cells
	if cells == nil {
		cells = []string{
			r.Number, r.Component, r.ClassID, r.Availability, r.Schedule,
			r.Location, r.Instructors, r.Dates, "", r.Links,
		}
	}
	var b strings.Builder
	b.WriteString("<tr>")
	for _, c := range cells {
		b.WriteString("<td>" + c + "</td>")
	}
	b.WriteString("</tr>")
	return b.String()
}

// courseBlock describes a course block of the search markup.
type courseBlock struct {
	ID          string
	Title       string
	Units       string
	Description []string
	Rows        []sectionRow
}

func newCourseBlock() courseBlock {
	return courseBlock{
		ID:          "CSC-226",
		Title:       "Discrete Mathematics for Computer Scientists",
		Units:       "Units: 3",
		Description: []string{"Propositional logic.", "Graphs and trees."},
		Rows:        []sectionRow{newSectionRow()},
	}
}

func (c courseBlock) html() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<section class="course" id="%s">`, c.ID)
	fmt.Fprintf(&b, `<h1>%s <small>%s</small></h1>`, strings.ReplaceAll(c.ID, "-", " "), c.Title)
	if c.Units != "" {
		fmt.Fprintf(&b, `<span class="units">%s</span>`, c.Units)
	}
	for _, p := range c.Description {
		fmt.Fprintf(&b, "<p>%s</p>", p)
	}
	b.WriteString(`<table class="table section-table">`)
	b.WriteString(`<tr><th colspan="10">Sections</th></tr>`)
	b.WriteString(`<tr><th>Section</th><th>Component</th><th>Class</th><th>Availability</th><th>Days/Times</th><th>Location</th><th>Instructor</th><th>Begin/End</th><th></th><th></th></tr>`)
	for _, r := range c.Rows {
		b.WriteString(r.html())
	}
	b.WriteString("</table></section>")
	return b.String()
}

func document(blocks ...courseBlock) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><body><div id=\"results\">")
	for _, c := range blocks {
		b.WriteString(c.html())
	}
	b.WriteString("</div></body></html>")
	return b.String()
}

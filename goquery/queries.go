// Package goquery decodes catalog search markup into coursecat records
// using goquery and pre-compiled cascadia selectors.
package goquery

import "github.com/andybalholm/cascadia"

// Queries holds the compiled selectors used to locate course data in search
// markup. A Queries value is read-only after construction and may be shared
// by any number of concurrent decoders.
type Queries struct {
	// Course matches one course block, including all of its sections.
	Course cascadia.Selector

	// Title matches the course title inside a course block.
	Title cascadia.Selector

	// Units matches the "Units: n" credits label.
	Units cascadia.Selector

	// Paragraph matches description paragraphs.
	Paragraph cascadia.Selector

	// SectionRow matches table rows of a course block. The first
	// HeaderRows rows are labels, not sections.
	SectionRow cascadia.Selector

	// Weekday matches day markers inside a schedule cell.
	Weekday cascadia.Selector

	// Link matches anchors carrying notes, requisites or restrictions.
	Link cascadia.Selector
}

// HeaderRows is the number of leading rows in a course block that
// label the section table rather than describe a section.
const HeaderRows = 2

// NewQueries compiles the selectors for the catalog search markup.
func NewQueries() *Queries {
	return &Queries{
		Course:     cascadia.MustCompile("section.course"),
		Title:      cascadia.MustCompile("small"),
		Units:      cascadia.MustCompile("span.units"),
		Paragraph:  cascadia.MustCompile("p"),
		SectionRow: cascadia.MustCompile("tr"),
		Weekday:    cascadia.MustCompile("abbr"),
		Link:       cascadia.MustCompile("a"),
	}
}

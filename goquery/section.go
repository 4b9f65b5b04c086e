package goquery

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/coursecat"
)

// sectionCellCount is the number of cells in a section row.
const sectionCellCount = 10

// sectionCells names the cells of a section row. The catalog renders
// section fields in a fixed column order, so cells are identified by
// position; this is the only place that depends on that order.
type sectionCells struct {
	Number       *goquery.Selection
	Component    *goquery.Selection
	ClassID      *goquery.Selection
	Availability *goquery.Selection
	Schedule     *goquery.Selection
	Location     *goquery.Selection
	Instructors  *goquery.Selection
	Dates        *goquery.Selection
	Links        *goquery.Selection
}

// newSectionCells maps the child elements of row to named cells.
// Column 8 is an empty placeholder and is not mapped.
func newSectionCells(row *goquery.Selection) (*sectionCells, error) {
	cells := row.Children()
	if n := cells.Length(); n < sectionCellCount {
		return nil, fmt.Errorf("want %d cells, got %d", sectionCellCount, n)
	}
	return &sectionCells{
		Number:       cells.Eq(0),
		Component:    cells.Eq(1),
		ClassID:      cells.Eq(2),
		Availability: cells.Eq(3),
		Schedule:     cells.Eq(4),
		Location:     cells.Eq(5),
		Instructors:  cells.Eq(6),
		Dates:        cells.Eq(7),
		Links:        cells.Eq(9),
	}, nil
}

// pipeline runs extraction steps until the first failure. Once a step
// fails, later steps are skipped and err names the failed field.
type pipeline struct {
	err error
}

func (p *pipeline) step(field string, fn func() error) {
	if p.err != nil {
		return
	}
	if err := fn(); err != nil {
		p.err = fmt.Errorf("%s: %w", field, err)
	}
}

// parseSection decodes one section row. Any missing cell or unparseable
// field fails the whole section.
func parseSection(row *goquery.Selection, q *Queries) (coursecat.Section, error) {
	cells, err := newSectionCells(row)
	if err != nil {
		return coursecat.Section{}, err
	}

	var s coursecat.Section
	var p pipeline
	p.step("number", func() (err error) {
		s.Number, err = parseUint32(cells.Number.Text())
		return err
	})
	p.step("component", func() error {
		s.Component = cells.Component.Text()
		return nil
	})
	p.step("class id", func() (err error) {
		s.ClassID, err = parseUint32(cells.ClassID.Text())
		return err
	})
	p.step("availability", func() (err error) {
		s.Availability, err = parseAvailability(cells.Availability)
		return err
	})
	p.step("schedule", func() (err error) {
		s.Schedule, err = parseSchedule(cells.Schedule, q)
		return err
	})
	p.step("location", func() error {
		s.Location = cells.Location.Text()
		return nil
	})
	p.step("instructors", func() error {
		s.Instructors = parseInstructors(cells.Instructors)
		return nil
	})
	p.step("dates", func() (err error) {
		s.BeginDate, s.EndDate, err = parseDateRange(cells.Dates)
		return err
	})
	p.step("links", func() error {
		a := parseAnnotations(cells.Links, q)
		s.Notes, s.Requisites, s.Restrictions = a.notes, a.requisites, a.restrictions
		return nil
	})
	if p.err != nil {
		return coursecat.Section{}, p.err
	}
	return s, nil
}

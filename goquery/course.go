package goquery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/coursecat"
)

// parseCourse decodes one course block and all of its section rows.
func parseCourse(block *goquery.Selection, q *Queries) (coursecat.Course, error) {
	var c coursecat.Course
	var p pipeline
	p.step("id", func() (err error) {
		id, ok := block.Attr("id")
		if !ok {
			return errors.New("course block has no id")
		}
		c.Subject, c.Code, err = parseCourseID(id)
		return err
	})
	p.step("title", func() error {
		title := block.FindMatcher(q.Title).First()
		if title.Length() == 0 {
			return errMissing
		}
		c.Name = strings.TrimSpace(title.Text())
		return nil
	})
	p.step("credits", func() (err error) {
		units := block.FindMatcher(q.Units).First()
		if units.Length() == 0 {
			return errMissing
		}
		c.Credits, err = parseCredits(units.Text())
		return err
	})
	p.step("description", func() error {
		var paragraphs []string
		block.FindMatcher(q.Paragraph).Each(func(_ int, para *goquery.Selection) {
			paragraphs = append(paragraphs, para.Text())
		})
		c.Description = strings.Join(paragraphs, "\n")
		return nil
	})
	p.step("sections", func() (err error) {
		c.Sections, err = parseSections(block, q)
		return err
	})
	if p.err != nil {
		if c.Subject != "" {
			return coursecat.Course{}, fmt.Errorf("course %s-%d: %w", c.Subject, c.Code, p.err)
		}
		return coursecat.Course{}, p.err
	}
	return c, nil
}

// parseSections decodes the section rows of a course block, skipping the
// leading header rows. The first failing row fails the whole course.
func parseSections(block *goquery.Selection, q *Queries) ([]coursecat.Section, error) {
	rows := block.FindMatcher(q.SectionRow)
	sections := make([]coursecat.Section, 0, max(rows.Length()-HeaderRows, 0))
	for i := HeaderRows; i < rows.Length(); i++ {
		s, err := parseSection(rows.Eq(i), q)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		sections = append(sections, s)
	}
	return sections, nil
}

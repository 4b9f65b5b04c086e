package goquery

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/coursecat"
)

// Source formats used by the catalog markup.
const (
	timeLayout = "3:04 PM"
	dateLayout = "1/2/06"

	// rangeSeparator separates the two ends of a time or date range.
	rangeSeparator = " - "

	// tbd is the schedule cell text of sections without meeting times.
	tbd = "TBD"

	// meetingSuffix ends the title of weekday markers for days the
	// section meets, e.g. "Monday - meet".
	meetingSuffix = " - meet"
)

// Annotation id prefixes of the misc links cell.
const (
	notesPrefix        = "notes"
	requisitesPrefix   = "reqs"
	restrictionsPrefix = "reserve"
)

// fullnessRe matches "enrolled/capacity" with an optional "(waitlisted)".
var fullnessRe = regexp.MustCompile(`(\d+)/(\d+)(?:\s*\((\d+)\))?`)

var errMissing = errors.New("missing element")

// parseCourseID splits a course block id such as "CSC-226" into its
// subject and numeric code. The subject is the first token as written,
// possibly empty.
func parseCourseID(id string) (subject string, code uint32, err error) {
	parts := strings.Split(id, "-")
	subject = parts[0]
	code, err = parseUint32(parts[len(parts)-1])
	if err != nil {
		return "", 0, err
	}
	return subject, code, nil
}

// parseCredits parses a credits label such as "Units: 3". Only the text
// after the last colon is kept.
func parseCredits(label string) (uint8, error) {
	value := label[strings.LastIndex(label, ":")+1:]
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid credits %q", label)
	}
	return uint8(n), nil
}

// parseAvailability reads a status label and a fullness string such as
// "18/20" or "20/20 (3)" from the first two text fragments of cell.
func parseAvailability(cell *goquery.Selection) (coursecat.Availability, error) {
	fragments := textFragments(cell)
	if len(fragments) < 2 {
		return coursecat.Availability{}, fmt.Errorf("want status and fullness, got %d fragments", len(fragments))
	}

	status, err := coursecat.ParseStatus(fragments[0])
	if err != nil {
		return coursecat.Availability{}, err
	}

	m := fullnessRe.FindStringSubmatch(fragments[1])
	if m == nil {
		return coursecat.Availability{}, fmt.Errorf("invalid fullness %q", fragments[1])
	}

	a := coursecat.Availability{Status: status}
	if a.Enrolled, err = parseUint32(m[1]); err != nil {
		return coursecat.Availability{}, err
	}
	if a.Capacity, err = parseUint32(m[2]); err != nil {
		return coursecat.Availability{}, err
	}
	if m[3] != "" {
		if a.Waitlisted, err = parseUint32(m[3]); err != nil {
			return coursecat.Availability{}, err
		}
	}
	return a, nil
}

// parseSchedule reads the meeting pattern of a schedule cell. A cell whose
// first text is "TBD" has no schedule and yields nil without error.
func parseSchedule(cell *goquery.Selection, q *Queries) (*coursecat.Schedule, error) {
	fragments := textFragments(cell)
	if len(fragments) == 0 {
		return nil, errMissing
	}
	if fragments[0] == tbd {
		return nil, nil
	}

	begin, end, ok := strings.Cut(fragments[len(fragments)-1], rangeSeparator)
	if !ok {
		return nil, fmt.Errorf("invalid time range %q", fragments[len(fragments)-1])
	}
	beginTime, err := coursecat.ParseClock(timeLayout, strings.TrimSpace(begin))
	if err != nil {
		return nil, err
	}
	endTime, err := coursecat.ParseClock(timeLayout, strings.TrimSpace(end))
	if err != nil {
		return nil, err
	}

	days, err := parseMeetingDays(cell, q)
	if err != nil {
		return nil, err
	}

	return &coursecat.Schedule{
		Days:      days,
		BeginTime: beginTime,
		EndTime:   endTime,
	}, nil
}

// parseMeetingDays returns the days whose marker title carries the meeting
// suffix. A marker without a title fails rather than being skipped so a
// meeting day is never silently dropped.
func parseMeetingDays(cell *goquery.Selection, q *Queries) ([]coursecat.Weekday, error) {
	markers := cell.FindMatcher(q.Weekday)

	var days []coursecat.Weekday
	for i := range markers.Nodes {
		title, ok := markers.Eq(i).Attr("title")
		if !ok {
			return nil, fmt.Errorf("weekday marker %d has no title", i)
		}
		name, meets := strings.CutSuffix(title, meetingSuffix)
		if !meets {
			continue
		}
		day, err := coursecat.ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	if len(days) == 0 {
		return nil, errors.New("no meeting days")
	}
	return days, nil
}

// parseDateRange reads a "01/06/25 - 04/22/25" range. The order of the two
// dates is not checked.
func parseDateRange(cell *goquery.Selection) (begin, end coursecat.Date, err error) {
	text := cell.Text()
	first, last, ok := strings.Cut(text, rangeSeparator)
	if !ok {
		return begin, end, fmt.Errorf("invalid date range %q", text)
	}
	if begin, err = coursecat.ParseDate(dateLayout, strings.TrimSpace(first)); err != nil {
		return begin, end, err
	}
	if end, err = coursecat.ParseDate(dateLayout, strings.TrimSpace(last)); err != nil {
		return begin, end, err
	}
	return begin, end, nil
}

// parseInstructors returns one instructor per child element of cell.
func parseInstructors(cell *goquery.Selection) []coursecat.Instructor {
	children := cell.Children()
	instructors := make([]coursecat.Instructor, 0, children.Length())
	children.Each(func(_ int, el *goquery.Selection) {
		instructor := coursecat.Instructor{
			Name: strings.TrimSpace(el.Text()),
		}
		if href, ok := el.Attr("href"); ok {
			instructor.Webpage = &href
		}
		instructors = append(instructors, instructor)
	})
	return instructors
}

// annotations holds the optional text attached to a section.
type annotations struct {
	notes        *string
	requisites   *string
	restrictions *string
}

// parseAnnotations collects notes, requisites and restrictions from the
// data-content attribute of links in cell. Links lacking an id or content,
// or with an unknown id prefix, are skipped. Content is kept raw.
func parseAnnotations(cell *goquery.Selection, q *Queries) annotations {
	var a annotations
	cell.FindMatcher(q.Link).Each(func(_ int, link *goquery.Selection) {
		id, ok := link.Attr("id")
		if !ok {
			return
		}
		content, ok := link.Attr("data-content")
		if !ok {
			return
		}
		content = strings.TrimSpace(content)

		switch {
		case strings.HasPrefix(id, notesPrefix):
			a.notes = &content
		case strings.HasPrefix(id, requisitesPrefix):
			a.requisites = &content
		case strings.HasPrefix(id, restrictionsPrefix):
			a.restrictions = &content
		}
	})
	return a
}

// parseUint32 parses a decimal number, ignoring surrounding whitespace.
func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return uint32(n), nil
}

package coursecat

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Course represents one catalog course and its offered sections.
type Course struct {
	Subject     string    `json:"subject"`
	Code        uint32    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Credits     uint8     `json:"credits"`
	Sections    []Section `json:"sections"`
}

// ID returns the catalog identifier of the course, e.g. "CSC-226".
func (c *Course) ID() string {
	return fmt.Sprintf("%s-%d", c.Subject, c.Code)
}

// Section represents one offering of a course.
type Section struct {
	Number       uint32       `json:"number"`
	Component    string       `json:"component"`
	ClassID      uint32       `json:"class_id"`
	Availability Availability `json:"availability"`

	// Schedule is nil when meeting times are to be determined.
	Schedule *Schedule `json:"schedule"`

	Location    string       `json:"location"`
	Instructors []Instructor `json:"instructors"`
	BeginDate   Date         `json:"begin_date"`
	EndDate     Date         `json:"end_date"`

	// Raw annotation text. May contain markup.
	Notes        *string `json:"notes"`
	Requisites   *string `json:"requisites"`
	Restrictions *string `json:"restrictions"`
}

// Availability holds enrollment figures for a section.
// Enrolled may exceed Capacity for overbooked sections.
type Availability struct {
	Status     Status `json:"status"`
	Capacity   uint32 `json:"capacity"`
	Enrolled   uint32 `json:"enrolled"`
	Waitlisted uint32 `json:"waitlisted"`
}

// Schedule holds the weekly meeting pattern of a section.
type Schedule struct {
	Days      []Weekday `json:"days"`
	BeginTime Clock     `json:"begin_time"`
	EndTime   Clock     `json:"end_time"`
}

// Instructor represents a person teaching a section.
type Instructor struct {
	Name    string  `json:"name"`
	Webpage *string `json:"webpage"`
}

// Status is the enrollment status of a section.
type Status int

// Section enrollment statuses.
const (
	StatusOpen Status = iota
	StatusClosed
	StatusWaitlisted
	StatusReserved
)

var statusNames = [...]string{"Open", "Closed", "Waitlisted", "Reserved"}

// ParseStatus converts a catalog status label into a Status.
// Matching is exact and case-sensitive; the catalog labels waitlisted
// sections "Waitlist".
func ParseStatus(label string) (Status, error) {
	switch label {
	case "Open":
		return StatusOpen, nil
	case "Closed":
		return StatusClosed, nil
	case "Waitlist":
		return StatusWaitlisted, nil
	case "Reserved":
		return StatusReserved, nil
	}
	return 0, Errorf(EINVALID, "unknown status %q", label)
}

// String returns the name of the status.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(statusNames) {
		return nil, Errorf(EINVALID, "invalid status %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if string(text) == name {
			*s = Status(i)
			return nil
		}
	}
	return Errorf(EINVALID, "unknown status %q", text)
}

// Weekday is a day of the week. It serializes as its three-letter name.
type Weekday time.Weekday

// Days of the week.
const (
	Sunday    = Weekday(time.Sunday)
	Monday    = Weekday(time.Monday)
	Tuesday   = Weekday(time.Tuesday)
	Wednesday = Weekday(time.Wednesday)
	Thursday  = Weekday(time.Thursday)
	Friday    = Weekday(time.Friday)
	Saturday  = Weekday(time.Saturday)
)

// ParseWeekday parses a full ("Monday") or three-letter ("Mon") English day
// name, ignoring case and surrounding whitespace.
func ParseWeekday(s string) (Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return Weekday(d), nil
		}
	}
	return 0, Errorf(EINVALID, "unknown weekday %q", s)
}

// String returns the English name of the day.
func (d Weekday) String() string {
	return time.Weekday(d).String()
}

// Abbrev returns the three-letter name of the day.
func (d Weekday) Abbrev() string {
	return d.String()[:3]
}

// MarshalText implements encoding.TextMarshaler.
func (d Weekday) MarshalText() ([]byte, error) {
	if d < Sunday || d > Saturday {
		return nil, Errorf(EINVALID, "invalid weekday %d", int(d))
	}
	return []byte(d.Abbrev()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Weekday) UnmarshalText(text []byte) error {
	day, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = day
	return nil
}

// Date is a calendar date without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses s with the given time layout and returns its date part.
func ParseDate(layout, s string) (Date, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// Time returns midnight UTC at the start of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(dateLayout, string(text))
	if err != nil {
		return Errorf(EINVALID, "invalid date %q", text)
	}
	*d = parsed
	return nil
}

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

const clockLayout = "15:04:05"

// ClockOf returns the time of day of t.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseClock parses s with the given time layout and returns its time of day.
func ParseClock(layout, s string) (Clock, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return Clock{}, err
	}
	return ClockOf(t), nil
}

// String returns the time formatted as HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:00", c.Hour, c.Minute)
}

// Kitchen returns the time on a 12-hour clock, e.g. "1:30PM".
func (c Clock) Kitchen() string {
	return time.Date(0, 1, 1, c.Hour, c.Minute, 0, 0, time.UTC).Format(time.Kitchen)
}

// MarshalText implements encoding.TextMarshaler.
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := ParseClock(clockLayout, string(text))
	if err != nil {
		return Errorf(EINVALID, "invalid time of day %q", text)
	}
	*c = parsed
	return nil
}

// CourseService represents a service for storing decoded courses.
type CourseService interface {
	// ReplaceCourses stores the courses of one subject for a term,
	// removing whatever was previously stored for that term and subject.
	ReplaceCourses(ctx context.Context, term uint32, subject string, courses []Course) error

	// FindCourses retrieves stored courses matching the filter,
	// ordered by subject and code.
	FindCourses(ctx context.Context, filter CourseFilter) ([]*Course, error)
}

// CourseFilter represents a filter for FindCourses.
type CourseFilter struct {
	Term    *uint32 `json:"term"`
	Subject *string `json:"subject"`
	Code    *uint32 `json:"code"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

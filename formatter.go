package coursecat

import (
	"fmt"
	"strings"
)

// FormatSchedule formats a meeting pattern for display, e.g.
// "MonWed 10:15AM-11:05AM". A nil schedule formats as "TBD".
func FormatSchedule(s *Schedule) string {
	if s == nil {
		return "TBD"
	}

	var days strings.Builder
	for _, d := range s.Days {
		days.WriteString(d.Abbrev())
	}

	return fmt.Sprintf("%s %s-%s", days.String(), s.BeginTime.Kitchen(), s.EndTime.Kitchen())
}

// FormatAvailability formats enrollment figures, e.g. "Open 18/20" or
// "Waitlisted 20/20 (3)". The waitlist count is shown only when non-zero.
func FormatAvailability(a Availability) string {
	result := fmt.Sprintf("%s %d/%d", a.Status, a.Enrolled, a.Capacity)
	if a.Waitlisted > 0 {
		result += fmt.Sprintf(" (%d)", a.Waitlisted)
	}
	return result
}

// FormatInstructors joins instructor names with commas.
// Sections without instructors format as "Staff".
func FormatInstructors(instructors []Instructor) string {
	if len(instructors) == 0 {
		return "Staff"
	}

	names := make([]string, 0, len(instructors))
	for _, in := range instructors {
		names = append(names, in.Name)
	}
	return strings.Join(names, ", ")
}

// Package coursecat decodes university course-catalog search results into
// typed courses, sections, schedules and enrollment figures.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package coursecat

package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/coursecat"
)

// Compile-time interface verification.
var _ coursecat.CourseService = (*CourseService)(nil)

// CourseService implements coursecat.CourseService using SQLite.
// Sections are stored as a JSON array alongside their course.
type CourseService struct {
	db *DB
}

// NewCourseService creates a new CourseService.
func NewCourseService(db *DB) *CourseService {
	return &CourseService{db: db}
}

// ReplaceCourses atomically replaces every stored course of subject in term.
func (s *CourseService) ReplaceCourses(ctx context.Context, term uint32, subject string, courses []coursecat.Course) error {
	if term == 0 {
		return coursecat.Errorf(coursecat.EINVALID, "term required")
	}
	if subject == "" {
		return coursecat.Errorf(coursecat.EINVALID, "subject required")
	}
	for i := range courses {
		if courses[i].Subject != subject {
			return coursecat.Errorf(coursecat.EINVALID, "course %s does not belong to subject %s", courses[i].ID(), subject)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM courses WHERE term = ? AND subject = ?", term, subject); err != nil {
		return err
	}

	syncedAt := time.Now().UTC().Format(time.RFC3339)
	for i := range courses {
		c := &courses[i]
		sections, err := json.Marshal(nonNilSections(c.Sections))
		if err != nil {
			return fmt.Errorf("encode sections of %s: %w", c.ID(), err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO courses (term, subject, position, code, name, description, credits, sections, synced_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, term, subject, i, c.Code, c.Name, c.Description, c.Credits, string(sections), syncedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindCourses retrieves courses matching the filter, ordered by subject and code.
func (s *CourseService) FindCourses(ctx context.Context, filter coursecat.CourseFilter) ([]*coursecat.Course, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT subject, code, name, description, credits, sections FROM courses WHERE 1=1")

	if filter.Term != nil {
		query.WriteString(" AND term = ?")
		args = append(args, *filter.Term)
	}
	if filter.Subject != nil {
		query.WriteString(" AND subject = ?")
		args = append(args, *filter.Subject)
	}
	if filter.Code != nil {
		query.WriteString(" AND code = ?")
		args = append(args, *filter.Code)
	}

	query.WriteString(" ORDER BY subject ASC, code ASC, term DESC, position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*coursecat.Course
	for rows.Next() {
		var c coursecat.Course
		var sections string

		if err := rows.Scan(&c.Subject, &c.Code, &c.Name, &c.Description, &c.Credits, &sections); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(sections), &c.Sections); err != nil {
			return nil, fmt.Errorf("failed to decode sections of %s: %w", c.ID(), err)
		}
		c.Sections = nonNilSections(c.Sections)

		courses = append(courses, &c)
	}

	return courses, rows.Err()
}

func nonNilSections(sections []coursecat.Section) []coursecat.Section {
	if sections == nil {
		return []coursecat.Section{}
	}
	return sections
}

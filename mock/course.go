package mock

import (
	"context"

	"github.com/fwojciec/coursecat"
)

var _ coursecat.CourseService = (*CourseService)(nil)

// CourseService is a mock implementation of coursecat.CourseService.
type CourseService struct {
	ReplaceCoursesFn func(ctx context.Context, term uint32, subject string, courses []coursecat.Course) error
	FindCoursesFn    func(ctx context.Context, filter coursecat.CourseFilter) ([]*coursecat.Course, error)
}

func (s *CourseService) ReplaceCourses(ctx context.Context, term uint32, subject string, courses []coursecat.Course) error {
	return s.ReplaceCoursesFn(ctx, term, subject, courses)
}

func (s *CourseService) FindCourses(ctx context.Context, filter coursecat.CourseFilter) ([]*coursecat.Course, error) {
	return s.FindCoursesFn(ctx, filter)
}

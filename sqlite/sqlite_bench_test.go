package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/coursecat"
	"github.com/fwojciec/coursecat/sqlite"
	"github.com/stretchr/testify/require"
)

// BenchmarkReplaceCourses simulates repeated syncs of one large subject
// against a file-backed database.
func BenchmarkReplaceCourses(b *testing.B) {
	for _, n := range []int{10, 100} {
		b.Run(fmt.Sprintf("courses_%d", n), func(b *testing.B) {
			db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
			require.NoError(b, db.Open())
			defer db.Close()

			svc := sqlite.NewCourseService(db)
			courses := make([]coursecat.Course, n)
			for i := range courses {
				courses[i] = testCourse("CSC", uint32(100+i))
			}
			ctx := context.Background()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := svc.ReplaceCourses(ctx, 2251, "CSC", courses); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

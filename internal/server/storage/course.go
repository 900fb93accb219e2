package storage

import (
	"context"

	"github.com/iudanet/lmsdesk/pkg/api"
)

// CourseStorage defines interface for the course catalog
type CourseStorage interface {
	// CreateCourse stores course together with its curriculum
	CreateCourse(ctx context.Context, course *api.CourseRecord) error

	// ListCourses returns the catalog without curriculum, ordered by creation
	ListCourses(ctx context.Context) ([]api.CourseRecord, error)

	// GetCourse returns course with modules and lessons
	// Returns ErrCourseNotFound if course doesn't exist
	GetCourse(ctx context.Context, courseID string) (*api.CourseRecord, error)
}

// BookmarkStorage defines interface for student bookmarks
type BookmarkStorage interface {
	// ListBookmarked returns bookmarked courses, most recent first
	ListBookmarked(ctx context.Context, studentID string) ([]api.CourseRecord, error)

	// AddBookmark bookmarks course for student. Adding twice is not an error.
	// Returns ErrCourseNotFound if course doesn't exist
	AddBookmark(ctx context.Context, studentID, courseID string) error

	// RemoveBookmark removes bookmark. Removing a missing bookmark is not an error.
	RemoveBookmark(ctx context.Context, studentID, courseID string) error
}

package storage

import "errors"

// Common storage errors
var (
	// ErrStudentNotFound indicates that student was not found in storage
	ErrStudentNotFound = errors.New("student not found")

	// ErrStudentAlreadyExists indicates that student with this email already exists
	ErrStudentAlreadyExists = errors.New("student already exists")

	// ErrCourseNotFound indicates that course was not found in catalog
	ErrCourseNotFound = errors.New("course not found")

	// ErrNotificationNotFound indicates that notification does not exist or belongs to another student
	ErrNotificationNotFound = errors.New("notification not found")
)

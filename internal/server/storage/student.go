package storage

import (
	"context"

	"github.com/iudanet/lmsdesk/internal/models"
)

// StudentStorage defines interface for student accounts persistence
type StudentStorage interface {
	// CreateStudent creates a new student account
	// Returns ErrStudentAlreadyExists if email is taken
	CreateStudent(ctx context.Context, student *models.Student) error

	// GetStudentByEmail retrieves student by email
	// Returns ErrStudentNotFound if student doesn't exist
	GetStudentByEmail(ctx context.Context, email string) (*models.Student, error)

	// GetStudentByID retrieves student by ID
	// Returns ErrStudentNotFound if student doesn't exist
	GetStudentByID(ctx context.Context, studentID string) (*models.Student, error)
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/lmsdesk/internal/models"
	"github.com/iudanet/lmsdesk/internal/server/storage"
)

// CreateStudent creates a new student account
func (s *Storage) CreateStudent(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (id, email, password_hash, first_name, last_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		student.ID,
		strings.ToLower(student.Email),
		student.PasswordHash,
		student.FirstName,
		student.LastName,
		student.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrStudentAlreadyExists
		}
		return fmt.Errorf("failed to insert student: %w", err)
	}

	return nil
}

// GetStudentByEmail retrieves student by email (case-insensitive)
func (s *Storage) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, created_at
		FROM students
		WHERE email = ?
	`
	return s.scanStudent(s.db.QueryRowContext(ctx, query, strings.ToLower(email)))
}

// GetStudentByID retrieves student by ID
func (s *Storage) GetStudentByID(ctx context.Context, studentID string) (*models.Student, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, created_at
		FROM students
		WHERE id = ?
	`
	return s.scanStudent(s.db.QueryRowContext(ctx, query, studentID))
}

func (s *Storage) scanStudent(row *sql.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID,
		&student.Email,
		&student.PasswordHash,
		&student.FirstName,
		&student.LastName,
		&student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return student, nil
}

// isUniqueViolation распознает нарушение UNIQUE/PRIMARY KEY в тексте ошибки драйвера
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "PRIMARY KEY constraint failed")
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/lmsdesk/internal/server/storage"
	"github.com/iudanet/lmsdesk/pkg/api"
)

// courseColumns - колонки курса в порядке scanCourse, таблица под алиасом c
const courseColumns = `
	c.id, c.title, c.description, c.long_description,
	c.instructor_first_name, c.instructor_last_name, c.instructor_bio, c.instructor_image,
	c.level, c.category, c.thumbnail, c.video_url, c.language, c.last_updated,
	c.rating, c.total_ratings, c.total_students, c.price, c.discount_price, c.duration,
	c.certificate, c.downloadable, c.lifetime, c.mobile_access,
	c.subtitles, c.learning_outcomes, c.requirements, c.features`

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateCourse stores course together with its curriculum in one transaction.
// Empty module and lesson ids are generated.
func (s *Storage) CreateCourse(ctx context.Context, course *api.CourseRecord) error {
	lists := make([]any, 0, 4)
	for _, list := range [][]string{course.Subtitles, course.LearningOutcomes, course.Requirements, course.Features} {
		encoded, err := encodeList(list)
		if err != nil {
			return err
		}
		lists = append(lists, encoded)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO courses (
			id, title, description, long_description,
			instructor_first_name, instructor_last_name, instructor_bio, instructor_image,
			level, category, thumbnail, video_url, language, last_updated,
			rating, total_ratings, total_students, price, discount_price, duration,
			certificate, downloadable, lifetime, mobile_access,
			subtitles, learning_outcomes, requirements, features
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	args := []any{
		course.ID, course.Title, course.Description, course.LongDescription,
		course.Instructor.FirstName, course.Instructor.LastName, course.InstructorBio, course.InstructorImage,
		course.Level, course.Category, course.Thumbnail, course.VideoURL, course.Language, course.LastUpdated,
		course.Rating, course.TotalRatings, course.TotalStudents, course.Price, nullFloat(course.DiscountPrice), course.Duration,
		nullBool(course.Certificate), nullBool(course.Downloadable), nullBool(course.Lifetime), nullBool(course.MobileAccess),
	}
	args = append(args, lists...)

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("course %s already exists: %w", course.ID, err)
		}
		return fmt.Errorf("failed to insert course: %w", err)
	}

	for i, module := range course.Modules {
		if module.ID == "" {
			module.ID = uuid.New().String()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO modules (id, course_id, position, title) VALUES (?, ?, ?, ?)`,
			module.ID, course.ID, i, module.Title,
		); err != nil {
			return fmt.Errorf("failed to insert module: %w", err)
		}

		for j, lesson := range module.Lessons {
			if lesson.ID == "" {
				lesson.ID = uuid.New().String()
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO lessons (id, module_id, position, title, type, duration, preview) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				lesson.ID, module.ID, j, lesson.Title, lesson.Type, lesson.Duration, lesson.Preview,
			); err != nil {
				return fmt.Errorf("failed to insert lesson: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit course: %w", err)
	}
	return nil
}

// ListCourses returns the catalog without curriculum
func (s *Storage) ListCourses(ctx context.Context) ([]api.CourseRecord, error) {
	query := `SELECT ` + courseColumns + ` FROM courses c ORDER BY c.seq`
	return s.queryCourses(ctx, query)
}

// GetCourse returns course with modules and lessons
func (s *Storage) GetCourse(ctx context.Context, courseID string) (*api.CourseRecord, error) {
	query := `SELECT ` + courseColumns + ` FROM courses c WHERE c.id = ?`

	course, err := scanCourse(s.db.QueryRowContext(ctx, query, courseID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	modules, err := s.loadModules(ctx, courseID)
	if err != nil {
		return nil, err
	}
	course.Modules = modules
	return course, nil
}

func (s *Storage) loadModules(ctx context.Context, courseID string) ([]api.ModuleRecord, error) {
	query := `
		SELECT m.id, m.title, l.id, l.title, l.type, l.duration, l.preview
		FROM modules m
		LEFT JOIN lessons l ON l.module_id = m.id
		WHERE m.course_id = ?
		ORDER BY m.position, l.position
	`

	rows, err := s.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query modules: %w", err)
	}
	defer rows.Close()

	var modules []api.ModuleRecord
	for rows.Next() {
		var (
			moduleID, moduleTitle           string
			lessonID, title, kind, duration sql.NullString
			preview                         sql.NullBool
		)
		if err := rows.Scan(&moduleID, &moduleTitle, &lessonID, &title, &kind, &duration, &preview); err != nil {
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}

		if len(modules) == 0 || modules[len(modules)-1].ID != moduleID {
			modules = append(modules, api.ModuleRecord{ID: moduleID, Title: moduleTitle, Lessons: []api.LessonRecord{}})
		}
		if !lessonID.Valid {
			continue
		}
		last := &modules[len(modules)-1]
		last.Lessons = append(last.Lessons, api.LessonRecord{
			ID:       lessonID.String,
			Title:    title.String,
			Type:     kind.String,
			Duration: duration.String,
			Preview:  preview.Bool,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate modules: %w", err)
	}
	return modules, nil
}

// ListBookmarked returns bookmarked courses, most recent first
func (s *Storage) ListBookmarked(ctx context.Context, studentID string) ([]api.CourseRecord, error) {
	query := `SELECT ` + courseColumns + `
		FROM bookmarks b
		JOIN courses c ON c.id = b.course_id
		WHERE b.student_id = ?
		ORDER BY b.created_at DESC, b.rowid DESC`
	return s.queryCourses(ctx, query, studentID)
}

// AddBookmark bookmarks course for student
func (s *Storage) AddBookmark(ctx context.Context, studentID, courseID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM courses WHERE id = ?`, courseID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrCourseNotFound
		}
		return fmt.Errorf("failed to check course: %w", err)
	}

	query := `INSERT OR IGNORE INTO bookmarks (student_id, course_id, created_at) VALUES (?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, query, studentID, courseID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to add bookmark: %w", err)
	}
	return nil
}

// RemoveBookmark removes bookmark
func (s *Storage) RemoveBookmark(ctx context.Context, studentID, courseID string) error {
	query := `DELETE FROM bookmarks WHERE student_id = ? AND course_id = ?`
	if _, err := s.db.ExecContext(ctx, query, studentID, courseID); err != nil {
		return fmt.Errorf("failed to remove bookmark: %w", err)
	}
	return nil
}

func (s *Storage) queryCourses(ctx context.Context, query string, args ...any) ([]api.CourseRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]api.CourseRecord, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}
	return courses, nil
}

func scanCourse(row rowScanner) (*api.CourseRecord, error) {
	var (
		c                                                 api.CourseRecord
		discount                                          sql.NullFloat64
		certificate, downloadable, lifetime, mobileAccess sql.NullBool
		subtitles, outcomes, requirements, features       sql.NullString
	)
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.LongDescription,
		&c.Instructor.FirstName, &c.Instructor.LastName, &c.InstructorBio, &c.InstructorImage,
		&c.Level, &c.Category, &c.Thumbnail, &c.VideoURL, &c.Language, &c.LastUpdated,
		&c.Rating, &c.TotalRatings, &c.TotalStudents, &c.Price, &discount, &c.Duration,
		&certificate, &downloadable, &lifetime, &mobileAccess,
		&subtitles, &outcomes, &requirements, &features,
	)
	if err != nil {
		return nil, err
	}

	if discount.Valid {
		c.DiscountPrice = &discount.Float64
	}
	c.Certificate = boolPtr(certificate)
	c.Downloadable = boolPtr(downloadable)
	c.Lifetime = boolPtr(lifetime)
	c.MobileAccess = boolPtr(mobileAccess)

	for _, target := range []struct {
		dst *[]string
		src sql.NullString
	}{
		{&c.Subtitles, subtitles},
		{&c.LearningOutcomes, outcomes},
		{&c.Requirements, requirements},
		{&c.Features, features},
	} {
		list, err := decodeList(target.src)
		if err != nil {
			return nil, err
		}
		*target.dst = list
	}

	return &c, nil
}

// encodeList хранит nil как NULL, чтобы клиент отличал "не задано" от пустого списка
func encodeList(list []string) (any, error) {
	if list == nil {
		return nil, nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to encode list: %w", err)
	}
	return string(data), nil
}

func decodeList(v sql.NullString) ([]string, error) {
	if !v.Valid {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(v.String), &list); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	return list, nil
}

func boolPtr(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}
	b := v.Bool
	return &b
}

func nullBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

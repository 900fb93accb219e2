// Package seed наполняет пустую базу sandbox сервера демонстрационными данными.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/lmsdesk/internal/models"
	"github.com/iudanet/lmsdesk/internal/server/storage"
	"github.com/iudanet/lmsdesk/pkg/api"
)

// Демо-студент, под которым можно войти в sandbox
const (
	DemoEmail     = "asha.rao@example.com"
	DemoPassword  = "password123"
	DemoFirstName = "Asha"
	DemoLastName  = "Rao"
)

// Store - хранилища, которые наполняет сидер
type Store interface {
	storage.StudentStorage
	storage.CourseStorage
	storage.BookmarkStorage
	storage.NotificationStorage
}

// Run наполняет базу, если демо-студента еще нет. Повторный запуск ничего не меняет.
func Run(ctx context.Context, store Store, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	_, err := store.GetStudentByEmail(ctx, DemoEmail)
	if err == nil {
		logger.DebugContext(ctx, "seed data already present")
		return nil
	}
	if !errors.Is(err, storage.ErrStudentNotFound) {
		return fmt.Errorf("failed to check seed state: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	now := time.Now().UTC()
	student := &models.Student{
		ID:           uuid.New().String(),
		Email:        DemoEmail,
		PasswordHash: string(hash),
		FirstName:    DemoFirstName,
		LastName:     DemoLastName,
		CreatedAt:    now,
	}
	if err := store.CreateStudent(ctx, student); err != nil {
		return fmt.Errorf("failed to create demo student: %w", err)
	}

	courses := Courses()
	for i := range courses {
		if err := store.CreateCourse(ctx, &courses[i]); err != nil {
			return fmt.Errorf("failed to create course %s: %w", courses[i].ID, err)
		}
	}

	for _, courseID := range []string{"c-go-basics", "c-sql-analytics", "c-figma"} {
		if err := store.AddBookmark(ctx, student.ID, courseID); err != nil {
			return fmt.Errorf("failed to bookmark %s: %w", courseID, err)
		}
	}

	notifications := Notifications(now)
	for i := range notifications {
		if err := store.CreateNotification(ctx, student.ID, &notifications[i]); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
	}

	logger.InfoContext(ctx, "sandbox seeded",
		slog.String("email", DemoEmail),
		slog.Int("courses", len(courses)),
		slog.Int("notifications", len(notifications)))
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

// Courses возвращает демонстрационный каталог.
// У части курсов опциональные поля не заданы, клиент подставляет значения по умолчанию.
func Courses() []api.CourseRecord {
	return []api.CourseRecord{
		{
			ID:              "c-go-basics",
			Title:           "Go Fundamentals",
			Description:     "Learn Go from the ground up.",
			LongDescription: "Types, interfaces, goroutines and the standard library through small projects.",
			Instructor:      api.Instructor{FirstName: "Ravi", LastName: "Menon"},
			InstructorBio:   "Backend engineer who has shipped Go services for a decade.",
			Level:           "beginner",
			Category:        "programming",
			Language:        "English",
			LastUpdated:     "March 2025",
			Rating:          4.7,
			TotalRatings:    1280,
			TotalStudents:   15400,
			Price:           2999,
			DiscountPrice:   ptr(1499.0),
			Duration:        18,
			Certificate:     ptr(true),
			Subtitles:       []string{"English"},
			Modules: []api.ModuleRecord{
				{
					Title: "Getting started",
					Lessons: []api.LessonRecord{
						{Title: "Installing Go", Type: "video", Duration: "8:12", Preview: true},
						{Title: "Hello, world", Type: "video", Duration: "6:40", Preview: true},
						{Title: "Toolchain quiz", Type: "quiz"},
					},
				},
				{
					Title: "Concurrency",
					Lessons: []api.LessonRecord{
						{Title: "Goroutines", Type: "video", Duration: "14:05"},
						{Title: "Channels", Type: "video", Duration: "17:30"},
						{Title: "Worker pool", Type: "project"},
					},
				},
			},
		},
		{
			ID:            "c-web-react",
			Title:         "Modern React",
			Description:   "Build interactive interfaces with hooks.",
			Instructor:    api.Instructor{FirstName: "Meera", LastName: "Iyer"},
			Level:         "intermediate",
			Category:      "web",
			Rating:        4.5,
			TotalRatings:  860,
			TotalStudents: 9800,
			Price:         1999,
			Duration:      22,
			Modules: []api.ModuleRecord{
				{
					Title: "Components",
					Lessons: []api.LessonRecord{
						{Title: "JSX", Type: "video", Duration: "10:00", Preview: true},
						{Title: "State and props", Type: "video", Duration: "12:45"},
					},
				},
			},
		},
		{
			ID:            "c-web-css",
			Title:         "CSS Layouts",
			Description:   "Flexbox and grid without guesswork.",
			Instructor:    api.Instructor{FirstName: "Karan", LastName: "Shah"},
			Level:         "beginner",
			Category:      "web",
			Rating:        4.3,
			TotalRatings:  410,
			TotalStudents: 5200,
			Price:         0,
			Duration:      6,
		},
		{
			ID:               "c-sql-analytics",
			Title:            "SQL for Analytics",
			Description:      "Answer business questions with SQL.",
			Instructor:       api.Instructor{FirstName: "Priya", LastName: "Nair"},
			Level:            "intermediate",
			Category:         "data",
			Rating:           4.8,
			TotalRatings:     2100,
			TotalStudents:    23000,
			Price:            2499,
			Duration:         14,
			LearningOutcomes: []string{"Write window functions", "Model reporting tables"},
			Downloadable:     ptr(false),
		},
		{
			ID:            "c-ml-intro",
			Title:         "Machine Learning Basics",
			Description:   "Regression, classification and evaluation.",
			Instructor:    api.Instructor{FirstName: "Arjun", LastName: "Das"},
			Level:         "advanced",
			Category:      "data",
			Rating:        4.6,
			TotalRatings:  990,
			TotalStudents: 11200,
			Price:         3499,
			DiscountPrice: ptr(2799.0),
			Duration:      30,
		},
		{
			ID:            "c-figma",
			Title:         "Figma for Product Design",
			Description:   "From wireframes to prototypes.",
			Instructor:    api.Instructor{FirstName: "Neha", LastName: "Kapoor"},
			Level:         "beginner",
			Category:      "design",
			Rating:        4.4,
			TotalRatings:  530,
			TotalStudents: 6100,
			Price:         1499,
			Duration:      9,
		},
		{
			ID:            "c-k8s",
			Title:         "Kubernetes in Practice",
			Description:   "Deploy and operate workloads on Kubernetes.",
			Instructor:    api.Instructor{FirstName: "Vikram", LastName: "Rao"},
			Level:         "advanced",
			Category:      "devops",
			Rating:        4.6,
			TotalRatings:  720,
			TotalStudents: 7400,
			Price:         3999,
			Duration:      26,
			MobileAccess:  ptr(false),
		},
		{
			ID:            "c-appsec",
			Title:         "Web Application Security",
			Description:   "Find and fix the OWASP top ten.",
			Instructor:    api.Instructor{FirstName: "Ananya", LastName: "Sen"},
			Level:         "intermediate",
			Category:      "security",
			Rating:        4.7,
			TotalRatings:  640,
			TotalStudents: 5800,
			Price:         2799,
			Duration:      16,
		},
	}
}

// Notifications возвращает демонстрационные уведомления: 7 непрочитанных и 2 прочитанных
func Notifications(now time.Time) []api.NotificationRecord {
	course := func(id string) *api.RelatedEntity {
		return &api.RelatedEntity{Type: "course", ID: id}
	}
	at := func(hours int) time.Time {
		return now.Add(-time.Duration(hours) * time.Hour)
	}
	return []api.NotificationRecord{
		{Title: "New lesson available", Message: "Worker pool project is live in Go Fundamentals.", RelatedEntity: course("c-go-basics"), CreatedAt: at(1)},
		{Title: "Assignment graded", Message: "Your SQL window functions quiz scored 9/10.", RelatedEntity: course("c-sql-analytics"), CreatedAt: at(3)},
		{Title: "Price drop", Message: "Machine Learning Basics is now discounted.", RelatedEntity: course("c-ml-intro"), CreatedAt: at(5)},
		{Title: "Live session tomorrow", Message: "Join the Figma Q&A at 18:00.", RelatedEntity: course("c-figma"), CreatedAt: at(8)},
		{Title: "Streak", Message: "You studied 5 days in a row.", CreatedAt: at(12)},
		{Title: "Certificate ready", Message: "Download your CSS Layouts certificate.", RelatedEntity: course("c-web-css"), CreatedAt: at(26)},
		{Title: "Weekly digest", Message: "3 new courses match your interests.", ActionURL: "/courses", CreatedAt: at(48)},
		{Title: "Welcome to the platform", Message: "Set up your profile to get recommendations.", IsRead: true, CreatedAt: at(72)},
		{Title: "Password changed", Message: "Your password was updated.", IsRead: true, CreatedAt: at(96)},
	}
}

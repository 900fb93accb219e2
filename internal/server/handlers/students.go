package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/lmsdesk/internal/server/storage"
	"github.com/iudanet/lmsdesk/pkg/api"
)

// StudentHandler обрабатывает запросы студента: профиль и закладки.
// Все маршруты за AuthMiddleware.
type StudentHandler struct {
	responder
	students  storage.StudentStorage
	bookmarks storage.BookmarkStorage
}

// NewStudentHandler создает handler студента
func NewStudentHandler(logger *slog.Logger, students storage.StudentStorage, bookmarks storage.BookmarkStorage) *StudentHandler {
	return &StudentHandler{
		responder: newResponder(logger),
		students:  students,
		bookmarks: bookmarks,
	}
}

// studentID достает id из контекста; false означает, что ответ уже отправлен
func (h *StudentHandler) studentID(w http.ResponseWriter, r *http.Request) (string, bool) {
	studentID, ok := GetStudentID(r.Context())
	if !ok {
		h.sendError(w, "Unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return studentID, true
}

// Profile обрабатывает GET /api/v1/students/profile
func (h *StudentHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID, ok := h.studentID(w, r)
	if !ok {
		return
	}

	student, err := h.students.GetStudentByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, storage.ErrStudentNotFound) {
			// токен пережил аккаунт
			h.sendError(w, "Student not found", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get student", slog.Any("error", err))
		h.sendError(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	h.sendData(w, api.ProfileRecord{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Email:     student.Email,
	}, nil, "", http.StatusOK)
}

// Bookmarked обрабатывает GET /api/v1/students/courses/bookmarked
func (h *StudentHandler) Bookmarked(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID, ok := h.studentID(w, r)
	if !ok {
		return
	}

	courses, err := h.bookmarks.ListBookmarked(ctx, studentID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list bookmarks", slog.Any("error", err))
		h.sendError(w, "Failed to fetch bookmarks", http.StatusInternalServerError)
		return
	}

	h.sendData(w, courses, nil, "", http.StatusOK)
}

// AddBookmark обрабатывает POST /api/v1/students/courses/{id}/bookmark
func (h *StudentHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID, ok := h.studentID(w, r)
	if !ok {
		return
	}
	courseID := r.PathValue("id")

	if err := h.bookmarks.AddBookmark(ctx, studentID, courseID); err != nil {
		if errors.Is(err, storage.ErrCourseNotFound) {
			h.sendError(w, "Course not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to add bookmark", slog.String("course_id", courseID), slog.Any("error", err))
		h.sendError(w, "Failed to add bookmark", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "bookmark added", slog.String("student_id", studentID), slog.String("course_id", courseID))
	h.sendData(w, nil, nil, "Course bookmarked", http.StatusOK)
}

// RemoveBookmark обрабатывает DELETE /api/v1/students/courses/{id}/bookmark
func (h *StudentHandler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	studentID, ok := h.studentID(w, r)
	if !ok {
		return
	}
	courseID := r.PathValue("id")

	if err := h.bookmarks.RemoveBookmark(ctx, studentID, courseID); err != nil {
		h.logger.ErrorContext(ctx, "failed to remove bookmark", slog.String("course_id", courseID), slog.Any("error", err))
		h.sendError(w, "Failed to remove bookmark", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "bookmark removed", slog.String("student_id", studentID), slog.String("course_id", courseID))
	h.sendData(w, nil, nil, "Bookmark removed", http.StatusOK)
}

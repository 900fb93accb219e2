package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/lmsdesk/internal/server/storage"
)

// CourseHandler отдает каталог курсов. Токен не требуется.
type CourseHandler struct {
	responder
	courses storage.CourseStorage
}

// NewCourseHandler создает handler каталога
func NewCourseHandler(logger *slog.Logger, courses storage.CourseStorage) *CourseHandler {
	return &CourseHandler{
		responder: newResponder(logger),
		courses:   courses,
	}
}

// List обрабатывает GET /api/v1/courses
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	courses, err := h.courses.ListCourses(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list courses", slog.Any("error", err))
		h.sendError(w, "Failed to fetch courses", http.StatusInternalServerError)
		return
	}

	h.sendData(w, courses, nil, "", http.StatusOK)
}

// Get обрабатывает GET /api/v1/courses/{id}
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	courseID := r.PathValue("id")

	course, err := h.courses.GetCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, storage.ErrCourseNotFound) {
			h.sendError(w, "Course not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get course", slog.String("course_id", courseID), slog.Any("error", err))
		h.sendError(w, "Failed to fetch course", http.StatusInternalServerError)
		return
	}

	h.sendData(w, course, nil, "", http.StatusOK)
}

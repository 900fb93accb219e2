package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/iudanet/lmsdesk/internal/client/view"
	"github.com/iudanet/lmsdesk/internal/models"
)

// CurriculumStats - сводка учебной программы курса
type CurriculumStats struct {
	Sections int
	Lessons  int
	Previews int
}

// CourseDetail - контроллер страницы курса
type CourseDetail struct {
	view     *view.Controller[models.Course]
	catalog  CatalogAPI
	courseID string
	expanded string
	mu       sync.Mutex
}

// NewCourseDetail создает контроллер страницы курса
func NewCourseDetail(catalog CatalogAPI, courseID string, screen *Screen, logger *slog.Logger) *CourseDetail {
	d := &CourseDetail{
		catalog:  catalog,
		courseID: courseID,
	}
	d.view = view.New("course", d.fetch, screen.Guard, logger)
	return d
}

func (d *CourseDetail) fetch(ctx context.Context) (models.Course, error) {
	rec, err := d.catalog.GetCourse(ctx, d.courseID)
	if err != nil {
		return models.Course{}, err
	}
	return models.FillDefaults(*rec), nil
}

// Load загружает курс. Все модули свернуты.
func (d *CourseDetail) Load(ctx context.Context) error {
	d.mu.Lock()
	d.expanded = ""
	d.mu.Unlock()
	return d.view.Load(ctx)
}

// Retry повторяет загрузку после ошибки
func (d *CourseDetail) Retry(ctx context.Context) error {
	return d.view.Retry(ctx)
}

// Snapshot возвращает состояние загрузки
func (d *CourseDetail) Snapshot() view.Snapshot[models.Course] {
	return d.view.Snapshot()
}

// Course возвращает загруженный курс
func (d *CourseDetail) Course() models.Course {
	return d.view.Data()
}

// ToggleModule раскрывает модуль и сворачивает предыдущий.
// Повторный вызов для раскрытого модуля сворачивает его.
func (d *CourseDetail) ToggleModule(moduleID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.expanded == moduleID {
		d.expanded = ""
		return
	}
	d.expanded = moduleID
}

// Expanded возвращает ID раскрытого модуля или пустую строку
func (d *CourseDetail) Expanded() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.expanded
}

// Stats считает разделы, уроки и уроки с предпросмотром
func (d *CourseDetail) Stats() CurriculumStats {
	course := d.view.Data()
	stats := CurriculumStats{Sections: len(course.Modules), Lessons: course.LessonCount()}
	for _, m := range course.Modules {
		stats.Previews += m.Previews()
	}
	return stats
}

// Close отключает контроллер от экрана
func (d *CourseDetail) Close() {
	d.view.Close()
}

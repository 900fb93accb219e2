package dashboard

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/iudanet/lmsdesk/internal/client/mutate"
	"github.com/iudanet/lmsdesk/internal/client/notice"
	"github.com/iudanet/lmsdesk/internal/client/view"
	"github.com/iudanet/lmsdesk/internal/models"
)

// DefaultVisibleBookmarks - сколько закладок показывается до "Show all"
const DefaultVisibleBookmarks = 3

// Сообщения экрана закладок
const (
	MsgBookmarkAdded   = "Added to bookmarks"
	MsgBookmarkRemoved = "Removed from bookmarks"
)

// BookmarkState - локальное зеркало закладок студента.
// Значение неизменяемо: каждое изменение строит новое состояние.
type BookmarkState struct {
	ids     map[string]struct{}
	Courses []models.Course
}

func newBookmarkState(courses []models.Course) BookmarkState {
	ids := make(map[string]struct{}, len(courses))
	for _, c := range courses {
		ids[c.ID] = struct{}{}
	}
	return BookmarkState{ids: ids, Courses: courses}
}

// Has сообщает, находится ли курс в закладках
func (s BookmarkState) Has(courseID string) bool {
	_, ok := s.ids[courseID]
	return ok
}

// Len возвращает число закладок
func (s BookmarkState) Len() int {
	return len(s.ids)
}

func (s BookmarkState) cloneIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(s.ids)+1)
	for id := range s.ids {
		ids[id] = struct{}{}
	}
	return ids
}

// add отмечает курс как добавленный. Карточка курса появится после повторной загрузки.
func (s BookmarkState) add(courseID string) BookmarkState {
	ids := s.cloneIDs()
	ids[courseID] = struct{}{}
	return BookmarkState{ids: ids, Courses: s.Courses}
}

// remove убирает курс и возвращает удаленную карточку с ее позицией
func (s BookmarkState) remove(courseID string) (BookmarkState, *models.Course, int) {
	ids := s.cloneIDs()
	delete(ids, courseID)

	idx := slices.IndexFunc(s.Courses, func(c models.Course) bool { return c.ID == courseID })
	if idx < 0 {
		return BookmarkState{ids: ids, Courses: s.Courses}, nil, -1
	}
	removed := s.Courses[idx]
	return BookmarkState{ids: ids, Courses: slices.Delete(slices.Clone(s.Courses), idx, idx+1)}, &removed, idx
}

// restore возвращает курс на прежнюю позицию
func (s BookmarkState) restore(courseID string, course *models.Course, idx int) BookmarkState {
	ids := s.cloneIDs()
	ids[courseID] = struct{}{}
	if course == nil || slices.ContainsFunc(s.Courses, func(c models.Course) bool { return c.ID == courseID }) {
		return BookmarkState{ids: ids, Courses: s.Courses}
	}
	idx = min(idx, len(s.Courses))
	return BookmarkState{ids: ids, Courses: slices.Insert(slices.Clone(s.Courses), idx, *course)}
}

// Bookmarks - контроллер закладок студента
type Bookmarks struct {
	api     BookmarksAPI
	screen  *Screen
	view    *view.Controller[BookmarkState]
	mutator *mutate.Mutator[BookmarkState]
	logger  *slog.Logger
	mu      sync.Mutex
	showAll bool
}

// NewBookmarks создает контроллер закладок
func NewBookmarks(api BookmarksAPI, screen *Screen, logger *slog.Logger) *Bookmarks {
	b := &Bookmarks{
		api:    api,
		screen: screen,
		logger: orDiscard(logger),
	}
	b.view = view.New("bookmarks", b.fetch, screen.Guard, logger)
	b.mutator = mutate.New[BookmarkState](b.view)
	return b
}

func (b *Bookmarks) fetch(ctx context.Context) (BookmarkState, error) {
	records, err := b.api.BookmarkedCourses(ctx)
	if err != nil {
		return BookmarkState{}, err
	}
	return newBookmarkState(toCourses(records)), nil
}

// Load загружает закладки
func (b *Bookmarks) Load(ctx context.Context) error {
	return b.view.Load(ctx)
}

// Retry повторяет загрузку после ошибки
func (b *Bookmarks) Retry(ctx context.Context) error {
	return b.view.Retry(ctx)
}

// Snapshot возвращает состояние загрузки
func (b *Bookmarks) Snapshot() view.Snapshot[BookmarkState] {
	return b.view.Snapshot()
}

// IsBookmarked сообщает, находится ли курс в закладках
func (b *Bookmarks) IsBookmarked(courseID string) bool {
	return b.view.Data().Has(courseID)
}

// Displayed возвращает карточки для показа: первые три, если не включен ShowAll
func (b *Bookmarks) Displayed() []models.Course {
	courses := b.view.Data().Courses

	b.mu.Lock()
	showAll := b.showAll
	b.mu.Unlock()

	if showAll || len(courses) <= DefaultVisibleBookmarks {
		return courses
	}
	return courses[:DefaultVisibleBookmarks]
}

// HasMore сообщает, что часть закладок скрыта
func (b *Bookmarks) HasMore() bool {
	b.mu.Lock()
	showAll := b.showAll
	b.mu.Unlock()
	return !showAll && len(b.view.Data().Courses) > DefaultVisibleBookmarks
}

// ShowAll раскрывает полный список
func (b *Bookmarks) ShowAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.showAll = true
}

// Toggle добавляет курс в закладки или убирает его.
// Направление определяется по текущему зеркалу в момент вызова.
// Возвращает true, если курс добавлялся.
func (b *Bookmarks) Toggle(ctx context.Context, courseID string) (bool, error) {
	if err := b.screen.RequireCredential(ctx, "toggle bookmark"); err != nil {
		return false, err
	}

	var (
		adding    bool
		removed   *models.Course
		removedAt int
	)
	pending := b.mutator.Mutate(mutate.Action[BookmarkState]{
		Key: courseID,
		Apply: func(s BookmarkState) (BookmarkState, bool) {
			adding = !s.Has(courseID)
			if adding {
				return s.add(courseID), true
			}
			var next BookmarkState
			next, removed, removedAt = s.remove(courseID)
			return next, true
		},
		Revert: func(s BookmarkState) BookmarkState {
			if adding {
				next, _, _ := s.remove(courseID)
				return next
			}
			return s.restore(courseID, removed, removedAt)
		},
		Send: func(ctx context.Context) error {
			if adding {
				return b.api.AddBookmark(ctx, courseID)
			}
			return b.api.RemoveBookmark(ctx, courseID)
		},
	})

	if err := pending.Commit(ctx); err != nil {
		b.logger.Warn("bookmark change reverted",
			slog.String("course_id", courseID),
			slog.Bool("adding", adding),
			slog.Any("error", err))
		b.screen.Fail(ctx, err)
		return adding, err
	}

	if adding {
		b.screen.Notices.Show(MsgBookmarkAdded, notice.KindSuccess)
	} else {
		b.screen.Notices.Show(MsgBookmarkRemoved, notice.KindSuccess)
	}

	b.reconcile(ctx)
	return adding, nil
}

// reconcile перезагружает список с сервера, если нет изменений в полете.
// Иначе свежий ответ мог бы затереть более новое оптимистичное состояние.
func (b *Bookmarks) reconcile(ctx context.Context) {
	if !b.mutator.Idle() || b.screen.Guard.LoggedOut() {
		return
	}
	if err := b.view.Reload(ctx); err != nil {
		b.logger.Debug("bookmark reconcile failed", slog.Any("error", err))
	}
}

// Close отключает контроллер от экрана
func (b *Bookmarks) Close() {
	b.view.Close()
}

package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/iudanet/lmsdesk/internal/client/notice"
	"github.com/iudanet/lmsdesk/internal/client/storage"
	"github.com/iudanet/lmsdesk/internal/client/view"
	"github.com/iudanet/lmsdesk/internal/models"
)

// DefaultVisibleCategories - сколько категорий показывается до раскрытия списка
const DefaultVisibleCategories = 5

// Interests - выбранные студентом категории и связанные с ними курсы.
// Набор хранится локально и переживает перезапуск.
type Interests struct {
	kv        storage.KVStorage
	catalog   CatalogAPI
	screen    *Screen
	view      *view.Controller[[]models.Course]
	logger    *slog.Logger
	interests []string
	mu        sync.Mutex
	showAll   bool
}

// NewInterests создает контроллер и сразу читает сохраненный набор интересов
func NewInterests(ctx context.Context, catalog CatalogAPI, kv storage.KVStorage, screen *Screen, logger *slog.Logger) (*Interests, error) {
	i := &Interests{
		kv:      kv,
		catalog: catalog,
		screen:  screen,
		logger:  orDiscard(logger),
	}
	i.view = view.New("catalog", i.fetch, screen.Guard, logger)

	interests, err := loadInterests(ctx, kv)
	if err != nil {
		return nil, err
	}
	i.interests = interests
	return i, nil
}

func loadInterests(ctx context.Context, kv storage.KVStorage) ([]string, error) {
	raw, err := kv.Get(ctx, storage.KeyInterests)
	if errors.Is(err, storage.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read interests: %w", err)
	}

	var interests []string
	if err := json.Unmarshal([]byte(raw), &interests); err != nil {
		return nil, fmt.Errorf("failed to decode interests: %w", err)
	}
	if interests == nil {
		interests = []string{}
	}
	return interests, nil
}

func (i *Interests) fetch(ctx context.Context) ([]models.Course, error) {
	records, err := i.catalog.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	// Интересы сравниваются с категорией каталога как она пришла с сервера
	courses := toCourses(records)
	for idx := range courses {
		courses[idx].Category = strings.TrimSpace(records[idx].Category)
	}
	return courses, nil
}

// Load загружает каталог (токен не обязателен)
func (i *Interests) Load(ctx context.Context) error {
	return i.view.Load(ctx)
}

// Retry повторяет загрузку после ошибки
func (i *Interests) Retry(ctx context.Context) error {
	return i.view.Retry(ctx)
}

// Snapshot возвращает состояние загрузки каталога
func (i *Interests) Snapshot() view.Snapshot[[]models.Course] {
	return i.view.Snapshot()
}

// Interests возвращает выбранные категории в порядке добавления, в написании пользователя
func (i *Interests) Interests() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return slices.Clone(i.interests)
}

// Has сообщает, выбрана ли категория
func (i *Interests) Has(category string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return containsCategory(i.interests, category)
}

// Add добавляет категорию и сохраняет набор.
// Категория хранится как есть; повтор в другом регистре не добавляется.
func (i *Interests) Add(ctx context.Context, category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("category cannot be empty")
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if containsCategory(i.interests, category) {
		return nil
	}
	return i.persist(ctx, append(slices.Clone(i.interests), category))
}

// Remove убирает категорию и сохраняет набор
func (i *Interests) Remove(ctx context.Context, category string) error {
	category = strings.TrimSpace(category)

	i.mu.Lock()
	defer i.mu.Unlock()
	idx := slices.IndexFunc(i.interests, func(c string) bool { return strings.EqualFold(c, category) })
	if idx < 0 {
		return nil
	}
	return i.persist(ctx, slices.Delete(slices.Clone(i.interests), idx, idx+1))
}

// persist записывает набор в хранилище и только потом принимает его.
// Вызывается под i.mu.
func (i *Interests) persist(ctx context.Context, next []string) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode interests: %w", err)
	}
	if err := i.kv.Set(ctx, storage.KeyInterests, string(data)); err != nil {
		err = fmt.Errorf("failed to save interests: %w", err)
		i.logger.Error("interests not saved", slog.Any("error", err))
		i.screen.Notices.Show("Failed to save interests", notice.KindError)
		return err
	}
	i.interests = next
	return nil
}

// Categories возвращает уникальные категории каталога без уже выбранных,
// отфильтрованные по подстроке search, по алфавиту. Регистр не учитывается,
// из вариантов написания остается первый встреченный в каталоге.
func (i *Interests) Categories(search string) []string {
	search = strings.ToLower(strings.TrimSpace(search))
	courses := i.view.Data()

	i.mu.Lock()
	chosen := slices.Clone(i.interests)
	i.mu.Unlock()

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, c := range courses {
		category := c.Category
		if category == "" {
			continue
		}
		key := strings.ToLower(category)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if containsCategory(chosen, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(category), search) {
			continue
		}
		categories = append(categories, category)
	}
	slices.SortFunc(categories, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return categories
}

// VisibleCategories возвращает первые DefaultVisibleCategories категорий,
// если список не раскрыт через ToggleShowAll
func (i *Interests) VisibleCategories(search string) []string {
	categories := i.Categories(search)

	i.mu.Lock()
	showAll := i.showAll
	i.mu.Unlock()

	if showAll || len(categories) <= DefaultVisibleCategories {
		return categories
	}
	return categories[:DefaultVisibleCategories]
}

// ToggleShowAll переключает показ всех категорий
func (i *Interests) ToggleShowAll() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.showAll = !i.showAll
}

// AssociatedCourses возвращает курсы каталога из выбранных категорий
func (i *Interests) AssociatedCourses() []models.Course {
	courses := i.view.Data()

	i.mu.Lock()
	chosen := slices.Clone(i.interests)
	i.mu.Unlock()

	var out []models.Course
	for _, c := range courses {
		if containsCategory(chosen, c.Category) {
			out = append(out, c)
		}
	}
	return out
}

// Close отключает контроллер от экрана
func (i *Interests) Close() {
	i.view.Close()
}

func containsCategory(categories []string, category string) bool {
	category = strings.TrimSpace(category)
	return slices.ContainsFunc(categories, func(c string) bool { return strings.EqualFold(c, category) })
}

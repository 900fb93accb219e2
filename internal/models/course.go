package models

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iudanet/lmsdesk/pkg/api"
)

// Значения по умолчанию для полей, которые каталог может не прислать.
// Они часть контракта отображения курса.
const (
	DefaultLanguage        = "English"
	DefaultLastUpdated     = "December 2024"
	DefaultInstructorBio   = "Experienced instructor with expertise in the field."
	DefaultInstructorImage = "https://images.unsplash.com/photo-1494790108755-2616b612b786?ixlib=rb-4.0.3&auto=format&fit=crop&w=150&q=80"
	DefaultVideoURL        = "https://www.youtube.com/embed/dQw4w9WgXcQ"
	FreePriceLabel         = "Free"
	currencySign           = "₹"
)

// DefaultSubtitles are used when the course does not list subtitles.
var DefaultSubtitles = []string{"English", "Hindi"}

// DefaultLearningOutcomes are used when the course does not list outcomes.
var DefaultLearningOutcomes = []string{
	"Master key concepts and skills",
	"Apply knowledge to real-world projects",
	"Gain industry-relevant expertise",
}

// DefaultRequirements are used when the course does not list requirements.
var DefaultRequirements = []string{
	"Basic computer skills",
	"Internet access",
	"Willingness to learn",
}

// Course is the read-only catalog projection rendered by the dashboard.
type Course struct {
	OriginalPrice    string // пусто, если скидки нет
	ID               string
	Title            string
	Description      string
	LongDescription  string
	Instructor       string
	InstructorBio    string
	InstructorImage  string
	Duration         string
	Level            string
	Category         string
	Price            string
	Image            string
	VideoURL         string
	Language         string
	LastUpdated      string
	Subtitles        []string
	Modules          []Module
	LearningOutcomes []string
	Requirements     []string
	Features         []string
	Rating           float64
	Reviews          int
	Students         int
	Certificate      bool
	Downloadable     bool
	Lifetime         bool
	MobileAccess     bool
}

// Module - раздел учебной программы
type Module struct {
	ID      string
	Title   string
	Lessons []Lesson
}

// Lesson - урок
type Lesson struct {
	ID       string
	Title    string
	Type     string
	Duration string
	Preview  bool
}

// Previews возвращает количество уроков, доступных для предпросмотра
func (m Module) Previews() int {
	n := 0
	for _, l := range m.Lessons {
		if l.Preview {
			n++
		}
	}
	return n
}

// LessonCount returns the total number of lessons across all modules.
func (c *Course) LessonCount() int {
	total := 0
	for _, m := range c.Modules {
		total += len(m.Lessons)
	}
	return total
}

// FillDefaults converts a catalog record into a Course, substituting
// client-side defaults for every optional field the server left out.
// It is applied once, at the API boundary.
func FillDefaults(rec api.CourseRecord) Course {
	hours := formatNumber(rec.Duration)

	c := Course{
		ID:              rec.ID,
		Title:           rec.Title,
		Description:     rec.Description,
		LongDescription: orDefault(rec.LongDescription, rec.Description),
		Instructor:      strings.TrimSpace(rec.Instructor.FirstName + " " + rec.Instructor.LastName),
		InstructorBio:   orDefault(rec.InstructorBio, DefaultInstructorBio),
		InstructorImage: orDefault(rec.InstructorImage, DefaultInstructorImage),
		Rating:          rec.Rating,
		Reviews:         rec.TotalRatings,
		Students:        rec.TotalStudents,
		Duration:        hours + " hours",
		Level:           capitalize(rec.Level),
		Category:        strings.ToLower(rec.Category),
		Price:           formatPrice(rec.Price),
		Image:           rec.Thumbnail,
		VideoURL:        orDefault(rec.VideoURL, DefaultVideoURL),
		Language:        orDefault(rec.Language, DefaultLanguage),
		LastUpdated:     orDefault(rec.LastUpdated, DefaultLastUpdated),
		Subtitles:       orDefaultList(rec.Subtitles, DefaultSubtitles),
		Certificate:     orTrue(rec.Certificate),
		Downloadable:    orTrue(rec.Downloadable),
		Lifetime:        orTrue(rec.Lifetime),
		MobileAccess:    orTrue(rec.MobileAccess),
		Modules:         convertModules(rec.Modules),

		LearningOutcomes: orDefaultList(rec.LearningOutcomes, DefaultLearningOutcomes),
		Requirements:     orDefaultList(rec.Requirements, DefaultRequirements),
		Features:         orDefaultList(rec.Features, DefaultFeatures(hours)),
	}

	if rec.DiscountPrice != nil && *rec.DiscountPrice != 0 {
		c.OriginalPrice = currencySign + formatNumber(*rec.DiscountPrice)
	}

	return c
}

// DefaultFeatures returns the feature list shown when the course has none.
func DefaultFeatures(hours string) []string {
	return []string{
		fmt.Sprintf("%s hours of on-demand video", hours),
		"Downloadable resources",
		"Access on mobile and desktop",
		"Certificate of completion",
		"Access to student community",
	}
}

func convertModules(records []api.ModuleRecord) []Module {
	modules := make([]Module, 0, len(records))
	for _, rec := range records {
		m := Module{ID: rec.ID, Title: rec.Title, Lessons: make([]Lesson, 0, len(rec.Lessons))}
		for _, l := range rec.Lessons {
			m.Lessons = append(m.Lessons, Lesson{
				ID:       l.ID,
				Title:    l.Title,
				Type:     l.Type,
				Duration: l.Duration,
				Preview:  l.Preview,
			})
		}
		modules = append(modules, m)
	}
	return modules
}

func formatPrice(price float64) string {
	if price == 0 {
		return FreePriceLabel
	}
	return currencySign + formatNumber(price)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// orDefaultList возвращает копию, чтобы вызывающий не мог изменить значения по умолчанию
func orDefaultList(v, def []string) []string {
	if v == nil {
		v = def
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}

func orTrue(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

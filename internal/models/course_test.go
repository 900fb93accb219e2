package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lmsdesk/pkg/api"
)

func TestFillDefaults_Minimal(t *testing.T) {
	rec := api.CourseRecord{
		ID:          "c1",
		Title:       "Go Basics",
		Description: "Intro",
		Instructor:  api.Instructor{FirstName: "Rob", LastName: "Pike"},
		Level:       "intermediate",
		Category:    "Programming",
		Duration:    12.5,
	}

	c := FillDefaults(rec)

	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "Rob Pike", c.Instructor)
	assert.Equal(t, "Intro", c.LongDescription)
	assert.Equal(t, "12.5 hours", c.Duration)
	assert.Equal(t, "Intermediate", c.Level)
	assert.Equal(t, "programming", c.Category)
	assert.Equal(t, FreePriceLabel, c.Price)
	assert.Empty(t, c.OriginalPrice)
	assert.Equal(t, DefaultLanguage, c.Language)
	assert.Equal(t, DefaultLastUpdated, c.LastUpdated)
	assert.Equal(t, DefaultVideoURL, c.VideoURL)
	assert.Equal(t, DefaultInstructorBio, c.InstructorBio)
	assert.Equal(t, DefaultInstructorImage, c.InstructorImage)
	assert.Equal(t, DefaultSubtitles, c.Subtitles)
	assert.Equal(t, DefaultLearningOutcomes, c.LearningOutcomes)
	assert.Equal(t, DefaultRequirements, c.Requirements)
	assert.Equal(t, DefaultFeatures("12.5"), c.Features)
	assert.True(t, c.Certificate)
	assert.True(t, c.Downloadable)
	assert.True(t, c.Lifetime)
	assert.True(t, c.MobileAccess)
	assert.NotNil(t, c.Modules)
	assert.Empty(t, c.Modules)
}

func TestFillDefaults_ServerValuesWin(t *testing.T) {
	no := false
	discount := 999.0
	rec := api.CourseRecord{
		ID:               "c2",
		Price:            499,
		DiscountPrice:    &discount,
		Language:         "Hindi",
		Subtitles:        []string{},
		Features:         []string{"Live sessions"},
		Certificate:      &no,
		Downloadable:     &no,
		LongDescription:  "Long",
		Description:      "Short",
		LearningOutcomes: []string{"Ship it"},
		Duration:         3,
	}

	c := FillDefaults(rec)

	assert.Equal(t, "₹499", c.Price)
	assert.Equal(t, "₹999", c.OriginalPrice)
	assert.Equal(t, "Hindi", c.Language)
	// Пустой список от сервера не заменяется значением по умолчанию
	assert.Empty(t, c.Subtitles)
	assert.Equal(t, []string{"Live sessions"}, c.Features)
	assert.Equal(t, []string{"Ship it"}, c.LearningOutcomes)
	assert.Equal(t, "Long", c.LongDescription)
	assert.False(t, c.Certificate)
	assert.False(t, c.Downloadable)
	assert.True(t, c.Lifetime)
}

func TestFillDefaults_OriginalPrice(t *testing.T) {
	price := func(v float64) *float64 { return &v }

	tests := []struct {
		discount *float64
		name     string
		want     string
	}{
		{name: "no discount", discount: nil, want: ""},
		{name: "zero discount", discount: price(0), want: ""},
		{name: "discount", discount: price(1299), want: "₹1299"},
		{name: "fractional discount", discount: price(499.5), want: "₹499.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FillDefaults(api.CourseRecord{ID: "c4", Price: 999, DiscountPrice: tt.discount})
			assert.Equal(t, tt.want, c.OriginalPrice)
			assert.Equal(t, "₹999", c.Price)
		})
	}
}

func TestFillDefaults_DefaultsAreCopied(t *testing.T) {
	c := FillDefaults(api.CourseRecord{ID: "c3"})
	require.NotEmpty(t, c.Subtitles)

	c.Subtitles[0] = "Klingon"
	assert.Equal(t, "English", DefaultSubtitles[0])
}

func TestCourse_Curriculum(t *testing.T) {
	c := FillDefaults(api.CourseRecord{
		ID: "c4",
		Modules: []api.ModuleRecord{
			{ID: "m1", Title: "Start", Lessons: []api.LessonRecord{
				{ID: "l1", Type: "video", Preview: true},
				{ID: "l2", Type: "quiz"},
			}},
			{ID: "m2", Title: "Next", Lessons: []api.LessonRecord{
				{ID: "l3", Type: "video", Preview: true},
				{ID: "l4", Type: "project", Preview: true},
				{ID: "l5", Type: "video"},
			}},
		},
	})

	require.Len(t, c.Modules, 2)
	assert.Equal(t, 5, c.LessonCount())
	assert.Equal(t, 1, c.Modules[0].Previews())
	assert.Equal(t, 2, c.Modules[1].Previews())
}

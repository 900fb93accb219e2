package api

// CourseRecord is the course as the catalog serves it.
// Optional fields are pointers: nil means the server omitted the field
// and the client substitutes its default.
type CourseRecord struct {
	Instructor       Instructor     `json:"instructor"`
	Certificate      *bool          `json:"certificate,omitempty"`
	Downloadable     *bool          `json:"downloadable,omitempty"`
	Lifetime         *bool          `json:"lifetime,omitempty"`
	MobileAccess     *bool          `json:"mobileAccess,omitempty"`
	DiscountPrice    *float64       `json:"discountPrice,omitempty"`
	ID               string         `json:"_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	LongDescription  string         `json:"longDescription,omitempty"`
	InstructorBio    string         `json:"instructorBio,omitempty"`
	InstructorImage  string         `json:"instructorImage,omitempty"`
	Level            string         `json:"level"`
	Category         string         `json:"category"`
	Thumbnail        string         `json:"thumbnail,omitempty"`
	VideoURL         string         `json:"videoUrl,omitempty"`
	Language         string         `json:"language,omitempty"`
	LastUpdated      string         `json:"lastUpdated,omitempty"`
	Subtitles        []string       `json:"subtitles,omitempty"`
	Modules          []ModuleRecord `json:"modules,omitempty"`
	LearningOutcomes []string       `json:"learningOutcomes,omitempty"`
	Requirements     []string       `json:"requirements,omitempty"`
	Features         []string       `json:"features,omitempty"`
	Rating           float64        `json:"rating"`
	Price            float64        `json:"price"`
	Duration         float64        `json:"duration"` // часы
	TotalRatings     int            `json:"totalRatings"`
	TotalStudents    int            `json:"totalStudents"`
}

// Instructor - автор курса
type Instructor struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ModuleRecord - раздел учебной программы
type ModuleRecord struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Lessons []LessonRecord `json:"lessons"`
}

// LessonRecord - урок внутри раздела
type LessonRecord struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"` // video, quiz, project
	Duration string `json:"duration,omitempty"`
	Preview  bool   `json:"preview"`
}

// ProfileRecord - профиль студента
type ProfileRecord struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar,omitempty"`
}

package cli

import (
	"fmt"
	"strings"
	"text/template"
	"time"
)

const statusTemplate = `
=== Session Status ===

{{- if not .LoggedIn }}
Status: Not logged in

Run 'lmsdesk login' to authenticate.
{{- else }}
Status: Logged in
{{- with .Claims }}
{{- if .Email }}
Email:         {{ .Email }}
{{- end }}
{{- if not .ExpiresAt.IsZero }}
Token expires: {{ .ExpiresAt.Format "2006-01-02T15:04:05Z07:00" }}
{{- end }}
{{- end }}
{{- if .Expired }}
⚠️  Token has expired. The next request will end the session.
{{- else if gt .Remaining 0 }}
Time remaining: {{ .Remaining }}
{{- end }}
{{- end }}
`

const coursesTemplate = `
=== Course Catalog ===

{{- if eq (len .Courses) 0 }}
No courses found.
{{ else }}
Found {{ len .Courses }} course(s):
{{ range .Courses }}
- {{ .Title }}{{ if index $.Interesting .ID }} *{{ end }}
   ID:       {{ .ID }}
   Category: {{ .Category }} | Level: {{ .Level }} | {{ .Duration }}
   Price:    {{ .Price }}{{ if .OriginalPrice }} (was {{ .OriginalPrice }}){{ end }}
   {{- if .Instructor }}
   By:       {{ .Instructor }}
   {{- end }}
{{- end }}
{{- if .Marked }}

* matches your interests
{{- end }}
{{- end }}
`

const courseTemplate = `
=== {{ .Course.Title }} ===

{{ .Course.LongDescription }}

Instructor: {{ .Course.Instructor }}
            {{ .Course.InstructorBio }}
Rating:     {{ printf "%.1f" .Course.Rating }} ({{ .Course.Reviews }} reviews, {{ .Course.Students }} students)
Level:      {{ .Course.Level }} | {{ .Course.Duration }} | {{ .Course.Language }}
Subtitles:  {{ join .Course.Subtitles ", " }}
Updated:    {{ .Course.LastUpdated }}
Price:      {{ .Course.Price }}{{ if .Course.OriginalPrice }} (was {{ .Course.OriginalPrice }}){{ end }}

What you'll learn:
{{- range .Course.LearningOutcomes }}
  ✓ {{ . }}
{{- end }}

Requirements:
{{- range .Course.Requirements }}
  • {{ . }}
{{- end }}

This course includes:
{{- range .Course.Features }}
  • {{ . }}
{{- end }}

Curriculum: {{ .Stats.Sections }} sections • {{ .Stats.Lessons }} lessons • {{ .Stats.Previews }} previews
{{- range .Course.Modules }}
{{ if eq .ID $.Expanded }}▼{{ else }}▶{{ end }} {{ .Title }} ({{ len .Lessons }} lessons) [{{ .ID }}]
{{- if eq .ID $.Expanded }}
{{- range .Lessons }}
    - {{ .Title }} [{{ .Type }}]{{ if .Duration }} {{ .Duration }}{{ end }}{{ if .Preview }} (preview){{ end }}
{{- end }}
{{- end }}
{{- end }}
`

const bookmarksTemplate = `
=== Bookmarked Courses ({{ .Total }}) ===

{{- if eq .Total 0 }}
No bookmarks yet.

Use 'lmsdesk bookmark <course-id>' to bookmark a course.
{{ else }}
{{- range .Courses }}
- {{ .Title }}
   ID:       {{ .ID }}
   {{ .Category }} | {{ .Level }} | {{ .Duration }} | {{ .Price }}
{{- end }}
{{- if .HasMore }}

... and {{ .Hidden }} more. Use 'lmsdesk bookmarks --all' to view all.
{{- end }}
{{- end }}
`

const notificationsTemplate = `
=== Notifications ({{ .Count }} unread) ===

{{- if eq (len .Items) 0 }}
You're all caught up.
{{ else }}
{{- range .Items }}
- {{ .Title }}
   ID:   {{ .ID }}
   {{ .Message }}
   {{- if not .CreatedAt.IsZero }}
   Date: {{ ago .CreatedAt }}
   {{- end }}
{{- end }}
{{- if gt .Count (len .Items) }}

Showing {{ len .Items }} of {{ .Count }}. Use --page to see more.
{{- end }}

Use 'lmsdesk read <id>' or 'lmsdesk read-all' to mark as read.
{{- end }}
`

const interestsTemplate = `
=== My Interests ===

{{- if eq (len .Interests) 0 }}
No interests selected.

Use 'lmsdesk interests categories' to browse and 'lmsdesk interests add <category>' to add.
{{ else }}
{{ join .Interests ", " }}

Courses for you ({{ len .Courses }}):
{{- range .Courses }}
- {{ .Title }} [{{ .Category }}]
   ID: {{ .ID }}
{{- else }}
  No catalog courses in these categories.
{{- end }}
{{- end }}
`

const categoriesTemplate = `
=== Categories ===

{{- if eq (len .Categories) 0 }}
No categories match.
{{ else }}
{{- range .Categories }}
- {{ . }}
{{- end }}
{{- if gt .Hidden 0 }}

... and {{ .Hidden }} more. Use --all to view all.
{{- end }}
{{- end }}
`

const profileTemplate = `
=== Profile ===

[{{ .Initials }}] {{ .Name }}
{{- with .Profile }}
{{- if or .FirstName .LastName }}
Name:  {{ .FirstName }} {{ .LastName }}
{{- end }}
{{- if .Email }}
Email: {{ .Email }}
{{- end }}
{{- end }}
`

const overviewTemplate = `
[{{ .Initials }}] Welcome back, {{ .Name }}!   🔔 {{ .Unread }}
{{ template "bookmarks" .Bookmarks }}
{{- template "notifications" .Notifications }}
{{- template "interests" .Interests }}
`

var templates = template.Must(template.New("cli").Funcs(template.FuncMap{
	"join": strings.Join,
	"ago":  ago,
}).Parse(strings.Join([]string{
	`{{ define "status" }}` + statusTemplate + `{{ end }}`,
	`{{ define "courses" }}` + coursesTemplate + `{{ end }}`,
	`{{ define "course" }}` + courseTemplate + `{{ end }}`,
	`{{ define "bookmarks" }}` + bookmarksTemplate + `{{ end }}`,
	`{{ define "notifications" }}` + notificationsTemplate + `{{ end }}`,
	`{{ define "interests" }}` + interestsTemplate + `{{ end }}`,
	`{{ define "categories" }}` + categoriesTemplate + `{{ end }}`,
	`{{ define "profile" }}` + profileTemplate + `{{ end }}`,
	`{{ define "overview" }}` + overviewTemplate + `{{ end }}`,
}, "")))

// render печатает шаблон name
func (c *Cli) render(name string, data any) error {
	if err := templates.ExecuteTemplate(c.io, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// ago форматирует время уведомления относительно текущего
func ago(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return t.Format("Jan 2, 2006")
	}
}

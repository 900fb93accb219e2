package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

const (
	// StudentIDKey ключ для хранения id студента в контексте
	StudentIDKey contextKey = "student_id"
	// EmailKey ключ для хранения email студента в контексте
	EmailKey contextKey = "email"
)

// WithStudent кладет данные из токена в контекст запроса
func WithStudent(ctx context.Context, studentID, email string) context.Context {
	ctx = context.WithValue(ctx, StudentIDKey, studentID)
	return context.WithValue(ctx, EmailKey, email)
}

// GetStudentID извлекает id студента из контекста запроса
func GetStudentID(ctx context.Context) (string, bool) {
	studentID, ok := ctx.Value(StudentIDKey).(string)
	return studentID, ok && studentID != ""
}

// GetEmail извлекает email студента из контекста запроса
func GetEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}

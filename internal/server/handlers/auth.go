package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/lmsdesk/internal/server/storage"
	"github.com/iudanet/lmsdesk/internal/validation"
	"github.com/iudanet/lmsdesk/pkg/api"
)

// MsgInvalidCredentials - ответ на неверный email или пароль.
// Одинаковый для обоих случаев, чтобы не раскрывать наличие аккаунта.
const MsgInvalidCredentials = "Invalid email or password"

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	responder
	students  storage.StudentStorage
	jwtConfig JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, students storage.StudentStorage, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		responder: newResponder(logger),
		students:  students,
		jwtConfig: jwtConfig,
	}
}

// Login обрабатывает POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.sendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Struct(req); err != nil {
		h.logger.WarnContext(ctx, "invalid login request", slog.Any("error", err))
		h.sendError(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	student, err := h.students.GetStudentByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrStudentNotFound) {
			h.logger.WarnContext(ctx, "login for unknown email")
			h.sendError(w, MsgInvalidCredentials, http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get student", slog.Any("error", err))
		h.sendError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "invalid password", slog.String("student_id", student.ID))
		h.sendError(w, MsgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	token, expiresIn, err := GenerateAccessToken(h.jwtConfig, student.ID, student.Email)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		h.sendError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "student logged in", slog.String("student_id", student.ID))

	h.sendData(w, api.TokenResponse{Token: token, ExpiresIn: expiresIn}, nil, "Login successful", http.StatusOK)
}

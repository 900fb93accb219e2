package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/lmsdesk/internal/server/handlers"
)

// AuthMiddleware создает middleware для проверки JWT токена.
// Любая проблема с токеном дает 401 в формате конверта, клиент по нему завершает сессию.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(ctx, "missing Authorization header", slog.String("path", r.URL.Path))
				handlers.WriteError(w, logger, "Authentication required", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				logger.WarnContext(ctx, "invalid Authorization header format")
				handlers.WriteError(w, logger, "Invalid token", http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, parts[1])
			if err != nil {
				logger.WarnContext(ctx, "invalid access token", slog.Any("error", err))
				handlers.WriteError(w, logger, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			logger.DebugContext(ctx, "student authenticated", slog.String("student_id", claims.Subject))

			next.ServeHTTP(w, r.WithContext(handlers.WithStudent(ctx, claims.Subject, claims.Email)))
		})
	}
}

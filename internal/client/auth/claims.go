package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims - данные, прочитанные из токена без проверки подписи.
// Подпись проверяет только сервер, клиенту они нужны для команды status.
type Claims struct {
	ExpiresAt time.Time // нулевое значение, если срок не указан
	Subject   string    // ID студента
	Email     string
}

// Expired сообщает, истек ли срок действия токена к моменту now
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

type tokenClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ParseClaims читает claims токена без проверки подписи
func ParseClaims(token string) (*Claims, error) {
	var tc tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &tc); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims := &Claims{
		Subject: tc.Subject,
		Email:   tc.Email,
	}
	if tc.ExpiresAt != nil {
		claims.ExpiresAt = tc.ExpiresAt.Time
	}
	return claims, nil
}

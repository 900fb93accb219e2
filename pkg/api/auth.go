package api

// LoginRequest представляет запрос на аутентификацию студента
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"` // email студента
	Password string `json:"password" validate:"required"`    // пароль в открытом виде (только по TLS)
}

// TokenResponse представляет данные ответа на успешный логин
type TokenResponse struct {
	Token     string `json:"token"`     // JWT bearer token
	ExpiresIn int64  `json:"expiresIn"` // время жизни токена в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`   // описание ошибки
	Message string `json:"message,omitempty"` // сообщение для пользователя
}

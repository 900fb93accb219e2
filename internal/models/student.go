package models

import "time"

// Student представляет учетную запись студента в sandbox сервере
type Student struct {
	CreatedAt    time.Time `json:"createdAt"` // время создания
	ID           string    `json:"_id"`       // UUID студента
	Email        string    `json:"email"`     // уникальный email
	PasswordHash string    `json:"-"`         // bcrypt хеш пароля
	FirstName    string    `json:"firstName"` // имя
	LastName     string    `json:"lastName"`  // фамилия
}

package api

import "encoding/json"

// Envelope is the uniform response shape of the platform API.
// Data is kept raw so that callers decode it into the type they expect.
type Envelope struct {
	Data       json.RawMessage `json:"data,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
	Error      string          `json:"error,omitempty"`
	Success    bool            `json:"success"`
}

// Response is the typed counterpart of Envelope used by producers.
type Response[T any] struct {
	Data       T           `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Message    string      `json:"message,omitempty"`
	Success    bool        `json:"success"`
}

// Pagination описывает страницу списка.
// Total - агрегат на сервере, он не обязан совпадать с длиной текущей страницы.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

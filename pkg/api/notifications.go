package api

import "time"

// NotificationRecord представляет уведомление студента
type NotificationRecord struct {
	CreatedAt     time.Time      `json:"createdAt"`
	RelatedEntity *RelatedEntity `json:"relatedEntity,omitempty"`
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Message       string         `json:"message"`
	ActionURL     string         `json:"actionUrl,omitempty"`
	IsRead        bool           `json:"isRead"`
}

// RelatedEntity указывает на объект, к которому относится уведомление
type RelatedEntity struct {
	Type string `json:"type"` // course, assessment, ...
	ID   string `json:"id"`
}

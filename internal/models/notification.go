package models

import (
	"time"

	"github.com/iudanet/lmsdesk/pkg/api"
)

// Notification представляет уведомление студента на клиенте
type Notification struct {
	CreatedAt         time.Time
	ID                string
	Title             string
	Message           string
	ActionURL         string
	RelatedEntityType string
	RelatedEntityID   string
	IsRead            bool
}

// NotificationFromRecord конвертирует запись API в модель клиента
func NotificationFromRecord(rec api.NotificationRecord) Notification {
	n := Notification{
		ID:        rec.ID,
		Title:     rec.Title,
		Message:   rec.Message,
		CreatedAt: rec.CreatedAt,
		IsRead:    rec.IsRead,
		ActionURL: rec.ActionURL,
	}
	if rec.RelatedEntity != nil {
		n.RelatedEntityType = rec.RelatedEntity.Type
		n.RelatedEntityID = rec.RelatedEntity.ID
	}
	return n
}

package dto

import (
	"time"

	"quickcourt/internal/domains/notification/model"
)

type NotificationResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	DurationMs int64  `json:"duration_ms"`
	CreatedAt  string `json:"created_at"`
	ExpiresAt  string `json:"expires_at"`
}

func (r *NotificationResponse) FromModel(m model.Notification) {
	r.ID = m.ID
	r.Type = string(m.Type)
	r.Title = m.Title
	r.Message = m.Message
	r.DurationMs = m.Duration.Milliseconds()
	r.CreatedAt = m.CreatedAt.Format(time.RFC3339)
	r.ExpiresAt = m.ExpiresAt().Format(time.RFC3339)
}

func NotificationsFromModels(models []model.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

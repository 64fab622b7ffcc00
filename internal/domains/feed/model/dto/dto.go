package dto

import (
	"time"

	"quickcourt/internal/domains/feed/model"
)

type DiffResponse struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}

func (r *DiffResponse) FromModel(m model.Diff) {
	r.Added = nonNil(m.Added)
	r.Removed = nonNil(m.Removed)
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return ids
}

type StatusResponse struct {
	Source                 string `json:"source"`
	IsRefreshing           bool   `json:"is_refreshing"`
	LastKnownApprovedCount int    `json:"last_known_approved_count"`
	CatalogSize            int    `json:"catalog_size"`
	LastRefreshedAt        string `json:"last_refreshed_at,omitempty"`
	LastError              string `json:"last_error,omitempty"`
}

func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.RFC3339)
}

// PushEvent is the body a broker delivers to request a refresh. Every field is optional.
type PushEvent struct {
	FacilityID string `json:"facility_id"`
	Reason     string `json:"reason"`
}

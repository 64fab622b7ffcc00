package model

import "time"

const EntityName = "notification"

type Type string

const (
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Draft is what a producer hands to the center; id, duration and timestamps are assigned on push.
type Draft struct {
	Type    Type
	Title   string
	Message string
}

type Notification struct {
	ID        string
	Type      Type
	Title     string
	Message   string
	Duration  time.Duration
	CreatedAt time.Time
}

// ExpiresAt is when the removal timer fires.
func (n Notification) ExpiresAt() time.Time {
	return n.CreatedAt.Add(n.Duration)
}

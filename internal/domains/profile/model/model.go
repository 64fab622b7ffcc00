package model

import "time"

const (
	EntityName = "profile"
	KeyPrefix  = "profile"
)

// Profile is the identity provider's user as shown and edited in the app.
type Profile struct {
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	FavoriteSports []string  `json:"favorite_sports"`
	Avatar         string    `json:"avatar,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Identity is the authenticated caller as asserted by the access token.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

// Default is the profile of a user who has never saved one.
func Default(identity Identity) Profile {
	return Profile{
		UserID:         identity.UserID,
		Name:           identity.Name,
		Email:          identity.Email,
		FavoriteSports: []string{},
	}
}

package dto

import (
	"strings"
	"time"

	"quickcourt/internal/domains/profile/model"
)

type UpdateProfileRequest struct {
	Name           *string   `json:"name"            validate:"omitnil,notblank,max=100"`
	Phone          *string   `json:"phone"           validate:"omitempty,max=20"`
	FavoriteSports *[]string `json:"favorite_sports" validate:"omitempty,max=10,dive,notblank,max=50"`
	Avatar         *string   `json:"avatar"          validate:"omitempty,url,max=500"`
}

func (r UpdateProfileRequest) IsEmpty() bool {
	return r.Name == nil && r.Phone == nil && r.FavoriteSports == nil && r.Avatar == nil
}

// Apply copies every provided field onto p.
func (r UpdateProfileRequest) Apply(p model.Profile) model.Profile {
	if r.Name != nil {
		p.Name = strings.TrimSpace(*r.Name)
	}

	if r.Phone != nil {
		p.Phone = strings.TrimSpace(*r.Phone)
	}

	if r.FavoriteSports != nil {
		sports := make([]string, 0, len(*r.FavoriteSports))
		for _, sport := range *r.FavoriteSports {
			sports = append(sports, strings.TrimSpace(sport))
		}

		p.FavoriteSports = sports
	}

	if r.Avatar != nil {
		p.Avatar = *r.Avatar
	}

	return p
}

type ProfileResponse struct {
	UserID         string   `json:"user_id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	FavoriteSports []string `json:"favorite_sports"`
	Avatar         string   `json:"avatar,omitempty"`
	UpdatedAt      string   `json:"updated_at,omitempty"`
}

func (r *ProfileResponse) FromModel(m model.Profile) {
	r.UserID = m.UserID
	r.Name = m.Name
	r.Email = m.Email
	r.Phone = m.Phone
	r.FavoriteSports = m.FavoriteSports
	r.Avatar = m.Avatar

	if r.FavoriteSports == nil {
		r.FavoriteSports = []string{}
	}

	if !m.UpdatedAt.IsZero() {
		r.UpdatedAt = m.UpdatedAt.Format(time.RFC3339)
	}
}

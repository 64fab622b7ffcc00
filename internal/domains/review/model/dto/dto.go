package dto

import (
	"strings"
	"time"

	"quickcourt/internal/domains/review/model"
)

type SubmitReviewRequest struct {
	UserName string `json:"user_name" validate:"notblank,max=100"`
	Rating   int    `json:"rating"    validate:"min=1,max=5"`
	Comment  string `json:"comment"   validate:"notblank,max=1000"`
}

// Normalize trims surrounding whitespace from the free-text fields.
func (r *SubmitReviewRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Comment = strings.TrimSpace(r.Comment)
}

type ReviewResponse struct {
	ID         string `json:"id"`
	FacilityID string `json:"facility_id"`
	UserName   string `json:"user_name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"created_at"`
	Provenance string `json:"provenance"`
}

func (r *ReviewResponse) FromModel(m model.Review) {
	r.ID = m.ID
	r.FacilityID = m.FacilityID
	r.UserName = m.UserName
	r.Rating = m.Rating
	r.Comment = m.Comment
	r.CreatedAt = m.CreatedAt.Format(time.RFC3339)
	r.Provenance = string(m.Provenance)
}

func ReviewsFromModels(models []model.Review) []ReviewResponse {
	res := make([]ReviewResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type AggregateResponse struct {
	Count       int     `json:"count"`
	Average     float64 `json:"average"`
	AverageText string  `json:"average_text"`
	Stars       int     `json:"stars"`
}

func (r *AggregateResponse) FromModel(m model.Aggregate) {
	r.Count = m.Count
	r.Average = m.Average.InexactFloat64()
	r.AverageText = m.Average.StringFixed(1)
	r.Stars = m.Stars
}

package model

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EntityName = "review"
	IDPrefix   = "r_"

	MinRating = 1
	MaxRating = 5
)

// Provenance tells seeded catalog reviews apart from ones submitted in this session.
type Provenance string

const (
	ProvenanceSeeded Provenance = "seeded"
	ProvenanceUser   Provenance = "user"
)

type Review struct {
	ID         string     `json:"id"`
	FacilityID string     `json:"facility_id"`
	UserName   string     `json:"user_name"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment"`
	CreatedAt  time.Time  `json:"created_at"`
	Provenance Provenance `json:"provenance"`
}

// Merge returns user reviews, already most recent first, followed by seeded
// reviews in their original order.
func Merge(user, seeded []Review) []Review {
	merged := make([]Review, 0, len(user)+len(seeded))
	merged = append(merged, user...)
	merged = append(merged, seeded...)

	return merged
}

// Prepend returns a new slice with review in front of reviews.
func Prepend(review Review, reviews []Review) []Review {
	return slices.Insert(slices.Clone(reviews), 0, review)
}

type Aggregate struct {
	Count   int
	Average decimal.Decimal
	Stars   int
}

var half = decimal.NewFromFloat(0.5)

// Summarize averages the ratings. Average is rounded to one decimal; Stars
// rounds the unrounded mean half up.
func Summarize(reviews []Review) Aggregate {
	if len(reviews) == 0 {
		return Aggregate{Average: decimal.Zero}
	}

	sum := decimal.Zero
	for _, review := range reviews {
		sum = sum.Add(decimal.NewFromInt(int64(review.Rating)))
	}

	mean := sum.Div(decimal.NewFromInt(int64(len(reviews))))

	return Aggregate{
		Count:   len(reviews),
		Average: mean.Round(1),
		Stars:   int(mean.Add(half).Floor().IntPart()),
	}
}

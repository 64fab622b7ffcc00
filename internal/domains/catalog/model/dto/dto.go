package dto

import (
	"quickcourt/internal/domains/catalog/model"

	"github.com/shopspring/decimal"
)

type FilterRequest struct {
	Search     string `json:"search" validate:"max=100"`
	Sport      string `json:"sport" validate:"max=50"`
	PriceRange string `json:"price_range" validate:"omitempty,oneof=all 0-25 25-50 50+"`
	Category   string `json:"category" validate:"omitempty,oneof=all indoor outdoor"`
}

func (r FilterRequest) ToModel() model.Filter {
	return model.Filter{
		Search:     r.Search,
		Sport:      r.Sport,
		PriceRange: model.PriceBucket(r.PriceRange),
		Category:   model.Category(r.Category),
	}
}

type SportsRequest struct {
	Category string `json:"category" validate:"omitempty,oneof=all indoor outdoor"`
}

type FacilityResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Description  string          `json:"description"`
	Sports       []string        `json:"sports"`
	Amenities    []string        `json:"amenities"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	Rating       float64         `json:"rating"`
	Images       []string        `json:"images"`
}

func (r *FacilityResponse) FromModel(m model.Facility) {
	r.ID = m.ID
	r.Name = m.Name
	r.Location = m.Location
	r.Description = m.Description
	r.Sports = m.Sports
	r.Amenities = m.Amenities
	r.PricePerHour = m.PricePerHour
	r.Rating = m.Rating
	r.Images = m.Images
}

func FacilitiesFromModels(models []model.Facility) []FacilityResponse {
	res := make([]FacilityResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type CourtResponse struct {
	ID           string          `json:"id"`
	FacilityID   string          `json:"facility_id"`
	Name         string          `json:"name"`
	Sport        string          `json:"sport"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	Environment  string          `json:"environment"`
}

func (r *CourtResponse) FromModel(m model.Court) {
	r.ID = m.ID
	r.FacilityID = m.FacilityID
	r.Name = m.Name
	r.Sport = m.Sport
	r.PricePerHour = m.PricePerHour
	r.Environment = string(m.Environment)
}

func CourtsFromModels(models []model.Court) []CourtResponse {
	res := make([]CourtResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

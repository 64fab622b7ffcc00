package dto

import (
	"time"

	"quickcourt/internal/domains/booking/model"
	"quickcourt/shared/failure"
	"quickcourt/shared/timezone"

	"github.com/shopspring/decimal"
)

type UpdateSelectionRequest struct {
	CourtID     *string `json:"court_id"     validate:"omitempty,max=64"`
	Date        *string `json:"date"         validate:"omitempty"`
	TimeSlot    *string `json:"time_slot"    validate:"omitempty,max=5"`
	Duration    *int    `json:"duration"     validate:"omitempty,min=1,max=5"`
	PersonCount *int    `json:"person_count" validate:"omitempty,min=1,max=10"`
}

func (r UpdateSelectionRequest) ToPatch() (model.SelectionPatch, error) {
	patch := model.SelectionPatch{
		CourtID:     r.CourtID,
		TimeSlot:    r.TimeSlot,
		Duration:    r.Duration,
		PersonCount: r.PersonCount,
	}

	if r.Date != nil {
		var date timezone.Date

		if *r.Date != "" {
			parsed, err := timezone.ParseDate(*r.Date)
			if err != nil {
				return patch, failure.BadRequest(err) //nolint:wrapcheck
			}

			date = parsed
		}

		patch.Date = &date
	}

	return patch, nil
}

type ConfirmRequest struct {
	Email   string `json:"email"   validate:"required,email,max=100"`
	Phone   string `json:"phone"   validate:"notblank,max=20"`
	Address string `json:"address" validate:"notblank,max=255"`
}

func (r ConfirmRequest) ToModel() model.UserDetails {
	return model.UserDetails{
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

type SelectionResponse struct {
	CourtID     string `json:"court_id"`
	Date        string `json:"date"`
	TimeSlot    string `json:"time_slot"`
	Duration    int    `json:"duration"`
	PersonCount int    `json:"person_count"`
}

type QuoteResponse struct {
	Rate  decimal.Decimal `json:"rate"`
	Hours int             `json:"hours"`
	Total decimal.Decimal `json:"total"`
}

func (r *QuoteResponse) FromModel(m model.Quote) {
	r.Rate = m.Rate
	r.Hours = m.Hours
	r.Total = m.Total
}

type FlowResponse struct {
	ID         string            `json:"id"`
	FacilityID string            `json:"facility_id"`
	State      string            `json:"state"`
	Selection  SelectionResponse `json:"selection"`
	Quote      *QuoteResponse    `json:"quote,omitempty"`
	BookingID  string            `json:"booking_id,omitempty"`
	UpdatedAt  string            `json:"updated_at"`
}

func (r *FlowResponse) FromModel(m model.Flow) {
	r.ID = m.ID
	r.FacilityID = m.FacilityID
	r.State = string(m.State)
	r.Selection = SelectionResponse{
		CourtID:     m.Selection.CourtID,
		Date:        m.Selection.Date.String(),
		TimeSlot:    m.Selection.TimeSlot,
		Duration:    m.Selection.Duration,
		PersonCount: m.Selection.PersonCount,
	}
	r.BookingID = m.BookingID
	r.UpdatedAt = m.UpdatedAt.Format(time.RFC3339)
}

type UserDetailsResponse struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type BookingResponse struct {
	ID          string              `json:"id"`
	FacilityID  string              `json:"facility_id"`
	CourtID     string              `json:"court_id"`
	Date        string              `json:"date"`
	TimeSlot    string              `json:"time_slot"`
	Duration    int                 `json:"duration"`
	PersonCount int                 `json:"person_count"`
	TotalPrice  decimal.Decimal     `json:"total_price"`
	Status      string              `json:"status"`
	UserDetails UserDetailsResponse `json:"user_details"`
	CreatedAt   string              `json:"created_at"`
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.FacilityID = m.FacilityID
	r.CourtID = m.CourtID
	r.Date = m.Date.String()
	r.TimeSlot = m.TimeSlot
	r.Duration = m.Duration
	r.PersonCount = m.PersonCount
	r.TotalPrice = m.TotalPrice
	r.Status = string(m.Status)
	r.UserDetails = UserDetailsResponse(m.UserDetails)
	r.CreatedAt = m.CreatedAt.Format(time.RFC3339)
}

func BookingsFromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

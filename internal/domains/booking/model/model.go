package model

import (
	"time"

	catalogModel "quickcourt/internal/domains/catalog/model"
	"quickcourt/internal/domains/pricing"
	"quickcourt/shared/failure"
	"quickcourt/shared/timezone"

	"github.com/shopspring/decimal"
)

const (
	EntityName  = "booking"
	KeyBookings = "bookings"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// CanTransitionTo enforces monotonic status changes. A cancelled booking never reopens.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

type UserDetails struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Booking struct {
	ID          string          `json:"id"`
	FacilityID  string          `json:"facility_id"`
	CourtID     string          `json:"court_id"`
	UserID      string          `json:"user_id,omitempty"`
	Date        timezone.Date   `json:"date"`
	TimeSlot    string          `json:"time_slot"`
	Duration    int             `json:"duration"`
	PersonCount int             `json:"person_count"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Status      Status          `json:"status"`
	UserDetails UserDetails     `json:"user_details"`
	CreatedAt   time.Time       `json:"created_at"`
}

type FlowState string

const (
	FlowBrowsing      FlowState = "browsing"
	FlowSelecting     FlowState = "selecting"
	FlowReviewingForm FlowState = "reviewing_form"
	FlowConfirmed     FlowState = "confirmed"
	FlowAborted       FlowState = "aborted"
)

func (s FlowState) Terminal() bool {
	return s == FlowConfirmed || s == FlowAborted
}

type Selection struct {
	CourtID     string
	Date        timezone.Date
	TimeSlot    string
	Duration    int
	PersonCount int
}

// SelectionPatch carries the fields a caller wants to change. Nil fields are left alone;
// an empty court or time slot clears the field.
type SelectionPatch struct {
	CourtID     *string
	Date        *timezone.Date
	TimeSlot    *string
	Duration    *int
	PersonCount *int
}

func (p SelectionPatch) IsEmpty() bool {
	return p.CourtID == nil && p.Date == nil && p.TimeSlot == nil && p.Duration == nil && p.PersonCount == nil
}

// Flow is one pass through the booking steps for a single facility.
type Flow struct {
	ID         string
	FacilityID string
	UserID     string
	State      FlowState
	Selection  Selection
	BookingID  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewFlow(id, facilityID, userID string, now time.Time) Flow {
	return Flow{
		ID:         id,
		FacilityID: facilityID,
		UserID:     userID,
		State:      FlowBrowsing,
		Selection: Selection{
			Duration:    pricing.MinDuration,
			PersonCount: pricing.MinPersons,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func errTerminal(state FlowState) error {
	return failure.BadRequestFromString("booking flow is already " + string(state) + ", start a new one") // nolint:wrapcheck
}

// Bounds is what a selection is checked against: the current catalog and the booking horizon.
type Bounds struct {
	Catalog     catalogModel.Snapshot
	Today       timezone.Date
	HorizonDays int
}

// ApplySelection validates every field of patch before changing anything, so a
// rejected patch leaves the flow untouched.
func (f Flow) ApplySelection(patch SelectionPatch, bounds Bounds, now time.Time) (Flow, error) {
	if f.State.Terminal() {
		return f, errTerminal(f.State)
	}

	if f.State == FlowReviewingForm {
		return f, failure.BadRequestFromString("go back to the selection step to change it") // nolint:wrapcheck
	}

	if patch.IsEmpty() {
		return f, failure.BadRequestFromString("selection update cannot be empty") // nolint:wrapcheck
	}

	next := f.Selection

	if patch.CourtID != nil {
		if *patch.CourtID != "" {
			if _, ok := bounds.Catalog.Court(f.FacilityID, *patch.CourtID); !ok {
				return f, failure.BadRequestFromString("court does not belong to this facility") // nolint:wrapcheck
			}
		}

		next.CourtID = *patch.CourtID
	}

	if patch.Date != nil {
		if !patch.Date.IsZero() && !pricing.IsSelectableDate(bounds.Today, *patch.Date, bounds.HorizonDays) {
			return f, failure.BadRequestFromString("date is outside the booking window") // nolint:wrapcheck
		}

		next.Date = *patch.Date
	}

	if patch.TimeSlot != nil {
		if *patch.TimeSlot != "" && !pricing.IsTimeSlot(*patch.TimeSlot) {
			return f, failure.BadRequestFromString("time slot is not offered") // nolint:wrapcheck
		}

		next.TimeSlot = *patch.TimeSlot
	}

	if patch.Duration != nil {
		if *patch.Duration < pricing.MinDuration || *patch.Duration > pricing.MaxDuration {
			return f, failure.BadRequestFromString("duration must be between 1 and 5 hours") // nolint:wrapcheck
		}

		next.Duration = *patch.Duration
	}

	if patch.PersonCount != nil {
		if *patch.PersonCount < pricing.MinPersons || *patch.PersonCount > pricing.MaxPersons {
			return f, failure.BadRequestFromString("person count must be between 1 and 10") // nolint:wrapcheck
		}

		next.PersonCount = *patch.PersonCount
	}

	f.Selection = next
	f.State = FlowSelecting
	f.UpdatedAt = now

	return f, nil
}

// Proceed moves to the contact form once court, date and time are chosen.
func (f Flow) Proceed(now time.Time) (Flow, error) {
	if f.State.Terminal() {
		return f, errTerminal(f.State)
	}

	if f.State == FlowReviewingForm {
		return f, nil
	}

	if err := pricing.ValidateSelection(f.Selection.CourtID, f.Selection.Date, f.Selection.TimeSlot); err != nil {
		return f, err //nolint:wrapcheck
	}

	f.State = FlowReviewingForm
	f.UpdatedAt = now

	return f, nil
}

// Back returns from the contact form to the selection, keeping every field.
func (f Flow) Back(now time.Time) (Flow, error) {
	if f.State.Terminal() {
		return f, errTerminal(f.State)
	}

	if f.State != FlowReviewingForm {
		return f, failure.BadRequestFromString("booking flow is not on the contact form") // nolint:wrapcheck
	}

	f.State = FlowSelecting
	f.UpdatedAt = now

	return f, nil
}

func (f Flow) Abort(now time.Time) (Flow, error) {
	if f.State.Terminal() {
		return f, errTerminal(f.State)
	}

	f.State = FlowAborted
	f.UpdatedAt = now

	return f, nil
}

// CheckConfirmable reports whether the flow may be confirmed today. The date
// chosen earlier must still be inside the booking window.
func (f Flow) CheckConfirmable(bounds Bounds) error {
	if f.State.Terminal() {
		return errTerminal(f.State)
	}

	if f.State != FlowReviewingForm {
		return failure.BadRequestFromString("complete the selection before confirming") // nolint:wrapcheck
	}

	if !pricing.IsSelectableDate(bounds.Today, f.Selection.Date, bounds.HorizonDays) {
		return failure.BadRequestFromString("date is no longer inside the booking window, choose another") // nolint:wrapcheck
	}

	return nil
}

// Confirmed marks the flow done once its booking has been stored.
func (f Flow) Confirmed(bookingID string, now time.Time) Flow {
	f.State = FlowConfirmed
	f.BookingID = bookingID
	f.UpdatedAt = now

	return f
}

// Quote prices the current selection against the catalog. The court is optional.
func (f Flow) Quote(catalog catalogModel.Snapshot) (Quote, error) {
	facility, ok := catalog.Find(f.FacilityID)
	if !ok {
		return Quote{}, failure.NotFound("facility not found") // nolint:wrapcheck
	}

	var court *catalogModel.Court

	if f.Selection.CourtID != "" {
		c, found := catalog.Court(f.FacilityID, f.Selection.CourtID)
		if !found {
			return Quote{}, failure.BadRequestFromString("selected court is no longer offered") // nolint:wrapcheck
		}

		court = &c
	}

	total, err := pricing.ComputeTotal(facility, court, f.Selection.Duration)
	if err != nil {
		return Quote{}, err //nolint:wrapcheck
	}

	return Quote{
		Rate:  pricing.EffectiveRate(facility, court),
		Hours: f.Selection.Duration,
		Total: total,
	}, nil
}

type Quote struct {
	Rate  decimal.Decimal
	Hours int
	Total decimal.Decimal
}

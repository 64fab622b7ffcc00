// Package pricing derives selectable dates and booking totals. Every function
// is pure; totals are recomputed on each call.
package pricing

import (
	"fmt"
	"slices"
	"strings"

	catalogModel "quickcourt/internal/domains/catalog/model"
	"quickcourt/shared/constant"
	"quickcourt/shared/failure"
	"quickcourt/shared/timezone"

	"github.com/shopspring/decimal"
)

const (
	MinDuration = 1
	MaxDuration = 5
	MinPersons  = 1
	MaxPersons  = 10

	firstSlotHour = 6
	lastSlotHour  = 22
)

var timeSlots = func() []string {
	slots := make([]string, 0, lastSlotHour-firstSlotHour+1)
	for hour := firstSlotHour; hour <= lastSlotHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}

	return slots
}()

// TimeSlots returns the bookable start times of a day, earliest first.
func TimeSlots() []string {
	return slices.Clone(timeSlots)
}

func IsTimeSlot(slot string) bool {
	return slices.Contains(timeSlots, slot)
}

// AvailableDates returns horizonDays consecutive days starting the day after reference.
func AvailableDates(reference timezone.Date, horizonDays int) []timezone.Date {
	if horizonDays <= 0 {
		horizonDays = constant.DefaultBookingHorizonDays
	}

	dates := make([]timezone.Date, horizonDays)
	for i := range dates {
		dates[i] = reference.AddDays(i + 1)
	}

	return dates
}

// IsSelectableDate reports whether date is inside AvailableDates(reference, horizonDays).
func IsSelectableDate(reference, date timezone.Date, horizonDays int) bool {
	if horizonDays <= 0 {
		horizonDays = constant.DefaultBookingHorizonDays
	}

	return date.After(reference) && !date.After(reference.AddDays(horizonDays))
}

// EffectiveRate is the court rate when a priced court is given, else the facility rate.
func EffectiveRate(facility catalogModel.Facility, court *catalogModel.Court) decimal.Decimal {
	if court != nil && court.PricePerHour.IsPositive() {
		return court.PricePerHour
	}

	return facility.PricePerHour
}

func ComputeTotal(facility catalogModel.Facility, court *catalogModel.Court, hours int) (decimal.Decimal, error) {
	if hours < 1 {
		return decimal.Zero, failure.BadRequestFromString("duration must be a positive number of hours") // nolint:wrapcheck
	}

	return EffectiveRate(facility, court).Mul(decimal.NewFromInt(int64(hours))), nil
}

// ValidateSelection requires a court, a date and a time slot, and names whichever are missing.
func ValidateSelection(courtID string, date timezone.Date, timeSlot string) error {
	var missing []string

	if courtID == "" {
		missing = append(missing, "court")
	}

	if date.IsZero() {
		missing = append(missing, "date")
	}

	if timeSlot == "" {
		missing = append(missing, "time")
	}

	if len(missing) > 0 {
		return failure.BadRequestFromString("please select " + strings.Join(missing, ", ") + " before booking") // nolint:wrapcheck
	}

	return nil
}

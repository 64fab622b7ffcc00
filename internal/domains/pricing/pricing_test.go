package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogModel "quickcourt/internal/domains/catalog/model"
	"quickcourt/internal/domains/pricing"
	"quickcourt/shared/failure"
	"quickcourt/shared/timezone"
)

func mustDate(t *testing.T, value string) timezone.Date {
	t.Helper()

	d, err := timezone.ParseDate(value)
	require.NoError(t, err)

	return d
}

func TestAvailableDates(t *testing.T) {
	references := []string{"2024-01-01", "2024-02-20", "2024-12-25", "2025-03-30"}

	for _, ref := range references {
		t.Run(ref, func(t *testing.T) {
			reference := mustDate(t, ref)

			dates := pricing.AvailableDates(reference, 14)

			require.Len(t, dates, 14)
			assert.True(t, dates[0].Equal(reference.AddDays(1)))

			for i := 1; i < len(dates); i++ {
				assert.True(t, dates[i].After(dates[i-1]))
				assert.True(t, dates[i].Equal(dates[i-1].AddDays(1)))
			}
		})
	}

	assert.Len(t, pricing.AvailableDates(mustDate(t, "2024-01-01"), 0), 14)
	assert.Equal(t, "2024-03-01", pricing.AvailableDates(mustDate(t, "2024-02-28"), 2)[1].String())
}

func TestIsSelectableDate(t *testing.T) {
	reference := mustDate(t, "2024-06-01")

	tests := []struct {
		name string
		date string
		want bool
	}{
		{name: "reference day", date: "2024-06-01", want: false},
		{name: "next day", date: "2024-06-02", want: true},
		{name: "last day of horizon", date: "2024-06-15", want: true},
		{name: "past horizon", date: "2024-06-16", want: false},
		{name: "past", date: "2024-05-20", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.IsSelectableDate(reference, mustDate(t, tt.date), 14))
		})
	}
}

func TestTimeSlots(t *testing.T) {
	slots := pricing.TimeSlots()

	assert.Equal(t, "06:00", slots[0])
	assert.Equal(t, "22:00", slots[len(slots)-1])
	assert.Len(t, slots, 17)
	assert.True(t, pricing.IsTimeSlot("13:00"))
	assert.False(t, pricing.IsTimeSlot("13:30"))
	assert.False(t, pricing.IsTimeSlot(""))
}

func TestComputeTotal(t *testing.T) {
	facility := catalogModel.Facility{ID: "f1", PricePerHour: decimal.NewFromInt(20)}
	court := &catalogModel.Court{ID: "c1", FacilityID: "f1", PricePerHour: decimal.NewFromInt(30)}

	t.Run("court rate, two hours", func(t *testing.T) {
		total, err := pricing.ComputeTotal(facility, court, 2)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(60)))
	})

	t.Run("facility rate, three hours", func(t *testing.T) {
		total, err := pricing.ComputeTotal(facility, nil, 3)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(60)))
	})

	t.Run("unpriced court falls back to facility", func(t *testing.T) {
		total, err := pricing.ComputeTotal(facility, &catalogModel.Court{ID: "c9"}, 1)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(20)))
	})

	t.Run("equals rate times hours and is repeatable", func(t *testing.T) {
		for hours := 1; hours <= 24; hours++ {
			first, err := pricing.ComputeTotal(facility, court, hours)
			require.NoError(t, err)

			second, err := pricing.ComputeTotal(facility, court, hours)
			require.NoError(t, err)

			assert.True(t, first.Equal(second))
			assert.True(t, first.Equal(pricing.EffectiveRate(facility, court).Mul(decimal.NewFromInt(int64(hours)))))
		}
	})

	t.Run("non-positive hours", func(t *testing.T) {
		_, err := pricing.ComputeTotal(facility, court, 0)
		assert.True(t, failure.IsValidation(err))
	})
}

func TestValidateSelection(t *testing.T) {
	date := mustDate(t, "2024-06-02")

	tests := []struct {
		name     string
		courtID  string
		date     timezone.Date
		slot     string
		wantErr  bool
		contains string
	}{
		{name: "complete", courtID: "c1", date: date, slot: "06:00"},
		{name: "missing court", date: date, slot: "06:00", wantErr: true, contains: "court"},
		{name: "missing date", courtID: "c1", slot: "06:00", wantErr: true, contains: "date"},
		{name: "missing time", courtID: "c1", date: date, wantErr: true, contains: "time"},
		{name: "missing all", wantErr: true, contains: "court, date, time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pricing.ValidateSelection(tt.courtID, tt.date, tt.slot)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.True(t, failure.IsValidation(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcourt/internal/domains/booking/model"
	catalogModel "quickcourt/internal/domains/catalog/model"
	"quickcourt/shared/failure"
	"quickcourt/shared/timezone"
)

func ptr[T any](v T) *T {
	return &v
}

func testBounds(t *testing.T) model.Bounds {
	t.Helper()

	today, err := timezone.ParseDate("2024-06-01")
	require.NoError(t, err)

	return model.Bounds{
		Catalog: catalogModel.NewSnapshot(
			[]catalogModel.Facility{{ID: "f1", PricePerHour: decimal.NewFromInt(20)}, {ID: "f2", PricePerHour: decimal.NewFromInt(40)}},
			[]catalogModel.Court{
				{ID: "c1", FacilityID: "f1", PricePerHour: decimal.NewFromInt(30)},
				{ID: "c9", FacilityID: "f2", PricePerHour: decimal.NewFromInt(50)},
			},
		),
		Today:       today,
		HorizonDays: 14,
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to model.Status
		want     bool
	}{
		{model.StatusPending, model.StatusConfirmed, true},
		{model.StatusPending, model.StatusCancelled, true},
		{model.StatusConfirmed, model.StatusCancelled, true},
		{model.StatusConfirmed, model.StatusPending, false},
		{model.StatusCancelled, model.StatusPending, false},
		{model.StatusCancelled, model.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestFlow_ApplySelection(t *testing.T) {
	bounds := testBounds(t)
	now := time.Now()
	inWindow := bounds.Today.AddDays(3)
	outOfWindow := bounds.Today.AddDays(15)

	tests := []struct {
		name    string
		patch   model.SelectionPatch
		wantErr bool
		check   func(t *testing.T, flow model.Flow)
	}{
		{
			name:  "court of the facility",
			patch: model.SelectionPatch{CourtID: ptr("c1")},
			check: func(t *testing.T, flow model.Flow) {
				assert.Equal(t, "c1", flow.Selection.CourtID)
				assert.Equal(t, model.FlowSelecting, flow.State)
			},
		},
		{name: "court of another facility", patch: model.SelectionPatch{CourtID: ptr("c9")}, wantErr: true},
		{
			name:  "date inside window",
			patch: model.SelectionPatch{Date: &inWindow},
			check: func(t *testing.T, flow model.Flow) {
				assert.True(t, flow.Selection.Date.Equal(inWindow))
			},
		},
		{name: "date outside window", patch: model.SelectionPatch{Date: &outOfWindow}, wantErr: true},
		{name: "today is not selectable", patch: model.SelectionPatch{Date: &bounds.Today}, wantErr: true},
		{name: "unknown time slot", patch: model.SelectionPatch{TimeSlot: ptr("23:00")}, wantErr: true},
		{name: "duration too long", patch: model.SelectionPatch{Duration: ptr(6)}, wantErr: true},
		{name: "zero persons", patch: model.SelectionPatch{PersonCount: ptr(0)}, wantErr: true},
		{name: "eleven persons", patch: model.SelectionPatch{PersonCount: ptr(11)}, wantErr: true},
		{name: "empty patch", patch: model.SelectionPatch{}, wantErr: true},
		{
			name:    "one bad field rejects the whole patch",
			patch:   model.SelectionPatch{CourtID: ptr("c1"), Duration: ptr(9)},
			wantErr: true,
		},
		{
			name:  "several fields at once",
			patch: model.SelectionPatch{CourtID: ptr("c1"), TimeSlot: ptr("18:00"), Duration: ptr(2), PersonCount: ptr(4)},
			check: func(t *testing.T, flow model.Flow) {
				assert.Equal(t, "18:00", flow.Selection.TimeSlot)
				assert.Equal(t, 2, flow.Selection.Duration)
				assert.Equal(t, 4, flow.Selection.PersonCount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flow := model.NewFlow("flow-1", "f1", "", now)

			next, err := flow.ApplySelection(tt.patch, bounds, now)

			if tt.wantErr {
				assert.True(t, failure.IsValidation(err))
				assert.Equal(t, flow, next)

				return
			}

			require.NoError(t, err)
			tt.check(t, next)
		})
	}
}

func TestFlow_ProceedGuard(t *testing.T) {
	bounds := testBounds(t)
	now := time.Now()
	date := bounds.Today.AddDays(1)

	patches := []model.SelectionPatch{
		{},
		{CourtID: ptr("c1")},
		{Date: &date},
		{TimeSlot: ptr("06:00")},
		{CourtID: ptr("c1"), Date: &date},
		{CourtID: ptr("c1"), TimeSlot: ptr("06:00")},
		{Date: &date, TimeSlot: ptr("06:00")},
	}

	for _, patch := range patches {
		flow := model.NewFlow("flow-1", "f1", "", now)
		if !patch.IsEmpty() {
			var err error
			flow, err = flow.ApplySelection(patch, bounds, now)
			require.NoError(t, err)
		}

		next, err := flow.Proceed(now)

		assert.True(t, failure.IsValidation(err))
		assert.Equal(t, flow, next, "a failed proceed must not change the flow")
	}
}

func TestFlow_Lifecycle(t *testing.T) {
	bounds := testBounds(t)
	now := time.Now()
	date := bounds.Today.AddDays(2)

	flow := model.NewFlow("flow-1", "f1", "u1", now)
	assert.Equal(t, model.FlowBrowsing, flow.State)
	assert.Equal(t, 1, flow.Selection.Duration)
	assert.Equal(t, 1, flow.Selection.PersonCount)

	flow, err := flow.ApplySelection(model.SelectionPatch{CourtID: ptr("c1"), Date: &date, TimeSlot: ptr("07:00")}, bounds, now)
	require.NoError(t, err)

	assert.True(t, failure.IsValidation(flow.CheckConfirmable(bounds)))

	_, err = flow.Back(now)
	assert.True(t, failure.IsValidation(err), "back is only meaningful from the contact form")

	flow, err = flow.Proceed(now)
	require.NoError(t, err)
	assert.Equal(t, model.FlowReviewingForm, flow.State)

	_, err = flow.ApplySelection(model.SelectionPatch{Duration: ptr(2)}, bounds, now)
	assert.True(t, failure.IsValidation(err))

	flow, err = flow.Back(now)
	require.NoError(t, err)
	assert.Equal(t, model.FlowSelecting, flow.State)
	assert.Equal(t, "c1", flow.Selection.CourtID, "back keeps the selection")
	assert.Equal(t, "07:00", flow.Selection.TimeSlot)

	flow, err = flow.Proceed(now)
	require.NoError(t, err)
	require.NoError(t, flow.CheckConfirmable(bounds))

	flow = flow.Confirmed("b1", now)
	assert.Equal(t, model.FlowConfirmed, flow.State)
	assert.Equal(t, "b1", flow.BookingID)

	_, err = flow.Proceed(now)
	assert.True(t, failure.IsValidation(err))

	_, err = flow.Abort(now)
	assert.True(t, failure.IsValidation(err))
}

func TestFlow_CheckConfirmableRechecksDate(t *testing.T) {
	bounds := testBounds(t)
	now := time.Now()
	date := bounds.Today.AddDays(1)

	flow := model.NewFlow("flow-1", "f1", "u1", now)

	flow, err := flow.ApplySelection(model.SelectionPatch{CourtID: ptr("c1"), Date: &date, TimeSlot: ptr("07:00")}, bounds, now)
	require.NoError(t, err)

	flow, err = flow.Proceed(now)
	require.NoError(t, err)
	require.NoError(t, flow.CheckConfirmable(bounds))

	tests := []struct {
		name  string
		today timezone.Date
	}{
		{name: "booked day is today", today: date},
		{name: "booked day has passed", today: date.AddDays(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			later := bounds
			later.Today = tt.today

			err := flow.CheckConfirmable(later)
			assert.True(t, failure.IsValidation(err))
			assert.Contains(t, err.Error(), "booking window")
			assert.Equal(t, model.FlowReviewingForm, flow.State)
		})
	}
}

func TestFlow_Abort(t *testing.T) {
	flow := model.NewFlow("flow-1", "f1", "", time.Now())

	aborted, err := flow.Abort(time.Now())
	require.NoError(t, err)
	assert.Equal(t, model.FlowAborted, aborted.State)

	_, err = aborted.ApplySelection(model.SelectionPatch{Duration: ptr(2)}, testBounds(t), time.Now())
	assert.True(t, failure.IsValidation(err))
}

func TestFlow_Quote(t *testing.T) {
	bounds := testBounds(t)
	now := time.Now()

	flow := model.NewFlow("flow-1", "f1", "", now)
	flow, err := flow.ApplySelection(model.SelectionPatch{CourtID: ptr("c1"), Duration: ptr(2)}, bounds, now)
	require.NoError(t, err)

	quote, err := flow.Quote(bounds.Catalog)
	require.NoError(t, err)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(60)))

	flow, err = flow.ApplySelection(model.SelectionPatch{CourtID: ptr(""), Duration: ptr(3)}, bounds, now)
	require.NoError(t, err)

	quote, err = flow.Quote(bounds.Catalog)
	require.NoError(t, err)
	assert.True(t, quote.Total.Equal(decimal.NewFromInt(60)))
	assert.True(t, quote.Rate.Equal(decimal.NewFromInt(20)))

	_, err = model.NewFlow("flow-2", "gone", "", now).Quote(bounds.Catalog)
	assert.True(t, failure.IsNotFound(err))
}

package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"quickcourt/internal/domains/catalog/model"
)

func TestPriceBucket_Contains(t *testing.T) {
	tests := []struct {
		name   string
		bucket model.PriceBucket
		price  int64
		want   bool
	}{
		{name: "unrestricted empty", bucket: "", price: 999, want: true},
		{name: "unrestricted all", bucket: model.PriceBucketAll, price: 1, want: true},
		{name: "low at ceiling", bucket: model.PriceBucketLow, price: 25, want: true},
		{name: "low above ceiling", bucket: model.PriceBucketLow, price: 26, want: false},
		{name: "mid excludes 25", bucket: model.PriceBucketMid, price: 25, want: false},
		{name: "mid includes 50", bucket: model.PriceBucketMid, price: 50, want: true},
		{name: "upper excludes 50", bucket: model.PriceBucketUpper, price: 50, want: false},
		{name: "upper includes 51", bucket: model.PriceBucketUpper, price: 51, want: true},
		{name: "unknown bucket", bucket: "100+", price: 150, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bucket.Contains(decimal.NewFromInt(tt.price)))
		})
	}
}

func TestCategory_Admits(t *testing.T) {
	courts := []model.Court{
		{ID: "c1", Environment: model.EnvironmentOutdoor},
	}

	assert.True(t, model.CategoryAll.Admits(courts))
	assert.True(t, model.Category("").Admits(nil))
	assert.True(t, model.CategoryOutdoor.Admits(courts))
	assert.False(t, model.CategoryIndoor.Admits(courts))
	assert.False(t, model.CategoryIndoor.Admits(nil))
}

func TestFacility_MatchesText(t *testing.T) {
	facility := model.Facility{Name: "SportZone Arena", Location: "Koramangala, Bangalore"}

	assert.True(t, facility.MatchesText("arena"))
	assert.True(t, facility.MatchesText("KORAMANGALA"))
	assert.True(t, facility.MatchesText(""))
	assert.False(t, facility.MatchesText("mumbai"))
}

func TestFilter_MatchesIsConjunction(t *testing.T) {
	facility := model.Facility{
		ID:           "f1",
		Name:         "SportZone Arena",
		Location:     "Bangalore",
		Sports:       []string{"Badminton"},
		PricePerHour: decimal.NewFromInt(20),
	}
	courts := []model.Court{{ID: "c1", FacilityID: "f1", Environment: model.EnvironmentIndoor}}

	searches := []string{"", "arena", "delhi"}
	sports := []string{"", "Badminton", "Tennis"}
	buckets := []model.PriceBucket{"", model.PriceBucketLow, model.PriceBucketUpper}
	categories := []model.Category{"", model.CategoryIndoor, model.CategoryOutdoor}

	for _, search := range searches {
		for _, sport := range sports {
			for _, bucket := range buckets {
				for _, category := range categories {
					filter := model.Filter{Search: search, Sport: sport, PriceRange: bucket, Category: category}

					want := (search == "" || facility.MatchesText(search)) &&
						(sport == "" || facility.OffersSport(sport)) &&
						bucket.Contains(facility.PricePerHour) &&
						category.Admits(courts)

					assert.Equal(t, want, filter.Matches(facility, courts), "filter %+v", filter)
				}
			}
		}
	}
}

func TestNewSnapshot(t *testing.T) {
	rate := decimal.NewFromInt(20)

	snap := model.NewSnapshot(
		[]model.Facility{
			{ID: "f1", Name: "first", PricePerHour: rate},
			{ID: "f2", PricePerHour: rate},
			{ID: "f1", Name: "dup", PricePerHour: rate},
		},
		[]model.Court{
			{ID: "c1", FacilityID: "f1"},
			{ID: "c2", FacilityID: "missing"},
			{ID: "c3", FacilityID: "f2"},
			{ID: "c1", FacilityID: "f2"},
		},
	)

	assert.Equal(t, []string{"f1", "f2"}, snap.IDs())

	facility, ok := snap.Find("f1")
	assert.True(t, ok)
	assert.Equal(t, "first", facility.Name)

	assert.Len(t, snap.Courts(), 2)
	assert.Len(t, snap.CourtsOf("f1"), 1)

	_, ok = snap.Court("f1", "c3")
	assert.False(t, ok, "court must belong to the facility")

	court, ok := snap.Court("f2", "c3")
	assert.True(t, ok)
	assert.Equal(t, "c3", court.ID)

	_, ok = snap.Find("missing")
	assert.False(t, ok)
}

func TestNewSnapshot_DropsUnbookableEntries(t *testing.T) {
	rate := decimal.NewFromInt(20)

	tests := []struct {
		name     string
		facility model.Facility
		want     bool
	}{
		{name: "priced and rated", facility: model.Facility{ID: "f9", PricePerHour: rate, Rating: 4.5}, want: true},
		{name: "rating bounds", facility: model.Facility{ID: "f9", PricePerHour: rate, Rating: 5}, want: true},
		{name: "negative rate", facility: model.Facility{ID: "f9", PricePerHour: decimal.NewFromInt(-5)}, want: false},
		{name: "zero rate", facility: model.Facility{ID: "f9", PricePerHour: decimal.Zero}, want: false},
		{name: "rating above five", facility: model.Facility{ID: "f9", PricePerHour: rate, Rating: 7}, want: false},
		{name: "negative rating", facility: model.Facility{ID: "f9", PricePerHour: rate, Rating: -1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := model.NewSnapshot(
				[]model.Facility{tt.facility},
				[]model.Court{{ID: "c9", FacilityID: "f9"}},
			)

			_, ok := snap.Find("f9")
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.want, len(snap.CourtsOf("f9")) == 1, "courts follow their facility")
		})
	}

	snap := model.NewSnapshot(
		[]model.Facility{{ID: "f1", PricePerHour: rate}},
		[]model.Court{
			{ID: "c1", FacilityID: "f1", PricePerHour: decimal.NewFromInt(-1)},
			{ID: "c2", FacilityID: "f1"},
			{ID: "c3", FacilityID: "f1", PricePerHour: decimal.NewFromInt(30)},
		},
	)

	_, ok := snap.Court("f1", "c1")
	assert.False(t, ok, "negative court rate")
	assert.Len(t, snap.CourtsOf("f1"), 2, "an unpriced court bills at the facility rate")
}

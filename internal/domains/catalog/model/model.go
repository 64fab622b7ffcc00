package model

import (
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	EntityName = "facility"
)

type Environment string

const (
	EnvironmentIndoor  Environment = "indoor"
	EnvironmentOutdoor Environment = "outdoor"
)

type Facility struct {
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

const MaxRating = 5

// Bookable reports whether the facility carries a positive rate and a rating in 0..5.
func (f Facility) Bookable() bool {
	return f.PricePerHour.IsPositive() && f.Rating >= 0 && f.Rating <= MaxRating
}

func (f Facility) OffersSport(sport string) bool {
	return slices.Contains(f.Sports, sport)
}

// MatchesText is a case-insensitive substring match over name and location.
func (f Facility) MatchesText(text string) bool {
	needle := strings.ToLower(text)

	return strings.Contains(strings.ToLower(f.Name), needle) ||
		strings.Contains(strings.ToLower(f.Location), needle)
}

type Court struct {
	ID           string          `json:"id"`
	FacilityID   string          `json:"facility_id"`
	Name         string          `json:"name"`
	Sport        string          `json:"sport"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	Environment  Environment     `json:"environment"`
}

// Bookable rejects negative rates. A zero rate means the court is billed at
// the facility rate.
func (c Court) Bookable() bool {
	return !c.PricePerHour.IsNegative()
}

type PriceBucket string

const (
	PriceBucketAll   PriceBucket = "all"
	PriceBucketLow   PriceBucket = "0-25"
	PriceBucketMid   PriceBucket = "25-50"
	PriceBucketUpper PriceBucket = "50+"
)

var (
	priceLowCeiling = decimal.NewFromInt(25)
	priceMidCeiling = decimal.NewFromInt(50)
)

// Contains reports whether price falls in the bucket. Unknown buckets match nothing.
func (b PriceBucket) Contains(price decimal.Decimal) bool {
	switch b {
	case "", PriceBucketAll:
		return true
	case PriceBucketLow:
		return price.LessThanOrEqual(priceLowCeiling)
	case PriceBucketMid:
		return price.GreaterThan(priceLowCeiling) && price.LessThanOrEqual(priceMidCeiling)
	case PriceBucketUpper:
		return price.GreaterThan(priceMidCeiling)
	default:
		return false
	}
}

type Category string

const (
	CategoryAll     Category = "all"
	CategoryIndoor  Category = "indoor"
	CategoryOutdoor Category = "outdoor"
)

// Admits reports whether a facility with the given courts belongs to the category.
func (c Category) Admits(courts []Court) bool {
	if c == "" || c == CategoryAll {
		return true
	}

	return slices.ContainsFunc(courts, func(court Court) bool {
		return court.Environment == Environment(c)
	})
}

// Filter is the conjunction of the dashboard predicates. Zero values match all.
type Filter struct {
	Search     string
	Sport      string
	PriceRange PriceBucket
	Category   Category
}

func (f Filter) Matches(facility Facility, courts []Court) bool {
	if f.Search != "" && !facility.MatchesText(f.Search) {
		return false
	}

	if f.Sport != "" && !facility.OffersSport(f.Sport) {
		return false
	}

	if !f.PriceRange.Contains(facility.PricePerHour) {
		return false
	}

	return f.Category.Admits(courts)
}

// Snapshot is an immutable view of the catalog. It is replaced wholesale,
// never edited in place.
type Snapshot struct {
	facilities []Facility
	courts     []Court
	index      map[string]int
	courtsOf   map[string][]Court
}

// NewSnapshot keeps the first occurrence of each facility id and drops courts
// whose facility is unknown. Entries that cannot be priced are dropped.
func NewSnapshot(facilities []Facility, courts []Court) Snapshot {
	snap := Snapshot{
		facilities: make([]Facility, 0, len(facilities)),
		index:      make(map[string]int, len(facilities)),
		courtsOf:   make(map[string][]Court, len(facilities)),
	}

	for _, facility := range facilities {
		if _, dup := snap.index[facility.ID]; dup {
			log.Warn().Str("facility_id", facility.ID).Msg("duplicate facility id dropped from catalog")

			continue
		}

		if !facility.Bookable() {
			log.Warn().
				Str("facility_id", facility.ID).
				Str("price_per_hour", facility.PricePerHour.String()).
				Float64("rating", facility.Rating).
				Msg("unbookable facility dropped from catalog")

			continue
		}

		snap.index[facility.ID] = len(snap.facilities)
		snap.facilities = append(snap.facilities, facility)
	}

	courtIDs := make(map[string]struct{}, len(courts))

	for _, court := range courts {
		if _, ok := snap.index[court.FacilityID]; !ok {
			log.Warn().Str("court_id", court.ID).Str("facility_id", court.FacilityID).Msg("orphan court dropped from catalog")

			continue
		}

		if !court.Bookable() {
			log.Warn().
				Str("court_id", court.ID).
				Str("price_per_hour", court.PricePerHour.String()).
				Msg("negatively priced court dropped from catalog")

			continue
		}

		if _, dup := courtIDs[court.ID]; dup {
			log.Warn().Str("court_id", court.ID).Msg("duplicate court id dropped from catalog")

			continue
		}

		courtIDs[court.ID] = struct{}{}
		snap.courts = append(snap.courts, court)
		snap.courtsOf[court.FacilityID] = append(snap.courtsOf[court.FacilityID], court)
	}

	return snap
}

func (s Snapshot) Facilities() []Facility {
	return slices.Clone(s.facilities)
}

func (s Snapshot) Courts() []Court {
	return slices.Clone(s.courts)
}

func (s Snapshot) Find(id string) (Facility, bool) {
	i, ok := s.index[id]
	if !ok {
		return Facility{}, false
	}

	return s.facilities[i], true
}

func (s Snapshot) CourtsOf(facilityID string) []Court {
	return slices.Clone(s.courtsOf[facilityID])
}

func (s Snapshot) Court(facilityID, courtID string) (Court, bool) {
	for _, court := range s.courtsOf[facilityID] {
		if court.ID == courtID {
			return court, true
		}
	}

	return Court{}, false
}

func (s Snapshot) IDs() []string {
	ids := make([]string, len(s.facilities))
	for i, facility := range s.facilities {
		ids[i] = facility.ID
	}

	return ids
}

func (s Snapshot) Len() int {
	return len(s.facilities)
}

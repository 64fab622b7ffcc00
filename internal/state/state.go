package state

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	catalogModel "quickcourt/internal/domains/catalog/model"
	reviewModel "quickcourt/internal/domains/review/model"

	"github.com/rs/zerolog/log"
)

//go:embed seed.json
var embeddedSeed []byte

// Seed is the static catalog the application starts from.
type Seed struct {
	Facilities []catalogModel.Facility `json:"facilities"`
	Courts     []catalogModel.Court    `json:"courts"`
	Reviews    []reviewModel.Review    `json:"reviews"`
}

func LoadSeed() (Seed, error) {
	var seed Seed
	if err := json.Unmarshal(embeddedSeed, &seed); err != nil {
		return Seed{}, fmt.Errorf("failed to decode embedded seed: %w", err)
	}

	return seed, nil
}

// State owns the catalog snapshot and the seeded reviews. The snapshot is
// swapped as a whole; readers always see a complete catalog.
type State struct {
	mu            sync.RWMutex
	seed          Seed
	catalog       catalogModel.Snapshot
	seededReviews map[string][]reviewModel.Review
}

func New(seed Seed) *State {
	reviews := make(map[string][]reviewModel.Review)
	for _, review := range seed.Reviews {
		review.Provenance = reviewModel.ProvenanceSeeded
		reviews[review.FacilityID] = append(reviews[review.FacilityID], review)
	}

	s := &State{
		seed:          seed,
		catalog:       catalogModel.NewSnapshot(seed.Facilities, seed.Courts),
		seededReviews: reviews,
	}

	log.Info().
		Int("facilities", s.catalog.Len()).
		Int("seeded_reviews", len(seed.Reviews)).
		Msg("Application state initialized")

	return s
}

// NewFromEmbedded builds the state from the seed compiled into the binary.
func NewFromEmbedded() (*State, error) {
	seed, err := LoadSeed()
	if err != nil {
		log.Error().Err(err).Msg("failed to load seed catalog")

		return nil, err
	}

	return New(seed), nil
}

func (s *State) Catalog() catalogModel.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.catalog
}

// SeedCatalog returns the seeded facilities and courts a refresh merges the feed into.
func (s *State) SeedCatalog() ([]catalogModel.Facility, []catalogModel.Court) {
	return slices.Clone(s.seed.Facilities), slices.Clone(s.seed.Courts)
}

// ReplaceCatalog installs next and returns the snapshot it replaced.
func (s *State) ReplaceCatalog(next catalogModel.Snapshot) catalogModel.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.catalog
	s.catalog = next

	return previous
}

func (s *State) SeededReviews(facilityID string) []reviewModel.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.seededReviews[facilityID])
}

package model

import (
	"slices"

	catalogModel "quickcourt/internal/domains/catalog/model"

	"github.com/rs/zerolog/log"
)

const EntityName = "feed"

// Document is the approved-facility feed as published by the admin side.
type Document struct {
	Facilities []catalogModel.Facility `json:"facilities"`
	Courts     []catalogModel.Court    `json:"courts"`
}

// Merge builds the catalog a refresh installs: seed entries first, then the
// feed. A feed facility reusing a seed id is dropped, and so is every feed
// court pointing at a seed facility.
func Merge(seedFacilities []catalogModel.Facility, seedCourts []catalogModel.Court, doc Document) catalogModel.Snapshot {
	seeded := seedIDs(seedFacilities)

	feedCourts := slices.DeleteFunc(slices.Clone(doc.Courts), func(court catalogModel.Court) bool {
		if _, ok := seeded[court.FacilityID]; !ok {
			return false
		}

		log.Warn().Str("court_id", court.ID).Str("facility_id", court.FacilityID).Msg("feed court targeting a seeded facility dropped")

		return true
	})

	return catalogModel.NewSnapshot(
		slices.Concat(seedFacilities, doc.Facilities),
		slices.Concat(seedCourts, feedCourts),
	)
}

// Approved lists the feed facilities that made it into merged, in feed order.
func Approved(seedFacilities []catalogModel.Facility, doc Document, merged catalogModel.Snapshot) []catalogModel.Facility {
	seeded := seedIDs(seedFacilities)
	seen := make(map[string]struct{}, len(doc.Facilities))

	var approved []catalogModel.Facility

	for _, facility := range doc.Facilities {
		if _, ok := seeded[facility.ID]; ok {
			continue
		}

		if _, ok := seen[facility.ID]; ok {
			continue
		}

		if _, ok := merged.Find(facility.ID); !ok {
			continue
		}

		seen[facility.ID] = struct{}{}
		approved = append(approved, facility)
	}

	return approved
}

func seedIDs(facilities []catalogModel.Facility) map[string]struct{} {
	ids := make(map[string]struct{}, len(facilities))
	for _, facility := range facilities {
		ids[facility.ID] = struct{}{}
	}

	return ids
}

// Diff is what changed between two catalog snapshots.
type Diff struct {
	Added           []string
	Removed         []string
	AddedFacilities []catalogModel.Facility
}

func (d Diff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// ComputeDiff reports ids present only in next (in next's order) and ids present only in previous.
func ComputeDiff(previous, next catalogModel.Snapshot) Diff {
	var diff Diff

	for _, facility := range next.Facilities() {
		if _, ok := previous.Find(facility.ID); !ok {
			diff.Added = append(diff.Added, facility.ID)
			diff.AddedFacilities = append(diff.AddedFacilities, facility)
		}
	}

	for _, id := range previous.IDs() {
		if _, ok := next.Find(id); !ok {
			diff.Removed = append(diff.Removed, id)
		}
	}

	return diff
}

package criteria

import (
	"github.com/caringcompass/carematch/pkg/core/matching"
)

// TravelDistanceCriterion enforces the candidate's stated travel limit and
// prefers closer caregivers.
//
// Eligibility:
//   - When the client-to-caregiver distance is known and the candidate has a
//     MaxTravelDistance, the distance must not exceed it.
//   - Unknown distance (either address not geocoded) abstains: it never
//     excludes, and never counts as a confirmed pass either - it simply
//     contributes no signal. A caregiver with no stated limit is ungated.
//
// Score:
//   - Linear decay from 1.0 at zero distance to 0.0 at the candidate's
//     limit (or at maxKnownDistance when the candidate has no limit).
//     Unknown distance scores 0.
type TravelDistanceCriterion struct {
	weight float64
}

// NewTravelDistanceCriterion creates the criterion with the given weight.
func NewTravelDistanceCriterion(weight float64) *TravelDistanceCriterion {
	return &TravelDistanceCriterion{weight: weight}
}

func (c *TravelDistanceCriterion) Name() string {
	return "TravelDistance"
}

func (c *TravelDistanceCriterion) Eligible(pool *matching.Pool, cand *matching.Candidate) bool {
	if cand.Distance == nil {
		return true
	}
	limit := cand.Caregiver.Preferences.MaxTravelDistance
	if limit <= 0 {
		return true
	}
	return *cand.Distance <= limit
}

func (c *TravelDistanceCriterion) Score(pool *matching.Pool, cand *matching.Candidate) float64 {
	if cand.Distance == nil {
		return 0
	}
	limit := cand.Caregiver.Preferences.MaxTravelDistance
	if limit <= 0 {
		limit = maxKnownDistance(pool)
	}
	if limit <= 0 {
		return 0
	}
	score := 1 - *cand.Distance/limit
	if score < 0 {
		return 0
	}
	return score
}

func (c *TravelDistanceCriterion) Weight() float64 {
	return c.weight
}

func maxKnownDistance(pool *matching.Pool) float64 {
	var max float64
	for _, cand := range pool.Candidates {
		if cand.Distance != nil && *cand.Distance > max {
			max = *cand.Distance
		}
	}
	return max
}

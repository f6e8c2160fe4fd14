package criteria

import (
	"github.com/caringcompass/carematch/pkg/core/matching"
)

// AvailabilityCriterion checks weekly availability containment.
//
// Eligibility:
//   - Every same-day segment of the visit window must be fully contained in
//     one of the candidate's availability windows for that weekday. Partial
//     overlap is rejected: a caregiver available 08:00-12:00 cannot take a
//     10:00-14:00 visit.
//   - Windows crossing midnight are split per weekday first, so each side of
//     the boundary is checked against the correct day.
//   - A caregiver with zero availability records never matches.
type AvailabilityCriterion struct {
	weight float64
}

// NewAvailabilityCriterion creates the criterion with the given weight.
func NewAvailabilityCriterion(weight float64) *AvailabilityCriterion {
	return &AvailabilityCriterion{weight: weight}
}

func (c *AvailabilityCriterion) Name() string {
	return "AvailabilityContainment"
}

func (c *AvailabilityCriterion) Eligible(pool *matching.Pool, cand *matching.Candidate) bool {
	return cand.Caregiver.AvailableFor(pool.Window)
}

func (c *AvailabilityCriterion) Score(pool *matching.Pool, cand *matching.Candidate) float64 {
	// Containment is pass/fail; no ranking signal.
	return 0
}

func (c *AvailabilityCriterion) Weight() float64 {
	return c.weight
}

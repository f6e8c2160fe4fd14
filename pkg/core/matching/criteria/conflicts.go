package criteria

import (
	"github.com/caringcompass/carematch/pkg/core/matching"
)

// ScheduleConflictCriterion prevents double-booking.
//
// Eligibility:
//   - The candidate must have no other visit with status SCHEDULED or
//     COMPLETED whose window overlaps the pool's visit window. Cancelled,
//     no-show and rescheduled visits do not block the slot.
type ScheduleConflictCriterion struct {
	weight float64
}

// NewScheduleConflictCriterion creates the criterion with the given weight.
func NewScheduleConflictCriterion(weight float64) *ScheduleConflictCriterion {
	return &ScheduleConflictCriterion{weight: weight}
}

func (c *ScheduleConflictCriterion) Name() string {
	return "ScheduleConflict"
}

func (c *ScheduleConflictCriterion) Eligible(pool *matching.Pool, cand *matching.Candidate) bool {
	for _, v := range cand.OtherVisits {
		if v.BlocksCaregiver() && v.Window.Overlaps(pool.Window) {
			return false
		}
	}
	return true
}

func (c *ScheduleConflictCriterion) Score(pool *matching.Pool, cand *matching.Candidate) float64 {
	// Conflict-freedom is pass/fail; no ranking signal.
	return 0
}

func (c *ScheduleConflictCriterion) Weight() float64 {
	return c.weight
}

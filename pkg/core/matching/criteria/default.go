package criteria

import (
	"github.com/caringcompass/carematch/pkg/core/matching"
)

// Weights tune the ranking signal of the scored criteria. Hard constraints
// (credentials, availability, conflicts) are pure vetoes and carry no
// weight; changing weights can reorder results but never changes who is
// eligible.
type Weights struct {
	PreferredSkills float64
	Travel          float64
}

// DefaultWeights match the documented ranking policy: preferred-skill
// coverage dominates, travel distance breaks near-ties.
func DefaultWeights() Weights {
	return Weights{
		PreferredSkills: 3.0,
		Travel:          1.0,
	}
}

// Default returns the standard criterion set for visit matching.
func Default(w Weights) []matching.Criterion {
	return []matching.Criterion{
		NewSkillCoverageCriterion(w.PreferredSkills),
		NewCredentialCriterion(0),
		NewAvailabilityCriterion(0),
		NewTravelDistanceCriterion(w.Travel),
		NewScheduleConflictCriterion(0),
	}
}

package criteria

import (
	"github.com/caringcompass/carematch/pkg/core/matching"
)

// SkillCoverageCriterion enforces all-or-nothing coverage of the plan's
// required skills and scores preferred-skill coverage.
//
// Eligibility:
//   - The candidate must hold every required skill, at any proficiency.
//     A caregiver missing even one required skill cannot safely perform the
//     full task list, so partial coverage disqualifies.
//
// Score:
//   - Fraction of the plan's preferred (optional-task) skills the candidate
//     also holds. 1.0 when the plan has no preferred skills.
type SkillCoverageCriterion struct {
	weight float64
}

// NewSkillCoverageCriterion creates the criterion with the given weight.
func NewSkillCoverageCriterion(weight float64) *SkillCoverageCriterion {
	return &SkillCoverageCriterion{weight: weight}
}

func (c *SkillCoverageCriterion) Name() string {
	return "SkillCoverage"
}

func (c *SkillCoverageCriterion) Eligible(pool *matching.Pool, cand *matching.Candidate) bool {
	for _, s := range pool.RequiredSkills {
		if !cand.Caregiver.HasSkill(s) {
			return false
		}
	}
	return true
}

func (c *SkillCoverageCriterion) Score(pool *matching.Pool, cand *matching.Candidate) float64 {
	if len(pool.PreferredSkills) == 0 {
		return 1
	}
	covered := 0
	for _, s := range pool.PreferredSkills {
		if cand.Caregiver.HasSkill(s) {
			covered++
		}
	}
	return float64(covered) / float64(len(pool.PreferredSkills))
}

func (c *SkillCoverageCriterion) Weight() float64 {
	return c.weight
}

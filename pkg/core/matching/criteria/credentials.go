package criteria

import (
	"github.com/caringcompass/carematch/pkg/core/matching"
)

// CredentialCriterion checks that the candidate is qualified on paper for
// every credential-gated required task on the plan.
//
// Eligibility:
//   - For each credential type the pool's policy attaches to a required task
//     category, the candidate must hold at least one VERIFIED credential of
//     an accepted type that has not expired as of the visit date. A
//     credential expiring exactly on the visit date still counts.
//   - Task categories without a policy entry are ungated.
type CredentialCriterion struct {
	weight float64
}

// NewCredentialCriterion creates the criterion with the given weight.
func NewCredentialCriterion(weight float64) *CredentialCriterion {
	return &CredentialCriterion{weight: weight}
}

func (c *CredentialCriterion) Name() string {
	return "CredentialValidity"
}

func (c *CredentialCriterion) Eligible(pool *matching.Pool, cand *matching.Candidate) bool {
	visitDate := pool.Window.Date()
	for _, task := range pool.Plan.Tasks {
		if !task.IsRequired {
			continue
		}
		accepted := pool.CredentialPolicy[task.Category]
		if len(accepted) == 0 {
			continue
		}
		if !cand.Caregiver.HasUsableCredential(accepted, visitDate) {
			return false
		}
	}
	return true
}

func (c *CredentialCriterion) Score(pool *matching.Pool, cand *matching.Candidate) float64 {
	// Credentials are pass/fail; they carry no ranking signal.
	return 0
}

func (c *CredentialCriterion) Weight() float64 {
	return c.weight
}

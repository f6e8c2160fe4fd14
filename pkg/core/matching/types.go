package matching

import (
	"github.com/caringcompass/carematch/pkg/domain"
)

// Candidate is one caregiver under consideration for a visit, together with
// the schedule context the criteria need.
type Candidate struct {
	Caregiver *domain.CaregiverProfile

	// OtherVisits are the caregiver's existing visits, used for conflict
	// checks. Only SCHEDULED and COMPLETED visits block.
	OtherVisits []*domain.Visit

	// Distance is the client-to-caregiver distance in kilometres, nil when
	// either address lacks coordinates. Unknown distance never excludes.
	Distance *float64
}

// Pool is everything the engine needs to evaluate candidates for one visit.
// It is assembled once from persisted state and then read-only; matching
// reserves nothing.
type Pool struct {
	Client *domain.ClientProfile
	Plan   *domain.PlanOfCare
	Window domain.VisitWindow

	// RequiredSkills gate eligibility (all-or-nothing coverage);
	// PreferredSkills only boost ranking.
	RequiredSkills  []domain.Skill
	PreferredSkills []domain.Skill

	// CredentialPolicy maps a task category to the credential types that may
	// perform it. Categories without an entry are ungated.
	CredentialPolicy map[domain.TaskCategory][]domain.CredentialType

	Candidates []*Candidate
}

// NewPool derives the skill sets from the plan and computes candidate
// distances from geocoded addresses.
func NewPool(client *domain.ClientProfile, plan *domain.PlanOfCare, window domain.VisitWindow,
	policy map[domain.TaskCategory][]domain.CredentialType, candidates []*Candidate) *Pool {

	pool := &Pool{
		Client:           client,
		Plan:             plan,
		Window:           window,
		RequiredSkills:   plan.RequiredSkills(),
		PreferredSkills:  plan.PreferredSkills(),
		CredentialPolicy: policy,
		Candidates:       candidates,
	}

	for _, c := range pool.Candidates {
		if c.Distance == nil && client.Address.Geocoded() && c.Caregiver.Address.Geocoded() {
			d := Haversine(
				*client.Address.Latitude, *client.Address.Longitude,
				*c.Caregiver.Address.Latitude, *c.Caregiver.Address.Longitude,
			)
			c.Distance = &d
		}
	}

	return pool
}

// RequiredCredentialTypes returns the credential types gating the plan's
// required task categories under the pool's policy.
func (p *Pool) RequiredCredentialTypes() []domain.CredentialType {
	seen := make(map[domain.CredentialType]bool)
	var out []domain.CredentialType
	for _, task := range p.Plan.Tasks {
		if !task.IsRequired {
			continue
		}
		for _, t := range p.CredentialPolicy[task.Category] {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// Match is one ranked result. Score is the weighted composite used for
// reporting; ordering is decided by the lexicographic ranking keys.
type Match struct {
	CaregiverID            string
	Score                  float64
	MatchedSkills          []domain.Skill
	MissingPreferredSkills []domain.Skill
	PreferredMatches       int
	Rating                 float64
	Distance               *float64
}

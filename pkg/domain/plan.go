package domain

import (
	"fmt"
	"sort"
	"time"
)

// CareGoal is a care objective on a plan of care.
type CareGoal struct {
	ID          string
	Title       string
	Description string
	Priority    GoalPriority
	Status      GoalStatus
}

// ServiceTask is a discrete care activity on a plan, with the skills needed
// to perform it. Required tasks gate caregiver eligibility; optional tasks
// are reported as bonus-match signal only.
type ServiceTask struct {
	ID             string
	Name           string
	Description    string
	Category       TaskCategory
	Frequency      TaskFrequency
	EstimatedDur   time.Duration
	RequiredSkills []Skill
	IsRequired     bool
}

// PlanOfCare is the active set of goals and tasks governing a client's care.
type PlanOfCare struct {
	ID               string
	ClientID         string
	EffectiveDate    time.Time
	ExpirationDate   *time.Time
	TotalWeeklyHours float64
	Status           PlanStatus
	ApprovedAt       *time.Time
	Goals            []CareGoal
	Tasks            []ServiceTask
}

// Validate checks date ordering and enum domains. The sum of task durations
// informs TotalWeeklyHours but is intentionally not checked against it.
func (p *PlanOfCare) Validate() error {
	if !p.Status.Valid() {
		return fmt.Errorf("plan status %q: %w", p.Status, ErrInvalidValue)
	}
	if p.ExpirationDate != nil && !p.EffectiveDate.Before(*p.ExpirationDate) {
		return fmt.Errorf("plan effective %s not before expiration %s: %w",
			p.EffectiveDate.Format("2006-01-02"), p.ExpirationDate.Format("2006-01-02"), ErrInvalidValue)
	}
	for _, g := range p.Goals {
		if !g.Priority.Valid() {
			return fmt.Errorf("goal priority %q: %w", g.Priority, ErrInvalidValue)
		}
		if !g.Status.Valid() {
			return fmt.Errorf("goal status %q: %w", g.Status, ErrInvalidValue)
		}
	}
	for _, t := range p.Tasks {
		if !t.Category.Valid() {
			return fmt.Errorf("task category %q: %w", t.Category, ErrInvalidValue)
		}
		if !t.Frequency.Valid() {
			return fmt.Errorf("task frequency %q: %w", t.Frequency, ErrInvalidValue)
		}
		for _, s := range t.RequiredSkills {
			if !s.Valid() {
				return fmt.Errorf("task skill %q: %w", s, ErrInvalidValue)
			}
		}
	}
	return nil
}

// EffectiveFor reports whether the plan governs care on the given date:
// ACTIVE, effective on or before the date, and not yet expired. A plan
// expiring exactly on the date is still effective.
func (p *PlanOfCare) EffectiveFor(date time.Time) bool {
	if p.Status != PlanActive {
		return false
	}
	d := truncateToDay(date)
	if truncateToDay(p.EffectiveDate).After(d) {
		return false
	}
	if p.ExpirationDate != nil && truncateToDay(*p.ExpirationDate).Before(d) {
		return false
	}
	return true
}

// RequiredSkills returns the sorted union of required skills across all
// isRequired tasks. Missing any one of these disqualifies a caregiver.
func (p *PlanOfCare) RequiredSkills() []Skill {
	return p.skillUnion(true)
}

// PreferredSkills returns the sorted union of skills on optional tasks that
// are not already required. These never gate eligibility, only ranking.
func (p *PlanOfCare) PreferredSkills() []Skill {
	required := make(map[Skill]bool)
	for _, s := range p.skillUnion(true) {
		required[s] = true
	}
	var out []Skill
	for _, s := range p.skillUnion(false) {
		if !required[s] {
			out = append(out, s)
		}
	}
	return out
}

func (p *PlanOfCare) skillUnion(required bool) []Skill {
	seen := make(map[Skill]bool)
	for _, t := range p.Tasks {
		if t.IsRequired != required {
			continue
		}
		for _, s := range t.RequiredSkills {
			seen[s] = true
		}
	}
	out := make([]Skill, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ActivePlanFor picks the plan effective for the date from a client's plans.
// Returns ErrNoActivePlan when none qualifies.
func ActivePlanFor(plans []*PlanOfCare, date time.Time) (*PlanOfCare, error) {
	for _, p := range plans {
		if p.EffectiveFor(date) {
			return p, nil
		}
	}
	return nil, ErrNoActivePlan
}

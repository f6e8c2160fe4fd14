package matching

// Criterion is one matching rule. Eligible acts as a veto: if any criterion
// returns false the candidate is excluded outright. Score contributes a
// 0.0-1.0 affinity signal that is folded into the reported composite score
// with the criterion's weight; it never affects eligibility.
type Criterion interface {
	// Name returns a human-readable identifier for this criterion.
	Name() string

	// Eligible reports whether the candidate may be assigned at all.
	Eligible(pool *Pool, c *Candidate) bool

	// Score rates how well the candidate fits, 0.0 to 1.0.
	// Return 0 if this criterion carries no ranking signal.
	Score(pool *Pool, c *Candidate) float64

	// Weight scales this criterion's score in the composite.
	Weight() float64
}

// EligibleForAll applies every veto.
func EligibleForAll(pool *Pool, c *Candidate, criteria []Criterion) bool {
	for _, crit := range criteria {
		if !crit.Eligible(pool, c) {
			return false
		}
	}
	return true
}

// CompositeScore is the weighted sum of criterion scores, normalized by the
// total weight so it stays in 0.0-1.0. Zero total weight scores zero.
func CompositeScore(pool *Pool, c *Candidate, criteria []Criterion) float64 {
	var sum, totalWeight float64
	for _, crit := range criteria {
		sum += crit.Score(pool, c) * crit.Weight()
		totalWeight += crit.Weight()
	}
	if totalWeight == 0 {
		return 0
	}
	return sum / totalWeight
}

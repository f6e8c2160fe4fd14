package matching

import (
	"sort"

	"github.com/caringcompass/carematch/pkg/domain"
)

// Rank evaluates every candidate in the pool against the criteria and
// returns the eligible ones in ranked order. An empty result is not an
// error: it means no eligible caregiver, and the coordinator widens the
// criteria or flags the visit as unfilled.
//
// Ranking keys, in order: count of matched preferred skills (descending),
// average rating (descending), travel distance (ascending, unknown last),
// caregiver id (ascending) so equal candidates order deterministically.
func Rank(pool *Pool, criteria []Criterion) []Match {
	matches := make([]Match, 0, len(pool.Candidates))

	for _, c := range pool.Candidates {
		if c.Caregiver.Status != domain.CaregiverActive {
			continue
		}
		if !EligibleForAll(pool, c, criteria) {
			continue
		}
		matches = append(matches, buildMatch(pool, c, criteria))
	}

	sort.SliceStable(matches, func(i, j int) bool { return rankLess(matches[i], matches[j]) })
	return matches
}

func buildMatch(pool *Pool, c *Candidate, criteria []Criterion) Match {
	m := Match{
		CaregiverID: c.Caregiver.ID,
		Score:       CompositeScore(pool, c, criteria),
		Rating:      c.Caregiver.AverageRating,
		Distance:    c.Distance,
	}

	for _, s := range pool.RequiredSkills {
		if c.Caregiver.HasSkill(s) {
			m.MatchedSkills = append(m.MatchedSkills, s)
		}
	}
	for _, s := range pool.PreferredSkills {
		if c.Caregiver.HasSkill(s) {
			m.MatchedSkills = append(m.MatchedSkills, s)
			m.PreferredMatches++
		} else {
			m.MissingPreferredSkills = append(m.MissingPreferredSkills, s)
		}
	}
	return m
}

func rankLess(a, b Match) bool {
	if a.PreferredMatches != b.PreferredMatches {
		return a.PreferredMatches > b.PreferredMatches
	}
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	if c := compareDistance(a.Distance, b.Distance); c != 0 {
		return c < 0
	}
	return a.CaregiverID < b.CaregiverID
}

// compareDistance orders known distances ascending and sorts unknown
// distances after any known one.
func compareDistance(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

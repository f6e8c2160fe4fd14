package postgres

import (
	"time"

	"github.com/caringcompass/carematch/pkg/domain"
)

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func defaultCountry(c string) string {
	if c == "" {
		return "US"
	}
	return c
}

func skillStrings(skills []domain.Skill) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = string(s)
	}
	return out
}

func minutesToDuration(minutes int) time.Duration {
	return time.Duration(minutes) * time.Minute
}

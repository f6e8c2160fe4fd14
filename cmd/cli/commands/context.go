package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/caringcompass/carematch/internal/config"
	"github.com/caringcompass/carematch/pkg/core/matching/criteria"
	"github.com/caringcompass/carematch/pkg/db"
	"github.com/caringcompass/carematch/pkg/domain"
	"github.com/caringcompass/carematch/pkg/geocode"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Geocoder *geocode.Client
	Logger   *zap.Logger
	Ctx      context.Context
}

// Weights returns the configured matching weights.
func (a *AppContext) Weights() criteria.Weights {
	return criteria.Weights{
		PreferredSkills: a.Cfg.Matching.PreferredSkillsWeight,
		Travel:          a.Cfg.Matching.TravelWeight,
	}
}

// CredentialPolicy returns the configured credential policy in domain form.
func (a *AppContext) CredentialPolicy() map[domain.TaskCategory][]domain.CredentialType {
	return a.Cfg.DomainCredentialPolicy()
}

package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/caringcompass/carematch/pkg/core/matching"
	"github.com/caringcompass/carematch/pkg/core/matching/criteria"
	"github.com/caringcompass/carematch/pkg/domain"
)

// AssignVisitStore defines the database operations needed for assignment
type AssignVisitStore interface {
	FindMatchStore
	GetVisit(ctx context.Context, id string) (*domain.Visit, error)
	AssignCaregiver(ctx context.Context, visitID, caregiverID string) error
}

// AssignVisitArgs are the inputs to an assignment run.
type AssignVisitArgs struct {
	VisitID          string
	CredentialPolicy map[domain.TaskCategory][]domain.CredentialType
	Weights          criteria.Weights
}

// AssignVisitResult reports which caregiver won the visit and the ranked
// alternatives considered.
type AssignVisitResult struct {
	Visit    *domain.Visit
	Assigned matching.Match
	Ranked   []matching.Match
}

// AssignVisit matches and assigns a caregiver to an unassigned visit. The
// conditional write re-checks availability inside the database; when a
// concurrent assignment wins the race the service re-runs matching once
// against fresh state before giving up.
func AssignVisit(ctx context.Context, database AssignVisitStore, logger *zap.Logger,
	args AssignVisitArgs) (*AssignVisitResult, error) {

	visit, err := database.GetVisit(ctx, args.VisitID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visit: %w", err)
	}
	if visit.Assigned() {
		return nil, fmt.Errorf("visit %s already assigned: %w", visit.ID, domain.ErrConflictingAssignment)
	}
	if visit.Status != domain.VisitScheduled {
		return nil, fmt.Errorf("visit %s is %s: %w", visit.ID, visit.Status, domain.ErrInvalidValue)
	}

	matchArgs := FindMatchArgs{
		ClientID:         visit.ClientID,
		Window:           visit.Window,
		CredentialPolicy: args.CredentialPolicy,
		Weights:          args.Weights,
	}

	for attempt := 0; attempt < 2; attempt++ {
		result, err := FindEligibleCaregivers(ctx, database, logger, matchArgs)
		if err != nil {
			return nil, err
		}
		if len(result.Matches) == 0 {
			return nil, fmt.Errorf("no eligible caregiver for visit %s", visit.ID)
		}

		assigned, err := tryAssign(ctx, database, logger, visit.ID, result.Matches)
		if err == nil {
			updated, err := database.GetVisit(ctx, visit.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch assigned visit: %w", err)
			}
			return &AssignVisitResult{Visit: updated, Assigned: *assigned, Ranked: result.Matches}, nil
		}
		if !errors.Is(err, domain.ErrConflictingAssignment) {
			return nil, err
		}

		logger.Warn("Assignment race lost, re-running matching",
			zap.String("visit_id", visit.ID),
			zap.Int("attempt", attempt+1))
	}

	return nil, fmt.Errorf("visit %s: %w", visit.ID, domain.ErrConflictingAssignment)
}

// tryAssign walks the ranked matches in order and claims the first caregiver
// the conditional write accepts. Every candidate losing the race means the
// whole ranking is stale.
func tryAssign(ctx context.Context, database AssignVisitStore, logger *zap.Logger,
	visitID string, matches []matching.Match) (*matching.Match, error) {

	var lastErr error
	for i := range matches {
		m := &matches[i]
		err := database.AssignCaregiver(ctx, visitID, m.CaregiverID)
		if err == nil {
			logger.Info("Caregiver assigned",
				zap.String("visit_id", visitID),
				zap.String("caregiver_id", m.CaregiverID),
				zap.Float64("score", m.Score))
			return m, nil
		}
		if !errors.Is(err, domain.ErrConflictingAssignment) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

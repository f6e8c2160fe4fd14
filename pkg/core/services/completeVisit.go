package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/caringcompass/carematch/pkg/domain"
)

// CompleteVisitStore defines the database operations needed for completion
type CompleteVisitStore interface {
	GetVisit(ctx context.Context, id string) (*domain.Visit, error)
	UpdateVisit(ctx context.Context, visit *domain.Visit) error
}

// CompleteVisitArgs are the inputs to visit completion.
type CompleteVisitArgs struct {
	VisitID     string
	ActualStart time.Time
	ActualEnd   time.Time
	Notes       string
}

// CompleteVisit transitions a scheduled visit to COMPLETED with the actual
// times, deriving billable hours from the actual duration. When EVV events
// exist the actual times should come from the clock punches; the service
// records whichever times the coordinator confirms.
func CompleteVisit(ctx context.Context, database CompleteVisitStore, logger *zap.Logger,
	args CompleteVisitArgs) (*domain.Visit, error) {

	visit, err := database.GetVisit(ctx, args.VisitID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visit: %w", err)
	}
	if !visit.Assigned() {
		return nil, fmt.Errorf("visit %s has no caregiver: %w", visit.ID, domain.ErrInvalidValue)
	}

	if err := visit.Complete(args.ActualStart, args.ActualEnd); err != nil {
		return nil, err
	}
	if args.Notes != "" {
		visit.Notes = args.Notes
	}

	if err := database.UpdateVisit(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to update visit: %w", err)
	}

	logger.Info("Visit completed",
		zap.String("visit_id", visit.ID),
		zap.Float64("billable_hours", visit.BillableHours))

	return visit, nil
}

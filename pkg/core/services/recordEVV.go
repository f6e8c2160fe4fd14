package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/caringcompass/carematch/pkg/domain"
)

// RecordEVVStore defines the database operations needed for EVV recording
type RecordEVVStore interface {
	GetVisit(ctx context.Context, id string) (*domain.Visit, error)
	AppendEVVEvent(ctx context.Context, visitID string, eventType domain.EVVEventType,
		ts time.Time, lat, lon float64) (*domain.EVVEvent, error)
}

// RecordEVVArgs are the inputs to an EVV punch.
type RecordEVVArgs struct {
	VisitID   string
	EventType domain.EVVEventType
	Timestamp time.Time
	Latitude  float64
	Longitude float64
}

// RecordEVV appends a clock punch to a visit's verification sequence. The
// store validates the punch against the existing sequence under a row lock,
// so concurrent punches cannot both extend the same stale sequence.
func RecordEVV(ctx context.Context, database RecordEVVStore, logger *zap.Logger,
	args RecordEVVArgs) (*domain.EVVEvent, error) {

	visit, err := database.GetVisit(ctx, args.VisitID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visit: %w", err)
	}
	if !visit.Assigned() {
		return nil, fmt.Errorf("visit %s has no caregiver: %w", visit.ID, domain.ErrInvalidValue)
	}
	if visit.Status != domain.VisitScheduled && visit.Status != domain.VisitCompleted {
		return nil, fmt.Errorf("visit %s is %s: %w", visit.ID, visit.Status, domain.ErrInvalidValue)
	}

	event, err := database.AppendEVVEvent(ctx, args.VisitID, args.EventType,
		args.Timestamp, args.Latitude, args.Longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to record evv event: %w", err)
	}

	logger.Info("EVV event recorded",
		zap.String("visit_id", args.VisitID),
		zap.String("event_type", string(args.EventType)),
		zap.Time("timestamp", args.Timestamp),
		zap.Int("pair", event.Pair))

	return event, nil
}

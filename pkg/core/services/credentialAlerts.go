package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/caringcompass/carematch/pkg/db"
)

// CredentialAlertsStore defines the database operations needed for alerts
type CredentialAlertsStore interface {
	ExpiringCredentials(ctx context.Context, now time.Time, withinDays int) ([]db.ExpiringCredential, error)
}

// ExpiringCredentials reports VERIFIED credentials lapsing within the alert
// window so the coordinator can chase renewals before matching starts
// excluding their holders.
func ExpiringCredentials(ctx context.Context, database CredentialAlertsStore, logger *zap.Logger,
	now time.Time, withinDays int) ([]db.ExpiringCredential, error) {

	if withinDays <= 0 {
		return nil, fmt.Errorf("alert window must be positive, got %d", withinDays)
	}

	expiring, err := database.ExpiringCredentials(ctx, now, withinDays)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expiring credentials: %w", err)
	}

	logger.Info("Expiring credential check complete",
		zap.Int("within_days", withinDays),
		zap.Int("expiring", len(expiring)))

	return expiring, nil
}

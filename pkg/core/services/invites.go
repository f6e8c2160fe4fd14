package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/caringcompass/carematch/pkg/domain"
)

// InviteServiceStore defines the database operations needed for invites
type InviteServiceStore interface {
	CreateInvite(ctx context.Context, invite *domain.UserInvite) error
	AcceptInvite(ctx context.Context, code string, at time.Time) (*domain.UserInvite, error)
}

// CreateInviteArgs are the inputs to invite creation.
type CreateInviteArgs struct {
	Email     string
	Role      domain.Role
	InvitedBy string
	TTL       time.Duration
}

// CreateInvite issues a pending invite with a random single-use code.
func CreateInvite(ctx context.Context, database InviteServiceStore, logger *zap.Logger,
	args CreateInviteArgs) (*domain.UserInvite, error) {

	if args.TTL <= 0 {
		return nil, fmt.Errorf("invite ttl must be positive, got %s", args.TTL)
	}

	code, err := generateInviteCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite code: %w", err)
	}

	now := time.Now()
	invite := &domain.UserInvite{
		ID:         uuid.New().String(),
		Email:      args.Email,
		Role:       args.Role,
		InvitedBy:  args.InvitedBy,
		InviteCode: code,
		ExpiresAt:  now.Add(args.TTL),
		CreatedAt:  now,
	}

	if err := database.CreateInvite(ctx, invite); err != nil {
		return nil, fmt.Errorf("failed to insert invite: %w", err)
	}

	logger.Info("Invite created",
		zap.String("email", invite.Email),
		zap.String("role", string(invite.Role)),
		zap.Time("expires_at", invite.ExpiresAt))

	return invite, nil
}

// AcceptInvite redeems an invite code. Acceptance is conditional in the
// store: an expired or already-accepted invite loses with
// domain.ErrInviteNotPending even under concurrent redemption.
func AcceptInvite(ctx context.Context, database InviteServiceStore, logger *zap.Logger,
	code string) (*domain.UserInvite, error) {

	invite, err := database.AcceptInvite(ctx, code, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to accept invite: %w", err)
	}

	logger.Info("Invite accepted",
		zap.String("email", invite.Email),
		zap.String("role", string(invite.Role)))

	return invite, nil
}

func generateInviteCode() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

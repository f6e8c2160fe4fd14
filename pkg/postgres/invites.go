package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/caringcompass/carematch/pkg/domain"
)

// CreateInvite inserts a pending invite. A duplicate code surfaces as
// domain.ErrDuplicateKey through the unique constraint.
func (d *DB) CreateInvite(ctx context.Context, invite *domain.UserInvite) error {
	if err := invite.Validate(); err != nil {
		return err
	}
	if invite.ID == "" {
		invite.ID = uuid.New().String()
	}
	if invite.CreatedAt.IsZero() {
		invite.CreatedAt = time.Now()
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO user_invite (id, email, role, invited_by, invite_code, expires_at, accepted_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, invite.ID, invite.Email, invite.Role, nullString(invite.InvitedBy),
		invite.InviteCode, invite.ExpiresAt, invite.AcceptedAt, invite.CreatedAt)
	if err != nil {
		return mapError("insert user invite", err)
	}
	return nil
}

// GetInviteByCode looks an invite up by its code.
func (d *DB) GetInviteByCode(ctx context.Context, code string) (*domain.UserInvite, error) {
	invite, err := scanInvite(d.pool.QueryRow(ctx, `
		SELECT id, email, role, invited_by, invite_code, expires_at, accepted_at, created_at
		FROM user_invite WHERE invite_code = $1
	`, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("invite code %s: %w", code, domain.ErrInvalidReference)
		}
		return nil, mapError("query user invite", err)
	}
	return invite, nil
}

func scanInvite(row pgx.Row) (*domain.UserInvite, error) {
	var i domain.UserInvite
	var invitedBy *string
	if err := row.Scan(&i.ID, &i.Email, &i.Role, &invitedBy, &i.InviteCode,
		&i.ExpiresAt, &i.AcceptedAt, &i.CreatedAt); err != nil {
		return nil, err
	}
	if invitedBy != nil {
		i.InvitedBy = *invitedBy
	}
	return &i, nil
}

// AcceptInvite marks an invite accepted iff it is still pending at the given
// instant. The conditional update makes double-acceptance lose cleanly with
// domain.ErrInviteNotPending.
func (d *DB) AcceptInvite(ctx context.Context, code string, at time.Time) (*domain.UserInvite, error) {
	tag, err := d.pool.Exec(ctx, `
		UPDATE user_invite SET accepted_at = $2
		WHERE invite_code = $1 AND accepted_at IS NULL AND expires_at >= $2
	`, code, at)
	if err != nil {
		return nil, mapError("accept user invite", err)
	}
	if tag.RowsAffected() == 0 {
		invite, err := d.GetInviteByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("invite %s is %s: %w", code, invite.StateAt(at), domain.ErrInviteNotPending)
	}
	return d.GetInviteByCode(ctx, code)
}

package domain

import (
	"fmt"
	"time"
)

// UserInvite is a one-shot invitation to join the platform with a role.
// Classification is derived: pending iff not accepted and not past the
// deadline; expired iff not accepted and past it; acceptance is terminal.
type UserInvite struct {
	ID         string
	Email      string `validate:"required,email"`
	Role       Role
	InvitedBy  string
	InviteCode string `validate:"required"`
	ExpiresAt  time.Time
	AcceptedAt *time.Time
	CreatedAt  time.Time
}

// Validate checks structural fields and the role domain.
func (i *UserInvite) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("user invite: %v: %w", err, ErrInvalidValue)
	}
	if !i.Role.Valid() {
		return fmt.Errorf("invite role %q: %w", i.Role, ErrInvalidValue)
	}
	return nil
}

// StateAt classifies the invite at the given instant.
func (i *UserInvite) StateAt(now time.Time) InviteState {
	if i.AcceptedAt != nil {
		return InviteAccepted
	}
	if i.ExpiresAt.Before(now) {
		return InviteExpired
	}
	return InvitePending
}

// Accept marks the invite accepted. Only a pending invite can be accepted;
// there is no re-acceptance and no un-expiring.
func (i *UserInvite) Accept(now time.Time) error {
	if i.StateAt(now) != InvitePending {
		return fmt.Errorf("invite %s is %s: %w", i.InviteCode, i.StateAt(now), ErrInviteNotPending)
	}
	i.AcceptedAt = &now
	return nil
}

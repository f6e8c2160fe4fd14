package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserInvite_StateAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	invite := UserInvite{
		Email:      "newcaregiver@example.com",
		Role:       RoleCaregiver,
		InviteCode: "INV-CG-001",
		ExpiresAt:  now.AddDate(0, 0, 7),
	}
	assert.Equal(t, InvitePending, invite.StateAt(now))

	// Expired yesterday, never accepted: expired, not pending.
	invite.ExpiresAt = now.AddDate(0, 0, -1)
	assert.Equal(t, InviteExpired, invite.StateAt(now))

	accepted := now.AddDate(0, 0, -3)
	invite.AcceptedAt = &accepted
	assert.Equal(t, InviteAccepted, invite.StateAt(now),
		"acceptance before the deadline sticks even after it passes")
}

func TestUserInvite_Accept(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	invite := UserInvite{
		Email:      "newclient@example.com",
		Role:       RoleClient,
		InviteCode: "INV-CL-001",
		ExpiresAt:  now.AddDate(0, 0, 7),
	}

	require.NoError(t, invite.Accept(now))
	assert.Equal(t, InviteAccepted, invite.StateAt(now))

	// No re-acceptance.
	err := invite.Accept(now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrInviteNotPending)
}

func TestUserInvite_Accept_ExpiredIsTerminal(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	invite := UserInvite{
		Email:      "late@example.com",
		Role:       RoleFamily,
		InviteCode: "INV-FM-001",
		ExpiresAt:  now.AddDate(0, 0, -1),
	}

	err := invite.Accept(now)
	assert.ErrorIs(t, err, ErrInviteNotPending)
	assert.Nil(t, invite.AcceptedAt)
}

func TestUserInvite_Validate(t *testing.T) {
	invite := UserInvite{
		Email:      "not-an-email",
		Role:       RoleCaregiver,
		InviteCode: "INV-1",
	}
	assert.ErrorIs(t, invite.Validate(), ErrInvalidValue)

	invite.Email = "ok@example.com"
	invite.Role = "SUPERUSER"
	assert.ErrorIs(t, invite.Validate(), ErrInvalidValue)

	invite.Role = RoleCaregiver
	assert.NoError(t, invite.Validate())
}

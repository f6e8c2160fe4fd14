package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/caringcompass/carematch/pkg/db"
	"github.com/caringcompass/carematch/pkg/domain"
)

func TestCreateInvite(t *testing.T) {
	store := newMockStore()

	invite, err := CreateInvite(context.Background(), store, zap.NewNop(), CreateInviteArgs{
		Email:     "rosa@example.com",
		Role:      domain.RoleCaregiver,
		InvitedBy: "coordinator@example.com",
		TTL:       7 * 24 * time.Hour,
	})
	require.NoError(t, err)

	assert.Len(t, invite.InviteCode, 32)
	assert.Equal(t, domain.InvitePending, invite.StateAt(time.Now()))
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), invite.ExpiresAt, time.Minute)
	assert.Len(t, store.createdInvites, 1)
}

func TestCreateInvite_CodesAreUnique(t *testing.T) {
	store := newMockStore()
	args := CreateInviteArgs{
		Email: "rosa@example.com",
		Role:  domain.RoleCaregiver,
		TTL:   time.Hour,
	}

	first, err := CreateInvite(context.Background(), store, zap.NewNop(), args)
	require.NoError(t, err)
	second, err := CreateInvite(context.Background(), store, zap.NewNop(), args)
	require.NoError(t, err)

	assert.NotEqual(t, first.InviteCode, second.InviteCode)
}

func TestCreateInvite_RejectsNonPositiveTTL(t *testing.T) {
	store := newMockStore()

	_, err := CreateInvite(context.Background(), store, zap.NewNop(), CreateInviteArgs{
		Email: "rosa@example.com",
		Role:  domain.RoleCaregiver,
	})
	assert.Error(t, err)
}

func TestAcceptInvite(t *testing.T) {
	store := newMockStore()
	created, err := CreateInvite(context.Background(), store, zap.NewNop(), CreateInviteArgs{
		Email: "rosa@example.com",
		Role:  domain.RoleCaregiver,
		TTL:   time.Hour,
	})
	require.NoError(t, err)

	accepted, err := AcceptInvite(context.Background(), store, zap.NewNop(), created.InviteCode)
	require.NoError(t, err)
	assert.Equal(t, domain.InviteAccepted, accepted.StateAt(time.Now()))
}

func TestAcceptInvite_SecondAcceptanceLoses(t *testing.T) {
	store := newMockStore()
	created, err := CreateInvite(context.Background(), store, zap.NewNop(), CreateInviteArgs{
		Email: "rosa@example.com",
		Role:  domain.RoleCaregiver,
		TTL:   time.Hour,
	})
	require.NoError(t, err)

	_, err = AcceptInvite(context.Background(), store, zap.NewNop(), created.InviteCode)
	require.NoError(t, err)

	_, err = AcceptInvite(context.Background(), store, zap.NewNop(), created.InviteCode)
	assert.ErrorIs(t, err, domain.ErrInviteNotPending)
}

func TestAcceptInvite_Expired(t *testing.T) {
	store := newMockStore()
	expired := &domain.UserInvite{
		ID:         "7b2b8dd5-a7c9-4b2b-fb18-bd8b9e0f1a08",
		Email:      "rosa@example.com",
		Role:       domain.RoleCaregiver,
		InviteCode: "deadbeefdeadbeefdeadbeefdeadbeef",
		ExpiresAt:  time.Now().Add(-time.Hour),
		CreatedAt:  time.Now().Add(-48 * time.Hour),
	}
	store.invitesByCode[expired.InviteCode] = expired

	_, err := AcceptInvite(context.Background(), store, zap.NewNop(), expired.InviteCode)
	assert.ErrorIs(t, err, domain.ErrInviteNotPending)
}

func TestExpiringCredentials(t *testing.T) {
	store := newMockStore()
	expiration := time.Now().AddDate(0, 0, 10)
	store.expiring = []db.ExpiringCredential{
		{
			Credential: domain.Credential{
				ID:             "8c3c9ee6-b8da-4c3c-ac29-ce9c0f1a2b09",
				Type:           domain.CredentialCPR,
				ExpirationDate: &expiration,
				Status:         domain.CredentialVerified,
			},
			CaregiverName: "Rosa Marsh",
		},
	}

	expiring, err := ExpiringCredentials(context.Background(), store, zap.NewNop(), time.Now(), 30)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "Rosa Marsh", expiring[0].CaregiverName)
}

func TestExpiringCredentials_RejectsNonPositiveWindow(t *testing.T) {
	store := newMockStore()

	_, err := ExpiringCredentials(context.Background(), store, zap.NewNop(), time.Now(), 0)
	assert.Error(t, err)
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/caringcompass/carematch/pkg/core/matching/criteria"
	"github.com/caringcompass/carematch/pkg/domain"
)

func unassignedVisit() *domain.Visit {
	return &domain.Visit{
		ID:       visitID,
		ClientID: clientID,
		Window:   tuesdayWindow(),
		Status:   domain.VisitScheduled,
	}
}

func assignStore() *mockStore {
	store := newMockStore()
	store.clients[clientID] = testClient()
	store.plans[clientID] = []*domain.PlanOfCare{activePlan()}
	store.visits[visitID] = unassignedVisit()
	return store
}

func TestAssignVisit_AssignsBestMatch(t *testing.T) {
	store := assignStore()
	best := eligibleCaregiver(caregiverAID)
	best.AverageRating = 4.8
	worse := eligibleCaregiver(caregiverBID)
	worse.AverageRating = 3.1
	store.caregivers = []*domain.CaregiverProfile{worse, best}

	result, err := AssignVisit(context.Background(), store, zap.NewNop(), AssignVisitArgs{
		VisitID: visitID,
		Weights: criteria.DefaultWeights(),
	})
	require.NoError(t, err)

	assert.Equal(t, caregiverAID, result.Assigned.CaregiverID)
	require.NotNil(t, result.Visit.CaregiverID)
	assert.Equal(t, caregiverAID, *result.Visit.CaregiverID)
	assert.Len(t, result.Ranked, 2)
}

func TestAssignVisit_FallsBackWhenBestLosesRace(t *testing.T) {
	store := assignStore()
	best := eligibleCaregiver(caregiverAID)
	best.AverageRating = 4.8
	second := eligibleCaregiver(caregiverBID)
	second.AverageRating = 3.1
	store.caregivers = []*domain.CaregiverProfile{best, second}
	store.assignConflicts[caregiverAID] = true

	result, err := AssignVisit(context.Background(), store, zap.NewNop(), AssignVisitArgs{
		VisitID: visitID,
		Weights: criteria.DefaultWeights(),
	})
	require.NoError(t, err)

	assert.Equal(t, caregiverBID, result.Assigned.CaregiverID)
	assert.Equal(t, []string{caregiverAID, caregiverBID}, store.assignCalls)
}

func TestAssignVisit_AllCandidatesConflicted(t *testing.T) {
	store := assignStore()
	store.caregivers = []*domain.CaregiverProfile{eligibleCaregiver(caregiverAID)}
	store.assignConflicts[caregiverAID] = true

	_, err := AssignVisit(context.Background(), store, zap.NewNop(), AssignVisitArgs{
		VisitID: visitID,
		Weights: criteria.DefaultWeights(),
	})
	assert.ErrorIs(t, err, domain.ErrConflictingAssignment)

	// Both attempts walked the single candidate.
	assert.Len(t, store.assignCalls, 2)
}

func TestAssignVisit_AlreadyAssigned(t *testing.T) {
	store := assignStore()
	assigned := caregiverBID
	store.visits[visitID].CaregiverID = &assigned

	_, err := AssignVisit(context.Background(), store, zap.NewNop(), AssignVisitArgs{
		VisitID: visitID,
	})
	assert.ErrorIs(t, err, domain.ErrConflictingAssignment)
	assert.Empty(t, store.assignCalls)
}

func TestAssignVisit_NoEligibleCaregiver(t *testing.T) {
	store := assignStore()

	_, err := AssignVisit(context.Background(), store, zap.NewNop(), AssignVisitArgs{
		VisitID: visitID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no eligible caregiver")
}

func TestAssignVisit_CancelledVisit(t *testing.T) {
	store := assignStore()
	store.visits[visitID].Status = domain.VisitCancelled

	_, err := AssignVisit(context.Background(), store, zap.NewNop(), AssignVisitArgs{
		VisitID: visitID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/caringcompass/carematch/pkg/domain"
)

func assignedVisit() *domain.Visit {
	caregiver := caregiverAID
	v := unassignedVisit()
	v.CaregiverID = &caregiver
	return v
}

func TestRecordEVV_ClockInThenOut(t *testing.T) {
	store := newMockStore()
	store.visits[visitID] = assignedVisit()

	in, err := RecordEVV(context.Background(), store, zap.NewNop(), RecordEVVArgs{
		VisitID:   visitID,
		EventType: domain.EVVClockIn,
		Timestamp: time.Date(2024, 3, 5, 9, 2, 0, 0, time.UTC),
		Latitude:  51.559,
		Longitude: 0.0741,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, in.Pair)

	out, err := RecordEVV(context.Background(), store, zap.NewNop(), RecordEVVArgs{
		VisitID:   visitID,
		EventType: domain.EVVClockOut,
		Timestamp: time.Date(2024, 3, 5, 10, 58, 0, 0, time.UTC),
		Latitude:  51.559,
		Longitude: 0.0741,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Pair)
}

func TestRecordEVV_ReEntryOpensNextPair(t *testing.T) {
	store := newMockStore()
	visit := assignedVisit()
	visit.EVVEvents = []domain.EVVEvent{
		{VisitID: visitID, Type: domain.EVVClockIn, Timestamp: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)},
		{VisitID: visitID, Type: domain.EVVClockOut, Timestamp: time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)},
	}
	store.visits[visitID] = visit

	event, err := RecordEVV(context.Background(), store, zap.NewNop(), RecordEVVArgs{
		VisitID:   visitID,
		EventType: domain.EVVClockIn,
		Timestamp: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, event.Pair)
}

func TestRecordEVV_FirstEventMustBeClockIn(t *testing.T) {
	store := newMockStore()
	store.visits[visitID] = assignedVisit()

	_, err := RecordEVV(context.Background(), store, zap.NewNop(), RecordEVVArgs{
		VisitID:   visitID,
		EventType: domain.EVVClockOut,
		Timestamp: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestRecordEVV_UnassignedVisit(t *testing.T) {
	store := newMockStore()
	store.visits[visitID] = unassignedVisit()

	_, err := RecordEVV(context.Background(), store, zap.NewNop(), RecordEVVArgs{
		VisitID:   visitID,
		EventType: domain.EVVClockIn,
		Timestamp: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestRecordEVV_CancelledVisit(t *testing.T) {
	store := newMockStore()
	visit := assignedVisit()
	visit.Status = domain.VisitCancelled
	store.visits[visitID] = visit

	_, err := RecordEVV(context.Background(), store, zap.NewNop(), RecordEVVArgs{
		VisitID:   visitID,
		EventType: domain.EVVClockIn,
		Timestamp: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

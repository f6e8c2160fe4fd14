package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVisit() *Visit {
	return &Visit{
		ID:       "visit-1",
		ClientID: "client-1",
		Window: VisitWindow{
			Start: time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 1, 20, 13, 0, 0, 0, time.UTC),
		},
		Status: VisitScheduled,
		Type:   VisitRegularCare,
	}
}

func TestVisit_Transition(t *testing.T) {
	v := testVisit()
	require.NoError(t, v.Transition(VisitCancelled))
	assert.Equal(t, VisitCancelled, v.Status)

	// Terminal states cannot move.
	err := v.Transition(VisitScheduled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	err = v.Transition(VisitCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestVisit_Transition_UnknownStatus(t *testing.T) {
	v := testVisit()
	err := v.Transition("TELEPORTED")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestVisit_Complete_DerivesBillableHours(t *testing.T) {
	v := testVisit()
	start := time.Date(2024, 1, 20, 9, 5, 0, 0, time.UTC)
	end := time.Date(2024, 1, 20, 13, 5, 0, 0, time.UTC)

	require.NoError(t, v.Complete(start, end))
	assert.Equal(t, VisitCompleted, v.Status)
	assert.Equal(t, 4.0, v.BillableHours)
	require.NotNil(t, v.ActualStart)
	require.NotNil(t, v.ActualEnd)
}

func TestVisit_Validate_ActualTimesOnlyWhenTerminal(t *testing.T) {
	v := testVisit()
	now := time.Now()
	v.ActualStart = &now

	assert.ErrorIs(t, v.Validate(), ErrInvalidValue)

	v.Status = VisitCompleted
	assert.NoError(t, v.Validate())

	v.Status = VisitNoShow
	assert.NoError(t, v.Validate())
}

func TestVisit_BlocksCaregiver(t *testing.T) {
	v := testVisit()
	assert.True(t, v.BlocksCaregiver())

	v.Status = VisitCompleted
	assert.True(t, v.BlocksCaregiver())

	v.Status = VisitCancelled
	assert.False(t, v.BlocksCaregiver())

	v.Status = VisitNoShow
	assert.False(t, v.BlocksCaregiver())
}

func TestVisit_AppendEVV_HappyPath(t *testing.T) {
	v := testVisit()
	in := time.Date(2024, 1, 20, 9, 5, 0, 0, time.UTC)
	out := time.Date(2024, 1, 20, 13, 0, 0, 0, time.UTC)

	e1, err := v.AppendEVV(EVVClockIn, in, 36.8508, -75.9776)
	require.NoError(t, err)
	assert.Equal(t, 0, e1.Pair)

	e2, err := v.AppendEVV(EVVClockOut, out, 36.8508, -75.9776)
	require.NoError(t, err)
	assert.Equal(t, 0, e2.Pair)
	assert.Len(t, v.EVVEvents, 2)
}

func TestVisit_AppendEVV_MustStartWithClockIn(t *testing.T) {
	v := testVisit()
	_, err := v.AppendEVV(EVVClockOut, time.Now(), 0, 0)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestVisit_AppendEVV_RejectsRepeatedType(t *testing.T) {
	v := testVisit()
	in := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)

	_, err := v.AppendEVV(EVVClockIn, in, 0, 0)
	require.NoError(t, err)

	_, err = v.AppendEVV(EVVClockIn, in.Add(time.Hour), 0, 0)
	assert.ErrorIs(t, err, ErrInvalidValue, "a second CLOCK_IN without a CLOCK_OUT is rejected, not overwritten")
}

func TestVisit_AppendEVV_ReentryOpensNewPair(t *testing.T) {
	v := testVisit()
	base := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)

	_, err := v.AppendEVV(EVVClockIn, base, 0, 0)
	require.NoError(t, err)
	_, err = v.AppendEVV(EVVClockOut, base.Add(2*time.Hour), 0, 0)
	require.NoError(t, err)

	reentry, err := v.AppendEVV(EVVClockIn, base.Add(3*time.Hour), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, reentry.Pair, "re-entry is modelled as a new pair")

	closing, err := v.AppendEVV(EVVClockOut, base.Add(4*time.Hour), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, closing.Pair)
}

func TestVisit_AppendEVV_TimestampsMustIncrease(t *testing.T) {
	v := testVisit()
	base := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)

	_, err := v.AppendEVV(EVVClockIn, base, 0, 0)
	require.NoError(t, err)

	_, err = v.AppendEVV(EVVClockOut, base, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime_Valid(t *testing.T) {
	ct, err := ParseClockTime("08:30")
	require.NoError(t, err)
	assert.Equal(t, ClockTime(8*60+30), ct)
	assert.Equal(t, "08:30", ct.String())
}

func TestParseClockTime_OutOfRange(t *testing.T) {
	_, err := ParseClockTime("25:00")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = ParseClockTime("10:75")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestClockRange_Contains_PartialOverlapRejected(t *testing.T) {
	avail := ClockRange{Start: 8 * 60, End: 12 * 60} // 08:00-12:00
	visit := ClockRange{Start: 10 * 60, End: 14 * 60} // 10:00-14:00

	assert.False(t, avail.Contains(visit), "partial overlap must not count as containment")
	assert.True(t, avail.Contains(ClockRange{Start: 9 * 60, End: 11 * 60}))
	assert.True(t, avail.Contains(avail), "a range contains itself")
}

func TestVisitWindow_Validate(t *testing.T) {
	start := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)

	err := (VisitWindow{Start: start, End: start.Add(4 * time.Hour)}).Validate()
	assert.NoError(t, err)

	err = (VisitWindow{Start: start, End: start}).Validate()
	assert.ErrorIs(t, err, ErrInvalidValue)

	err = (VisitWindow{Start: start, End: start.Add(-time.Hour)}).Validate()
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestVisitWindow_Overlaps(t *testing.T) {
	base := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)
	w := VisitWindow{Start: base, End: base.Add(4 * time.Hour)}

	assert.True(t, w.Overlaps(VisitWindow{Start: base.Add(2 * time.Hour), End: base.Add(6 * time.Hour)}))
	assert.True(t, w.Overlaps(w))
	assert.False(t, w.Overlaps(VisitWindow{Start: base.Add(4 * time.Hour), End: base.Add(5 * time.Hour)}),
		"touching endpoints do not overlap")
	assert.False(t, w.Overlaps(VisitWindow{Start: base.Add(-2 * time.Hour), End: base}))
}

func TestVisitWindow_Segments_SingleDay(t *testing.T) {
	// Wednesday 10:00-14:00
	w := VisitWindow{
		Start: time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 6, 14, 0, 0, 0, time.UTC),
	}

	segments, err := w.Segments()
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, time.Wednesday, segments[0].Day)
	assert.Equal(t, ClockRange{Start: 10 * 60, End: 14 * 60}, segments[0].Range)
}

func TestVisitWindow_Segments_CrossesMidnight(t *testing.T) {
	// Friday 22:00 to Saturday 06:00
	w := VisitWindow{
		Start: time.Date(2024, 3, 8, 22, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 9, 6, 0, 0, 0, time.UTC),
	}

	segments, err := w.Segments()
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, time.Friday, segments[0].Day)
	assert.Equal(t, ClockRange{Start: 22 * 60, End: 24 * 60}, segments[0].Range)

	assert.Equal(t, time.Saturday, segments[1].Day)
	assert.Equal(t, ClockRange{Start: 0, End: 6 * 60}, segments[1].Range)
}

func TestVisitWindow_Segments_EndsExactlyAtMidnight(t *testing.T) {
	w := VisitWindow{
		Start: time.Date(2024, 3, 8, 20, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	segments, err := w.Segments()
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, time.Friday, segments[0].Day)
	assert.Equal(t, ClockRange{Start: 20 * 60, End: 24 * 60}, segments[0].Range)
}

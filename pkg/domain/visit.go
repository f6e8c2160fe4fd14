package domain

import (
	"fmt"
	"sort"
	"time"
)

// VisitTask is a service task carried onto a visit, with completion state.
type VisitTask struct {
	ID          string
	TaskName    string
	Category    TaskCategory
	IsCompleted bool
	CompletedAt *time.Time
	Notes       string
}

// EVVEvent is an electronic visit verification event: a clock punch with
// geocoordinates. Events on a visit alternate CLOCK_IN / CLOCK_OUT; a second
// CLOCK_IN after a CLOCK_OUT is an explicit re-entry and gets the next pair
// index rather than overwriting the first pair.
type EVVEvent struct {
	ID        string
	VisitID   string
	Type      EVVEventType
	Timestamp time.Time
	Latitude  float64
	Longitude float64
	// Pair groups a CLOCK_IN with its CLOCK_OUT. The first pair is 0.
	Pair int
}

// Visit links one client with at most one caregiver for a scheduled window.
// Visits are never deleted; cancelled and no-show visits remain as history.
type Visit struct {
	ID            string
	ClientID      string
	CaregiverID   *string
	Window        VisitWindow
	ActualStart   *time.Time
	ActualEnd     *time.Time
	Status        VisitStatus
	Type          VisitType
	BillableHours float64
	Notes         string
	Tasks         []VisitTask
	EVVEvents     []EVVEvent
}

// Validate checks the scheduling invariants: window ordering, enum domains,
// and that actual times are only set in terminal attended states.
func (v *Visit) Validate() error {
	if err := v.Window.Validate(); err != nil {
		return err
	}
	if !v.Status.Valid() {
		return fmt.Errorf("visit status %q: %w", v.Status, ErrInvalidValue)
	}
	if v.Type != "" && !v.Type.Valid() {
		return fmt.Errorf("visit type %q: %w", v.Type, ErrInvalidValue)
	}
	if (v.ActualStart != nil || v.ActualEnd != nil) &&
		v.Status != VisitCompleted && v.Status != VisitNoShow {
		return fmt.Errorf("actual times set on %s visit: %w", v.Status, ErrInvalidValue)
	}
	return nil
}

// Assigned reports whether a caregiver has been assigned.
func (v *Visit) Assigned() bool {
	return v.CaregiverID != nil && *v.CaregiverID != ""
}

// BlocksCaregiver reports whether this visit occupies its caregiver's
// schedule for conflict purposes. Cancelled, no-show and rescheduled visits
// free the slot.
func (v *Visit) BlocksCaregiver() bool {
	return v.Status == VisitScheduled || v.Status == VisitCompleted
}

// visitTransitions is the closed state machine for visit status changes.
// SCHEDULED is the only non-terminal state.
var visitTransitions = map[VisitStatus][]VisitStatus{
	VisitScheduled:   {VisitCompleted, VisitCancelled, VisitNoShow, VisitRescheduled},
	VisitCompleted:   {},
	VisitCancelled:   {},
	VisitNoShow:      {},
	VisitRescheduled: {},
}

// Transition moves the visit to a new status, enforcing the state machine.
func (v *Visit) Transition(to VisitStatus) error {
	if !to.Valid() {
		return fmt.Errorf("visit status %q: %w", to, ErrInvalidValue)
	}
	for _, allowed := range visitTransitions[v.Status] {
		if allowed == to {
			v.Status = to
			return nil
		}
	}
	return fmt.Errorf("visit %s -> %s: %w", v.Status, to, ErrInvalidTransition)
}

// Complete marks the visit COMPLETED with actual times and derives billable
// hours from the actual duration.
func (v *Visit) Complete(actualStart, actualEnd time.Time) error {
	if !actualStart.Before(actualEnd) {
		return fmt.Errorf("actual start %s not before end %s: %w",
			actualStart.Format(time.RFC3339), actualEnd.Format(time.RFC3339), ErrInvalidValue)
	}
	if err := v.Transition(VisitCompleted); err != nil {
		return err
	}
	v.ActualStart = &actualStart
	v.ActualEnd = &actualEnd
	v.BillableHours = actualEnd.Sub(actualStart).Hours()
	return nil
}

// AppendEVV validates and appends an event to the visit's sequence. The
// sequence must alternate starting with CLOCK_IN and timestamps must be
// strictly increasing. The event's pair index is assigned here.
func (v *Visit) AppendEVV(eventType EVVEventType, ts time.Time, lat, lon float64) (*EVVEvent, error) {
	if !eventType.Valid() {
		return nil, fmt.Errorf("evv event type %q: %w", eventType, ErrInvalidValue)
	}

	events := append([]EVVEvent(nil), v.EVVEvents...)
	sort.Slice(events, func(i, j int) bool { return events[i].Timestamp.Before(events[j].Timestamp) })

	var last *EVVEvent
	if len(events) > 0 {
		last = &events[len(events)-1]
	}

	pair := 0
	switch {
	case last == nil:
		if eventType != EVVClockIn {
			return nil, fmt.Errorf("first evv event must be CLOCK_IN: %w", ErrInvalidValue)
		}
	case last.Type == eventType:
		return nil, fmt.Errorf("evv event %s repeats %s: %w", eventType, last.Type, ErrInvalidValue)
	default:
		if !last.Timestamp.Before(ts) {
			return nil, fmt.Errorf("evv timestamp %s not after %s: %w",
				ts.Format(time.RFC3339), last.Timestamp.Format(time.RFC3339), ErrInvalidValue)
		}
		if eventType == EVVClockIn {
			// Re-entry: previous pair closed, open the next one.
			pair = last.Pair + 1
		} else {
			pair = last.Pair
		}
	}

	event := EVVEvent{
		VisitID:   v.ID,
		Type:      eventType,
		Timestamp: ts,
		Latitude:  lat,
		Longitude: lon,
		Pair:      pair,
	}
	v.EVVEvents = append(v.EVVEvents, event)
	return &event, nil
}

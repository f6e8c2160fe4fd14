package domain

import "errors"

// Validation failures. These are rejected before any partial write is
// committed, regardless of write order.
var (
	// ErrDuplicateKey signals a uniqueness violation (duplicate email,
	// duplicate invite code).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidReference signals a reference to a non-existent entity.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrInvalidValue signals an out-of-domain enum value or a field that
	// fails structural validation.
	ErrInvalidValue = errors.New("invalid value")
)

// Business-logic and concurrency outcomes.
var (
	// ErrNoActivePlan is returned when a client has no plan of care that is
	// ACTIVE and effective for the requested visit date.
	ErrNoActivePlan = errors.New("no active plan of care")

	// ErrConflictingAssignment is returned when an assignment loses the race:
	// the visit was already assigned, or the caregiver picked up an
	// overlapping visit in the meantime. Callers should re-run the match
	// once before surfacing to a human.
	ErrConflictingAssignment = errors.New("conflicting assignment")

	// ErrInvalidTransition is returned for a visit status change the state
	// machine does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInviteNotPending is returned when accepting an invite that is
	// already accepted or expired. Acceptance is terminal.
	ErrInviteNotPending = errors.New("invite not pending")
)

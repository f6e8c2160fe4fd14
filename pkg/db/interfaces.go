package db

import (
	"context"
	"time"

	"github.com/caringcompass/carematch/pkg/domain"
)

// ExpiringCredential pairs a soon-to-lapse credential with the caregiver
// holding it, for coordinator alerts.
type ExpiringCredential struct {
	Credential    domain.Credential
	CaregiverName string
}

// ClientStore defines client-side persistence. Creation writes the whole
// nested graph (address, preferences, emergency contact, plan, goals, tasks)
// in one transaction; partial failure leaves no orphan rows.
type ClientStore interface {
	CreateClient(ctx context.Context, client *domain.ClientProfile) error
	GetClient(ctx context.Context, id string) (*domain.ClientProfile, error)
	GetPlans(ctx context.Context, clientID string) ([]*domain.PlanOfCare, error)
}

// CaregiverStore defines caregiver-side persistence. ListCaregivers returns
// full profiles: skills, languages, credentials and availability, as the
// matching engine needs all of them.
type CaregiverStore interface {
	CreateCaregiver(ctx context.Context, caregiver *domain.CaregiverProfile) error
	GetCaregiver(ctx context.Context, id string) (*domain.CaregiverProfile, error)
	ListCaregivers(ctx context.Context) ([]*domain.CaregiverProfile, error)
	ExpiringCredentials(ctx context.Context, now time.Time, withinDays int) ([]ExpiringCredential, error)
}

// VisitStore defines visit persistence. AssignCaregiver is the only
// contended write: it must atomically re-check that the visit is still
// unassigned and that the caregiver has no overlapping blocking visit,
// returning domain.ErrConflictingAssignment when the race is lost.
type VisitStore interface {
	CreateVisits(ctx context.Context, visits []*domain.Visit) error
	GetVisit(ctx context.Context, id string) (*domain.Visit, error)
	ListBlockingVisits(ctx context.Context, window domain.VisitWindow) ([]*domain.Visit, error)
	AssignCaregiver(ctx context.Context, visitID, caregiverID string) error
	UpdateVisit(ctx context.Context, visit *domain.Visit) error
	AppendEVVEvent(ctx context.Context, visitID string, eventType domain.EVVEventType,
		ts time.Time, lat, lon float64) (*domain.EVVEvent, error)
}

// InviteStore defines user-invite persistence. Acceptance is a conditional
// write: it succeeds only while the invite is still pending.
type InviteStore interface {
	CreateInvite(ctx context.Context, invite *domain.UserInvite) error
	GetInviteByCode(ctx context.Context, code string) (*domain.UserInvite, error)
	AcceptInvite(ctx context.Context, code string, at time.Time) (*domain.UserInvite, error)
}

// Database is the union of all store interfaces, implemented by postgres.DB.
type Database interface {
	ClientStore
	CaregiverStore
	VisitStore
	InviteStore
}

package services

import (
	"context"
	"time"

	"github.com/caringcompass/carematch/pkg/db"
	"github.com/caringcompass/carematch/pkg/domain"
)

// mockStore implements every service store interface for testing
type mockStore struct {
	clients    map[string]*domain.ClientProfile
	plans      map[string][]*domain.PlanOfCare
	caregivers []*domain.CaregiverProfile
	visits     map[string]*domain.Visit
	blocking   []*domain.Visit
	expiring   []db.ExpiringCredential

	createdVisits  []*domain.Visit
	createdInvites []*domain.UserInvite
	invitesByCode  map[string]*domain.UserInvite

	// assignConflicts maps caregiver ids whose assignment loses the race.
	assignConflicts map[string]bool
	assignCalls     []string

	getClientErr     error
	getPlansErr      error
	listCaregiverErr error
	listBlockingErr  error
	getVisitErr      error
	createVisitsErr  error
	assignErr        error
	updateVisitErr   error
	createInviteErr  error
	expiringErr      error
}

func newMockStore() *mockStore {
	return &mockStore{
		clients:         map[string]*domain.ClientProfile{},
		plans:           map[string][]*domain.PlanOfCare{},
		visits:          map[string]*domain.Visit{},
		invitesByCode:   map[string]*domain.UserInvite{},
		assignConflicts: map[string]bool{},
	}
}

func (m *mockStore) GetClient(ctx context.Context, id string) (*domain.ClientProfile, error) {
	if m.getClientErr != nil {
		return nil, m.getClientErr
	}
	if c, ok := m.clients[id]; ok {
		return c, nil
	}
	return nil, domain.ErrInvalidReference
}

func (m *mockStore) GetPlans(ctx context.Context, clientID string) ([]*domain.PlanOfCare, error) {
	if m.getPlansErr != nil {
		return nil, m.getPlansErr
	}
	return m.plans[clientID], nil
}

func (m *mockStore) ListCaregivers(ctx context.Context) ([]*domain.CaregiverProfile, error) {
	if m.listCaregiverErr != nil {
		return nil, m.listCaregiverErr
	}
	return m.caregivers, nil
}

func (m *mockStore) ListBlockingVisits(ctx context.Context, window domain.VisitWindow) ([]*domain.Visit, error) {
	if m.listBlockingErr != nil {
		return nil, m.listBlockingErr
	}
	var out []*domain.Visit
	for _, v := range m.blocking {
		if v.BlocksCaregiver() && v.Window.Overlaps(window) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *mockStore) GetVisit(ctx context.Context, id string) (*domain.Visit, error) {
	if m.getVisitErr != nil {
		return nil, m.getVisitErr
	}
	if v, ok := m.visits[id]; ok {
		return v, nil
	}
	return nil, domain.ErrInvalidReference
}

func (m *mockStore) CreateVisits(ctx context.Context, visits []*domain.Visit) error {
	if m.createVisitsErr != nil {
		return m.createVisitsErr
	}
	m.createdVisits = append(m.createdVisits, visits...)
	return nil
}

func (m *mockStore) AssignCaregiver(ctx context.Context, visitID, caregiverID string) error {
	m.assignCalls = append(m.assignCalls, caregiverID)
	if m.assignErr != nil {
		return m.assignErr
	}
	if m.assignConflicts[caregiverID] {
		return domain.ErrConflictingAssignment
	}
	v, ok := m.visits[visitID]
	if !ok {
		return domain.ErrInvalidReference
	}
	if v.Assigned() {
		return domain.ErrConflictingAssignment
	}
	id := caregiverID
	v.CaregiverID = &id
	return nil
}

func (m *mockStore) UpdateVisit(ctx context.Context, visit *domain.Visit) error {
	if m.updateVisitErr != nil {
		return m.updateVisitErr
	}
	m.visits[visit.ID] = visit
	return nil
}

func (m *mockStore) AppendEVVEvent(ctx context.Context, visitID string, eventType domain.EVVEventType,
	ts time.Time, lat, lon float64) (*domain.EVVEvent, error) {
	v, ok := m.visits[visitID]
	if !ok {
		return nil, domain.ErrInvalidReference
	}
	return v.AppendEVV(eventType, ts, lat, lon)
}

func (m *mockStore) CreateInvite(ctx context.Context, invite *domain.UserInvite) error {
	if m.createInviteErr != nil {
		return m.createInviteErr
	}
	if _, exists := m.invitesByCode[invite.InviteCode]; exists {
		return domain.ErrDuplicateKey
	}
	m.createdInvites = append(m.createdInvites, invite)
	m.invitesByCode[invite.InviteCode] = invite
	return nil
}

func (m *mockStore) AcceptInvite(ctx context.Context, code string, at time.Time) (*domain.UserInvite, error) {
	invite, ok := m.invitesByCode[code]
	if !ok {
		return nil, domain.ErrInvalidReference
	}
	if err := invite.Accept(at); err != nil {
		return nil, err
	}
	return invite, nil
}

func (m *mockStore) ExpiringCredentials(ctx context.Context, now time.Time, withinDays int) ([]db.ExpiringCredential, error) {
	if m.expiringErr != nil {
		return nil, m.expiringErr
	}
	return m.expiring, nil
}

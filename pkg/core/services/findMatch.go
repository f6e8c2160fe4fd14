package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/caringcompass/carematch/pkg/core/matching"
	"github.com/caringcompass/carematch/pkg/core/matching/criteria"
	"github.com/caringcompass/carematch/pkg/domain"
)

// MatchResult contains the ranked caregivers for a visit window together
// with the plan that drove the matching.
type MatchResult struct {
	Plan    *domain.PlanOfCare
	Window  domain.VisitWindow
	Matches []matching.Match
}

// FindMatchStore defines the database operations needed for matching
type FindMatchStore interface {
	GetClient(ctx context.Context, id string) (*domain.ClientProfile, error)
	GetPlans(ctx context.Context, clientID string) ([]*domain.PlanOfCare, error)
	ListCaregivers(ctx context.Context) ([]*domain.CaregiverProfile, error)
	ListBlockingVisits(ctx context.Context, window domain.VisitWindow) ([]*domain.Visit, error)
}

// FindMatchArgs are the inputs to a matching run.
type FindMatchArgs struct {
	ClientID         string
	Window           domain.VisitWindow
	CredentialPolicy map[domain.TaskCategory][]domain.CredentialType
	Weights          criteria.Weights
}

// FindEligibleCaregivers ranks every active caregiver against the client's
// active plan for the visit window. An empty result means no eligible
// caregiver, not an error; only a missing active plan fails the run.
func FindEligibleCaregivers(ctx context.Context, database FindMatchStore, logger *zap.Logger,
	args FindMatchArgs) (*MatchResult, error) {

	if err := args.Window.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Finding eligible caregivers",
		zap.String("client_id", args.ClientID),
		zap.Time("window_start", args.Window.Start),
		zap.Time("window_end", args.Window.End))

	client, err := database.GetClient(ctx, args.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}

	if !client.CanScheduleOn(args.Window.Start) {
		return nil, fmt.Errorf("visit before enrollment date %s: %w",
			client.EnrollmentDate.Format("2006-01-02"), domain.ErrInvalidValue)
	}

	plans, err := database.GetPlans(ctx, args.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plans: %w", err)
	}

	plan, err := domain.ActivePlanFor(plans, args.Window.Start)
	if err != nil {
		return nil, fmt.Errorf("client %s on %s: %w",
			args.ClientID, args.Window.Start.Format("2006-01-02"), err)
	}

	logger.Debug("Using active plan",
		zap.String("plan_id", plan.ID),
		zap.Int("required_skills", len(plan.RequiredSkills())),
		zap.Int("preferred_skills", len(plan.PreferredSkills())))

	caregivers, err := database.ListCaregivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caregivers: %w", err)
	}

	blocking, err := database.ListBlockingVisits(ctx, args.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocking visits: %w", err)
	}

	byCaregiver := make(map[string][]*domain.Visit)
	for _, v := range blocking {
		if v.CaregiverID != nil {
			byCaregiver[*v.CaregiverID] = append(byCaregiver[*v.CaregiverID], v)
		}
	}

	candidates := make([]*matching.Candidate, 0, len(caregivers))
	for _, cg := range caregivers {
		candidates = append(candidates, &matching.Candidate{
			Caregiver:   cg,
			OtherVisits: byCaregiver[cg.ID],
		})
	}

	pool := matching.NewPool(client, plan, args.Window, args.CredentialPolicy, candidates)
	matches := matching.Rank(pool, criteria.Default(args.Weights))

	logger.Info("Matching complete",
		zap.String("client_id", args.ClientID),
		zap.Int("candidates", len(candidates)),
		zap.Int("eligible", len(matches)))

	return &MatchResult{Plan: plan, Window: args.Window, Matches: matches}, nil
}

package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/caringcompass/carematch/internal/config"
	"github.com/caringcompass/carematch/pkg/domain"
)

// ScheduleVisitsStore defines the database operations needed for scheduling
type ScheduleVisitsStore interface {
	GetClient(ctx context.Context, id string) (*domain.ClientProfile, error)
	GetPlans(ctx context.Context, clientID string) ([]*domain.PlanOfCare, error)
	CreateVisits(ctx context.Context, visits []*domain.Visit) error
}

// ScheduleVisitsArgs are the inputs to a scheduling run.
type ScheduleVisitsArgs struct {
	ClientID string
	From     time.Time
	Until    time.Time

	// StartTime is the clock time each generated visit starts at.
	StartTime domain.ClockTime

	// DryRun computes the expansion without persisting it.
	DryRun bool
}

// ScheduleVisitsResult contains the generated visits, whether persisted or
// a dry run.
type ScheduleVisitsResult struct {
	Plan   *domain.PlanOfCare
	Visits []*domain.Visit
}

// defaultRules expands each task frequency into a recurrence rule.
// AS_NEEDED tasks are never expanded; those visits are created on demand.
var defaultRules = map[domain.TaskFrequency]string{
	domain.FrequencyDaily:    "FREQ=DAILY",
	domain.FrequencyWeekly:   "FREQ=WEEKLY",
	domain.FrequencyBiweekly: "FREQ=WEEKLY;INTERVAL=2",
	domain.FrequencyMonthly:  "FREQ=MONTHLY",
}

// ScheduleVisits expands the client's active plan into concrete unassigned
// visits between From and Until. Visits on the same date merge into one
// visit carrying every task due that day; the batch persists atomically.
func ScheduleVisits(ctx context.Context, database ScheduleVisitsStore, cfg *config.Config,
	logger *zap.Logger, args ScheduleVisitsArgs) (*ScheduleVisitsResult, error) {

	if !args.From.Before(args.Until) {
		return nil, fmt.Errorf("schedule range %s to %s is empty: %w",
			args.From.Format("2006-01-02"), args.Until.Format("2006-01-02"), domain.ErrInvalidValue)
	}

	client, err := database.GetClient(ctx, args.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client: %w", err)
	}
	if !client.CanScheduleOn(args.From) {
		return nil, fmt.Errorf("schedule starts before enrollment date %s: %w",
			client.EnrollmentDate.Format("2006-01-02"), domain.ErrInvalidValue)
	}

	plans, err := database.GetPlans(ctx, args.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch plans: %w", err)
	}
	plan, err := domain.ActivePlanFor(plans, args.From)
	if err != nil {
		return nil, fmt.Errorf("client %s on %s: %w",
			args.ClientID, args.From.Format("2006-01-02"), err)
	}

	rules := ruleOverrides(cfg, logger)

	// Collect the tasks due on each date across all recurring tasks.
	tasksByDate := make(map[time.Time][]domain.ServiceTask)
	for _, task := range plan.Tasks {
		ruleStr, ok := rules[task.Frequency]
		if !ok {
			logger.Debug("Skipping non-recurring task",
				zap.String("task", task.Name),
				zap.String("frequency", string(task.Frequency)))
			continue
		}

		rule, err := rrule.StrToRRule(ruleStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse recurrence rule for %s: %w", task.Frequency, err)
		}
		rule.DTStart(args.From)

		for _, occurrence := range rule.Between(args.From, args.Until, true) {
			date := time.Date(occurrence.Year(), occurrence.Month(), occurrence.Day(),
				0, 0, 0, 0, args.From.Location())
			tasksByDate[date] = append(tasksByDate[date], task)
		}
	}

	dates := make([]time.Time, 0, len(tasksByDate))
	for date := range tasksByDate {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	visits := make([]*domain.Visit, 0, len(dates))
	for _, date := range dates {
		tasks := tasksByDate[date]

		var duration time.Duration
		for _, t := range tasks {
			duration += t.EstimatedDur
		}
		if duration == 0 {
			duration = cfg.DefaultVisitDuration()
		}

		start := date.Add(time.Duration(args.StartTime) * time.Minute)
		visit := &domain.Visit{
			ClientID: args.ClientID,
			Window:   domain.VisitWindow{Start: start, End: start.Add(duration)},
			Status:   domain.VisitScheduled,
			Type:     domain.VisitRegularCare,
		}
		for _, t := range tasks {
			visit.Tasks = append(visit.Tasks, domain.VisitTask{
				TaskName: t.Name,
				Category: t.Category,
			})
		}
		visits = append(visits, visit)
	}

	logger.Info("Plan expanded into visits",
		zap.String("client_id", args.ClientID),
		zap.String("plan_id", plan.ID),
		zap.Int("visit_count", len(visits)),
		zap.Bool("dry_run", args.DryRun))

	if !args.DryRun && len(visits) > 0 {
		if err := database.CreateVisits(ctx, visits); err != nil {
			return nil, fmt.Errorf("failed to insert visits: %w", err)
		}
	}

	return &ScheduleVisitsResult{Plan: plan, Visits: visits}, nil
}

// ruleOverrides merges configured recurrence overrides over the defaults.
func ruleOverrides(cfg *config.Config, logger *zap.Logger) map[domain.TaskFrequency]string {
	rules := make(map[domain.TaskFrequency]string, len(defaultRules))
	for freq, rule := range defaultRules {
		rules[freq] = rule
	}
	for _, override := range cfg.RecurrenceOverrides {
		freq := domain.TaskFrequency(override.Frequency)
		logger.Debug("Applying recurrence override",
			zap.String("frequency", override.Frequency),
			zap.String("rrule", override.RRule))
		rules[freq] = override.RRule
	}
	return rules
}

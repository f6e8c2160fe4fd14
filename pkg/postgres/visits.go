package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/caringcompass/carematch/pkg/domain"
)

// CreateVisits inserts a batch of visits with their tasks in one
// transaction, so a recurrence expansion persists all-or-nothing.
func (d *DB) CreateVisits(ctx context.Context, visits []*domain.Visit) error {
	for _, v := range visits {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, v := range visits {
		if v.ID == "" {
			v.ID = uuid.New().String()
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO visit (id, client_id, caregiver_id, scheduled_start, scheduled_end,
				actual_start, actual_end, status, visit_type, billable_hours, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, v.ID, v.ClientID, v.CaregiverID, v.Window.Start, v.Window.End,
			v.ActualStart, v.ActualEnd, v.Status, nullString(string(v.Type)),
			v.BillableHours, nullString(v.Notes))
		if err != nil {
			return mapError("insert visit", err)
		}

		for i := range v.Tasks {
			t := &v.Tasks[i]
			if t.ID == "" {
				t.ID = uuid.New().String()
			}
			_, err := tx.Exec(ctx, `
				INSERT INTO visit_task (id, visit_id, task_name, category, is_completed, completed_at, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, t.ID, v.ID, t.TaskName, t.Category, t.IsCompleted, t.CompletedAt, nullString(t.Notes))
			if err != nil {
				return mapError("insert visit task", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetVisit loads a visit with its tasks and EVV events.
func (d *DB) GetVisit(ctx context.Context, id string) (*domain.Visit, error) {
	v, err := scanVisit(d.pool.QueryRow(ctx, `
		SELECT id, client_id, caregiver_id, scheduled_start, scheduled_end,
			actual_start, actual_end, status, visit_type, billable_hours, notes
		FROM visit WHERE id = $1
	`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("visit %s: %w", id, domain.ErrInvalidReference)
		}
		return nil, mapError("query visit", err)
	}

	if err := d.loadVisitChildren(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func scanVisit(row pgx.Row) (*domain.Visit, error) {
	var v domain.Visit
	var visitType, notes *string
	if err := row.Scan(&v.ID, &v.ClientID, &v.CaregiverID, &v.Window.Start, &v.Window.End,
		&v.ActualStart, &v.ActualEnd, &v.Status, &visitType, &v.BillableHours, &notes); err != nil {
		return nil, err
	}
	if visitType != nil {
		v.Type = domain.VisitType(*visitType)
	}
	if notes != nil {
		v.Notes = *notes
	}
	return &v, nil
}

func (d *DB) loadVisitChildren(ctx context.Context, v *domain.Visit) error {
	taskRows, err := d.pool.Query(ctx, `
		SELECT id, task_name, category, is_completed, completed_at, notes
		FROM visit_task WHERE visit_id = $1 ORDER BY id
	`, v.ID)
	if err != nil {
		return mapError("query visit tasks", err)
	}
	for taskRows.Next() {
		var t domain.VisitTask
		var notes *string
		if err := taskRows.Scan(&t.ID, &t.TaskName, &t.Category, &t.IsCompleted,
			&t.CompletedAt, &notes); err != nil {
			taskRows.Close()
			return fmt.Errorf("failed to scan visit task: %w", err)
		}
		if notes != nil {
			t.Notes = *notes
		}
		v.Tasks = append(v.Tasks, t)
	}
	taskRows.Close()
	if err := taskRows.Err(); err != nil {
		return fmt.Errorf("error iterating visit tasks: %w", err)
	}

	events, err := loadEVVEvents(ctx, d.pool, v.ID)
	if err != nil {
		return err
	}
	v.EVVEvents = events
	return nil
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func loadEVVEvents(ctx context.Context, q querier, visitID string) ([]domain.EVVEvent, error) {
	rows, err := q.Query(ctx, `
		SELECT id, visit_id, event_type, event_timestamp, latitude, longitude, pair
		FROM evv_event WHERE visit_id = $1 ORDER BY event_timestamp
	`, visitID)
	if err != nil {
		return nil, mapError("query evv events", err)
	}
	defer rows.Close()

	var events []domain.EVVEvent
	for rows.Next() {
		var e domain.EVVEvent
		if err := rows.Scan(&e.ID, &e.VisitID, &e.Type, &e.Timestamp,
			&e.Latitude, &e.Longitude, &e.Pair); err != nil {
			return nil, fmt.Errorf("failed to scan evv event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating evv events: %w", err)
	}
	return events, nil
}

// ListBlockingVisits returns assigned visits in a blocking status whose
// scheduled window overlaps the given one. Touching endpoints do not overlap.
func (d *DB) ListBlockingVisits(ctx context.Context, window domain.VisitWindow) ([]*domain.Visit, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, client_id, caregiver_id, scheduled_start, scheduled_end,
			actual_start, actual_end, status, visit_type, billable_hours, notes
		FROM visit
		WHERE caregiver_id IS NOT NULL
			AND status IN ('SCHEDULED', 'COMPLETED')
			AND scheduled_start < $2
			AND scheduled_end > $1
		ORDER BY scheduled_start, id
	`, window.Start, window.End)
	if err != nil {
		return nil, mapError("query blocking visits", err)
	}
	defer rows.Close()

	var visits []*domain.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating visits: %w", err)
	}
	return visits, nil
}

// AssignCaregiver atomically assigns a caregiver to an unassigned visit. The
// update re-checks inside a serializable transaction that the visit is still
// unassigned and the caregiver has no overlapping blocking visit; losing
// either race returns domain.ErrConflictingAssignment.
func (d *DB) AssignCaregiver(ctx context.Context, visitID, caregiverID string) error {
	tx, err := d.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE visit v SET caregiver_id = $2
		WHERE v.id = $1
			AND v.status = 'SCHEDULED'
			AND v.caregiver_id IS NULL
			AND NOT EXISTS (
				SELECT 1 FROM visit o
				WHERE o.caregiver_id = $2
					AND o.status IN ('SCHEDULED', 'COMPLETED')
					AND o.scheduled_start < v.scheduled_end
					AND o.scheduled_end > v.scheduled_start
			)
	`, visitID, caregiverID)
	if err != nil {
		return mapError("assign caregiver", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM visit WHERE id = $1)`, visitID).Scan(&exists); err != nil {
			return mapError("check visit exists", err)
		}
		if !exists {
			return fmt.Errorf("visit %s: %w", visitID, domain.ErrInvalidReference)
		}
		return fmt.Errorf("visit %s caregiver %s: %w", visitID, caregiverID, domain.ErrConflictingAssignment)
	}

	if err := tx.Commit(ctx); err != nil {
		return mapError("commit assignment", err)
	}
	return nil
}

// UpdateVisit persists status, actual times, billable hours, notes and task
// completion state. Scheduling fields and EVV events are immutable here.
func (d *DB) UpdateVisit(ctx context.Context, visit *domain.Visit) error {
	if err := visit.Validate(); err != nil {
		return err
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE visit SET actual_start = $2, actual_end = $3, status = $4,
			billable_hours = $5, notes = $6
		WHERE id = $1
	`, visit.ID, visit.ActualStart, visit.ActualEnd, visit.Status,
		visit.BillableHours, nullString(visit.Notes))
	if err != nil {
		return mapError("update visit", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("visit %s: %w", visit.ID, domain.ErrInvalidReference)
	}

	for _, t := range visit.Tasks {
		_, err := tx.Exec(ctx, `
			UPDATE visit_task SET is_completed = $2, completed_at = $3, notes = $4
			WHERE id = $1 AND visit_id = $5
		`, t.ID, t.IsCompleted, t.CompletedAt, nullString(t.Notes), visit.ID)
		if err != nil {
			return mapError("update visit task", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AppendEVVEvent validates the event against the visit's existing sequence
// and persists it. The visit row is locked so two concurrent punches cannot
// both validate against the same stale sequence.
func (d *DB) AppendEVVEvent(ctx context.Context, visitID string, eventType domain.EVVEventType,
	ts time.Time, lat, lon float64) (*domain.EVVEvent, error) {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	v, err := scanVisit(tx.QueryRow(ctx, `
		SELECT id, client_id, caregiver_id, scheduled_start, scheduled_end,
			actual_start, actual_end, status, visit_type, billable_hours, notes
		FROM visit WHERE id = $1 FOR UPDATE
	`, visitID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("visit %s: %w", visitID, domain.ErrInvalidReference)
		}
		return nil, mapError("query visit for evv", err)
	}

	v.EVVEvents, err = loadEVVEvents(ctx, tx, visitID)
	if err != nil {
		return nil, err
	}

	event, err := v.AppendEVV(eventType, ts, lat, lon)
	if err != nil {
		return nil, err
	}
	event.ID = uuid.New().String()

	_, err = tx.Exec(ctx, `
		INSERT INTO evv_event (id, visit_id, event_type, event_timestamp, latitude, longitude, pair)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, event.ID, event.VisitID, event.Type, event.Timestamp, event.Latitude, event.Longitude, event.Pair)
	if err != nil {
		return nil, mapError("insert evv event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return event, nil
}

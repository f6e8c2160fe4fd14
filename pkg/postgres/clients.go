package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/caringcompass/carematch/pkg/domain"
)

// CreateClient writes the whole enrollment graph (profile, address,
// preferences, emergency contact, plan with goals and tasks) in one
// transaction. Validation runs first so nothing is written for a rejected
// graph; any mid-transaction failure rolls the whole graph back.
func (d *DB) CreateClient(ctx context.Context, client *domain.ClientProfile) error {
	if err := client.Validate(); err != nil {
		return err
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	addressID, err := insertAddress(ctx, tx, client.Address)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO client_profile (id, email, first_name, last_name, date_of_birth, gender,
			primary_phone, status, enrollment_date, address_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, client.ID, client.Email, client.FirstName, client.LastName, client.DateOfBirth,
		nullString(string(client.Gender)), client.PrimaryPhone, client.Status, client.EnrollmentDate, addressID)
	if err != nil {
		return mapError("insert client profile", err)
	}

	if ec := client.EmergencyContact; ec != nil {
		ecAddrID, err := insertAddress(ctx, tx, ec.Address)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO emergency_contact (id, client_id, name, relationship, primary_phone, address_id)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, uuid.New().String(), client.ID, ec.Name, ec.Relationship, ec.PrimaryPhone, ecAddrID)
		if err != nil {
			return mapError("insert emergency contact", err)
		}
	}

	if p := client.Preferences; p != nil {
		var gender *string
		if p.GenderPreference != nil {
			g := string(*p.GenderPreference)
			gender = &g
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO client_preferences (client_id, gender_preference, language_preference,
				pet_allergies, smoking_policy, special_requests)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, client.ID, gender, p.LanguagePreference, p.PetAllergies, p.SmokingPolicy, p.SpecialRequests)
		if err != nil {
			return mapError("insert client preferences", err)
		}
	}

	if client.Plan != nil {
		if err := insertPlan(ctx, tx, client.ID, client.Plan); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertAddress(ctx context.Context, tx pgx.Tx, addr *domain.Address) (*string, error) {
	if addr == nil {
		return nil, nil
	}
	id := uuid.New().String()
	_, err := tx.Exec(ctx, `
		INSERT INTO address (id, street1, street2, city, state, zip_code, country, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, id, addr.Street1, addr.Street2, addr.City, addr.State, addr.ZipCode,
		defaultCountry(addr.Country), addr.Latitude, addr.Longitude)
	if err != nil {
		return nil, mapError("insert address", err)
	}
	return &id, nil
}

func insertPlan(ctx context.Context, tx pgx.Tx, clientID string, plan *domain.PlanOfCare) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	plan.ClientID = clientID

	_, err := tx.Exec(ctx, `
		INSERT INTO plan_of_care (id, client_id, effective_date, expiration_date,
			total_weekly_hours, status, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, plan.ID, clientID, plan.EffectiveDate, plan.ExpirationDate,
		plan.TotalWeeklyHours, plan.Status, plan.ApprovedAt)
	if err != nil {
		return mapError("insert plan of care", err)
	}

	for i := range plan.Goals {
		g := &plan.Goals[i]
		if g.ID == "" {
			g.ID = uuid.New().String()
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO care_goal (id, plan_id, title, description, priority, status)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, g.ID, plan.ID, g.Title, g.Description, g.Priority, g.Status)
		if err != nil {
			return mapError("insert care goal", err)
		}
	}

	for i := range plan.Tasks {
		t := &plan.Tasks[i]
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO service_task (id, plan_id, name, description, category, frequency,
				estimated_duration_minutes, required_skills, is_required)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, t.ID, plan.ID, t.Name, t.Description, t.Category, t.Frequency,
			int(t.EstimatedDur.Minutes()), skillStrings(t.RequiredSkills), t.IsRequired)
		if err != nil {
			return mapError("insert service task", err)
		}
	}

	return nil
}

// GetClient loads a client profile with its address and preferences. The
// current plan is loaded separately via GetPlans.
func (d *DB) GetClient(ctx context.Context, id string) (*domain.ClientProfile, error) {
	var c domain.ClientProfile
	var gender, phone *string
	var addrID *string

	err := d.pool.QueryRow(ctx, `
		SELECT id, email, first_name, last_name, date_of_birth, gender, primary_phone,
			status, enrollment_date, address_id
		FROM client_profile WHERE id = $1
	`, id).Scan(&c.ID, &c.Email, &c.FirstName, &c.LastName, &c.DateOfBirth, &gender,
		&phone, &c.Status, &c.EnrollmentDate, &addrID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("client %s: %w", id, domain.ErrInvalidReference)
		}
		return nil, mapError("query client profile", err)
	}
	if gender != nil {
		c.Gender = domain.Gender(*gender)
	}
	if phone != nil {
		c.PrimaryPhone = *phone
	}

	if addrID != nil {
		c.Address, err = d.getAddress(ctx, *addrID)
		if err != nil {
			return nil, err
		}
	}

	return &c, nil
}

func (d *DB) getAddress(ctx context.Context, id string) (*domain.Address, error) {
	var a domain.Address
	var street2 *string
	err := d.pool.QueryRow(ctx, `
		SELECT street1, street2, city, state, zip_code, country, latitude, longitude
		FROM address WHERE id = $1
	`, id).Scan(&a.Street1, &street2, &a.City, &a.State, &a.ZipCode, &a.Country,
		&a.Latitude, &a.Longitude)
	if err != nil {
		return nil, mapError("query address", err)
	}
	if street2 != nil {
		a.Street2 = *street2
	}
	return &a, nil
}

// GetPlans loads all plans of care for a client, each with its goals and
// service tasks.
func (d *DB) GetPlans(ctx context.Context, clientID string) ([]*domain.PlanOfCare, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, client_id, effective_date, expiration_date, total_weekly_hours, status, approved_at
		FROM plan_of_care WHERE client_id = $1
		ORDER BY effective_date DESC
	`, clientID)
	if err != nil {
		return nil, mapError("query plans of care", err)
	}
	defer rows.Close()

	var plans []*domain.PlanOfCare
	for rows.Next() {
		var p domain.PlanOfCare
		if err := rows.Scan(&p.ID, &p.ClientID, &p.EffectiveDate, &p.ExpirationDate,
			&p.TotalWeeklyHours, &p.Status, &p.ApprovedAt); err != nil {
			return nil, fmt.Errorf("failed to scan plan of care: %w", err)
		}
		plans = append(plans, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plans: %w", err)
	}

	for _, p := range plans {
		if err := d.loadPlanChildren(ctx, p); err != nil {
			return nil, err
		}
	}
	return plans, nil
}

func (d *DB) loadPlanChildren(ctx context.Context, p *domain.PlanOfCare) error {
	goalRows, err := d.pool.Query(ctx, `
		SELECT id, title, description, priority, status
		FROM care_goal WHERE plan_id = $1 ORDER BY id
	`, p.ID)
	if err != nil {
		return mapError("query care goals", err)
	}
	for goalRows.Next() {
		var g domain.CareGoal
		var desc *string
		if err := goalRows.Scan(&g.ID, &g.Title, &desc, &g.Priority, &g.Status); err != nil {
			goalRows.Close()
			return fmt.Errorf("failed to scan care goal: %w", err)
		}
		if desc != nil {
			g.Description = *desc
		}
		p.Goals = append(p.Goals, g)
	}
	goalRows.Close()
	if err := goalRows.Err(); err != nil {
		return fmt.Errorf("error iterating care goals: %w", err)
	}

	taskRows, err := d.pool.Query(ctx, `
		SELECT id, name, description, category, frequency, estimated_duration_minutes,
			required_skills, is_required
		FROM service_task WHERE plan_id = $1 ORDER BY id
	`, p.ID)
	if err != nil {
		return mapError("query service tasks", err)
	}
	for taskRows.Next() {
		var t domain.ServiceTask
		var desc *string
		var minutes int
		var skills []string
		if err := taskRows.Scan(&t.ID, &t.Name, &desc, &t.Category, &t.Frequency,
			&minutes, &skills, &t.IsRequired); err != nil {
			taskRows.Close()
			return fmt.Errorf("failed to scan service task: %w", err)
		}
		if desc != nil {
			t.Description = *desc
		}
		t.EstimatedDur = minutesToDuration(minutes)
		for _, s := range skills {
			t.RequiredSkills = append(t.RequiredSkills, domain.Skill(s))
		}
		p.Tasks = append(p.Tasks, t)
	}
	taskRows.Close()
	if err := taskRows.Err(); err != nil {
		return fmt.Errorf("error iterating service tasks: %w", err)
	}

	return nil
}

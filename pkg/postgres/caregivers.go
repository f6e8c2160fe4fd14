package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/caringcompass/carematch/pkg/db"
	"github.com/caringcompass/carematch/pkg/domain"
)

// CreateCaregiver writes the caregiver graph (profile, address, skills,
// languages, credentials, availability) in one transaction.
func (d *DB) CreateCaregiver(ctx context.Context, caregiver *domain.CaregiverProfile) error {
	if err := caregiver.Validate(); err != nil {
		return err
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	addressID, err := insertAddress(ctx, tx, caregiver.Address)
	if err != nil {
		return err
	}

	p := caregiver.Preferences
	_, err = tx.Exec(ctx, `
		INSERT INTO caregiver_profile (id, email, first_name, last_name, employee_id, gender,
			primary_phone, hire_date, status, employment_type, address_id,
			max_travel_distance, available_for_emergency, transportation_available, average_rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, caregiver.ID, caregiver.Email, caregiver.FirstName, caregiver.LastName,
		nullString(caregiver.EmployeeID), nullString(string(caregiver.Gender)),
		nullString(caregiver.PrimaryPhone), caregiver.HireDate, caregiver.Status,
		nullString(string(caregiver.EmploymentType)), addressID,
		p.MaxTravelDistance, p.AvailableForEmergency, p.TransportationAvail, caregiver.AverageRating)
	if err != nil {
		return mapError("insert caregiver profile", err)
	}

	for _, s := range caregiver.Skills {
		_, err := tx.Exec(ctx, `
			INSERT INTO caregiver_skill (caregiver_id, skill, level) VALUES ($1, $2, $3)
		`, caregiver.ID, s.Skill, s.Level)
		if err != nil {
			return mapError("insert caregiver skill", err)
		}
	}

	for _, l := range caregiver.Languages {
		_, err := tx.Exec(ctx, `
			INSERT INTO caregiver_language (caregiver_id, language, proficiency) VALUES ($1, $2, $3)
		`, caregiver.ID, l.Language, l.Proficiency)
		if err != nil {
			return mapError("insert caregiver language", err)
		}
	}

	for i := range caregiver.Credentials {
		c := &caregiver.Credentials[i]
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		c.CaregiverID = caregiver.ID
		_, err := tx.Exec(ctx, `
			INSERT INTO credential (id, caregiver_id, type, credential_number,
				issuing_organization, issue_date, expiration_date, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, c.ID, caregiver.ID, c.Type, nullString(c.Number), nullString(c.IssuingOrg),
			c.IssueDate, c.ExpirationDate, c.Status)
		if err != nil {
			return mapError("insert credential", err)
		}
	}

	for _, w := range caregiver.Availability {
		_, err := tx.Exec(ctx, `
			INSERT INTO availability (id, caregiver_id, day_of_week, start_minute, end_minute)
			VALUES ($1, $2, $3, $4, $5)
		`, uuid.New().String(), caregiver.ID, int(w.Day), int(w.Range.Start), int(w.Range.End))
		if err != nil {
			return mapError("insert availability", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetCaregiver loads one full caregiver profile.
func (d *DB) GetCaregiver(ctx context.Context, id string) (*domain.CaregiverProfile, error) {
	caregivers, err := d.queryCaregivers(ctx, "WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(caregivers) == 0 {
		return nil, fmt.Errorf("caregiver %s: %w", id, domain.ErrInvalidReference)
	}
	return caregivers[0], nil
}

// ListCaregivers loads every caregiver with the full graph the matching
// engine inspects. The agency roster is small enough to load whole.
func (d *DB) ListCaregivers(ctx context.Context) ([]*domain.CaregiverProfile, error) {
	return d.queryCaregivers(ctx, "")
}

func (d *DB) queryCaregivers(ctx context.Context, where string, args ...any) ([]*domain.CaregiverProfile, error) {
	rows, err := d.pool.Query(ctx, fmt.Sprintf(`
		SELECT id, email, first_name, last_name, employee_id, gender, primary_phone,
			hire_date, status, employment_type, address_id,
			max_travel_distance, available_for_emergency, transportation_available, average_rating
		FROM caregiver_profile %s ORDER BY id
	`, where), args...)
	if err != nil {
		return nil, mapError("query caregiver profiles", err)
	}
	defer rows.Close()

	var caregivers []*domain.CaregiverProfile
	addressIDs := make(map[string]*string)
	for rows.Next() {
		var c domain.CaregiverProfile
		var employeeID, gender, phone, employment, addrID *string
		if err := rows.Scan(&c.ID, &c.Email, &c.FirstName, &c.LastName, &employeeID,
			&gender, &phone, &c.HireDate, &c.Status, &employment, &addrID,
			&c.Preferences.MaxTravelDistance, &c.Preferences.AvailableForEmergency,
			&c.Preferences.TransportationAvail, &c.AverageRating); err != nil {
			return nil, fmt.Errorf("failed to scan caregiver profile: %w", err)
		}
		if employeeID != nil {
			c.EmployeeID = *employeeID
		}
		if gender != nil {
			c.Gender = domain.Gender(*gender)
		}
		if phone != nil {
			c.PrimaryPhone = *phone
		}
		if employment != nil {
			c.EmploymentType = domain.EmploymentType(*employment)
		}
		addressIDs[c.ID] = addrID
		caregivers = append(caregivers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating caregiver profiles: %w", err)
	}

	for _, c := range caregivers {
		if addrID := addressIDs[c.ID]; addrID != nil {
			c.Address, err = d.getAddress(ctx, *addrID)
			if err != nil {
				return nil, err
			}
		}
		if err := d.loadCaregiverChildren(ctx, c); err != nil {
			return nil, err
		}
	}
	return caregivers, nil
}

func (d *DB) loadCaregiverChildren(ctx context.Context, c *domain.CaregiverProfile) error {
	skillRows, err := d.pool.Query(ctx, `
		SELECT skill, level FROM caregiver_skill WHERE caregiver_id = $1 ORDER BY skill
	`, c.ID)
	if err != nil {
		return mapError("query caregiver skills", err)
	}
	for skillRows.Next() {
		var s domain.SkillEntry
		if err := skillRows.Scan(&s.Skill, &s.Level); err != nil {
			skillRows.Close()
			return fmt.Errorf("failed to scan caregiver skill: %w", err)
		}
		c.Skills = append(c.Skills, s)
	}
	skillRows.Close()
	if err := skillRows.Err(); err != nil {
		return fmt.Errorf("error iterating caregiver skills: %w", err)
	}

	langRows, err := d.pool.Query(ctx, `
		SELECT language, proficiency FROM caregiver_language WHERE caregiver_id = $1 ORDER BY language
	`, c.ID)
	if err != nil {
		return mapError("query caregiver languages", err)
	}
	for langRows.Next() {
		var l domain.LanguageEntry
		if err := langRows.Scan(&l.Language, &l.Proficiency); err != nil {
			langRows.Close()
			return fmt.Errorf("failed to scan caregiver language: %w", err)
		}
		c.Languages = append(c.Languages, l)
	}
	langRows.Close()
	if err := langRows.Err(); err != nil {
		return fmt.Errorf("error iterating caregiver languages: %w", err)
	}

	credRows, err := d.pool.Query(ctx, `
		SELECT id, caregiver_id, type, credential_number, issuing_organization,
			issue_date, expiration_date, status
		FROM credential WHERE caregiver_id = $1 ORDER BY id
	`, c.ID)
	if err != nil {
		return mapError("query credentials", err)
	}
	for credRows.Next() {
		cred, err := scanCredential(credRows)
		if err != nil {
			credRows.Close()
			return err
		}
		c.Credentials = append(c.Credentials, *cred)
	}
	credRows.Close()
	if err := credRows.Err(); err != nil {
		return fmt.Errorf("error iterating credentials: %w", err)
	}

	availRows, err := d.pool.Query(ctx, `
		SELECT day_of_week, start_minute, end_minute
		FROM availability WHERE caregiver_id = $1 ORDER BY day_of_week, start_minute
	`, c.ID)
	if err != nil {
		return mapError("query availability", err)
	}
	for availRows.Next() {
		var day, start, end int
		if err := availRows.Scan(&day, &start, &end); err != nil {
			availRows.Close()
			return fmt.Errorf("failed to scan availability window: %w", err)
		}
		c.Availability = append(c.Availability, domain.AvailabilityWindow{
			Day:   time.Weekday(day),
			Range: domain.ClockRange{Start: domain.ClockTime(start), End: domain.ClockTime(end)},
		})
	}
	availRows.Close()
	if err := availRows.Err(); err != nil {
		return fmt.Errorf("error iterating availability windows: %w", err)
	}

	return nil
}

func scanCredential(row pgx.Row) (*domain.Credential, error) {
	var cred domain.Credential
	var number, org *string
	if err := row.Scan(&cred.ID, &cred.CaregiverID, &cred.Type, &number, &org,
		&cred.IssueDate, &cred.ExpirationDate, &cred.Status); err != nil {
		return nil, fmt.Errorf("failed to scan credential: %w", err)
	}
	if number != nil {
		cred.Number = *number
	}
	if org != nil {
		cred.IssuingOrg = *org
	}
	return &cred, nil
}

// ExpiringCredentials returns VERIFIED credentials lapsing within the window,
// soonest first, with the holder's name for the alert report.
func (d *DB) ExpiringCredentials(ctx context.Context, now time.Time, withinDays int) ([]db.ExpiringCredential, error) {
	cutoff := now.AddDate(0, 0, withinDays)
	rows, err := d.pool.Query(ctx, `
		SELECT c.id, c.caregiver_id, c.type, c.credential_number, c.issuing_organization,
			c.issue_date, c.expiration_date, c.status,
			p.first_name || ' ' || p.last_name
		FROM credential c
		JOIN caregiver_profile p ON p.id = c.caregiver_id
		WHERE c.status = 'VERIFIED'
			AND c.expiration_date IS NOT NULL
			AND c.expiration_date >= $1
			AND c.expiration_date <= $2
		ORDER BY c.expiration_date, c.id
	`, now, cutoff)
	if err != nil {
		return nil, mapError("query expiring credentials", err)
	}
	defer rows.Close()

	var out []db.ExpiringCredential
	for rows.Next() {
		var cred domain.Credential
		var number, org *string
		var name string
		if err := rows.Scan(&cred.ID, &cred.CaregiverID, &cred.Type, &number, &org,
			&cred.IssueDate, &cred.ExpirationDate, &cred.Status, &name); err != nil {
			return nil, fmt.Errorf("failed to scan expiring credential: %w", err)
		}
		if number != nil {
			cred.Number = *number
		}
		if org != nil {
			cred.IssuingOrg = *org
		}
		out = append(out, db.ExpiringCredential{Credential: cred, CaregiverName: name})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expiring credentials: %w", err)
	}
	return out, nil
}

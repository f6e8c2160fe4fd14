package domain

import (
	"fmt"
	"time"
)

// Credential is a verifiable caregiver qualification (CNA, CPR, ...).
type Credential struct {
	ID             string
	CaregiverID    string
	Type           CredentialType
	Number         string
	IssuingOrg     string
	IssueDate      time.Time
	ExpirationDate *time.Time
	Status         CredentialStatus
}

// Validate checks enum domains and date ordering.
func (c *Credential) Validate() error {
	if !c.Type.Valid() {
		return fmt.Errorf("credential type %q: %w", c.Type, ErrInvalidValue)
	}
	if !c.Status.Valid() {
		return fmt.Errorf("credential status %q: %w", c.Status, ErrInvalidValue)
	}
	if c.ExpirationDate != nil && c.ExpirationDate.Before(c.IssueDate) {
		return fmt.Errorf("credential expires %s before issue %s: %w",
			c.ExpirationDate.Format("2006-01-02"), c.IssueDate.Format("2006-01-02"), ErrInvalidValue)
	}
	return nil
}

// UsableOn reports whether the credential counts for matching on the given
// date: status VERIFIED and either no expiration or expiration on or after
// the date. A credential expiring exactly on the visit date is still usable.
func (c *Credential) UsableOn(date time.Time) bool {
	if c.Status != CredentialVerified {
		return false
	}
	if c.ExpirationDate == nil {
		return true
	}
	return !truncateToDay(*c.ExpirationDate).Before(truncateToDay(date))
}

// ExpiresWithin reports whether a usable credential will lapse within the
// given number of days from now. Credentials without an expiration never do.
func (c *Credential) ExpiresWithin(now time.Time, days int) bool {
	if c.Status != CredentialVerified || c.ExpirationDate == nil {
		return false
	}
	cutoff := now.AddDate(0, 0, days)
	return !c.ExpirationDate.Before(now) && !c.ExpirationDate.After(cutoff)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

package domain

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Address is a postal address, optionally geocoded. Latitude/Longitude are
// nil until the geocoder has resolved them; matching treats missing
// coordinates as unknown rather than excluding.
type Address struct {
	Street1   string `validate:"required"`
	Street2   string
	City      string `validate:"required"`
	State     string `validate:"required"`
	ZipCode   string `validate:"required"`
	Country   string
	Latitude  *float64
	Longitude *float64
}

// Geocoded reports whether both coordinates are present.
func (a *Address) Geocoded() bool {
	return a != nil && a.Latitude != nil && a.Longitude != nil
}

// EmergencyContact is the person to call for a client.
type EmergencyContact struct {
	Name         string `validate:"required"`
	Relationship string
	PrimaryPhone string `validate:"required"`
	Address      *Address
}

// ClientPreferences constrain which caregivers a client is comfortable with.
type ClientPreferences struct {
	GenderPreference   *Gender
	LanguagePreference []string
	PetAllergies       bool
	SmokingPolicy      string
	SpecialRequests    string
}

// ClientProfile is a client of the agency together with the graph created at
// enrollment. The profile owns at most one plan of care per lifecycle state;
// exactly one may be ACTIVE at a time.
type ClientProfile struct {
	ID               string `validate:"required,uuid4"`
	Email            string `validate:"required,email"`
	FirstName        string `validate:"required"`
	LastName         string `validate:"required"`
	DateOfBirth      time.Time
	Gender           Gender
	PrimaryPhone     string
	Status           ClientStatus
	EnrollmentDate   time.Time
	Address          *Address
	EmergencyContact *EmergencyContact
	Preferences      *ClientPreferences
	Plan             *PlanOfCare
}

// Validate checks structural fields and enum domains. Uniqueness and
// reference integrity are enforced by the store.
func (c *ClientProfile) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("client profile: %v: %w", err, ErrInvalidValue)
	}
	if !c.Status.Valid() {
		return fmt.Errorf("client status %q: %w", c.Status, ErrInvalidValue)
	}
	if c.Gender != "" && !c.Gender.Valid() {
		return fmt.Errorf("client gender %q: %w", c.Gender, ErrInvalidValue)
	}
	if c.Address != nil {
		if err := validate.Struct(c.Address); err != nil {
			return fmt.Errorf("client address: %v: %w", err, ErrInvalidValue)
		}
	}
	if c.Plan != nil {
		if err := c.Plan.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CanScheduleOn reports whether a visit date is on or after enrollment.
func (c *ClientProfile) CanScheduleOn(date time.Time) bool {
	return !date.Before(c.EnrollmentDate)
}

// SkillEntry is one skill a caregiver holds, with a proficiency level.
type SkillEntry struct {
	Skill Skill
	Level ProficiencyLevel
}

// LanguageEntry is one language a caregiver speaks.
type LanguageEntry struct {
	Language    string
	Proficiency LanguageProficiency
}

// AvailabilityWindow is a recurring weekly window a caregiver can work.
type AvailabilityWindow struct {
	Day   time.Weekday
	Range ClockRange
}

// CaregiverPreferences hold matching-relevant caregiver settings.
type CaregiverPreferences struct {
	// MaxTravelDistance in kilometres. Zero means no stated limit.
	MaxTravelDistance     float64
	AvailableForEmergency bool
	TransportationAvail   bool
}

// CaregiverProfile is an agency caregiver with everything the matching
// engine inspects: skills, credentials, availability and preferences.
type CaregiverProfile struct {
	ID             string `validate:"required,uuid4"`
	Email          string `validate:"required,email"`
	FirstName      string `validate:"required"`
	LastName       string `validate:"required"`
	EmployeeID     string
	Gender         Gender
	PrimaryPhone   string
	HireDate       time.Time
	Status         CaregiverStatus
	EmploymentType EmploymentType
	Address        *Address
	Preferences    CaregiverPreferences
	Skills         []SkillEntry
	Languages      []LanguageEntry
	Credentials    []Credential
	Availability   []AvailabilityWindow
	// AverageRating is aggregated from completed-visit feedback, 0..5.
	AverageRating float64
}

// Validate checks structural fields, enum domains and availability windows.
func (c *CaregiverProfile) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("caregiver profile: %v: %w", err, ErrInvalidValue)
	}
	if !c.Status.Valid() {
		return fmt.Errorf("caregiver status %q: %w", c.Status, ErrInvalidValue)
	}
	if c.EmploymentType != "" && !c.EmploymentType.Valid() {
		return fmt.Errorf("employment type %q: %w", c.EmploymentType, ErrInvalidValue)
	}
	for _, s := range c.Skills {
		if !s.Skill.Valid() {
			return fmt.Errorf("skill %q: %w", s.Skill, ErrInvalidValue)
		}
		if !s.Level.Valid() {
			return fmt.Errorf("proficiency %q: %w", s.Level, ErrInvalidValue)
		}
	}
	for _, w := range c.Availability {
		if !w.Range.Valid() {
			return fmt.Errorf("availability window %s %s-%s: %w",
				w.Day, w.Range.Start, w.Range.End, ErrInvalidValue)
		}
	}
	for i := range c.Credentials {
		if err := c.Credentials[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// HasSkill reports whether the caregiver holds the skill at any proficiency.
func (c *CaregiverProfile) HasSkill(s Skill) bool {
	for _, entry := range c.Skills {
		if entry.Skill == s {
			return true
		}
	}
	return false
}

// AvailableFor reports whether every segment of the window is fully
// contained in one of the caregiver's availability windows for that weekday.
// A caregiver with zero availability records never matches. Partial overlap
// is rejected: available 08:00-12:00 does not cover a 10:00-14:00 visit.
func (c *CaregiverProfile) AvailableFor(window VisitWindow) bool {
	if len(c.Availability) == 0 {
		return false
	}
	segments, err := window.Segments()
	if err != nil {
		return false
	}
	for _, seg := range segments {
		if !c.coversSegment(seg) {
			return false
		}
	}
	return true
}

func (c *CaregiverProfile) coversSegment(seg DaySegment) bool {
	for _, w := range c.Availability {
		if w.Day == seg.Day && w.Range.Contains(seg.Range) {
			return true
		}
	}
	return false
}

// HasUsableCredential reports whether the caregiver holds at least one
// VERIFIED, unexpired credential of any of the given types as of the date.
func (c *CaregiverProfile) HasUsableCredential(types []CredentialType, asOf time.Time) bool {
	for _, cred := range c.Credentials {
		for _, t := range types {
			if cred.Type == t && cred.UsableOn(asOf) {
				return true
			}
		}
	}
	return false
}

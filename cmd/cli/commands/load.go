package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/caringcompass/carematch/pkg/domain"
)

// The add commands read enrollment files in YAML form and map them onto the
// domain graph. Dates are "2006-01-02"; clock times are "HH:MM".

type addressFile struct {
	Street1   string   `yaml:"street1"`
	Street2   string   `yaml:"street2,omitempty"`
	City      string   `yaml:"city"`
	State     string   `yaml:"state"`
	ZipCode   string   `yaml:"zipCode"`
	Country   string   `yaml:"country,omitempty"`
	Latitude  *float64 `yaml:"latitude,omitempty"`
	Longitude *float64 `yaml:"longitude,omitempty"`
}

type taskFile struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description,omitempty"`
	Category        string   `yaml:"category"`
	Frequency       string   `yaml:"frequency"`
	DurationMinutes int      `yaml:"durationMinutes,omitempty"`
	RequiredSkills  []string `yaml:"requiredSkills,omitempty"`
	IsRequired      bool     `yaml:"isRequired"`
}

type goalFile struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Priority    string `yaml:"priority"`
	Status      string `yaml:"status"`
}

type planFile struct {
	EffectiveDate  string     `yaml:"effectiveDate"`
	ExpirationDate string     `yaml:"expirationDate,omitempty"`
	WeeklyHours    float64    `yaml:"weeklyHours,omitempty"`
	Status         string     `yaml:"status"`
	Goals          []goalFile `yaml:"goals,omitempty"`
	Tasks          []taskFile `yaml:"tasks,omitempty"`
}

type clientFile struct {
	Email          string       `yaml:"email"`
	FirstName      string       `yaml:"firstName"`
	LastName       string       `yaml:"lastName"`
	DateOfBirth    string       `yaml:"dateOfBirth,omitempty"`
	Gender         string       `yaml:"gender,omitempty"`
	PrimaryPhone   string       `yaml:"primaryPhone,omitempty"`
	EnrollmentDate string       `yaml:"enrollmentDate"`
	Address        *addressFile `yaml:"address,omitempty"`
	Plan           *planFile    `yaml:"plan,omitempty"`
}

type credentialFile struct {
	Type           string `yaml:"type"`
	Number         string `yaml:"number,omitempty"`
	IssuingOrg     string `yaml:"issuingOrg,omitempty"`
	IssueDate      string `yaml:"issueDate"`
	ExpirationDate string `yaml:"expirationDate,omitempty"`
	Status         string `yaml:"status"`
}

type availabilityFile struct {
	Day   string `yaml:"day"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type caregiverFile struct {
	Email             string             `yaml:"email"`
	FirstName         string             `yaml:"firstName"`
	LastName          string             `yaml:"lastName"`
	EmployeeID        string             `yaml:"employeeID,omitempty"`
	Gender            string             `yaml:"gender,omitempty"`
	PrimaryPhone      string             `yaml:"primaryPhone,omitempty"`
	HireDate          string             `yaml:"hireDate,omitempty"`
	Status            string             `yaml:"status"`
	EmploymentType    string             `yaml:"employmentType,omitempty"`
	MaxTravelDistance float64            `yaml:"maxTravelDistance,omitempty"`
	Address           *addressFile       `yaml:"address,omitempty"`
	Skills            map[string]string  `yaml:"skills,omitempty"`
	Languages         map[string]string  `yaml:"languages,omitempty"`
	Credentials       []credentialFile   `yaml:"credentials,omitempty"`
	Availability      []availabilityFile `yaml:"availability,omitempty"`
}

func loadClientFile(path string) (*domain.ClientProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read client file: %w", err)
	}

	var file clientFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse client file: %w", err)
	}

	client := &domain.ClientProfile{
		ID:           uuid.New().String(),
		Email:        file.Email,
		FirstName:    file.FirstName,
		LastName:     file.LastName,
		Gender:       domain.Gender(file.Gender),
		PrimaryPhone: file.PrimaryPhone,
		Status:       domain.ClientActive,
		Address:      file.Address.toDomain(),
	}
	if client.DateOfBirth, err = parseOptionalDate(file.DateOfBirth); err != nil {
		return nil, err
	}
	if client.EnrollmentDate, err = parseDate(file.EnrollmentDate, "enrollmentDate"); err != nil {
		return nil, err
	}

	if file.Plan != nil {
		plan, err := file.Plan.toDomain()
		if err != nil {
			return nil, err
		}
		client.Plan = plan
	}

	return client, nil
}

func loadCaregiverFile(path string) (*domain.CaregiverProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read caregiver file: %w", err)
	}

	var file caregiverFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse caregiver file: %w", err)
	}

	caregiver := &domain.CaregiverProfile{
		ID:             uuid.New().String(),
		Email:          file.Email,
		FirstName:      file.FirstName,
		LastName:       file.LastName,
		EmployeeID:     file.EmployeeID,
		Gender:         domain.Gender(file.Gender),
		PrimaryPhone:   file.PrimaryPhone,
		Status:         domain.CaregiverStatus(file.Status),
		EmploymentType: domain.EmploymentType(file.EmploymentType),
		Address:        file.Address.toDomain(),
		Preferences: domain.CaregiverPreferences{
			MaxTravelDistance: file.MaxTravelDistance,
		},
	}
	if caregiver.Status == "" {
		caregiver.Status = domain.CaregiverActive
	}
	if caregiver.HireDate, err = parseOptionalDate(file.HireDate); err != nil {
		return nil, err
	}

	for skill, level := range file.Skills {
		caregiver.Skills = append(caregiver.Skills, domain.SkillEntry{
			Skill: domain.Skill(skill),
			Level: domain.ProficiencyLevel(level),
		})
	}
	for language, proficiency := range file.Languages {
		caregiver.Languages = append(caregiver.Languages, domain.LanguageEntry{
			Language:    language,
			Proficiency: domain.LanguageProficiency(proficiency),
		})
	}

	for _, c := range file.Credentials {
		cred := domain.Credential{
			Type:       domain.CredentialType(c.Type),
			Number:     c.Number,
			IssuingOrg: c.IssuingOrg,
			Status:     domain.CredentialStatus(c.Status),
		}
		if cred.IssueDate, err = parseDate(c.IssueDate, "issueDate"); err != nil {
			return nil, err
		}
		if cred.ExpirationDate, err = parseOptionalDatePtr(c.ExpirationDate); err != nil {
			return nil, err
		}
		caregiver.Credentials = append(caregiver.Credentials, cred)
	}

	for _, w := range file.Availability {
		day, err := parseWeekday(w.Day)
		if err != nil {
			return nil, err
		}
		start, err := domain.ParseClockTime(w.Start)
		if err != nil {
			return nil, err
		}
		end, err := domain.ParseClockTime(w.End)
		if err != nil {
			return nil, err
		}
		caregiver.Availability = append(caregiver.Availability, domain.AvailabilityWindow{
			Day:   day,
			Range: domain.ClockRange{Start: start, End: end},
		})
	}

	return caregiver, nil
}

func (a *addressFile) toDomain() *domain.Address {
	if a == nil {
		return nil
	}
	return &domain.Address{
		Street1:   a.Street1,
		Street2:   a.Street2,
		City:      a.City,
		State:     a.State,
		ZipCode:   a.ZipCode,
		Country:   a.Country,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
	}
}

func (p *planFile) toDomain() (*domain.PlanOfCare, error) {
	plan := &domain.PlanOfCare{
		ID:               uuid.New().String(),
		TotalWeeklyHours: p.WeeklyHours,
		Status:           domain.PlanStatus(p.Status),
	}

	var err error
	if plan.EffectiveDate, err = parseDate(p.EffectiveDate, "effectiveDate"); err != nil {
		return nil, err
	}
	if plan.ExpirationDate, err = parseOptionalDatePtr(p.ExpirationDate); err != nil {
		return nil, err
	}

	for _, g := range p.Goals {
		plan.Goals = append(plan.Goals, domain.CareGoal{
			Title:       g.Title,
			Description: g.Description,
			Priority:    domain.GoalPriority(g.Priority),
			Status:      domain.GoalStatus(g.Status),
		})
	}

	for _, t := range p.Tasks {
		task := domain.ServiceTask{
			Name:         t.Name,
			Description:  t.Description,
			Category:     domain.TaskCategory(t.Category),
			Frequency:    domain.TaskFrequency(t.Frequency),
			EstimatedDur: time.Duration(t.DurationMinutes) * time.Minute,
			IsRequired:   t.IsRequired,
		}
		for _, s := range t.RequiredSkills {
			task.RequiredSkills = append(task.RequiredSkills, domain.Skill(s))
		}
		plan.Tasks = append(plan.Tasks, task)
	}

	return plan, nil
}

func parseDate(s, field string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s %q: %w", field, s, err)
	}
	return t, nil
}

func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return parseDate(s, "date")
}

func parseOptionalDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s, "date")
	if err != nil {
		return nil, err
	}
	return &t, nil
}

var weekdays = map[string]time.Weekday{
	"SUNDAY":    time.Sunday,
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
}

func parseWeekday(s string) (time.Weekday, error) {
	if day, ok := weekdays[s]; ok {
		return day, nil
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}

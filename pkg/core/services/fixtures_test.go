package services

import (
	"time"

	"github.com/caringcompass/carematch/pkg/domain"
)

const (
	clientID     = "6f1f9a34-9f2e-4f5e-b9a1-0d6a3f6f4c01"
	caregiverAID = "0a6a1c6e-90b2-4a7a-8a41-4c1a2d3e4f01"
	caregiverBID = "1b7b2d7f-a1c3-4b8b-9b52-5d2b3e4f5a02"
	visitID      = "2c8c3e80-b2d4-4c9c-ac63-6e3c4f5a6b03"
)

// tuesdayWindow is 2024-03-05 09:00-11:00 UTC, a Tuesday.
func tuesdayWindow() domain.VisitWindow {
	return domain.VisitWindow{
		Start: time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 5, 11, 0, 0, 0, time.UTC),
	}
}

func testClient() *domain.ClientProfile {
	return &domain.ClientProfile{
		ID:             clientID,
		Email:          "edith@example.com",
		FirstName:      "Edith",
		LastName:       "Hale",
		Status:         domain.ClientActive,
		EnrollmentDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func activePlan() *domain.PlanOfCare {
	return &domain.PlanOfCare{
		ID:            "3d9d4f91-c3e5-4dad-bd74-7f4d5a6b7c04",
		ClientID:      clientID,
		EffectiveDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:        domain.PlanActive,
		Tasks: []domain.ServiceTask{
			{
				ID:             "4eae5aa2-d4f6-4ebe-ce85-8a5e6b7c8d05",
				Name:           "Morning personal care",
				Category:       domain.CategoryPersonalCare,
				Frequency:      domain.FrequencyDaily,
				EstimatedDur:   45 * time.Minute,
				RequiredSkills: []domain.Skill{domain.SkillPersonalCare},
				IsRequired:     true,
			},
		},
	}
}

func availableAllWeek() []domain.AvailabilityWindow {
	windows := make([]domain.AvailabilityWindow, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		windows = append(windows, domain.AvailabilityWindow{
			Day:   day,
			Range: domain.ClockRange{Start: 0, End: 24 * 60},
		})
	}
	return windows
}

func eligibleCaregiver(id string) *domain.CaregiverProfile {
	return &domain.CaregiverProfile{
		ID:        id,
		Email:     "caregiver@example.com",
		FirstName: "Rosa",
		LastName:  "Marsh",
		Status:    domain.CaregiverActive,
		Skills: []domain.SkillEntry{
			{Skill: domain.SkillPersonalCare, Level: domain.ProficiencyIntermediate},
		},
		Availability: availableAllWeek(),
	}
}

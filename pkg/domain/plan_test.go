package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan() *PlanOfCare {
	return &PlanOfCare{
		ID:            "plan-1",
		ClientID:      "client-1",
		EffectiveDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:        PlanActive,
		Tasks: []ServiceTask{
			{
				Name:           "Personal Care Assistance",
				Category:       CategoryPersonalCare,
				Frequency:      FrequencyDaily,
				RequiredSkills: []Skill{SkillPersonalCare},
				IsRequired:     true,
			},
			{
				Name:           "Medication Reminders",
				Category:       CategoryMedicationManagement,
				Frequency:      FrequencyDaily,
				RequiredSkills: []Skill{SkillMedicationReminder},
				IsRequired:     true,
			},
			{
				Name:           "Light Housekeeping",
				Category:       CategoryHouseholdTasks,
				Frequency:      FrequencyWeekly,
				RequiredSkills: []Skill{SkillLightHousekeeping},
				IsRequired:     false,
			},
		},
	}
}

func TestPlanOfCare_RequiredSkills_UnionOfRequiredTasks(t *testing.T) {
	plan := testPlan()

	required := plan.RequiredSkills()
	assert.Equal(t, []Skill{SkillMedicationReminder, SkillPersonalCare}, required)

	preferred := plan.PreferredSkills()
	assert.Equal(t, []Skill{SkillLightHousekeeping}, preferred)
}

func TestPlanOfCare_PreferredSkills_ExcludesAlreadyRequired(t *testing.T) {
	plan := testPlan()
	plan.Tasks = append(plan.Tasks, ServiceTask{
		Name:           "Bathing Support",
		Category:       CategoryPersonalCare,
		Frequency:      FrequencyWeekly,
		RequiredSkills: []Skill{SkillPersonalCare, SkillCompanionship},
		IsRequired:     false,
	})

	preferred := plan.PreferredSkills()
	assert.Equal(t, []Skill{SkillCompanionship, SkillLightHousekeeping}, preferred)
}

func TestPlanOfCare_EffectiveFor(t *testing.T) {
	plan := testPlan()
	plan.ExpirationDate = datePtr(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC))

	assert.True(t, plan.EffectiveFor(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	assert.True(t, plan.EffectiveFor(time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)), "effective on the effective date")
	assert.True(t, plan.EffectiveFor(time.Date(2024, 7, 15, 23, 0, 0, 0, time.UTC)), "effective on the expiration date")
	assert.False(t, plan.EffectiveFor(time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, plan.EffectiveFor(time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)))

	plan.Status = PlanDraft
	assert.False(t, plan.EffectiveFor(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPlanOfCare_Validate_DateOrdering(t *testing.T) {
	plan := testPlan()
	plan.ExpirationDate = datePtr(plan.EffectiveDate)
	assert.ErrorIs(t, plan.Validate(), ErrInvalidValue)

	plan.ExpirationDate = datePtr(plan.EffectiveDate.AddDate(0, 6, 0))
	assert.NoError(t, plan.Validate())
}

func TestPlanOfCare_Validate_EnumDomains(t *testing.T) {
	plan := testPlan()
	plan.Tasks[0].RequiredSkills = []Skill{"JUGGLING"}
	assert.ErrorIs(t, plan.Validate(), ErrInvalidValue)
}

func TestActivePlanFor(t *testing.T) {
	active := testPlan()
	expired := testPlan()
	expired.ID = "plan-0"
	expired.Status = PlanExpired

	plan, err := ActivePlanFor([]*PlanOfCare{expired, active}, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "plan-1", plan.ID)

	_, err = ActivePlanFor([]*PlanOfCare{expired}, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNoActivePlan)
}

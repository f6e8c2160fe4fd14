package domain

// Skill identifies a discrete care capability a caregiver can hold and a
// service task can require.
type Skill string

const (
	SkillPersonalCare       Skill = "PERSONAL_CARE"
	SkillMedicationReminder Skill = "MEDICATION_REMINDERS"
	SkillMealPreparation    Skill = "MEAL_PREPARATION"
	SkillLightHousekeeping  Skill = "LIGHT_HOUSEKEEPING"
	SkillCompanionship      Skill = "COMPANIONSHIP"
	SkillMobilityAssistance Skill = "MOBILITY_ASSISTANCE"
	SkillTransferAssistance Skill = "TRANSFER_ASSISTANCE"
	SkillTransportation     Skill = "TRANSPORTATION"
	SkillDementiaCare       Skill = "DEMENTIA_CARE"
	SkillWoundCare          Skill = "WOUND_CARE"
)

// Valid reports whether s is a known skill.
func (s Skill) Valid() bool {
	switch s {
	case SkillPersonalCare, SkillMedicationReminder, SkillMealPreparation,
		SkillLightHousekeeping, SkillCompanionship, SkillMobilityAssistance,
		SkillTransferAssistance, SkillTransportation, SkillDementiaCare,
		SkillWoundCare:
		return true
	}
	return false
}

// ProficiencyLevel grades a caregiver's skill. Matching treats any level as
// coverage; the level only informs coordinators.
type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "BEGINNER"
	ProficiencyIntermediate ProficiencyLevel = "INTERMEDIATE"
	ProficiencyAdvanced     ProficiencyLevel = "ADVANCED"
	ProficiencyExpert       ProficiencyLevel = "EXPERT"
)

func (p ProficiencyLevel) Valid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	}
	return false
}

// TaskCategory groups service tasks for display and for credential policy.
type TaskCategory string

const (
	CategoryPersonalCare         TaskCategory = "PERSONAL_CARE"
	CategoryNutrition            TaskCategory = "NUTRITION"
	CategoryHouseholdTasks       TaskCategory = "HOUSEHOLD_TASKS"
	CategoryMedicationManagement TaskCategory = "MEDICATION_MANAGEMENT"
	CategoryExerciseMobility     TaskCategory = "EXERCISE_MOBILITY"
	CategoryCompanionship        TaskCategory = "COMPANIONSHIP"
	CategoryTransportation       TaskCategory = "TRANSPORTATION"
)

func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryPersonalCare, CategoryNutrition, CategoryHouseholdTasks,
		CategoryMedicationManagement, CategoryExerciseMobility,
		CategoryCompanionship, CategoryTransportation:
		return true
	}
	return false
}

// TaskFrequency describes how often a service task recurs.
type TaskFrequency string

const (
	FrequencyDaily    TaskFrequency = "DAILY"
	FrequencyWeekly   TaskFrequency = "WEEKLY"
	FrequencyBiweekly TaskFrequency = "BIWEEKLY"
	FrequencyMonthly  TaskFrequency = "MONTHLY"
	FrequencyAsNeeded TaskFrequency = "AS_NEEDED"
)

func (f TaskFrequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyAsNeeded:
		return true
	}
	return false
}

// ClientStatus is the enrollment state of a client.
type ClientStatus string

const (
	ClientActive   ClientStatus = "ACTIVE"
	ClientInactive ClientStatus = "INACTIVE"
)

func (s ClientStatus) Valid() bool {
	return s == ClientActive || s == ClientInactive
}

// CaregiverStatus is the employment state of a caregiver.
type CaregiverStatus string

const (
	CaregiverActive   CaregiverStatus = "ACTIVE"
	CaregiverInactive CaregiverStatus = "INACTIVE"
	CaregiverOnLeave  CaregiverStatus = "ON_LEAVE"
)

func (s CaregiverStatus) Valid() bool {
	return s == CaregiverActive || s == CaregiverInactive || s == CaregiverOnLeave
}

// EmploymentType distinguishes full-time, part-time and per-diem staff.
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "FULL_TIME"
	EmploymentPartTime EmploymentType = "PART_TIME"
	EmploymentPerDiem  EmploymentType = "PER_DIEM"
)

func (e EmploymentType) Valid() bool {
	return e == EmploymentFullTime || e == EmploymentPartTime || e == EmploymentPerDiem
}

// PlanStatus is the lifecycle state of a plan of care.
type PlanStatus string

const (
	PlanDraft    PlanStatus = "DRAFT"
	PlanActive   PlanStatus = "ACTIVE"
	PlanExpired  PlanStatus = "EXPIRED"
	PlanArchived PlanStatus = "ARCHIVED"
)

func (s PlanStatus) Valid() bool {
	return s == PlanDraft || s == PlanActive || s == PlanExpired || s == PlanArchived
}

// GoalPriority ranks care goals.
type GoalPriority string

const (
	PriorityHigh   GoalPriority = "HIGH"
	PriorityMedium GoalPriority = "MEDIUM"
	PriorityLow    GoalPriority = "LOW"
)

func (p GoalPriority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// GoalStatus is the progress state of a care goal.
type GoalStatus string

const (
	GoalNotStarted GoalStatus = "NOT_STARTED"
	GoalInProgress GoalStatus = "IN_PROGRESS"
	GoalAchieved   GoalStatus = "ACHIEVED"
	GoalAbandoned  GoalStatus = "ABANDONED"
)

func (s GoalStatus) Valid() bool {
	return s == GoalNotStarted || s == GoalInProgress || s == GoalAchieved || s == GoalAbandoned
}

// CredentialType is a verifiable caregiver qualification category.
type CredentialType string

const (
	CredentialCNA             CredentialType = "CNA"
	CredentialHHA             CredentialType = "HHA"
	CredentialCPR             CredentialType = "CPR"
	CredentialFirstAid        CredentialType = "FIRST_AID"
	CredentialDriversLicense  CredentialType = "DRIVERS_LICENSE"
	CredentialBackgroundCheck CredentialType = "BACKGROUND_CHECK"
	CredentialTBTest          CredentialType = "TB_TEST"
)

func (t CredentialType) Valid() bool {
	switch t {
	case CredentialCNA, CredentialHHA, CredentialCPR, CredentialFirstAid,
		CredentialDriversLicense, CredentialBackgroundCheck, CredentialTBTest:
		return true
	}
	return false
}

// CredentialStatus is the verification state of a credential.
type CredentialStatus string

const (
	CredentialVerified CredentialStatus = "VERIFIED"
	CredentialPending  CredentialStatus = "PENDING"
	CredentialExpired  CredentialStatus = "EXPIRED"
	CredentialRejected CredentialStatus = "REJECTED"
)

func (s CredentialStatus) Valid() bool {
	return s == CredentialVerified || s == CredentialPending || s == CredentialExpired || s == CredentialRejected
}

// VisitStatus is the lifecycle state of a visit.
type VisitStatus string

const (
	VisitScheduled   VisitStatus = "SCHEDULED"
	VisitCompleted   VisitStatus = "COMPLETED"
	VisitCancelled   VisitStatus = "CANCELLED"
	VisitNoShow      VisitStatus = "NO_SHOW"
	VisitRescheduled VisitStatus = "RESCHEDULED"
)

func (s VisitStatus) Valid() bool {
	switch s {
	case VisitScheduled, VisitCompleted, VisitCancelled, VisitNoShow, VisitRescheduled:
		return true
	}
	return false
}

// VisitType distinguishes routine care from assessments and emergencies.
type VisitType string

const (
	VisitRegularCare VisitType = "REGULAR_CARE"
	VisitAssessment  VisitType = "ASSESSMENT"
	VisitEmergency   VisitType = "EMERGENCY"
	VisitRespite     VisitType = "RESPITE"
)

func (t VisitType) Valid() bool {
	return t == VisitRegularCare || t == VisitAssessment || t == VisitEmergency || t == VisitRespite
}

// EVVEventType is the kind of an electronic visit verification event.
type EVVEventType string

const (
	EVVClockIn  EVVEventType = "CLOCK_IN"
	EVVClockOut EVVEventType = "CLOCK_OUT"
)

func (t EVVEventType) Valid() bool {
	return t == EVVClockIn || t == EVVClockOut
}

// Role is a user's role in the agency.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleCoordinator Role = "COORDINATOR"
	RoleCaregiver   Role = "CAREGIVER"
	RoleClient      Role = "CLIENT"
	RoleFamily      Role = "FAMILY"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoordinator, RoleCaregiver, RoleClient, RoleFamily:
		return true
	}
	return false
}

// InviteState classifies a user invite. It is derived from acceptedAt and
// expiresAt, never stored.
type InviteState string

const (
	InvitePending  InviteState = "PENDING"
	InviteAccepted InviteState = "ACCEPTED"
	InviteExpired  InviteState = "EXPIRED"
)

// Gender as recorded on profiles and in client preferences.
type Gender string

const (
	GenderFemale Gender = "FEMALE"
	GenderMale   Gender = "MALE"
	GenderOther  Gender = "OTHER"
)

func (g Gender) Valid() bool {
	return g == GenderFemale || g == GenderMale || g == GenderOther
}

// LanguageProficiency grades a caregiver's spoken language.
type LanguageProficiency string

const (
	LanguageBasic          LanguageProficiency = "BASIC"
	LanguageConversational LanguageProficiency = "CONVERSATIONAL"
	LanguageFluent         LanguageProficiency = "FLUENT"
	LanguageNative         LanguageProficiency = "NATIVE"
)

func (p LanguageProficiency) Valid() bool {
	return p == LanguageBasic || p == LanguageConversational || p == LanguageFluent || p == LanguageNative
}

package profile

// Defaults applied at composition time for preference fields the user never
// touched. Everything else that is absent stays absent in the payload.
const (
	DefaultLanguage     = "en"
	DefaultPrivacyLevel = "FRIENDS"
)

// SetupRequest is the profile-setup payload. Field names are the canonical
// API contract; optional fields marshal as absent (not zero) when unset.
type SetupRequest struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`

	HeightCm        *float64 `json:"heightCm,omitempty"`
	CurrentWeightKg *float64 `json:"currentWeightKg,omitempty"`
	TargetWeightKg  *float64 `json:"targetWeightKg,omitempty"`

	FitnessLevel           *string  `json:"fitnessLevel,omitempty"`
	PrimaryGoal            *string  `json:"primaryGoal,omitempty"`
	SecondaryGoals         []string `json:"secondaryGoals,omitempty"`
	PreferredActivityTypes []string `json:"preferredActivityTypes,omitempty"`
	WorkoutFrequency       *int     `json:"workoutFrequency,omitempty"`
	WorkoutDuration        *int     `json:"workoutDuration,omitempty"`
	PreferredWorkoutDays   []string `json:"preferredWorkoutDays,omitempty"`
	PreferredWorkoutTimes  []string `json:"preferredWorkoutTimes,omitempty"`

	DietaryRestrictions   []string `json:"dietaryRestrictions,omitempty"`
	HealthConditions      []string `json:"healthConditions,omitempty"`
	Medications           []string `json:"medications,omitempty"`
	EmergencyContactName  *string  `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string  `json:"emergencyContactPhone,omitempty"`

	Timezone           *string `json:"timezone,omitempty"`
	Language           string  `json:"language"`
	EmailNotifications bool    `json:"emailNotifications"`
	PushNotifications  bool    `json:"pushNotifications"`
	PrivacyLevel       string  `json:"privacyLevel"`
}

// Compose assembles the final setup payload from a draft: every filled field
// is copied, untouched preference fields get their defaults, and untouched
// optional fields remain absent.
func Compose(d Draft) SetupRequest {
	req := SetupRequest{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		DateOfBirth: optional(d.DateOfBirth),
		Gender:      optional(d.Gender),
		PhoneNumber: optional(d.PhoneNumber),

		HeightCm:        d.HeightCm,
		CurrentWeightKg: d.CurrentWeightKg,
		TargetWeightKg:  d.TargetWeightKg,

		FitnessLevel:           optional(d.FitnessLevel),
		PrimaryGoal:            optional(d.PrimaryGoal),
		SecondaryGoals:         d.SecondaryGoals,
		PreferredActivityTypes: d.PreferredActivityTypes,
		WorkoutFrequency:       d.WorkoutFrequency,
		WorkoutDuration:        d.WorkoutDuration,
		PreferredWorkoutDays:   d.PreferredWorkoutDays,
		PreferredWorkoutTimes:  d.PreferredWorkoutTimes,

		DietaryRestrictions:   d.DietaryRestrictions,
		HealthConditions:      d.HealthConditions,
		Medications:           d.Medications,
		EmergencyContactName:  optional(d.EmergencyContactName),
		EmergencyContactPhone: optional(d.EmergencyContactPhone),

		Timezone:           optional(d.Timezone),
		Language:           d.Language,
		EmailNotifications: true,
		PushNotifications:  true,
		PrivacyLevel:       d.PrivacyLevel,
	}

	if req.Language == "" {
		req.Language = DefaultLanguage
	}
	if req.PrivacyLevel == "" {
		req.PrivacyLevel = DefaultPrivacyLevel
	}
	if d.EmailNotifications != nil {
		req.EmailNotifications = *d.EmailNotifications
	}
	if d.PushNotifications != nil {
		req.PushNotifications = *d.PushNotifications
	}

	return req
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

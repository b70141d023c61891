// Package profile holds the progressive profile draft, its declarative field
// schema, and the pure derivations (validation, completeness) computed from it.
package profile

// Draft is the in-progress profile being assembled by the onboarding wizard.
// Optional scalar fields are pointers (or empty strings) so that "never
// touched" is distinguishable from a zero value. Validation rules live in the
// struct tags; the json tag names are the canonical field names of the
// profile-setup API contract and are the keys used in ValidationErrors.
type Draft struct {
	// Personal information
	FirstName   string `json:"firstName" validate:"required,max=50"`
	LastName    string `json:"lastName" validate:"required,max=50"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"omitempty,oneof=MALE FEMALE OTHER PREFER_NOT_TO_SAY"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,intlphone"`

	// Physical attributes
	HeightCm        *float64 `json:"heightCm" validate:"omitempty,min=100,max=250"`
	CurrentWeightKg *float64 `json:"currentWeightKg" validate:"omitempty,min=30,max=300"`
	TargetWeightKg  *float64 `json:"targetWeightKg" validate:"omitempty,min=30,max=300"`

	// Fitness profile
	FitnessLevel           string   `json:"fitnessLevel" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	PrimaryGoal            string   `json:"primaryGoal" validate:"omitempty,oneof=WEIGHT_LOSS MUSCLE_GAIN STRENGTH_BUILDING ENDURANCE FLEXIBILITY GENERAL_FITNESS"`
	SecondaryGoals         []string `json:"secondaryGoals"`
	PreferredActivityTypes []string `json:"preferredActivityTypes" validate:"omitempty,dive,oneof=CARDIO STRENGTH_TRAINING YOGA PILATES HIIT DANCING OUTDOOR"`
	WorkoutFrequency       *int     `json:"workoutFrequency" validate:"omitempty,min=1,max=7"`
	WorkoutDuration        *int     `json:"workoutDuration" validate:"omitempty,min=15,max=180"`
	PreferredWorkoutDays   []string `json:"preferredWorkoutDays"`
	PreferredWorkoutTimes  []string `json:"preferredWorkoutTimes"`

	// Health information
	DietaryRestrictions   []string `json:"dietaryRestrictions"`
	HealthConditions      []string `json:"healthConditions"`
	Medications           []string `json:"medications"`
	EmergencyContactName  string   `json:"emergencyContactName" validate:"omitempty,max=100"`
	EmergencyContactPhone string   `json:"emergencyContactPhone" validate:"omitempty,intlphone"`

	// Preferences
	Timezone           string `json:"timezone"`
	Language           string `json:"language" validate:"omitempty,lowercase,alpha,len=2"`
	EmailNotifications *bool  `json:"emailNotifications"`
	PushNotifications  *bool  `json:"pushNotifications"`
	PrivacyLevel       string `json:"privacyLevel" validate:"omitempty,oneof=PUBLIC FRIENDS PRIVATE"`
}

// FieldNames lists every schema field in payload order. The length of this
// list is the denominator of the completeness score.
var FieldNames = []string{
	"firstName",
	"lastName",
	"dateOfBirth",
	"gender",
	"phoneNumber",
	"heightCm",
	"currentWeightKg",
	"targetWeightKg",
	"fitnessLevel",
	"primaryGoal",
	"secondaryGoals",
	"preferredActivityTypes",
	"workoutFrequency",
	"workoutDuration",
	"preferredWorkoutDays",
	"preferredWorkoutTimes",
	"dietaryRestrictions",
	"healthConditions",
	"medications",
	"emergencyContactName",
	"emergencyContactPhone",
	"timezone",
	"language",
	"emailNotifications",
	"pushNotifications",
	"privacyLevel",
}

// Clone returns a deep copy of the draft. Slice fields get their own backing
// arrays so the copy is a true snapshot.
func (d Draft) Clone() Draft {
	out := d
	out.SecondaryGoals = cloneSlice(d.SecondaryGoals)
	out.PreferredActivityTypes = cloneSlice(d.PreferredActivityTypes)
	out.PreferredWorkoutDays = cloneSlice(d.PreferredWorkoutDays)
	out.PreferredWorkoutTimes = cloneSlice(d.PreferredWorkoutTimes)
	out.DietaryRestrictions = cloneSlice(d.DietaryRestrictions)
	out.HealthConditions = cloneSlice(d.HealthConditions)
	out.Medications = cloneSlice(d.Medications)
	out.HeightCm = clonePtr(d.HeightCm)
	out.CurrentWeightKg = clonePtr(d.CurrentWeightKg)
	out.TargetWeightKg = clonePtr(d.TargetWeightKg)
	out.WorkoutFrequency = clonePtr(d.WorkoutFrequency)
	out.WorkoutDuration = clonePtr(d.WorkoutDuration)
	out.EmailNotifications = clonePtr(d.EmailNotifications)
	out.PushNotifications = clonePtr(d.PushNotifications)
	return out
}

func cloneSlice(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// arrayField maps a canonical field name to the corresponding multi-value
// slice on the draft. Returns false for scalar fields.
func (d *Draft) arrayField(name string) (*[]string, bool) {
	switch name {
	case "secondaryGoals":
		return &d.SecondaryGoals, true
	case "preferredActivityTypes":
		return &d.PreferredActivityTypes, true
	case "preferredWorkoutDays":
		return &d.PreferredWorkoutDays, true
	case "preferredWorkoutTimes":
		return &d.PreferredWorkoutTimes, true
	case "dietaryRestrictions":
		return &d.DietaryRestrictions, true
	case "healthConditions":
		return &d.HealthConditions, true
	case "medications":
		return &d.Medications, true
	}
	return nil, false
}

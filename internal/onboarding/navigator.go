// Package onboarding drives the profile-setup flow: the section state machine
// and the single-flight submission orchestrator.
package onboarding

import "github.com/sheshape/shapecli/internal/profile"

// Section is one ordered page of the wizard.
type Section struct {
	ID    string
	Label string
	Icon  string
}

// Sections in wizard order. The last one doubles as the review/submit step.
var Sections = []Section{
	{ID: "personal", Label: "Personal Info", Icon: "user"},
	{ID: "fitness", Label: "Fitness Profile", Icon: "activity"},
	{ID: "health", Label: "Health Info", Icon: "alert-circle"},
	{ID: "preferences", Label: "Preferences", Icon: "settings"},
}

// sectionFields assigns every schema field to exactly one section.
var sectionFields = map[string][]string{
	"personal": {
		"firstName", "lastName", "dateOfBirth", "gender", "phoneNumber",
	},
	"fitness": {
		"heightCm", "currentWeightKg", "targetWeightKg",
		"fitnessLevel", "primaryGoal", "secondaryGoals",
		"preferredActivityTypes", "workoutFrequency", "workoutDuration",
		"preferredWorkoutDays", "preferredWorkoutTimes",
	},
	"health": {
		"dietaryRestrictions", "healthConditions", "medications",
		"emergencyContactName", "emergencyContactPhone",
	},
	"preferences": {
		"timezone", "language", "emailNotifications", "pushNotifications",
		"privacyLevel",
	},
}

// SectionFields returns the schema fields belonging to a section.
func SectionFields(id string) []string {
	return sectionFields[id]
}

// Scope selects which fields gate a forward transition.
type Scope int

const (
	// ScopeWholeDraft re-validates every field the user has touched so far
	// before advancing. This is the default.
	ScopeWholeDraft Scope = iota
	// ScopeActiveSection only gates on fields of the section being left.
	ScopeActiveSection
)

// Navigator is the finite-state machine over the wizard sections. States are
// section indices; Next is gated on validation, Previous and JumpTo are not.
type Navigator struct {
	index  int
	scope  Scope
	errors profile.ValidationErrors
}

// NewNavigator starts at the first section with no recorded errors.
func NewNavigator(scope Scope) *Navigator {
	return &Navigator{scope: scope, errors: profile.ValidationErrors{}}
}

// Index returns the active section index, always within [0, len(Sections)-1].
func (n *Navigator) Index() int { return n.index }

// Section returns the active section.
func (n *Navigator) Section() Section { return Sections[n.index] }

// OnLast reports whether the active section is the review/submit step.
func (n *Navigator) OnLast() bool { return n.index == len(Sections)-1 }

// Errors returns the messages recorded by the most recent gated transition.
func (n *Navigator) Errors() profile.ValidationErrors { return n.errors }

// Next validates the draft and advances one section when clean, clamped at
// the last index. A blocked transition is a normal outcome: the navigator
// stays put, records the errors, and returns false.
func (n *Navigator) Next(d profile.Draft) bool {
	errs := profile.Validate(d)
	if n.scope == ScopeActiveSection {
		errs = n.filterToSection(errs)
	}
	n.errors = errs

	if len(errs) > 0 {
		return false
	}
	if n.index < len(Sections)-1 {
		n.index++
	}
	return true
}

// Previous moves back one section, clamped at the first. Retreating cannot
// invalidate already-accepted data, so no validation runs.
func (n *Navigator) Previous() {
	if n.index > 0 {
		n.index--
	}
}

// JumpTo sets the active section directly, clamped into range and
// deliberately ungated so the user can revisit any section from review.
func (n *Navigator) JumpTo(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(Sections)-1 {
		index = len(Sections) - 1
	}
	n.index = index
}

func (n *Navigator) filterToSection(errs profile.ValidationErrors) profile.ValidationErrors {
	out := profile.ValidationErrors{}
	for _, field := range sectionFields[n.Section().ID] {
		if msg, ok := errs[field]; ok {
			out[field] = msg
		}
	}
	return out
}

package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sheshape/shapecli/cmd/shapecli/wizard/components"
	"github.com/sheshape/shapecli/internal/profile"
)

// FitnessScreen collects body metrics and the training profile.
type FitnessScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel

	draft        profile.Draft
	completeness int
	errors       profile.ValidationErrors

	// String shadows for the numeric pointer fields.
	heightCm      string
	currentWeight string
	targetWeight  string
	frequency     string
	duration      string

	goals      []string
	activities []string
	days       []string
	times      []string

	done      bool
	cancelled bool
	back      bool
	width     int
	height    int
}

// NewFitnessScreen creates the fitness-profile form seeded from the draft.
func NewFitnessScreen(draft profile.Draft, completeness int, errs profile.ValidationErrors) *FitnessScreen {
	s := &FitnessScreen{
		helpPanel:     components.NewHelpPanel(),
		draft:         draft,
		completeness:  completeness,
		errors:        errs,
		heightCm:      formatOptionalFloat(draft.HeightCm),
		currentWeight: formatOptionalFloat(draft.CurrentWeightKg),
		targetWeight:  formatOptionalFloat(draft.TargetWeightKg),
		frequency:     formatOptionalInt(draft.WorkoutFrequency),
		duration:      formatOptionalInt(draft.WorkoutDuration),
		goals:         append([]string(nil), draft.SecondaryGoals...),
		activities:    append([]string(nil), draft.PreferredActivityTypes...),
		days:          append([]string(nil), draft.PreferredWorkoutDays...),
		times:         append([]string(nil), draft.PreferredWorkoutTimes...),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("height_cm").
				Title("Height (cm)").
				Value(&s.heightCm).
				Validate(func(str string) error {
					v, err := parseOptionalFloat(str)
					if err != nil {
						return err
					}
					probe := s.draft.Clone()
					probe.HeightCm = v
					return profile.FieldError(probe, "heightCm")
				}),

			huh.NewInput().
				Key("current_weight_kg").
				Title("Current Weight (kg)").
				Value(&s.currentWeight).
				Validate(func(str string) error {
					v, err := parseOptionalFloat(str)
					if err != nil {
						return err
					}
					probe := s.draft.Clone()
					probe.CurrentWeightKg = v
					return profile.FieldError(probe, "currentWeightKg")
				}),

			huh.NewInput().
				Key("target_weight_kg").
				Title("Target Weight (kg)").
				Value(&s.targetWeight).
				Validate(func(str string) error {
					v, err := parseOptionalFloat(str)
					if err != nil {
						return err
					}
					probe := s.draft.Clone()
					probe.TargetWeightKg = v
					return profile.FieldError(probe, "targetWeightKg")
				}),

			huh.NewSelect[string]().
				Key("fitness_level").
				Title("Fitness Level").
				Options(
					huh.NewOption("Skip", ""),
					huh.NewOption("Beginner", "BEGINNER"),
					huh.NewOption("Intermediate", "INTERMEDIATE"),
					huh.NewOption("Advanced", "ADVANCED"),
					huh.NewOption("Expert", "EXPERT"),
				).
				Value(&s.draft.FitnessLevel),

			huh.NewSelect[string]().
				Key("primary_goal").
				Title("Primary Goal").
				Options(
					huh.NewOption("Skip", ""),
					huh.NewOption("Weight loss", "WEIGHT_LOSS"),
					huh.NewOption("Muscle gain", "MUSCLE_GAIN"),
					huh.NewOption("Strength building", "STRENGTH_BUILDING"),
					huh.NewOption("Endurance", "ENDURANCE"),
					huh.NewOption("Flexibility", "FLEXIBILITY"),
					huh.NewOption("General fitness", "GENERAL_FITNESS"),
				).
				Value(&s.draft.PrimaryGoal),

			huh.NewMultiSelect[string]().
				Key("secondary_goals").
				Title("Secondary Goals").
				Options(
					huh.NewOption("Weight loss", "WEIGHT_LOSS"),
					huh.NewOption("Muscle gain", "MUSCLE_GAIN"),
					huh.NewOption("Strength building", "STRENGTH_BUILDING"),
					huh.NewOption("Endurance", "ENDURANCE"),
					huh.NewOption("Flexibility", "FLEXIBILITY"),
					huh.NewOption("General fitness", "GENERAL_FITNESS"),
				).
				Value(&s.goals),
		),

		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Key("preferred_activity_types").
				Title("Preferred Activities").
				Options(
					huh.NewOption("Cardio", "CARDIO"),
					huh.NewOption("Strength training", "STRENGTH_TRAINING"),
					huh.NewOption("Yoga", "YOGA"),
					huh.NewOption("Pilates", "PILATES"),
					huh.NewOption("HIIT", "HIIT"),
					huh.NewOption("Dancing", "DANCING"),
					huh.NewOption("Outdoor", "OUTDOOR"),
				).
				Value(&s.activities),

			huh.NewInput().
				Key("workout_frequency").
				Title("Workouts per Week").
				Value(&s.frequency).
				Validate(func(str string) error {
					v, err := parseOptionalInt(str)
					if err != nil {
						return err
					}
					probe := s.draft.Clone()
					probe.WorkoutFrequency = v
					return profile.FieldError(probe, "workoutFrequency")
				}),

			huh.NewInput().
				Key("workout_duration").
				Title("Session Duration (minutes)").
				Value(&s.duration).
				Validate(func(str string) error {
					v, err := parseOptionalInt(str)
					if err != nil {
						return err
					}
					probe := s.draft.Clone()
					probe.WorkoutDuration = v
					return profile.FieldError(probe, "workoutDuration")
				}),

			huh.NewMultiSelect[string]().
				Key("preferred_workout_days").
				Title("Preferred Days").
				Options(
					huh.NewOption("Monday", "MONDAY"),
					huh.NewOption("Tuesday", "TUESDAY"),
					huh.NewOption("Wednesday", "WEDNESDAY"),
					huh.NewOption("Thursday", "THURSDAY"),
					huh.NewOption("Friday", "FRIDAY"),
					huh.NewOption("Saturday", "SATURDAY"),
					huh.NewOption("Sunday", "SUNDAY"),
				).
				Value(&s.days),

			huh.NewMultiSelect[string]().
				Key("preferred_workout_times").
				Title("Preferred Times").
				Options(
					huh.NewOption("Early morning", "EARLY_MORNING"),
					huh.NewOption("Morning", "MORNING"),
					huh.NewOption("Afternoon", "AFTERNOON"),
					huh.NewOption("Evening", "EVENING"),
					huh.NewOption("Night", "NIGHT"),
				).
				Value(&s.times),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *FitnessScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *FitnessScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		case "ctrl+b":
			s.back = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/3, msg.Height/2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *FitnessScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	parts := []string{
		components.SectionBar(sectionLabels(), 1, s.completeness),
		"",
		components.TitleStyle.Render("FITNESS PROFILE"),
	}
	if blocked := renderSectionErrors(s.errors, "fitness"); blocked != "" {
		parts = append(parts, blocked, "")
	}
	parts = append(parts,
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Tab: Next field | Enter: Continue | Ctrl+B: Back | Esc: Cancel",
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Commit returns the draft with the section's answers applied.
func (s *FitnessScreen) Commit() profile.Draft {
	d := s.draft.Clone()
	d.HeightCm, _ = parseOptionalFloat(s.heightCm)
	d.CurrentWeightKg, _ = parseOptionalFloat(s.currentWeight)
	d.TargetWeightKg, _ = parseOptionalFloat(s.targetWeight)
	d.WorkoutFrequency, _ = parseOptionalInt(s.frequency)
	d.WorkoutDuration, _ = parseOptionalInt(s.duration)

	d = applySelection(d, "secondaryGoals", s.goals)
	d = applySelection(d, "preferredActivityTypes", s.activities)
	d = applySelection(d, "preferredWorkoutDays", s.days)
	d = applySelection(d, "preferredWorkoutTimes", s.times)
	return d
}

// Done returns true if the form was completed
func (s *FitnessScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *FitnessScreen) Cancelled() bool { return s.cancelled }

// Back reports whether the user asked to go to the previous section.
func (s *FitnessScreen) Back() bool { return s.back }

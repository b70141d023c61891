package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sheshape/shapecli/cmd/shapecli/wizard/components"
	"github.com/sheshape/shapecli/internal/profile"
)

// HealthScreen collects the health-information section.
type HealthScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel

	draft        profile.Draft
	completeness int
	errors       profile.ValidationErrors

	restrictions []string
	conditions   []string
	medications  []string

	done      bool
	cancelled bool
	back      bool
	width     int
	height    int
}

// NewHealthScreen creates the health-information form seeded from the draft.
func NewHealthScreen(draft profile.Draft, completeness int, errs profile.ValidationErrors) *HealthScreen {
	s := &HealthScreen{
		helpPanel:    components.NewHelpPanel(),
		draft:        draft,
		completeness: completeness,
		errors:       errs,
		restrictions: append([]string(nil), draft.DietaryRestrictions...),
		conditions:   append([]string(nil), draft.HealthConditions...),
		medications:  append([]string(nil), draft.Medications...),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Key("dietary_restrictions").
				Title("Dietary Restrictions").
				Options(
					huh.NewOption("Vegetarian", "VEGETARIAN"),
					huh.NewOption("Vegan", "VEGAN"),
					huh.NewOption("Gluten-free", "GLUTEN_FREE"),
					huh.NewOption("Dairy-free", "DAIRY_FREE"),
					huh.NewOption("Keto", "KETO"),
					huh.NewOption("Paleo", "PALEO"),
					huh.NewOption("Halal", "HALAL"),
					huh.NewOption("Kosher", "KOSHER"),
				).
				Value(&s.restrictions),

			huh.NewMultiSelect[string]().
				Key("health_conditions").
				Title("Health Conditions").
				Options(
					huh.NewOption("Asthma", "ASTHMA"),
					huh.NewOption("Diabetes", "DIABETES"),
					huh.NewOption("Hypertension", "HYPERTENSION"),
					huh.NewOption("Heart condition", "HEART_CONDITION"),
					huh.NewOption("Joint problems", "JOINT_PROBLEMS"),
					huh.NewOption("Back pain", "BACK_PAIN"),
					huh.NewOption("Pregnancy", "PREGNANCY"),
				).
				Value(&s.conditions),

			huh.NewMultiSelect[string]().
				Key("medications").
				Title("Medications").
				Options(
					huh.NewOption("Blood pressure medication", "BLOOD_PRESSURE"),
					huh.NewOption("Insulin", "INSULIN"),
					huh.NewOption("Blood thinners", "BLOOD_THINNERS"),
					huh.NewOption("Beta blockers", "BETA_BLOCKERS"),
					huh.NewOption("Other", "OTHER"),
				).
				Value(&s.medications),

			huh.NewInput().
				Key("emergency_contact_name").
				Title("Emergency Contact Name").
				Value(&s.draft.EmergencyContactName).
				Validate(func(str string) error {
					probe := s.draft.Clone()
					probe.EmergencyContactName = str
					return profile.FieldError(probe, "emergencyContactName")
				}),

			huh.NewInput().
				Key("emergency_contact_phone").
				Title("Emergency Contact Phone").
				Description("International format, e.g. +33612345678").
				Value(&s.draft.EmergencyContactPhone).
				Validate(func(str string) error {
					probe := s.draft.Clone()
					probe.EmergencyContactPhone = str
					return profile.FieldError(probe, "emergencyContactPhone")
				}),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *HealthScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *HealthScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (s *HealthScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	parts := []string{
		components.SectionBar(sectionLabels(), 2, s.completeness),
		"",
		components.TitleStyle.Render("HEALTH INFO"),
	}
	if blocked := renderSectionErrors(s.errors, "health"); blocked != "" {
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
func (s *HealthScreen) Commit() profile.Draft {
	d := s.draft.Clone()
	d = applySelection(d, "dietaryRestrictions", s.restrictions)
	d = applySelection(d, "healthConditions", s.conditions)
	d = applySelection(d, "medications", s.medications)
	return d
}

// Done returns true if the form was completed
func (s *HealthScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *HealthScreen) Cancelled() bool { return s.cancelled }

// Back reports whether the user asked to go to the previous section.
func (s *HealthScreen) Back() bool { return s.back }

package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sheshape/shapecli/cmd/shapecli/wizard/components"
	"github.com/sheshape/shapecli/internal/profile"
)

// PreferencesScreen collects locale, notification and privacy settings.
type PreferencesScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel

	draft        profile.Draft
	completeness int
	errors       profile.ValidationErrors

	// Confirm shadows; the draft distinguishes "never touched" from false.
	email bool
	push  bool

	done      bool
	cancelled bool
	back      bool
	width     int
	height    int
}

// NewPreferencesScreen creates the preferences form seeded from the draft.
// Untouched notification toggles show the default (on).
func NewPreferencesScreen(draft profile.Draft, completeness int, errs profile.ValidationErrors) *PreferencesScreen {
	s := &PreferencesScreen{
		helpPanel:    components.NewHelpPanel(),
		draft:        draft,
		completeness: completeness,
		errors:       errs,
		email:        draft.EmailNotifications == nil || *draft.EmailNotifications,
		push:         draft.PushNotifications == nil || *draft.PushNotifications,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("timezone").
				Title("Timezone").
				Description("IANA name, e.g. Europe/Paris").
				Value(&s.draft.Timezone),

			huh.NewInput().
				Key("language").
				Title("Language").
				Description("Two-letter code, e.g. en").
				Value(&s.draft.Language).
				Validate(func(str string) error {
					probe := s.draft.Clone()
					probe.Language = str
					return profile.FieldError(probe, "language")
				}),

			huh.NewConfirm().
				Key("email_notifications").
				Title("Email notifications?").
				Value(&s.email),

			huh.NewConfirm().
				Key("push_notifications").
				Title("Push notifications?").
				Value(&s.push),

			huh.NewSelect[string]().
				Key("privacy_level").
				Title("Privacy Level").
				Options(
					huh.NewOption("Friends (default)", "FRIENDS"),
					huh.NewOption("Public", "PUBLIC"),
					huh.NewOption("Private", "PRIVATE"),
				).
				Value(&s.draft.PrivacyLevel),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *PreferencesScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *PreferencesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (s *PreferencesScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	parts := []string{
		components.SectionBar(sectionLabels(), 3, s.completeness),
		"",
		components.TitleStyle.Render("PREFERENCES"),
	}
	if blocked := renderSectionErrors(s.errors, "preferences"); blocked != "" {
		parts = append(parts, blocked, "")
	}
	parts = append(parts,
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Tab: Next field | Enter: Review | Ctrl+B: Back | Esc: Cancel",
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Commit returns the draft with the section's answers applied.
func (s *PreferencesScreen) Commit() profile.Draft {
	d := s.draft.Clone()
	email, push := s.email, s.push
	d.EmailNotifications = &email
	d.PushNotifications = &push
	return d
}

// Done returns true if the form was completed
func (s *PreferencesScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *PreferencesScreen) Cancelled() bool { return s.cancelled }

// Back reports whether the user asked to go to the previous section.
func (s *PreferencesScreen) Back() bool { return s.back }

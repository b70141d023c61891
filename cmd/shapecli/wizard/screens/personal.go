package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sheshape/shapecli/cmd/shapecli/wizard/components"
	"github.com/sheshape/shapecli/internal/imaging"
	"github.com/sheshape/shapecli/internal/onboarding"
	"github.com/sheshape/shapecli/internal/profile"
)

// PersonalScreen collects the personal-information section.
type PersonalScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel

	draft        profile.Draft
	completeness int
	errors       profile.ValidationErrors

	imagePath string
	staged    *imaging.StagedImage

	done      bool
	cancelled bool
	back      bool
	width     int
	height    int
}

// NewPersonalScreen creates the personal-information form. A previously
// staged image survives re-entry; a failed staging attempt never discards it.
func NewPersonalScreen(draft profile.Draft, completeness int, errs profile.ValidationErrors, staged *imaging.StagedImage) *PersonalScreen {
	s := &PersonalScreen{
		helpPanel:    components.NewHelpPanel(),
		draft:        draft,
		completeness: completeness,
		errors:       errs,
		staged:       staged,
	}
	if staged != nil {
		s.imagePath = staged.Path
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("first_name").
				Title("First Name").
				Value(&s.draft.FirstName).
				Validate(func(str string) error {
					probe := s.draft.Clone()
					probe.FirstName = str
					return profile.FieldError(probe, "firstName")
				}),

			huh.NewInput().
				Key("last_name").
				Title("Last Name").
				Value(&s.draft.LastName).
				Validate(func(str string) error {
					probe := s.draft.Clone()
					probe.LastName = str
					return profile.FieldError(probe, "lastName")
				}),

			huh.NewInput().
				Key("date_of_birth").
				Title("Date of Birth").
				Description("Format: YYYY-MM-DD, leave blank to skip").
				Value(&s.draft.DateOfBirth).
				Validate(func(str string) error {
					probe := s.draft.Clone()
					probe.DateOfBirth = str
					return profile.FieldError(probe, "dateOfBirth")
				}),

			huh.NewSelect[string]().
				Key("gender").
				Title("Gender").
				Options(
					huh.NewOption("Skip", ""),
					huh.NewOption("Female", "FEMALE"),
					huh.NewOption("Male", "MALE"),
					huh.NewOption("Other", "OTHER"),
					huh.NewOption("Prefer not to say", "PREFER_NOT_TO_SAY"),
				).
				Value(&s.draft.Gender),

			huh.NewInput().
				Key("phone_number").
				Title("Phone Number").
				Description("International format, e.g. +33612345678").
				Value(&s.draft.PhoneNumber).
				Validate(func(str string) error {
					probe := s.draft.Clone()
					probe.PhoneNumber = str
					return profile.FieldError(probe, "phoneNumber")
				}),

			huh.NewInput().
				Key("profile_image").
				Title("Profile Photo").
				Description("Path to an image file (max 5MB), leave blank to skip").
				Value(&s.imagePath).
				Validate(s.validateImage),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// validateImage stages the image at the given path. On failure the previous
// staged image is kept untouched.
func (s *PersonalScreen) validateImage(path string) error {
	if path == "" {
		s.staged = nil
		return nil
	}
	if s.staged != nil && s.staged.Path == path {
		return nil
	}

	img, err := imaging.Stage(path)
	if err != nil {
		return err
	}
	s.staged = img
	return nil
}

// Init implements tea.Model
func (s *PersonalScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *PersonalScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (s *PersonalScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	bar := components.SectionBar(sectionLabels(), 0, s.completeness)

	var stagedLine string
	if s.staged != nil {
		stagedLine = components.SubtitleStyle.Render(
			fmt.Sprintf("Photo staged: %s (%dx%d, %s)", s.staged.Path, s.staged.Width, s.staged.Height, s.staged.MIME))
	}

	parts := []string{
		bar,
		"",
		components.TitleStyle.Render("PERSONAL INFO"),
	}
	if blocked := renderSectionErrors(s.errors, "personal"); blocked != "" {
		parts = append(parts, blocked, "")
	}
	parts = append(parts, s.form.View())
	if stagedLine != "" {
		parts = append(parts, stagedLine)
	}
	parts = append(parts,
		"",
		s.helpPanel.View(),
		"",
		"Tab: Next field | Enter: Continue | Esc: Cancel",
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Commit returns the draft with the section's answers applied.
func (s *PersonalScreen) Commit() profile.Draft {
	return s.draft.Clone()
}

// StagedImage returns the image staged for upload, nil when none.
func (s *PersonalScreen) StagedImage() *imaging.StagedImage {
	return s.staged
}

// Done returns true if the form was completed
func (s *PersonalScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *PersonalScreen) Cancelled() bool { return s.cancelled }

// Back reports whether the user asked to go to the previous section.
func (s *PersonalScreen) Back() bool { return s.back }

func sectionLabels() []string {
	labels := make([]string, len(onboarding.Sections))
	for i, section := range onboarding.Sections {
		labels[i] = section.Label
	}
	return labels
}

// renderSectionErrors shows the messages a blocked transition recorded, in
// schema field order.
func renderSectionErrors(errs profile.ValidationErrors, sectionID string) string {
	if len(errs) == 0 {
		return ""
	}

	var lines []string
	for _, field := range onboarding.SectionFields(sectionID) {
		if msg, ok := errs[field]; ok {
			lines = append(lines, components.ErrorStyle.Render("✗ "+msg))
		}
	}
	// Errors outside the active section still block a whole-draft gate.
	for _, field := range profile.FieldNames {
		if inSection(field, sectionID) {
			continue
		}
		if msg, ok := errs[field]; ok {
			lines = append(lines, components.ErrorStyle.Render("✗ "+msg))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n")
}

func inSection(field, sectionID string) bool {
	for _, f := range onboarding.SectionFields(sectionID) {
		if f == field {
			return true
		}
	}
	return false
}

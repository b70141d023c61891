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

// ReviewAction is what the user chose to do from the review step.
type ReviewAction int

const (
	ReviewActionSubmit ReviewAction = iota
	ReviewActionEdit
	ReviewActionCancel
)

var (
	reviewLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	reviewValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	reviewSkippedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)
)

// ReviewScreen shows the full draft and offers submit, per-section edits,
// or cancel. Nothing is sent until the user picks submit.
type ReviewScreen struct {
	form *huh.Form

	draft        profile.Draft
	completeness int
	staged       *imaging.StagedImage
	notice       string

	choice string

	done      bool
	cancelled bool
	width     int
	height    int
}

// NewReviewScreen creates the review step. A non-empty notice (the message of
// a failed submission) is rendered above the summary.
func NewReviewScreen(draft profile.Draft, completeness int, staged *imaging.StagedImage, notice string) *ReviewScreen {
	s := &ReviewScreen{
		draft:        draft,
		completeness: completeness,
		staged:       staged,
		notice:       notice,
		choice:       "submit",
	}

	options := []huh.Option[string]{
		huh.NewOption("Submit profile", "submit"),
	}
	for i, section := range onboarding.Sections {
		options = append(options,
			huh.NewOption(fmt.Sprintf("Edit %s", section.Label), fmt.Sprintf("edit:%d", i)))
	}
	options = append(options, huh.NewOption("Cancel", "cancel"))

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("review_action").
				Title("What would you like to do?").
				Options(options...).
				Value(&s.choice),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *ReviewScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *ReviewScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *ReviewScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	var sb strings.Builder
	sb.WriteString(components.SectionBar(sectionLabels(), len(onboarding.Sections)-1, s.completeness))
	sb.WriteString("\n\n")
	sb.WriteString(components.TitleStyle.Render("REVIEW YOUR PROFILE"))
	sb.WriteString("\n")

	if s.notice != "" {
		sb.WriteString(components.ErrorStyle.Render("✗ " + s.notice))
		sb.WriteString("\n\n")
	}

	for _, section := range onboarding.Sections {
		sb.WriteString(components.SubtitleStyle.Render(strings.ToUpper(section.Label)))
		sb.WriteString("\n")
		for _, field := range onboarding.SectionFields(section.ID) {
			sb.WriteString("  ")
			sb.WriteString(reviewLabelStyle.Render(fieldLabel(field) + ":"))
			sb.WriteString(" ")
			sb.WriteString(renderFieldValue(s.draft, field))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if s.staged != nil {
		sb.WriteString(reviewLabelStyle.Render("  Profile photo:"))
		sb.WriteString(" ")
		sb.WriteString(reviewValueStyle.Render(fmt.Sprintf("%s (%s)", s.staged.Path, s.staged.MIME)))
		sb.WriteString("\n\n")
	}

	sb.WriteString(s.form.View())
	sb.WriteString("\n")
	sb.WriteString("Enter: Select | Esc: Cancel")

	return sb.String()
}

// Done returns true if the form was completed
func (s *ReviewScreen) Done() bool { return s.done }

// Cancelled returns true if the user cancelled
func (s *ReviewScreen) Cancelled() bool { return s.cancelled }

// Action returns the selected action.
func (s *ReviewScreen) Action() ReviewAction {
	switch {
	case s.choice == "cancel":
		return ReviewActionCancel
	case strings.HasPrefix(s.choice, "edit:"):
		return ReviewActionEdit
	default:
		return ReviewActionSubmit
	}
}

// EditIndex returns the section index to edit, valid when Action is
// ReviewActionEdit.
func (s *ReviewScreen) EditIndex() int {
	var index int
	fmt.Sscanf(s.choice, "edit:%d", &index)
	return index
}

// fieldLabel turns a canonical field name into a display label.
func fieldLabel(field string) string {
	var words []string
	start := 0
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' {
			words = append(words, field[start:i])
			start = i
		}
	}
	words = append(words, field[start:])

	label := strings.ToLower(strings.Join(words, " "))
	return strings.ToUpper(label[:1]) + label[1:]
}

func renderFieldValue(d profile.Draft, field string) string {
	value := fieldValue(d, field)
	if value == "" {
		return reviewSkippedStyle.Render("skipped")
	}
	return reviewValueStyle.Render(value)
}

func fieldValue(d profile.Draft, field string) string {
	switch field {
	case "firstName":
		return d.FirstName
	case "lastName":
		return d.LastName
	case "dateOfBirth":
		return d.DateOfBirth
	case "gender":
		return d.Gender
	case "phoneNumber":
		return d.PhoneNumber
	case "heightCm":
		return formatOptionalFloat(d.HeightCm)
	case "currentWeightKg":
		return formatOptionalFloat(d.CurrentWeightKg)
	case "targetWeightKg":
		return formatOptionalFloat(d.TargetWeightKg)
	case "fitnessLevel":
		return d.FitnessLevel
	case "primaryGoal":
		return d.PrimaryGoal
	case "workoutFrequency":
		return formatOptionalInt(d.WorkoutFrequency)
	case "workoutDuration":
		return formatOptionalInt(d.WorkoutDuration)
	case "emergencyContactName":
		return d.EmergencyContactName
	case "emergencyContactPhone":
		return d.EmergencyContactPhone
	case "timezone":
		return d.Timezone
	case "language":
		return d.Language
	case "emailNotifications":
		return formatOptionalBool(d.EmailNotifications)
	case "pushNotifications":
		return formatOptionalBool(d.PushNotifications)
	case "privacyLevel":
		return d.PrivacyLevel
	default:
		return strings.Join(currentValues(d, field), ", ")
	}
}

func formatOptionalBool(p *bool) string {
	if p == nil {
		return ""
	}
	if *p {
		return "yes"
	}
	return "no"
}

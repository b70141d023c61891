package screens

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sheshape/shapecli/cmd/shapecli/wizard/components"
)

// SubmittedMsg is sent when the submission finishes successfully.
type SubmittedMsg struct {
	UploadedImage bool
	Duration      time.Duration
}

// SubmitFailedMsg is sent when the submission fails. Message is already
// user-facing; the wizard returns to review so the user can retry.
type SubmitFailedMsg struct {
	Message string
}

var (
	submittingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	submittingHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	successStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	resultLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	resultValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Bold(true)

	resultHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Italic(true)
)

// SubmittingScreen is shown while the upload and setup calls run.
type SubmittingScreen struct {
	hasImage  bool
	startTime time.Time
	width     int
	height    int
}

// NewSubmittingScreen creates the in-flight screen.
func NewSubmittingScreen(hasImage bool) *SubmittingScreen {
	return &SubmittingScreen{
		hasImage:  hasImage,
		startTime: time.Now(),
	}
}

// Init implements tea.Model
func (s *SubmittingScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *SubmittingScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		s.width = wsm.Width
		s.height = wsm.Height
	}
	return s, nil
}

// View implements tea.Model
func (s *SubmittingScreen) View() string {
	var sb strings.Builder

	sb.WriteString(submittingStyle.Render("Submitting your profile..."))
	sb.WriteString("\n\n")

	if s.hasImage {
		sb.WriteString(resultLabelStyle.Render("Uploading your photo, then saving your profile."))
	} else {
		sb.WriteString(resultLabelStyle.Render("Saving your profile."))
	}
	sb.WriteString("\n")

	elapsed := time.Since(s.startTime)
	sb.WriteString(resultLabelStyle.Render(fmt.Sprintf("Elapsed: %.1fs", elapsed.Seconds())))
	sb.WriteString("\n\n")
	sb.WriteString(submittingHintStyle.Render("One moment..."))

	return sb.String()
}

// StartTime returns when the submission began.
func (s *SubmittingScreen) StartTime() time.Time {
	return s.startTime
}

// CompleteScreen displays the success summary.
type CompleteScreen struct {
	firstName     string
	completeness  int
	uploadedImage bool
	duration      time.Duration
	done          bool
	width         int
	height        int
}

// NewCompleteScreen creates the success screen.
func NewCompleteScreen(firstName string, completeness int, msg SubmittedMsg) *CompleteScreen {
	return &CompleteScreen{
		firstName:     firstName,
		completeness:  completeness,
		uploadedImage: msg.UploadedImage,
		duration:      msg.Duration,
	}
}

// Init implements tea.Model
func (s *CompleteScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *CompleteScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			s.done = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model
func (s *CompleteScreen) View() string {
	var sb strings.Builder

	sb.WriteString(successStyle.Render("✓"))
	sb.WriteString(" ")
	sb.WriteString(successStyle.Render(fmt.Sprintf("Welcome to SheShape, %s!", s.firstName)))
	sb.WriteString("\n\n")

	sb.WriteString(components.TitleStyle.Render("Summary:"))
	sb.WriteString("\n")

	photo := "skipped"
	if s.uploadedImage {
		photo = "uploaded"
	}
	stats := []struct {
		label string
		value string
	}{
		{"Profile completeness", fmt.Sprintf("%d%%", s.completeness)},
		{"Profile photo", photo},
		{"Duration", fmt.Sprintf("%.1fs", s.duration.Seconds())},
	}
	for _, stat := range stats {
		sb.WriteString("  ")
		sb.WriteString(resultLabelStyle.Render(stat.label + ":"))
		sb.WriteString(" ")
		sb.WriteString(resultValueStyle.Render(stat.value))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(components.TitleStyle.Render("Next steps:"))
	sb.WriteString("\n")
	sb.WriteString("  • Browse programs: shapecli plans list\n")
	sb.WriteString("  • Visit the shop:  shapecli products list\n\n")
	sb.WriteString(resultHintStyle.Render("Press Enter or q to exit"))

	return sb.String()
}

// Done returns true if the user is finished
func (s *CompleteScreen) Done() bool {
	return s.done
}

// Package wizard is the interactive profile-setup flow: one form screen per
// profile section, a review step, and the submission lifecycle.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sheshape/shapecli/cmd/shapecli/wizard/screens"
	"github.com/sheshape/shapecli/internal/imaging"
	"github.com/sheshape/shapecli/internal/onboarding"
	"github.com/sheshape/shapecli/internal/profile"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhasePersonal Phase = iota
	PhaseFitness
	PhaseHealth
	PhasePreferences
	PhaseReview
	PhaseSubmitting
	PhaseComplete
)

// sectionPhases maps section indices to their phases, in section order.
var sectionPhases = []Phase{PhasePersonal, PhaseFitness, PhaseHealth, PhasePreferences}

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	draft     profile.Draft
	nav       *onboarding.Navigator
	submitter *onboarding.Submitter
	staged    *imaging.StagedImage
	log       *zap.Logger

	phase Phase

	// Screen instances
	personalScreen    *screens.PersonalScreen
	fitnessScreen     *screens.FitnessScreen
	healthScreen      *screens.HealthScreen
	preferencesScreen *screens.PreferencesScreen
	reviewScreen      *screens.ReviewScreen
	submittingScreen  *screens.SubmittingScreen
	completeScreen    *screens.CompleteScreen

	// Failure message carried back to the review step
	notice string

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
	finished  bool
}

// NewWizard creates a wizard starting at the personal-information section.
// A nil logger is replaced by a no-op one.
func NewWizard(submitter *onboarding.Submitter, scope onboarding.Scope, log *zap.Logger) *Wizard {
	if log == nil {
		log = zap.NewNop()
	}

	w := &Wizard{
		nav:       onboarding.NewNavigator(scope),
		submitter: submitter,
		log:       log,
		phase:     PhasePersonal,
	}

	w.personalScreen = screens.NewPersonalScreen(w.draft, profile.Completeness(w.draft), nil, nil)

	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.personalScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size for all phases
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhasePersonal:
		return w.updatePersonal(msg)
	case PhaseFitness:
		return w.updateFitness(msg)
	case PhaseHealth:
		return w.updateHealth(msg)
	case PhasePreferences:
		return w.updatePreferences(msg)
	case PhaseReview:
		return w.updateReview(msg)
	case PhaseSubmitting:
		return w.updateSubmitting(msg)
	case PhaseComplete:
		return w.updateComplete(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhasePersonal:
		return w.personalScreen.View()
	case PhaseFitness:
		return w.fitnessScreen.View()
	case PhaseHealth:
		return w.healthScreen.View()
	case PhasePreferences:
		return w.preferencesScreen.View()
	case PhaseReview:
		return w.reviewScreen.View()
	case PhaseSubmitting:
		return w.submittingScreen.View()
	case PhaseComplete:
		return w.completeScreen.View()
	}

	return ""
}

// transitionToSection rebuilds the screen for the navigator's active section
// from the current draft and error state.
func (w *Wizard) transitionToSection() (tea.Model, tea.Cmd) {
	index := w.nav.Index()
	w.phase = sectionPhases[index]
	score := profile.Completeness(w.draft)
	errs := w.nav.Errors()

	switch w.phase {
	case PhasePersonal:
		w.personalScreen = screens.NewPersonalScreen(w.draft, score, errs, w.staged)
		return w, w.personalScreen.Init()
	case PhaseFitness:
		w.fitnessScreen = screens.NewFitnessScreen(w.draft, score, errs)
		return w, w.fitnessScreen.Init()
	case PhaseHealth:
		w.healthScreen = screens.NewHealthScreen(w.draft, score, errs)
		return w, w.healthScreen.Init()
	default:
		w.preferencesScreen = screens.NewPreferencesScreen(w.draft, score, errs)
		return w, w.preferencesScreen.Init()
	}
}

// advance commits the active section and asks the navigator for the next
// state. A blocked transition rebuilds the same screen with the recorded
// errors on display.
func (w *Wizard) advance(committed profile.Draft) (tea.Model, tea.Cmd) {
	w.draft = committed
	wasLast := w.nav.OnLast()

	if !w.nav.Next(w.draft) {
		w.log.Debug("section transition blocked",
			zap.String("section", w.nav.Section().ID),
			zap.Int("errors", len(w.nav.Errors())))
		return w.transitionToSection()
	}

	if wasLast {
		return w.transitionToReview()
	}
	return w.transitionToSection()
}

// retreat commits the active section and moves back one section.
func (w *Wizard) retreat(committed profile.Draft) (tea.Model, tea.Cmd) {
	w.draft = committed
	w.nav.Previous()
	return w.transitionToSection()
}

// updatePersonal handles updates in the personal-information phase.
func (w *Wizard) updatePersonal(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.personalScreen.Update(msg)
	if ps, ok := model.(*screens.PersonalScreen); ok {
		w.personalScreen = ps
	}

	if w.personalScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	w.staged = w.personalScreen.StagedImage()

	if w.personalScreen.Back() {
		return w.retreat(w.personalScreen.Commit())
	}
	if w.personalScreen.Done() {
		return w.advance(w.personalScreen.Commit())
	}

	return w, cmd
}

// updateFitness handles updates in the fitness-profile phase.
func (w *Wizard) updateFitness(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.fitnessScreen.Update(msg)
	if fs, ok := model.(*screens.FitnessScreen); ok {
		w.fitnessScreen = fs
	}

	if w.fitnessScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.fitnessScreen.Back() {
		return w.retreat(w.fitnessScreen.Commit())
	}
	if w.fitnessScreen.Done() {
		return w.advance(w.fitnessScreen.Commit())
	}

	return w, cmd
}

// updateHealth handles updates in the health-information phase.
func (w *Wizard) updateHealth(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.healthScreen.Update(msg)
	if hs, ok := model.(*screens.HealthScreen); ok {
		w.healthScreen = hs
	}

	if w.healthScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.healthScreen.Back() {
		return w.retreat(w.healthScreen.Commit())
	}
	if w.healthScreen.Done() {
		return w.advance(w.healthScreen.Commit())
	}

	return w, cmd
}

// updatePreferences handles updates in the preferences phase.
func (w *Wizard) updatePreferences(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.preferencesScreen.Update(msg)
	if ps, ok := model.(*screens.PreferencesScreen); ok {
		w.preferencesScreen = ps
	}

	if w.preferencesScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.preferencesScreen.Back() {
		return w.retreat(w.preferencesScreen.Commit())
	}
	if w.preferencesScreen.Done() {
		return w.advance(w.preferencesScreen.Commit())
	}

	return w, cmd
}

// transitionToReview moves to the review step.
func (w *Wizard) transitionToReview() (tea.Model, tea.Cmd) {
	w.phase = PhaseReview
	w.reviewScreen = screens.NewReviewScreen(w.draft, profile.Completeness(w.draft), w.staged, w.notice)
	w.notice = ""
	return w, w.reviewScreen.Init()
}

// updateReview handles updates in the review phase.
func (w *Wizard) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.reviewScreen.Update(msg)
	if rs, ok := model.(*screens.ReviewScreen); ok {
		w.reviewScreen = rs
	}

	if w.reviewScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.reviewScreen.Done() {
		switch w.reviewScreen.Action() {
		case ReviewSubmit:
			return w.startSubmission()

		case ReviewEdit:
			w.nav.JumpTo(w.reviewScreen.EditIndex())
			return w.transitionToSection()

		case ReviewCancel:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

// Review action aliases keep the phase switch readable.
const (
	ReviewSubmit = screens.ReviewActionSubmit
	ReviewEdit   = screens.ReviewActionEdit
	ReviewCancel = screens.ReviewActionCancel
)

// startSubmission begins the upload-then-setup sequence. A submit while one
// is already in flight is dropped, not queued.
func (w *Wizard) startSubmission() (tea.Model, tea.Cmd) {
	if w.submitter.InFlight() {
		return w, nil
	}

	w.phase = PhaseSubmitting
	w.submittingScreen = screens.NewSubmittingScreen(w.staged != nil)

	draft := w.draft.Clone()
	staged := w.staged
	return w, func() tea.Msg {
		start := time.Now()

		err := w.submitter.Submit(context.Background(), draft, staged)
		if errors.Is(err, onboarding.ErrSubmissionInFlight) {
			return nil
		}
		if err != nil {
			return screens.SubmitFailedMsg{Message: w.submitter.FailureMessage()}
		}

		return screens.SubmittedMsg{
			UploadedImage: staged != nil,
			Duration:      time.Since(start),
		}
	}
}

// updateSubmitting handles updates while the submission runs.
func (w *Wizard) updateSubmitting(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.SubmittedMsg:
		w.phase = PhaseComplete
		w.completeScreen = screens.NewCompleteScreen(w.draft.FirstName, profile.Completeness(w.draft), msg)
		return w, nil

	case screens.SubmitFailedMsg:
		w.notice = msg.Message
		w.log.Warn("submission failed", zap.String("message", msg.Message))
		return w.transitionToReview()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			w.cancelled = true
			return w, tea.Quit
		}
	}

	model, cmd := w.submittingScreen.Update(msg)
	if ss, ok := model.(*screens.SubmittingScreen); ok {
		w.submittingScreen = ss
	}

	return w, cmd
}

// updateComplete handles updates in the completion phase.
func (w *Wizard) updateComplete(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.completeScreen.Update(msg)
	if cs, ok := model.(*screens.CompleteScreen); ok {
		w.completeScreen = cs
	}

	if w.completeScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// Run starts the interactive profile-setup wizard.
func Run(submitter *onboarding.Submitter, scope onboarding.Scope, log *zap.Logger) error {
	wizard := NewWizard(submitter, scope, log)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	if w, ok := finalModel.(*Wizard); ok {
		switch {
		case w.cancelled:
			w.log.Info("setup cancelled") // not an error
		case w.finished:
			w.log.Info("setup finished", zap.Int("completeness", profile.Completeness(w.draft)))
		}
	}

	return nil
}

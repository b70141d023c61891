package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/sheshape/shapecli/internal/api"
	"github.com/sheshape/shapecli/internal/imaging"
	"github.com/sheshape/shapecli/internal/onboarding"
	"github.com/sheshape/shapecli/internal/profile"
)

// backend is the fake SheShape API a scenario talks to.
type backend struct {
	mu          sync.Mutex
	calls       []string // "upload" / "setup" in arrival order
	lastPayload map[string]any
	rejectWith  string
	hold        chan struct{}
}

func (b *backend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/uploads/profile-image", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls = append(b.calls, "upload")
		b.mu.Unlock()
		fmt.Fprint(w, `{"imageUrl":"https://cdn.sheshape.com/profiles/avatar.png"}`)
	})

	mux.HandleFunc("/api/users/profile/setup", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		hold := b.hold
		reject := b.rejectWith
		b.mu.Unlock()

		if hold != nil {
			<-hold
		}
		if reject != "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": reject})
			return
		}

		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		b.mu.Lock()
		b.calls = append(b.calls, "setup")
		b.lastPayload = payload
		b.mu.Unlock()
	})

	return mux
}

func (b *backend) callOrder() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.calls))
	copy(out, b.calls)
	return out
}

func (b *backend) setupCount() int {
	count := 0
	for _, call := range b.callOrder() {
		if call == "setup" {
			count++
		}
	}
	return count
}

// testContext holds state for a single scenario.
type testContext struct {
	tmpDir  string
	backend *backend
	server  *httptest.Server

	draft     profile.Draft
	nav       *onboarding.Navigator
	submitter *onboarding.Submitter
	staged    *imaging.StagedImage

	advanced   bool
	submitErr  error
	bgDone     chan error
	droppedErr error
}

func (tc *testContext) anEmptyProfileDraft() error {
	tc.draft = profile.Draft{}
	return nil
}

func (tc *testContext) aDraftWithNames(first, last string) error {
	tc.draft = profile.Draft{FirstName: first, LastName: last}
	return nil
}

func (tc *testContext) aHeightOfCentimeters(height float64) error {
	tc.draft.HeightCm = &height
	return nil
}

func (tc *testContext) iSetMyNames(first, last string) error {
	tc.draft.FirstName = first
	tc.draft.LastName = last
	return nil
}

func (tc *testContext) iTryToMoveToTheNextSection() error {
	tc.advanced = tc.nav.Next(tc.draft)
	return nil
}

func (tc *testContext) theTransitionIsBlocked() error {
	if tc.advanced {
		return fmt.Errorf("expected the transition to be blocked")
	}
	return nil
}

func (tc *testContext) theTransitionSucceeds() error {
	if !tc.advanced {
		return fmt.Errorf("expected the transition to succeed, errors: %v", tc.nav.Errors())
	}
	return nil
}

func (tc *testContext) theErrorForIs(field, message string) error {
	got, ok := tc.nav.Errors()[field]
	if !ok {
		return fmt.Errorf("no error recorded for %s", field)
	}
	if got != message {
		return fmt.Errorf("expected %q, got %q", message, got)
	}
	return nil
}

func (tc *testContext) noFieldHasAnError() error {
	if errs := tc.nav.Errors(); len(errs) != 0 {
		return fmt.Errorf("expected no errors, got %v", errs)
	}
	return nil
}

func (tc *testContext) theCompletenessScoreIs(score int) error {
	if got := profile.Completeness(tc.draft); got != score {
		return fmt.Errorf("expected completeness %d, got %d", score, got)
	}
	return nil
}

func (tc *testContext) iToggleTheActivity(value string) error {
	next, err := tc.draft.WithToggled("preferredActivityTypes", value)
	if err != nil {
		return err
	}
	tc.draft = next
	return nil
}

func (tc *testContext) theSelectedActivitiesAre(expected string) error {
	if len(tc.draft.PreferredActivityTypes) != 1 || tc.draft.PreferredActivityTypes[0] != expected {
		return fmt.Errorf("expected activities [%s], got %v", expected, tc.draft.PreferredActivityTypes)
	}
	return nil
}

func (tc *testContext) noActivitiesAreSelected() error {
	if len(tc.draft.PreferredActivityTypes) != 0 {
		return fmt.Errorf("expected no activities, got %v", tc.draft.PreferredActivityTypes)
	}
	return nil
}

func (tc *testContext) aStagedProfilePhoto() error {
	path := filepath.Join(tc.tmpDir, "avatar.png")
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}

	staged, err := imaging.Stage(path)
	if err != nil {
		return err
	}
	tc.staged = staged
	return nil
}

func (tc *testContext) theBackendRejectsTheProfileWith(message string) error {
	tc.backend.mu.Lock()
	tc.backend.rejectWith = message
	tc.backend.mu.Unlock()
	return nil
}

func (tc *testContext) theBackendAcceptsProfilesAgain() error {
	tc.backend.mu.Lock()
	tc.backend.rejectWith = ""
	tc.backend.mu.Unlock()
	return nil
}

func (tc *testContext) theBackendHoldsProfileSubmissionsOpen() error {
	tc.backend.mu.Lock()
	tc.backend.hold = make(chan struct{})
	tc.backend.mu.Unlock()
	return nil
}

func (tc *testContext) iSubmitTheProfile() error {
	tc.submitErr = tc.submitter.Submit(context.Background(), tc.draft, tc.staged)
	return nil
}

func (tc *testContext) iSubmitTheProfileInTheBackground() error {
	tc.bgDone = make(chan error, 1)
	go func() {
		tc.bgDone <- tc.submitter.Submit(context.Background(), tc.draft, tc.staged)
	}()

	// Wait until the submitter reports in-flight.
	deadline := time.Now().Add(2 * time.Second)
	for !tc.submitter.InFlight() {
		if time.Now().After(deadline) {
			return fmt.Errorf("submission never became in-flight")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return nil
}

func (tc *testContext) iSubmitTheProfileAgain() error {
	tc.droppedErr = tc.submitter.Submit(context.Background(), tc.draft, tc.staged)
	return nil
}

func (tc *testContext) theSecondSubmissionIsDropped() error {
	if tc.droppedErr != onboarding.ErrSubmissionInFlight {
		return fmt.Errorf("expected ErrSubmissionInFlight, got %v", tc.droppedErr)
	}
	return nil
}

func (tc *testContext) theBackendReleasesTheHeldSubmission() error {
	tc.backend.mu.Lock()
	hold := tc.backend.hold
	tc.backend.hold = nil
	tc.backend.mu.Unlock()
	close(hold)

	select {
	case tc.submitErr = <-tc.bgDone:
		return nil
	case <-time.After(5 * time.Second):
		return fmt.Errorf("background submission never finished")
	}
}

func (tc *testContext) theSubmissionSucceeds() error {
	if tc.submitErr != nil {
		return fmt.Errorf("expected success, got %v", tc.submitErr)
	}
	if tc.submitter.Status() != onboarding.StatusSucceeded {
		return fmt.Errorf("expected status succeeded, got %v", tc.submitter.Status())
	}
	return nil
}

func (tc *testContext) theSubmissionFailsWith(message string) error {
	if tc.submitErr == nil {
		return fmt.Errorf("expected the submission to fail")
	}
	if got := tc.submitter.FailureMessage(); got != message {
		return fmt.Errorf("expected failure message %q, got %q", message, got)
	}
	return nil
}

func (tc *testContext) theBackendReceivedThePhotoBeforeTheProfile() error {
	order := tc.backend.callOrder()
	if len(order) != 2 || order[0] != "upload" || order[1] != "setup" {
		return fmt.Errorf("expected [upload setup], got %v", order)
	}
	return nil
}

func (tc *testContext) theBackendReceivedExactlyOneProfile() error {
	if count := tc.backend.setupCount(); count != 1 {
		return fmt.Errorf("expected exactly one profile submission, got %d", count)
	}
	return nil
}

func (tc *testContext) theSubmittedPayloadUsesTheDefaultLanguage(lang string) error {
	tc.backend.mu.Lock()
	payload := tc.backend.lastPayload
	tc.backend.mu.Unlock()

	if payload == nil {
		return fmt.Errorf("no payload received")
	}
	if payload["language"] != lang {
		return fmt.Errorf("expected language %q, got %v", lang, payload["language"])
	}
	if _, present := payload["profileImageUrl"]; present {
		return fmt.Errorf("payload must not carry the image URL")
	}
	return nil
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	tc := &testContext{}

	sc.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tmpDir, err := os.MkdirTemp("", "shapecli-e2e-*")
		if err != nil {
			return ctx, err
		}
		tc.tmpDir = tmpDir

		tc.backend = &backend{}
		tc.server = httptest.NewServer(tc.backend.handler())

		client := api.New(tc.server.URL)
		tc.nav = onboarding.NewNavigator(onboarding.ScopeWholeDraft)
		tc.submitter = onboarding.NewSubmitter(client, nil)
		tc.draft = profile.Draft{}
		tc.staged = nil
		return ctx, nil
	})

	sc.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc.server.Close()
		if tc.tmpDir != "" {
			os.RemoveAll(tc.tmpDir)
		}
		return ctx, nil
	})

	sc.Step(`^an empty profile draft$`, tc.anEmptyProfileDraft)
	sc.Step(`^a draft with first name "([^"]*)" and last name "([^"]*)"$`, tc.aDraftWithNames)
	sc.Step(`^a height of (\d+) centimeters$`, tc.aHeightOfCentimeters)
	sc.Step(`^I set my first name to "([^"]*)" and last name to "([^"]*)"$`, tc.iSetMyNames)
	sc.Step(`^I try to move to the next section$`, tc.iTryToMoveToTheNextSection)
	sc.Step(`^the transition is blocked$`, tc.theTransitionIsBlocked)
	sc.Step(`^the transition succeeds$`, tc.theTransitionSucceeds)
	sc.Step(`^the error for "([^"]*)" is "([^"]*)"$`, tc.theErrorForIs)
	sc.Step(`^no field has an error$`, tc.noFieldHasAnError)
	sc.Step(`^the completeness score is (\d+)$`, tc.theCompletenessScoreIs)
	sc.Step(`^I toggle the activity "([^"]*)"$`, tc.iToggleTheActivity)
	sc.Step(`^the selected activities are "([^"]*)"$`, tc.theSelectedActivitiesAre)
	sc.Step(`^no activities are selected$`, tc.noActivitiesAreSelected)
	sc.Step(`^a staged profile photo$`, tc.aStagedProfilePhoto)
	sc.Step(`^the backend rejects the profile with "([^"]*)"$`, tc.theBackendRejectsTheProfileWith)
	sc.Step(`^the backend accepts profiles again$`, tc.theBackendAcceptsProfilesAgain)
	sc.Step(`^the backend holds profile submissions open$`, tc.theBackendHoldsProfileSubmissionsOpen)
	sc.Step(`^I submit the profile in the background$`, tc.iSubmitTheProfileInTheBackground)
	sc.Step(`^I submit the profile again$`, tc.iSubmitTheProfileAgain)
	sc.Step(`^I submit the profile$`, tc.iSubmitTheProfile)
	sc.Step(`^the second submission is dropped$`, tc.theSecondSubmissionIsDropped)
	sc.Step(`^the backend releases the held submission$`, tc.theBackendReleasesTheHeldSubmission)
	sc.Step(`^the submission succeeds$`, tc.theSubmissionSucceeds)
	sc.Step(`^the submission fails with "([^"]*)"$`, tc.theSubmissionFailsWith)
	sc.Step(`^the backend received the photo before the profile$`, tc.theBackendReceivedThePhotoBeforeTheProfile)
	sc.Step(`^the backend received exactly one profile$`, tc.theBackendReceivedExactlyOneProfile)
	sc.Step(`^the submitted payload uses the default language "([^"]*)"$`, tc.theSubmittedPayloadUsesTheDefaultLanguage)
}

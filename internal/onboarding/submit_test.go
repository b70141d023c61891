package onboarding

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheshape/shapecli/internal/imaging"
	"github.com/sheshape/shapecli/internal/profile"
)

// fakeService records collaborator calls and can be made to block or fail.
type fakeService struct {
	mu         sync.Mutex
	uploads    int
	setups     int
	calls      []string
	lastReq    profile.SetupRequest
	uploadErr  error
	setupErr   error
	setupBlock chan struct{}
}

func (f *fakeService) UploadProfileImage(_ context.Context, filename, mimeType string, data []byte) (string, error) {
	f.mu.Lock()
	f.uploads++
	f.calls = append(f.calls, "upload")
	f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "https://cdn.sheshape.com/profiles/" + filename, nil
}

func (f *fakeService) SetupProfile(_ context.Context, req profile.SetupRequest) error {
	f.mu.Lock()
	f.setups++
	f.calls = append(f.calls, "setup")
	f.lastReq = req
	block := f.setupBlock
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.setupErr
}

func (f *fakeService) setupCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setups
}

// messagedError mimics a transport error carrying a structured backend message.
type messagedError struct{ msg string }

func (e *messagedError) Error() string       { return "request failed: " + e.msg }
func (e *messagedError) UserMessage() string { return e.msg }

func TestSubmit_WithoutImageCallsSetupOnce(t *testing.T) {
	svc := &fakeService{}
	s := NewSubmitter(svc, nil)

	err := s.Submit(context.Background(), profile.Draft{FirstName: "Ava", LastName: "Lee"}, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusSucceeded, s.Status())
	assert.Equal(t, 0, svc.uploads)
	assert.Equal(t, 1, svc.setups)

	// Defaults land in the composed payload.
	assert.Equal(t, "en", svc.lastReq.Language)
	assert.True(t, svc.lastReq.EmailNotifications)
	assert.True(t, svc.lastReq.PushNotifications)
	assert.Equal(t, "FRIENDS", svc.lastReq.PrivacyLevel)
	assert.Nil(t, svc.lastReq.Timezone)
}

func TestSubmit_UploadStrictlyPrecedesSetup(t *testing.T) {
	svc := &fakeService{}
	s := NewSubmitter(svc, nil)

	staged := &imaging.StagedImage{Path: "avatar.png", MIME: "image/png", Data: []byte{1, 2}, Size: 2}
	err := s.Submit(context.Background(), profile.Draft{FirstName: "Ava", LastName: "Lee"}, staged)
	require.NoError(t, err)

	assert.Equal(t, []string{"upload", "setup"}, svc.calls)
}

func TestSubmit_UploadFailureAbortsBeforeSetup(t *testing.T) {
	svc := &fakeService{uploadErr: errors.New("storage unavailable")}
	s := NewSubmitter(svc, nil)

	staged := &imaging.StagedImage{Path: "avatar.png", MIME: "image/png", Data: []byte{1}}
	err := s.Submit(context.Background(), profile.Draft{FirstName: "Ava", LastName: "Lee"}, staged)

	var serr *SubmitError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StageImageUpload, serr.Stage)
	assert.Equal(t, 0, svc.setups, "no profile mutation after a failed upload")
	assert.Equal(t, StatusFailed, s.Status())
}

func TestSubmit_FailureMessageFromStructuredError(t *testing.T) {
	svc := &fakeService{setupErr: &messagedError{msg: "Phone number already registered"}}
	s := NewSubmitter(svc, nil)

	err := s.Submit(context.Background(), profile.Draft{FirstName: "Ava", LastName: "Lee"}, nil)
	require.Error(t, err)

	assert.Equal(t, StatusFailed, s.Status())
	assert.Equal(t, "Phone number already registered", s.FailureMessage())
}

func TestSubmit_GenericFallbackMessage(t *testing.T) {
	svc := &fakeService{setupErr: errors.New("connection reset")}
	s := NewSubmitter(svc, nil)

	err := s.Submit(context.Background(), profile.Draft{FirstName: "Ava", LastName: "Lee"}, nil)
	require.Error(t, err)
	assert.Equal(t, "Profile setup failed. Please try again.", s.FailureMessage())
}

func TestSubmit_SecondCallWhileInFlightIsRejected(t *testing.T) {
	svc := &fakeService{setupBlock: make(chan struct{})}
	s := NewSubmitter(svc, nil)
	d := profile.Draft{FirstName: "Ava", LastName: "Lee"}

	done := make(chan error, 1)
	go func() {
		done <- s.Submit(context.Background(), d, nil)
	}()

	// Wait for the first submission to reach the collaborator.
	require.Eventually(t, func() bool {
		return s.InFlight() && svc.setupCount() == 1
	}, time.Second, time.Millisecond)

	err := s.Submit(context.Background(), d, nil)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(svc.setupBlock)
	require.NoError(t, <-done)

	assert.Equal(t, 1, svc.setupCount(), "exactly one call reached the collaborator")
	assert.Equal(t, StatusSucceeded, s.Status())
}

func TestSubmit_RetryAllowedAfterFailure(t *testing.T) {
	svc := &fakeService{setupErr: errors.New("boom")}
	s := NewSubmitter(svc, nil)
	d := profile.Draft{FirstName: "Ava", LastName: "Lee"}

	require.Error(t, s.Submit(context.Background(), d, nil))
	require.Equal(t, StatusFailed, s.Status())

	svc.setupErr = nil
	require.NoError(t, s.Submit(context.Background(), d, nil))
	assert.Equal(t, StatusSucceeded, s.Status())
	assert.Empty(t, s.FailureMessage())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "in-flight", StatusInFlight.String())
	assert.Equal(t, "succeeded", StatusSucceeded.String())
	assert.Equal(t, "failed", StatusFailed.String())
}

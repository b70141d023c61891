package onboarding

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/sheshape/shapecli/internal/imaging"
	"github.com/sheshape/shapecli/internal/profile"
)

// genericFailure is shown when the backend error carries no usable message.
const genericFailure = "Profile setup failed. Please try again."

// ErrSubmissionInFlight is returned when Submit is called while a submission
// is already running. The caller drops the attempt; nothing is queued.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// ProfileService is the boundary to the external collaborators: the image
// upload endpoint and the profile-setup endpoint.
type ProfileService interface {
	// UploadProfileImage uploads raw image bytes and returns the durable URL.
	UploadProfileImage(ctx context.Context, filename, mimeType string, data []byte) (string, error)
	// SetupProfile submits the composed payload. The collaborator owns any
	// follow-up navigation on success.
	SetupProfile(ctx context.Context, req profile.SetupRequest) error
}

// Status is the submission lifecycle state, owned exclusively by Submitter.
type Status int

const (
	StatusIdle Status = iota
	StatusInFlight
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusInFlight:
		return "in-flight"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// FailureStage identifies which step of a submission failed.
type FailureStage int

const (
	StageImageUpload FailureStage = iota
	StageProfileSetup
)

// SubmitError wraps a collaborator failure with the step it happened in.
type SubmitError struct {
	Stage FailureStage
	Err   error
}

func (e *SubmitError) Error() string {
	switch e.Stage {
	case StageImageUpload:
		return fmt.Sprintf("uploading profile image: %v", e.Err)
	default:
		return fmt.Sprintf("submitting profile: %v", e.Err)
	}
}

func (e *SubmitError) Unwrap() error { return e.Err }

// userMessenger is implemented by transport errors that carry a message fit
// for direct display (the structured error payload from the backend).
type userMessenger interface {
	UserMessage() string
}

// Submitter composes the final payload and runs the submission sequence:
// optional image upload first, then the profile-setup call. At most one
// submission is in flight at any time, guarded by an explicit flag.
type Submitter struct {
	svc ProfileService
	log *zap.Logger

	mu      sync.Mutex
	status  Status
	failure string
}

// NewSubmitter wires a submitter to the profile service. A nil logger is
// replaced by a no-op one.
func NewSubmitter(svc ProfileService, log *zap.Logger) *Submitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Submitter{svc: svc, log: log}
}

// Status returns the current submission state.
func (s *Submitter) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// FailureMessage returns the user-facing message of the last failure, empty
// unless Status is StatusFailed.
func (s *Submitter) FailureMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

// InFlight reports whether a submission is currently running. The UI uses
// this to disable the submit trigger.
func (s *Submitter) InFlight() bool {
	return s.Status() == StatusInFlight
}

// Submit runs one submission. A second call while one is in flight returns
// ErrSubmissionInFlight and does nothing. The image upload, when there is a
// staged image, strictly precedes the setup call; its failure aborts the
// submission before any profile mutation. Failures move the submitter to
// StatusFailed and leave it ready for another attempt.
func (s *Submitter) Submit(ctx context.Context, d profile.Draft, staged *imaging.StagedImage) error {
	s.mu.Lock()
	if s.status == StatusInFlight {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	s.status = StatusInFlight
	s.failure = ""
	s.mu.Unlock()

	if staged != nil {
		url, err := s.svc.UploadProfileImage(ctx, filepath.Base(staged.Path), staged.MIME, staged.Data)
		if err != nil {
			s.fail(err)
			return &SubmitError{Stage: StageImageUpload, Err: err}
		}
		s.log.Info("profile image uploaded",
			zap.String("url", url),
			zap.Int64("bytes", staged.Size))
	}

	req := profile.Compose(d)
	if err := s.svc.SetupProfile(ctx, req); err != nil {
		s.fail(err)
		return &SubmitError{Stage: StageProfileSetup, Err: err}
	}

	s.mu.Lock()
	s.status = StatusSucceeded
	s.mu.Unlock()
	s.log.Info("profile setup complete")
	return nil
}

func (s *Submitter) fail(err error) {
	msg := genericFailure
	var um userMessenger
	if errors.As(err, &um) && um.UserMessage() != "" {
		msg = um.UserMessage()
	}

	s.mu.Lock()
	s.status = StatusFailed
	s.failure = msg
	s.mu.Unlock()
	s.log.Warn("profile submission failed", zap.Error(err))
}

package session

import "alfredoptarigan/resume-matcher/internal/models"

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
	PhaseFailed     Phase = "failed"
)

// State is one of Idle, Submitting, Succeeded or Failed. Only Succeeded
// carries a result and only Failed carries an error, so the two never
// coexist.
type State interface {
	Phase() Phase
	isState()
}

type Idle struct{}

type Submitting struct{}

type Succeeded struct {
	Result *models.AnalysisResult
}

type Failed struct {
	Err *AnalysisError
}

func (Idle) Phase() Phase       { return PhaseIdle }
func (Submitting) Phase() Phase { return PhaseSubmitting }
func (Succeeded) Phase() Phase  { return PhaseSucceeded }
func (Failed) Phase() Phase     { return PhaseFailed }

func (Idle) isState()       {}
func (Submitting) isState() {}
func (Succeeded) isState()  {}
func (Failed) isState()     {}

// Snapshot is a read-only view of a session for rendering.
type Snapshot struct {
	Phase          Phase
	Document       *models.Document
	JobDescription string
	Result         *models.AnalysisResult
	Err            *AnalysisError
	Busy           bool
	CanSubmit      bool
	// Notice is a validation message raised while a submission was in
	// flight. It outlives that submission until the next accepted file,
	// ClearDocument or Submit.
	Notice string
}

// ErrorMessage returns the user-facing error, falling back to the notice,
// or "" when there is neither.
func (s Snapshot) ErrorMessage() string {
	if s.Err == nil {
		return s.Notice
	}
	return s.Err.Message
}

package session

import "errors"

// User-facing messages.
const (
	MsgInvalidFile    = "Please upload a valid PDF file"
	MsgMissingInputs  = "Please upload a resume and enter a job description"
	MsgAnalyzeFailed  = "Failed to analyze resume"
	MsgGenericFailure = "An error occurred. Please try again."
)

// ErrSubmissionInFlight is returned by Submit while another submission is
// still running.
var ErrSubmissionInFlight = errors.New("session: submission already in flight")

type ErrorKind string

const (
	// KindValidation is raised locally before any request is made.
	KindValidation ErrorKind = "validation"
	// KindTransport covers requests that could not complete or returned a
	// non-success status.
	KindTransport ErrorKind = "transport"
	// KindService is a well-formed response carrying an error field.
	KindService ErrorKind = "service"
	// KindUnexpected is anything else in the submission pipeline.
	KindUnexpected ErrorKind = "unexpected"
)

// AnalysisError is the single error value a session surfaces to the user.
// Message is always non-empty.
type AnalysisError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func newValidationError(msg string) *AnalysisError {
	return &AnalysisError{Kind: KindValidation, Message: msg}
}

func newTransportError(cause error) *AnalysisError {
	return &AnalysisError{Kind: KindTransport, Message: MsgAnalyzeFailed, Err: cause}
}

func newServiceError(msg string) *AnalysisError {
	return &AnalysisError{Kind: KindService, Message: msg}
}

func newUnexpectedError(cause error) *AnalysisError {
	msg := MsgGenericFailure
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}
	return &AnalysisError{Kind: KindUnexpected, Message: msg, Err: cause}
}

// asAnalysisError maps any error from the submission pipeline onto the
// taxonomy. Errors that already carry a kind pass through.
func asAnalysisError(err error) *AnalysisError {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae
	}
	return newUnexpectedError(err)
}

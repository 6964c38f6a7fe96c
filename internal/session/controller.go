package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"alfredoptarigan/resume-matcher/internal/logging"
	"alfredoptarigan/resume-matcher/internal/models"
)

const DefaultTimeout = 30 * time.Second

// Controller owns one analysis session: the document candidate, the job
// description and the submission state. It is safe for concurrent use; input
// methods may be called while Submit is blocked on the network.
type Controller struct {
	client   AnalyzerClient
	timeout  time.Duration
	logger   *logging.Logger
	observer func(Snapshot)

	mu             sync.Mutex
	document       *models.Document
	jobDescription string
	state          State
	// notice is a rejection that happened while Submitting.
	notice *AnalysisError
}

type Option func(*Controller)

// WithTimeout bounds every submission. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers fn to receive a snapshot after every change. It is
// called without the controller lock held.
func WithObserver(fn func(Snapshot)) Option {
	return func(c *Controller) {
		c.observer = fn
	}
}

func NewController(client AnalyzerClient, opts ...Option) *Controller {
	c := &Controller{
		client:  client,
		timeout: DefaultTimeout,
		logger:  logging.NewNop(),
		state:   Idle{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit runs one submission to completion. While another submission is in
// flight it returns ErrSubmissionInFlight and changes nothing. Missing inputs
// fail without a request. Otherwise the returned error, if any, is the
// *AnalysisError now held in the Failed state.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if _, busy := c.state.(Submitting); busy {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}

	c.notice = nil
	if !CanSubmit(c.document, c.jobDescription, false) {
		verr := newValidationError(MsgMissingInputs)
		c.state = Failed{Err: verr}
		c.mu.Unlock()

		c.notify()
		return verr
	}

	req := AnalyzeRequest{
		Document:       c.document,
		JobDescription: strings.TrimSpace(c.jobDescription),
	}
	c.state = Submitting{}
	c.mu.Unlock()

	c.logger.Debug("submitting analysis", "resume", req.Document.Name, "timeout", c.timeout)
	c.notify()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.Analyze(ctx, req)
	if err == nil && result == nil {
		err = newUnexpectedError(nil)
	}

	c.mu.Lock()
	if err != nil {
		aerr := asAnalysisError(err)
		if ctx.Err() != nil && aerr.Kind == KindUnexpected {
			aerr = newTransportError(ctx.Err())
		}
		c.state = Failed{Err: aerr}
		c.mu.Unlock()

		c.logger.Warn("analysis failed", "kind", aerr.Kind, "message", aerr.Message, "cause", aerr.Err)
		c.notify()
		return aerr
	}

	c.state = Succeeded{Result: result}
	c.mu.Unlock()

	c.logger.Debug("analysis succeeded", "overall_match", result.OverallMatch)
	c.notify()
	return nil
}

// State returns the current submission state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	snap := Snapshot{
		Phase:          c.state.Phase(),
		Document:       c.document,
		JobDescription: c.jobDescription,
	}

	switch s := c.state.(type) {
	case Submitting:
		snap.Busy = true
	case Succeeded:
		snap.Result = s.Result
	case Failed:
		snap.Err = s.Err
	}

	if c.notice != nil {
		snap.Notice = c.notice.Message
	}
	snap.CanSubmit = CanSubmit(c.document, c.jobDescription, snap.Busy)
	return snap
}

func (c *Controller) notify() {
	if c.observer == nil {
		return
	}
	c.observer(c.Snapshot())
}

package session

import (
	"strings"

	"alfredoptarigan/resume-matcher/internal/models"
)

// IsAcceptable reports whether a file may become the document candidate.
func IsAcceptable(doc *models.Document) bool {
	return doc != nil && doc.MediaType == models.PDFMediaType
}

// CanSubmit is the submission guard: a document is present, the trimmed job
// description is non-empty and nothing is in flight.
func CanSubmit(doc *models.Document, jobDescription string, busy bool) bool {
	return doc != nil && strings.TrimSpace(jobDescription) != "" && !busy
}

// AcceptFile makes doc the document candidate if it is a PDF. Acceptance
// clears any result and error. Rejection clears the candidate and records the
// validation error, which is also returned. While a submission is in flight
// the phase is left alone and the rejection is kept as a notice instead.
func (c *Controller) AcceptFile(doc *models.Document) error {
	c.mu.Lock()

	if !IsAcceptable(doc) {
		c.document = nil
		verr := newValidationError(MsgInvalidFile)
		if _, busy := c.state.(Submitting); busy {
			c.notice = verr
		} else {
			c.state = Failed{Err: verr}
			c.notice = nil
		}
		c.mu.Unlock()

		c.logger.Debug("document rejected", "media_type", mediaTypeOf(doc))
		c.notify()
		return verr
	}

	c.document = doc
	c.notice = nil
	if _, busy := c.state.(Submitting); !busy {
		c.state = Idle{}
	}
	c.mu.Unlock()

	c.logger.Debug("document accepted", "name", doc.Name, "size", doc.FormatSize())
	c.notify()
	return nil
}

// AcceptFiles handles a drop of several files: only the first is considered,
// and an empty drop is a rejection.
func (c *Controller) AcceptFiles(docs []*models.Document) error {
	if len(docs) == 0 {
		return c.AcceptFile(nil)
	}
	return c.AcceptFile(docs[0])
}

// ClearDocument removes the candidate and any result. An error stays as it
// is. Calling it repeatedly has no further effect.
func (c *Controller) ClearDocument() {
	c.mu.Lock()
	c.document = nil
	c.notice = nil
	if _, ok := c.state.(Succeeded); ok {
		c.state = Idle{}
	}
	c.mu.Unlock()

	c.notify()
}

// SetJobDescription replaces the job description text. No validation happens
// here.
func (c *Controller) SetJobDescription(text string) {
	c.mu.Lock()
	c.jobDescription = text
	c.mu.Unlock()

	c.notify()
}

// CanSubmit reports whether Submit would issue a request right now.
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, busy := c.state.(Submitting)
	return CanSubmit(c.document, c.jobDescription, busy)
}

func mediaTypeOf(doc *models.Document) string {
	if doc == nil {
		return ""
	}
	return doc.MediaType
}

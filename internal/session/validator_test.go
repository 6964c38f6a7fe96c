package session

import (
	"context"
	"errors"
	"testing"

	"alfredoptarigan/resume-matcher/internal/models"
)

func pdfDocument(name string) *models.Document {
	content := []byte("%PDF-1.4\n%fake\n")
	return &models.Document{
		Name:      name,
		MediaType: models.PDFMediaType,
		Content:   content,
		SizeBytes: int64(len(content)),
	}
}

func TestCanSubmitGrid(t *testing.T) {
	docs := map[string]*models.Document{"present": pdfDocument("cv.pdf"), "absent": nil}
	texts := map[string]string{"empty": "", "whitespace": " \n\t ", "text": "Senior Go engineer"}
	busy := map[string]bool{"idle": false, "submitting": true}

	for dn, doc := range docs {
		for tn, text := range texts {
			for bn, b := range busy {
				want := dn == "present" && tn == "text" && bn == "idle"
				if got := CanSubmit(doc, text, b); got != want {
					t.Errorf("CanSubmit(%s, %s, %s) = %v, want %v", dn, tn, bn, got, want)
				}
			}
		}
	}
}

func TestAcceptFileAcceptsPDF(t *testing.T) {
	c := NewController(&fakeClient{})

	if err := c.AcceptFile(pdfDocument("cv.pdf")); err != nil {
		t.Fatalf("AcceptFile: %v", err)
	}

	snap := c.Snapshot()
	if snap.Document == nil || snap.Document.Name != "cv.pdf" {
		t.Fatalf("document not accepted: %+v", snap.Document)
	}
	if snap.Phase != PhaseIdle || snap.Err != nil || snap.Result != nil {
		t.Fatalf("unexpected snapshot after acceptance: %+v", snap)
	}
}

func TestAcceptFileRejectsNonPDF(t *testing.T) {
	c := NewController(&fakeClient{})
	if err := c.AcceptFile(pdfDocument("first.pdf")); err != nil {
		t.Fatalf("AcceptFile: %v", err)
	}

	docx := &models.Document{Name: "cv.docx", MediaType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"}
	err := c.AcceptFile(docx)

	var aerr *AnalysisError
	if !errors.As(err, &aerr) || aerr.Kind != KindValidation || aerr.Message != MsgInvalidFile {
		t.Fatalf("AcceptFile error = %v, want validation %q", err, MsgInvalidFile)
	}

	snap := c.Snapshot()
	if snap.Document != nil {
		t.Fatal("rejected file left a document candidate")
	}
	if snap.ErrorMessage() != MsgInvalidFile {
		t.Fatalf("error = %q, want %q", snap.ErrorMessage(), MsgInvalidFile)
	}
}

func TestAcceptFileRejectsMissingFile(t *testing.T) {
	c := NewController(&fakeClient{})

	if err := c.AcceptFile(nil); err == nil {
		t.Fatal("expected rejection for nil file")
	}
	if c.Snapshot().ErrorMessage() != MsgInvalidFile {
		t.Fatalf("error = %q", c.Snapshot().ErrorMessage())
	}
}

func TestAcceptFileClearsResultAndError(t *testing.T) {
	client := &fakeClient{result: sampleResult()}
	c := NewController(client)
	_ = c.AcceptFile(pdfDocument("cv.pdf"))
	c.SetJobDescription("Backend engineer")
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := c.AcceptFile(pdfDocument("other.pdf")); err != nil {
		t.Fatalf("AcceptFile: %v", err)
	}
	if snap := c.Snapshot(); snap.Result != nil || snap.Err != nil {
		t.Fatalf("result or error survived new document: %+v", snap)
	}

	_ = c.AcceptFile(nil)
	if err := c.AcceptFile(pdfDocument("third.pdf")); err != nil {
		t.Fatalf("AcceptFile: %v", err)
	}
	if snap := c.Snapshot(); snap.Err != nil {
		t.Fatalf("error survived accepted document: %v", snap.Err)
	}
}

func TestAcceptFilesUsesFirst(t *testing.T) {
	c := NewController(&fakeClient{})

	if err := c.AcceptFiles([]*models.Document{pdfDocument("a.pdf"), pdfDocument("b.pdf")}); err != nil {
		t.Fatalf("AcceptFiles: %v", err)
	}
	if got := c.Snapshot().Document.Name; got != "a.pdf" {
		t.Fatalf("document = %q, want a.pdf", got)
	}

	if err := c.AcceptFiles([]*models.Document{{Name: "notes.txt", MediaType: "text/plain"}, pdfDocument("b.pdf")}); err == nil {
		t.Fatal("expected rejection when the first file is not a PDF")
	}

	if err := c.AcceptFiles(nil); err == nil {
		t.Fatal("expected rejection for an empty drop")
	}
}

func TestClearDocumentIsIdempotent(t *testing.T) {
	c := NewController(&fakeClient{result: sampleResult()})
	_ = c.AcceptFile(pdfDocument("cv.pdf"))
	c.SetJobDescription("Backend engineer")
	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	c.ClearDocument()
	once := c.Snapshot()
	c.ClearDocument()
	twice := c.Snapshot()

	for _, snap := range []Snapshot{once, twice} {
		if snap.Document != nil || snap.Result != nil {
			t.Fatalf("document or result survived ClearDocument: %+v", snap)
		}
		if snap.Phase != PhaseIdle {
			t.Fatalf("phase = %s, want idle", snap.Phase)
		}
	}
	if once.JobDescription != "Backend engineer" {
		t.Fatalf("job description cleared: %q", once.JobDescription)
	}
}

func TestClearDocumentKeepsError(t *testing.T) {
	c := NewController(&fakeClient{})
	_ = c.AcceptFile(nil)

	c.ClearDocument()

	if c.Snapshot().ErrorMessage() != MsgInvalidFile {
		t.Fatalf("error cleared by ClearDocument: %q", c.Snapshot().ErrorMessage())
	}
}

package report

import (
	"bytes"
	"strings"
	"testing"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/session"
)

func result(overall, skills, experience, education int) *models.AnalysisResult {
	return &models.AnalysisResult{
		OverallMatch: overall,
		Sections: models.Sections{
			Skills:     models.SectionScore{Score: skills},
			Experience: models.SectionScore{Score: experience},
			Education:  models.SectionScore{Score: education},
		},
		MatchedSkills:   []string{"Python", "SQL"},
		MissingSkills:   []string{"Kubernetes"},
		Recommendations: []string{"Learn Kubernetes basics", "Add metrics to projects"},
	}
}

func render(t *testing.T, snap session.Snapshot, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, snap, opts); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestRenderSucceeded(t *testing.T) {
	out := render(t, session.Snapshot{
		Phase:  session.PhaseSucceeded,
		Result: result(82, 90, 70, 45),
		Document: &models.Document{
			Name:      "cv.pdf",
			SizeBytes: 2048,
		},
	}, Options{})

	for _, want := range []string{
		"Resume: cv.pdf (2.00 KB)",
		"Overall Match: 82%  Excellent Match",
		"Skills",
		"90%  Excellent Match",
		"70%  Good Match",
		"45%  Needs Improvement",
		"Python, SQL",
		"Kubernetes",
		"1. Learn Kubernetes basics",
		"2. Add metrics to projects",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("colors emitted with Color disabled")
	}
}

func TestRenderEmptyLists(t *testing.T) {
	r := result(30, 30, 30, 30)
	r.MatchedSkills = nil
	r.MissingSkills = []string{}
	r.Recommendations = nil

	out := render(t, session.Snapshot{Phase: session.PhaseSucceeded, Result: r}, Options{})

	for _, want := range []string{"No matched skills found", "No missing skills", "No recommendations"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderOutOfRangeScores(t *testing.T) {
	out := render(t, session.Snapshot{
		Phase:  session.PhaseSucceeded,
		Result: result(130, -20, 250, 100),
	}, Options{})

	if !strings.Contains(out, "130%  Excellent Match") {
		t.Errorf("overall score not shown verbatim:\n%s", out)
	}
	if !strings.Contains(out, "["+strings.Repeat(".", barWidth)+"]") {
		t.Errorf("negative score not drawn as empty bar:\n%s", out)
	}
	if !strings.Contains(out, "["+strings.Repeat("#", barWidth)+"]") {
		t.Errorf("oversized score not drawn as full bar:\n%s", out)
	}
}

func TestRenderFailed(t *testing.T) {
	out := render(t, session.Snapshot{
		Phase: session.PhaseFailed,
		Err:   &session.AnalysisError{Kind: session.KindService, Message: "Unsupported file"},
	}, Options{Color: true})

	if !strings.Contains(out, "Error: Unsupported file") {
		t.Fatalf("output = %q", out)
	}
	if !strings.Contains(out, "\033[31m") {
		t.Fatalf("error not painted red: %q", out)
	}
}

func TestRenderIdleAndBusy(t *testing.T) {
	if out := render(t, session.Snapshot{Phase: session.PhaseIdle}, Options{}); !strings.Contains(out, "Upload a PDF resume") {
		t.Errorf("idle hint missing: %q", out)
	}
	if out := render(t, session.Snapshot{Phase: session.PhaseSubmitting, Busy: true}, Options{}); !strings.Contains(out, "Analyzing...") {
		t.Errorf("busy line missing: %q", out)
	}
}

func TestColorEnabledModes(t *testing.T) {
	if !ColorEnabled(ColorAlways, nil) {
		t.Error("ColorAlways should enable colors")
	}
	if ColorEnabled(ColorNever, nil) {
		t.Error("ColorNever should disable colors")
	}
	if ColorEnabled(ColorAuto, nil) {
		t.Error("ColorAuto without a file should disable colors")
	}
}

func TestRenderShowsNoticeWhileAnalyzing(t *testing.T) {
	out := render(t, session.Snapshot{
		Phase:  session.PhaseSubmitting,
		Busy:   true,
		Notice: session.MsgInvalidFile,
	}, Options{})

	if !strings.Contains(out, "Error: Please upload a valid PDF file") || !strings.Contains(out, "Analyzing...") {
		t.Fatalf("notice missing:\n%s", out)
	}
}

// Package report renders an analysis session as plain text for terminals.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/session"
)

const barWidth = 20

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Options struct {
	Color bool
}

var ansi = map[string]string{
	"green":  "\033[32m",
	"yellow": "\033[33m",
	"red":    "\033[31m",
	"bold":   "\033[1m",
	"reset":  "\033[0m",
}

// ColorEnabled resolves a color mode against the output file.
func ColorEnabled(mode ColorMode, f *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render writes the view of snap to w. It depends on nothing but the
// snapshot.
func Render(w io.Writer, snap session.Snapshot, opts Options) error {
	p := &printer{w: w, color: opts.Color}

	if snap.Document != nil {
		p.linef("Resume: %s (%s)", snap.Document.Name, snap.Document.FormatSize())
	}
	if snap.Notice != "" && snap.Phase != session.PhaseFailed {
		p.linef("%s", p.paint("red", "Error: "+snap.Notice))
	}

	switch snap.Phase {
	case session.PhaseSubmitting:
		p.linef("Analyzing...")
	case session.PhaseFailed:
		p.linef("%s", p.paint("red", "Error: "+snap.ErrorMessage()))
	case session.PhaseSucceeded:
		p.result(snap.Result)
	default:
		if !snap.CanSubmit {
			p.linef("Upload a PDF resume and enter a job description to start.")
		}
	}

	return p.err
}

type printer struct {
	w     io.Writer
	color bool
	err   error
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) paint(color, s string) string {
	if !p.color {
		return s
	}
	return ansi[color] + s + ansi["reset"]
}

func (p *printer) result(r *models.AnalysisResult) {
	if r == nil {
		return
	}

	overall := session.BandFor(r.OverallMatch)
	p.linef("")
	p.linef("%s %s  %s",
		p.paint("bold", "Overall Match:"),
		p.paint(overall.Color(), fmt.Sprintf("%d%%", r.OverallMatch)),
		p.paint(overall.Color(), overall.Label()))
	p.linef("")

	rows := []struct {
		name  string
		score int
	}{
		{"Skills", r.Sections.Skills.Score},
		{"Experience", r.Sections.Experience.Score},
		{"Education", r.Sections.Education.Score},
	}
	for _, row := range rows {
		band := session.BandFor(row.score)
		p.linef("  %s %s %4d%%  %s",
			runewidth.FillRight(row.name, 12),
			p.paint(band.Color(), bar(row.score)),
			row.score,
			band.Label())
	}

	p.list("Matched Skills", r.MatchedSkills, "No matched skills found")
	p.list("Missing Skills", r.MissingSkills, "No missing skills")

	p.linef("")
	p.linef("%s", p.paint("bold", "Recommendations"))
	if len(r.Recommendations) == 0 {
		p.linef("  No recommendations")
	}
	for i, rec := range r.Recommendations {
		p.linef("  %d. %s", i+1, rec)
	}
}

func (p *printer) list(title string, items []string, empty string) {
	p.linef("")
	p.linef("%s (%d)", p.paint("bold", title), len(items))
	if len(items) == 0 {
		p.linef("  %s", empty)
		return
	}
	p.linef("  %s", strings.Join(items, ", "))
}

// bar draws a score as a fixed-width gauge. Scores outside [0,100] are
// drawn at the nearest bound.
func bar(score int) string {
	filled := session.ClampPercent(score) * barWidth / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/logging"
	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/report"
	"alfredoptarigan/resume-matcher/internal/session"
)

// errAnalysisFailed is returned by run after a failure has already been
// rendered to the user.
var errAnalysisFailed = errors.New("analysis failed")

type cliOptions struct {
	resumePath string
	jdPath     string
	jdText     string
	baseURL    string
	timeout    time.Duration
	color      report.ColorMode
	jsonOutput bool
	logLevel   string
}

func main() {
	cfg := config.Load()

	opts, err := parseFlags(os.Args[1:], cfg)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		if errors.Is(err, errAnalysisFailed) {
			os.Exit(1)
		}
		log.Fatalf("analyze: %v", err)
	}
}

func parseFlags(args []string, cfg *config.Config) (cliOptions, error) {
	opts := cliOptions{logLevel: cfg.Log.Level}
	var color string

	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.StringVar(&opts.resumePath, "resume", "", "PDF resume to analyze")
	fs.StringVar(&opts.jdPath, "jd", "", "File containing the job description")
	fs.StringVar(&opts.jdText, "jd-text", "", "Job description text (alternative to --jd)")
	fs.StringVar(&opts.baseURL, "url", cfg.Client.BaseURL, "Base URL of the analysis service")
	fs.DurationVar(&opts.timeout, "timeout", cfg.Client.Timeout, "Maximum time to wait for the analysis")
	fs.StringVar(&color, "color", string(report.ColorAuto), "Colorize output: auto, always or never")
	fs.BoolVar(&opts.jsonOutput, "json", false, "Print the raw result JSON instead of the report")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s --resume FILE (--jd FILE | --jd-text TEXT) [options]\n\n", filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	opts.resumePath = strings.TrimSpace(opts.resumePath)
	opts.jdPath = strings.TrimSpace(opts.jdPath)
	opts.baseURL = strings.TrimSpace(opts.baseURL)

	switch mode := report.ColorMode(strings.ToLower(strings.TrimSpace(color))); mode {
	case report.ColorAuto, report.ColorAlways, report.ColorNever:
		opts.color = mode
	default:
		return opts, fmt.Errorf("invalid --color %q", color)
	}

	if opts.resumePath == "" {
		fs.Usage()
		return opts, errors.New("missing required --resume file")
	}
	if opts.jdPath != "" && opts.jdText != "" {
		return opts, errors.New("use either --jd or --jd-text, not both")
	}
	return opts, nil
}

func run(ctx context.Context, opts cliOptions, out io.Writer) error {
	client, err := session.NewAnalyzerClient(session.ClientConfig{BaseURL: opts.baseURL})
	if err != nil {
		return fmt.Errorf("init client: %w", err)
	}

	jobDescription := opts.jdText
	if opts.jdPath != "" {
		data, err := os.ReadFile(opts.jdPath)
		if err != nil {
			return fmt.Errorf("read job description: %w", err)
		}
		jobDescription = string(data)
	}

	doc, err := models.LoadDocument(opts.resumePath)
	if err != nil {
		return fmt.Errorf("load resume: %w", err)
	}

	logger := logging.NewDevelopment(opts.logLevel)
	defer logger.Sync()

	controller := session.NewController(client,
		session.WithTimeout(opts.timeout),
		session.WithLogger(logger),
	)

	var file *os.File
	if f, ok := out.(*os.File); ok {
		file = f
	}
	renderOpts := report.Options{Color: report.ColorEnabled(opts.color, file)}

	// A rejected file is reported through the Failed state.
	_ = controller.AcceptFile(doc)
	if doc != nil && doc.ExceedsAdvertisedLimit() {
		fmt.Fprintf(out, "Warning: %s is larger than %d MB and may be rejected by the service.\n",
			doc.Name, models.AdvertisedMaxFileSize>>20)
	}

	if _, failed := controller.State().(session.Failed); !failed {
		controller.SetJobDescription(jobDescription)
		_ = controller.Submit(ctx)
	}

	snap := controller.Snapshot()
	if opts.jsonOutput && snap.Phase == session.PhaseSucceeded {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap.Result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	} else if err := report.Render(out, snap, renderOpts); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if snap.Phase == session.PhaseFailed {
		return errAnalysisFailed
	}
	return nil
}

// Package batch analyzes many resumes against one job description with a
// fixed pool of workers.
package batch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"alfredoptarigan/resume-matcher/internal/logging"
	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/session"
)

// Outcome is the result of one resume. Exactly one of Result and Err is set.
type Outcome struct {
	Name   string
	Path   string
	Result *models.AnalysisResult
	Err    error
}

type Runner struct {
	client      session.AnalyzerClient
	concurrency int
	timeout     time.Duration
	logger      *logging.Logger
}

func NewRunner(client session.AnalyzerClient, concurrency int, timeout time.Duration, logger *logging.Logger) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		client:      client,
		concurrency: concurrency,
		timeout:     timeout,
		logger:      logger.With("component", "batch"),
	}
}

type job struct {
	index int
	path  string
}

// Run analyzes every path and returns one outcome per path, in input order.
// Each resume gets its own session so failures never leak between files.
func (r *Runner) Run(ctx context.Context, paths []string, jobDescription string) []Outcome {
	outcomes := make([]Outcome, len(paths))
	jobQueue := make(chan job)

	var wg sync.WaitGroup
	for i := 0; i < r.concurrency; i++ {
		wg.Add(1)
		go r.processJobs(ctx, i+1, jobQueue, jobDescription, outcomes, &wg)
	}

	for i, path := range paths {
		select {
		case jobQueue <- job{index: i, path: path}:
		case <-ctx.Done():
			outcomes[i] = Outcome{Name: filepath.Base(path), Path: path, Err: ctx.Err()}
		}
	}
	close(jobQueue)
	wg.Wait()

	return outcomes
}

func (r *Runner) processJobs(
	ctx context.Context,
	workerID int,
	jobQueue <-chan job,
	jobDescription string,
	outcomes []Outcome,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for j := range jobQueue {
		r.logger.Debug("worker processing resume", "worker", workerID, "path", j.path)
		outcome := r.analyze(ctx, j.path, jobDescription)
		if outcome.Err != nil {
			r.logger.Warn("resume failed", "worker", workerID, "file", outcome.Name, "err", outcome.Err)
		} else {
			r.logger.Info("resume analyzed", "worker", workerID, "file", outcome.Name, "overall_match", outcome.Result.OverallMatch)
		}
		outcomes[j.index] = outcome
	}
}

func (r *Runner) analyze(ctx context.Context, path, jobDescription string) Outcome {
	outcome := Outcome{Name: filepath.Base(path), Path: path}

	doc, err := models.LoadDocument(path)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	controller := session.NewController(r.client,
		session.WithTimeout(r.timeout),
		session.WithLogger(r.logger),
	)
	if err := controller.AcceptFile(doc); err != nil {
		outcome.Err = err
		return outcome
	}
	controller.SetJobDescription(jobDescription)

	if err := controller.Submit(ctx); err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.Result = controller.Snapshot().Result
	return outcome
}

// Summary counts outcomes per band.
type Summary struct {
	Bands  map[session.Band]int
	Failed int
}

func Summarize(outcomes []Outcome) Summary {
	s := Summary{Bands: map[session.Band]int{}}
	for _, o := range outcomes {
		if o.Err != nil {
			s.Failed++
			continue
		}
		s.Bands[session.BandFor(o.Result.OverallMatch)]++
	}
	return s
}

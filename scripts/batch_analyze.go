package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"alfredoptarigan/resume-matcher/internal/batch"
	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/logging"
	"alfredoptarigan/resume-matcher/internal/session"
)

// Runs every PDF in a directory against one job description and prints a
// summary by match band.
func main() {
	cfg := config.Load()

	dir := flag.String("dir", "./resumes", "Directory containing PDF resumes")
	jdPath := flag.String("jd", "./job_description.txt", "File containing the job description")
	baseURL := flag.String("url", cfg.Client.BaseURL, "Base URL of the analysis service")
	concurrency := flag.Int("concurrency", 2, "Number of resumes analyzed at once")
	flag.Parse()

	log := logging.NewDevelopment(cfg.Log.Level)
	defer log.Sync()

	jd, err := os.ReadFile(*jdPath)
	if err != nil {
		log.Fatal("failed to read job description", "path", *jdPath, "err", err)
	}

	client, err := session.NewAnalyzerClient(session.ClientConfig{BaseURL: *baseURL})
	if err != nil {
		log.Fatal("failed to create analyzer client", "err", err)
	}

	paths, err := filepath.Glob(filepath.Join(*dir, "*.pdf"))
	if err != nil {
		log.Fatal("failed to list resumes", "dir", *dir, "err", err)
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		log.Fatal("no PDF resumes found", "dir", *dir)
	}
	log.Info("starting batch analysis", "resumes", len(paths), "concurrency", *concurrency)

	runner := batch.NewRunner(client, *concurrency, cfg.Client.Timeout, log)
	outcomes := runner.Run(context.Background(), paths, string(jd))
	summary := batch.Summarize(outcomes)

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Batch Summary:")
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Printf("   %-30s ERROR %s\n", o.Name, o.Err)
			continue
		}
		band := session.BandFor(o.Result.OverallMatch)
		fmt.Printf("   %-30s %3d%%  %s\n", o.Name, o.Result.OverallMatch, band.Label())
	}
	fmt.Println(strings.Repeat("-", 60))
	for _, band := range []session.Band{session.BandHigh, session.BandMedium, session.BandLow} {
		fmt.Printf("   %-18s %d\n", band.Label()+":", summary.Bands[band])
	}
	fmt.Printf("   %-18s %d\n", "Failed:", summary.Failed)
	fmt.Println(strings.Repeat("=", 60))

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

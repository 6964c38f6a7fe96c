package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"alfredoptarigan/resume-matcher/internal/logging"
	"alfredoptarigan/resume-matcher/internal/models"
)

// Messages returned to clients in the error field of /analyze.
const (
	MsgUnreadableResume = "Could not extract text from resume"
	MsgInvalidAIOutput  = "Invalid AI JSON output"
	MsgQuotaExceeded    = "Gemini quota exceeded. Try again later."
)

// AnalysisFailure is an analysis that ran but could not produce a result.
// Message is safe to show to users.
type AnalysisFailure struct {
	Message string
	Err     error
}

func (f *AnalysisFailure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Message, f.Err)
	}
	return f.Message
}

func (f *AnalysisFailure) Unwrap() error {
	return f.Err
}

// FailureMessage returns the user-facing message for err.
func FailureMessage(err error) string {
	var f *AnalysisFailure
	if errors.As(err, &f) {
		return f.Message
	}
	return err.Error()
}

type AnalyzerService interface {
	Analyze(ctx context.Context, resume []byte, jobDescription string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	geminiService GeminiService
	pdfParser     PDFParserService
	promptBuilder *PromptBuilder
	maxRetries    int
	logger        *logging.Logger
}

func NewAnalyzerService(
	geminiService GeminiService,
	pdfParser PDFParserService,
	maxRetries int,
	logger *logging.Logger,
) AnalyzerService {
	return &analyzerService{
		geminiService: geminiService,
		pdfParser:     pdfParser,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
		logger:        logger.With("component", "analyzer"),
	}
}

// rawResult mirrors models.AnalysisResult but accepts fractional scores,
// which models sometimes return.
type rawResult struct {
	OverallMatch float64 `json:"overallMatch"`
	Sections     struct {
		Skills     rawSection `json:"skills"`
		Experience rawSection `json:"experience"`
		Education  rawSection `json:"education"`
	} `json:"sections"`
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Recommendations []string `json:"recommendations"`
}

type rawSection struct {
	Score float64 `json:"score"`
}

func (a *analyzerService) Analyze(ctx context.Context, resume []byte, jobDescription string) (*models.AnalysisResult, error) {
	content, err := a.pdfParser.ExtractText(resume)
	if err != nil {
		return nil, &AnalysisFailure{Message: MsgUnreadableResume, Err: err}
	}
	a.logger.Debug("resume parsed", "pages", content.PageCount, "chars", len(content.Text))

	prompt := a.promptBuilder.BuildMatchPrompt(content.Text, jobDescription)

	response, err := a.geminiService.GenerateTextWithRetry(ctx, prompt, a.maxRetries)
	if err != nil {
		if IsQuotaError(err) {
			return nil, &AnalysisFailure{Message: MsgQuotaExceeded, Err: err}
		}
		return nil, &AnalysisFailure{Message: err.Error(), Err: err}
	}

	var raw rawResult
	if err := parseJSONResponse(response, &raw); err != nil {
		a.logger.Warn("unparseable model output", "chars", len(response), "err", err)
		return nil, &AnalysisFailure{Message: MsgInvalidAIOutput, Err: err}
	}

	return normalize(raw), nil
}

func normalize(raw rawResult) *models.AnalysisResult {
	return &models.AnalysisResult{
		OverallMatch: percent(raw.OverallMatch),
		Sections: models.Sections{
			Skills:     models.SectionScore{Score: percent(raw.Sections.Skills.Score)},
			Experience: models.SectionScore{Score: percent(raw.Sections.Experience.Score)},
			Education:  models.SectionScore{Score: percent(raw.Sections.Education.Score)},
		},
		MatchedSkills:   nonNil(raw.MatchedSkills),
		MissingSkills:   nonNil(raw.MissingSkills),
		Recommendations: nonNil(raw.Recommendations),
	}
}

func percent(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, v))))
}

func nonNil(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseJSONResponse(response string, target interface{}) error {
	if err := json.Unmarshal([]byte(strings.TrimSpace(response)), target); err == nil {
		return nil
	}

	jsonStr := extractJSON(response)
	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// extractJSON pulls the outermost JSON object out of text that may be wrapped
// in markdown or prose.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}

	return text
}

package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path"
	"strings"

	"alfredoptarigan/resume-matcher/internal/models"
)

const defaultEndpoint = "/analyze"

// AnalyzeRequest is one submission: a resume and the job description it is
// matched against.
type AnalyzeRequest struct {
	Document       *models.Document
	JobDescription string
}

// AnalyzerClient talks to the analysis service.
type AnalyzerClient interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*models.AnalysisResult, error)
}

type ClientConfig struct {
	// BaseURL is the scheme and host of the analysis service, e.g.
	// http://localhost:8000.
	BaseURL string
	// Endpoint defaults to /analyze.
	Endpoint   string
	HTTPClient *http.Client
}

type analyzerClient struct {
	endpointURL string
	httpClient  *http.Client
}

func NewAnalyzerClient(cfg ClientConfig) (AnalyzerClient, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("analyzer: base url is required")
	}

	u, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("analyzer: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("analyzer: base url must be absolute: %q", cfg.BaseURL)
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	u.Path = path.Join("/", u.Path, endpoint)

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &analyzerClient{
		endpointURL: u.String(),
		httpClient:  httpClient,
	}, nil
}

// Analyze implements AnalyzerClient. Every failure is an *AnalysisError.
func (c *analyzerClient) Analyze(ctx context.Context, req AnalyzeRequest) (*models.AnalysisResult, error) {
	body, contentType, err := buildMultipart(req)
	if err != nil {
		return nil, newUnexpectedError(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, body)
	if err != nil {
		return nil, newUnexpectedError(fmt.Errorf("analyzer: build request: %w", err))
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, newTransportError(fmt.Errorf("analyzer: request failed: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, newTransportError(fmt.Errorf("analyzer: API error (%d): %s",
			resp.StatusCode, strings.TrimSpace(string(snippet))))
	}

	var payload wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if ctx.Err() != nil {
			return nil, newTransportError(fmt.Errorf("analyzer: read response: %w", err))
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &AnalysisError{Kind: KindUnexpected, Message: MsgGenericFailure, Err: err}
		}
		return nil, newUnexpectedError(err)
	}

	if payload.Error != "" {
		return nil, newServiceError(payload.Error)
	}

	return payload.result(), nil
}

// wireResponse accepts fractional scores. They are rounded to whole
// percentages but never clamped.
type wireResponse struct {
	OverallMatch float64 `json:"overallMatch"`
	Sections     struct {
		Skills     wireSection `json:"skills"`
		Experience wireSection `json:"experience"`
		Education  wireSection `json:"education"`
	} `json:"sections"`
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Recommendations []string `json:"recommendations"`
	Error           string   `json:"error"`
}

type wireSection struct {
	Score float64 `json:"score"`
}

func (w wireResponse) result() *models.AnalysisResult {
	return &models.AnalysisResult{
		OverallMatch: wholePercent(w.OverallMatch),
		Sections: models.Sections{
			Skills:     models.SectionScore{Score: wholePercent(w.Sections.Skills.Score)},
			Experience: models.SectionScore{Score: wholePercent(w.Sections.Experience.Score)},
			Education:  models.SectionScore{Score: wholePercent(w.Sections.Education.Score)},
		},
		MatchedSkills:   w.MatchedSkills,
		MissingSkills:   w.MissingSkills,
		Recommendations: w.Recommendations,
	}
}

func wholePercent(v float64) int {
	return int(math.Round(v))
}

func buildMultipart(req AnalyzeRequest) (io.Reader, string, error) {
	if req.Document == nil {
		return nil, "", fmt.Errorf("analyzer: document is required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	name := req.Document.Name
	if name == "" {
		name = "resume.pdf"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename="%s"`, escapeQuotes(name)))
	header.Set("Content-Type", models.PDFMediaType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("analyzer: create resume part: %w", err)
	}
	if _, err := part.Write(req.Document.Content); err != nil {
		return nil, "", fmt.Errorf("analyzer: write resume part: %w", err)
	}

	if err := w.WriteField("job_description", req.JobDescription); err != nil {
		return nil, "", fmt.Errorf("analyzer: write job_description part: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("analyzer: close multipart: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

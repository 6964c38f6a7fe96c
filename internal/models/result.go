package models

// SectionScore is the score of one evaluation category, 0-100.
type SectionScore struct {
	Score int `json:"score"`
}

// Sections holds the three fixed categories of a match report.
type Sections struct {
	Skills     SectionScore `json:"skills"`
	Experience SectionScore `json:"experience"`
	Education  SectionScore `json:"education"`
}

// AnalysisResult is the match report returned by the analysis service.
type AnalysisResult struct {
	OverallMatch    int      `json:"overallMatch"`
	Sections        Sections `json:"sections"`
	MatchedSkills   []string `json:"matchedSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Recommendations []string `json:"recommendations"`
}

// AnalyzeResponse is the body of POST /analyze. A non-empty Error marks the
// whole response as failed regardless of the HTTP status.
type AnalyzeResponse struct {
	AnalysisResult
	Error string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code,omitempty"`
}

type HistoryResponse struct {
	Analyses []AnalysisRecord `json:"analyses"`
	Total    int              `json:"total"`
}

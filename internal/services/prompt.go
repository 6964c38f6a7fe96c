package services

import (
	"fmt"
	"strings"
)

// maxPromptChars keeps very long resumes or job descriptions from crowding out
// the instructions.
const maxPromptChars = 30000

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildMatchPrompt creates the prompt that scores a resume against a job
// description.
func (pb *PromptBuilder) BuildMatchPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an applicant tracking system and an experienced technical recruiter.

Compare the candidate's resume with the job description and score how well they match.

Scoring:
- overallMatch: overall fit, integer 0-100
- sections.skills.score: technical and soft skill coverage, integer 0-100
- sections.experience.score: relevance and level of experience, integer 0-100
- sections.education.score: education and certifications fit, integer 0-100
- matchedSkills: skills required by the job that the resume demonstrates
- missingSkills: skills required by the job that the resume lacks
- recommendations: 3-5 concrete, actionable suggestions to improve the match

Return ONLY valid JSON. No explanation, no markdown, no extra text.

{
  "overallMatch": <0-100>,
  "sections": {
    "skills": { "score": <0-100> },
    "experience": { "score": <0-100> },
    "education": { "score": <0-100> }
  },
  "matchedSkills": ["<skill>"],
  "missingSkills": ["<skill>"],
  "recommendations": ["<recommendation>"]
}

RESUME:
%s

JOB DESCRIPTION:
%s`, truncate(CleanText(resumeText), maxPromptChars), truncate(strings.TrimSpace(jobDescription), maxPromptChars))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

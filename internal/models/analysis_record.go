package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusSucceeded AnalysisStatus = "succeeded"
	StatusFailed    AnalysisStatus = "failed"
)

// AnalysisRecord is one outcome of POST /analyze kept in the optional
// history. The resume itself is never stored.
type AnalysisRecord struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeName            string         `gorm:"type:text" json:"resume_name"`
	ResumeSizeBytes       int64          `json:"resume_size_bytes"`
	JobDescriptionExcerpt string         `gorm:"type:text" json:"job_description_excerpt"`
	Status                AnalysisStatus `gorm:"not null;default:'succeeded'" json:"status"`
	OverallMatch          *int           `json:"overall_match,omitempty"`
	SkillsScore           *int           `json:"skills_score,omitempty"`
	ExperienceScore       *int           `json:"experience_score,omitempty"`
	EducationScore        *int           `json:"education_score,omitempty"`
	MatchedSkills         []string       `gorm:"serializer:json;type:text" json:"matched_skills,omitempty"`
	MissingSkills         []string       `gorm:"serializer:json;type:text" json:"missing_skills,omitempty"`
	Recommendations       []string       `gorm:"serializer:json;type:text" json:"recommendations,omitempty"`
	ErrorMessage          *string        `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt             time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AnalysisRecord) TableName() string {
	return "analyses"
}

// NewSucceededRecord builds a history entry from a successful analysis.
func NewSucceededRecord(resumeName string, size int64, excerpt string, result *AnalysisResult) *AnalysisRecord {
	overall := result.OverallMatch
	skills := result.Sections.Skills.Score
	experience := result.Sections.Experience.Score
	education := result.Sections.Education.Score

	return &AnalysisRecord{
		ID:                    uuid.New(),
		ResumeName:            resumeName,
		ResumeSizeBytes:       size,
		JobDescriptionExcerpt: excerpt,
		Status:                StatusSucceeded,
		OverallMatch:          &overall,
		SkillsScore:           &skills,
		ExperienceScore:       &experience,
		EducationScore:        &education,
		MatchedSkills:         result.MatchedSkills,
		MissingSkills:         result.MissingSkills,
		Recommendations:       result.Recommendations,
		CreatedAt:             time.Now(),
	}
}

// NewFailedRecord builds a history entry for an analysis that reported an
// error to the client.
func NewFailedRecord(resumeName string, size int64, excerpt, message string) *AnalysisRecord {
	return &AnalysisRecord{
		ID:                    uuid.New(),
		ResumeName:            resumeName,
		ResumeSizeBytes:       size,
		JobDescriptionExcerpt: excerpt,
		Status:                StatusFailed,
		ErrorMessage:          &message,
		CreatedAt:             time.Now(),
	}
}

package types

import (
	"time"

	"github.com/jonathan/skill-gap-analyzer/internal/taxonomy"
)

// ReportVersion is the SkillGapReport format version.
const ReportVersion = "1.0.0"

// SideSummary summarizes one input side of an analysis.
type SideSummary struct {
	TotalSkills         int                 `json:"total_skills"`
	TotalEducation      int                 `json:"total_education"`
	TotalCertifications int                 `json:"total_certifications"`
	SkillCategories     []taxonomy.Category `json:"skill_categories"` // first-seen order
}

// LearningResource is a curated learning suggestion for a missing skill.
type LearningResource struct {
	Skill       string            `json:"skill"`
	Name        string            `json:"name"`
	Kind        string            `json:"kind"` // Course, Documentation, Tutorial, ...
	Platform    string            `json:"platform,omitempty"`
	URL         string            `json:"url,omitempty"`
	Description string            `json:"description,omitempty"`
	Category    taxonomy.Category `json:"skill_category,omitempty"`
}

// SkillGapReport is the complete analysis output handed to presentation.
type SkillGapReport struct {
	ReportID string `json:"report_id"`

	ResumeSummary         SideSummary `json:"resume_summary"`
	JobDescriptionSummary SideSummary `json:"job_description_summary"`

	FitScore    FitScoreBreakdown `json:"fit_score"`
	GapAnalysis GapAnalysis       `json:"gap_analysis"`

	Recommendations   []string           `json:"recommendations"`
	LearningResources []LearningResource `json:"learning_resources,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
	Version     string    `json:"version"`
}

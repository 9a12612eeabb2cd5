// Package types provides type definitions for structured data used throughout the skill-gap-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/jonathan/skill-gap-analyzer/internal/taxonomy"

// Skill represents a single extracted competency with its taxonomy category.
// Skills are immutable once extracted.
type Skill struct {
	Name       string            `json:"name"`
	Category   taxonomy.Category `json:"category"`
	Confidence float64           `json:"confidence,omitempty"` // extraction confidence, 0.0-1.0
	Aliases    []string          `json:"aliases,omitempty"`
}

// Education represents an education qualification or requirement.
type Education struct {
	Degree    string `json:"degree,omitempty"`
	Field     string `json:"field,omitempty"`
	Required  bool   `json:"required"`
	Preferred bool   `json:"preferred"`
}

// Certification represents a professional certification or requirement.
type Certification struct {
	Name      string `json:"name"`
	Issuer    string `json:"issuer,omitempty"`
	Required  bool   `json:"required"`
	Preferred bool   `json:"preferred"`
}

// SkillExtractionResult is the structured output of the extraction
// collaborator for one side (resume or job description). Never mutated
// after creation.
type SkillExtractionResult struct {
	Skills         []Skill         `json:"skills"`
	Education      []Education     `json:"education,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
}

package types

import "github.com/go-playground/validator/v10"

// WeightOverrides carries caller-supplied scoring weights. Nil pointers mean
// "use the default"; validation of ranges and the sum happens in fitscore.
type WeightOverrides struct {
	Technical  *float64 `json:"technical,omitempty" validate:"omitempty,gte=0"`
	SoftSkills *float64 `json:"soft_skills,omitempty" validate:"omitempty,gte=0"`
}

// AnalyzeGapRequest is the request body for the analyze-gap endpoint.
// Both skill lists may be empty (degenerate inputs score as nil), so the
// sides themselves carry no required constraint.
type AnalyzeGapRequest struct {
	ResumeSkills SkillExtractionResult `json:"resume_skills"`
	JDSkills     SkillExtractionResult `json:"jd_skills"`
	Weights      *WeightOverrides      `json:"weights,omitempty" validate:"omitempty"`
}

// AnalyzeGapResponse wraps the report with the measured analysis time.
type AnalyzeGapResponse struct {
	Report       SkillGapReport `json:"report"`
	AnalysisTime float64        `json:"analysis_time"` // seconds
}

// Validate validates the AnalyzeGapRequest using the validator.
func (r *AnalyzeGapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

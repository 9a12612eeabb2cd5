package types

// FitScoreBreakdown is the weighted scoring summary produced from a
// GapAnalysis. Sub-scores are nil when the JD has no requirements of that
// class; OverallScore is nil only when every sub-score is nil.
type FitScoreBreakdown struct {
	OverallScore       *float64 `json:"overall_score"`     // 0-100
	TechnicalScore     *float64 `json:"technical_score"`   // 0-100
	SoftSkillsScore    *float64 `json:"soft_skills_score"` // 0-100
	EducationScore     *float64 `json:"education_score,omitempty"`
	CertificationScore *float64 `json:"certification_score,omitempty"`

	MatchedCount  int `json:"matched_count"`
	MissingCount  int `json:"missing_count"`
	TotalJDSkills int `json:"total_jd_skills"`

	TechnicalWeight  float64 `json:"technical_weight"`
	SoftSkillsWeight float64 `json:"soft_skills_weight"`
}

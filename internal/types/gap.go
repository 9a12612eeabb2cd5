package types

import "github.com/jonathan/skill-gap-analyzer/internal/taxonomy"

// MatchType identifies the matcher tier that resolved a skill match.
type MatchType string

// Match tiers, in decreasing order of confidence.
const (
	MatchExact   MatchType = "exact"
	MatchSynonym MatchType = "synonym"
	MatchFuzzy   MatchType = "fuzzy"
)

// SkillMatch represents a job-description requirement satisfied by a resume
// skill. Skill carries the JD-side record (the report is framed from the
// requirement perspective); ResumeSkill is the surface name that satisfied it.
type SkillMatch struct {
	Skill       Skill     `json:"skill"`
	ResumeSkill string    `json:"resume_skill"`
	MatchType   MatchType `json:"match_type"`
	Confidence  float64   `json:"confidence"` // 0.0-1.0
}

// CategoryCounts holds matched/missing/extra tallies for one category.
type CategoryCounts struct {
	Matched int `json:"matched"`
	Missing int `json:"missing"`
	Extra   int `json:"extra"`
}

// GapAnalysis is the matched/missing/extra partition of the two skill sets.
// Every JD skill appears in exactly one of MatchedSkills or MissingSkills;
// every resume skill not consumed by a match appears in ExtraSkills.
type GapAnalysis struct {
	MatchedSkills []SkillMatch `json:"matched_skills"`
	MissingSkills []Skill      `json:"missing_skills"`
	ExtraSkills   []Skill      `json:"extra_skills"`

	CategoryBreakdown map[taxonomy.Category]CategoryCounts `json:"category_breakdown"`
}

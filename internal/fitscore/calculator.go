// Package fitscore computes the weighted fit score between a resume and a
// job description from a gap analysis.
package fitscore

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/skill-gap-analyzer/internal/taxonomy"
	"github.com/jonathan/skill-gap-analyzer/internal/types"
)

// Default weights for the technical and soft-skill components.
const (
	DefaultTechnicalWeight  = 0.7
	DefaultSoftSkillsWeight = 0.3

	weightSumEpsilon = 1e-9
)

// Weights are the resolved scoring weights. Invariant: Technical +
// SoftSkills == 1.0.
type Weights struct {
	Technical  float64
	SoftSkills float64
}

// ResolveWeights validates caller overrides and fills in defaults. Supplied
// weights must be non-negative; when both are given they must sum to 1.0
// within a small epsilon, and a single supplied weight implies its
// complement. A nil override resolves to the defaults.
func ResolveWeights(overrides *types.WeightOverrides) (Weights, error) {
	if overrides == nil || (overrides.Technical == nil && overrides.SoftSkills == nil) {
		return Weights{Technical: DefaultTechnicalWeight, SoftSkills: DefaultSoftSkillsWeight}, nil
	}

	if overrides.Technical != nil && *overrides.Technical < 0 {
		return Weights{}, &InvalidWeightsError{Message: fmt.Sprintf("technical weight must be non-negative, got %v", *overrides.Technical)}
	}
	if overrides.SoftSkills != nil && *overrides.SoftSkills < 0 {
		return Weights{}, &InvalidWeightsError{Message: fmt.Sprintf("soft skills weight must be non-negative, got %v", *overrides.SoftSkills)}
	}

	var w Weights
	switch {
	case overrides.Technical != nil && overrides.SoftSkills != nil:
		w = Weights{Technical: *overrides.Technical, SoftSkills: *overrides.SoftSkills}
		if math.Abs(w.Technical+w.SoftSkills-1.0) > weightSumEpsilon {
			return Weights{}, &InvalidWeightsError{Message: fmt.Sprintf("weights must sum to 1.0, got %v", w.Technical+w.SoftSkills)}
		}
	case overrides.Technical != nil:
		if *overrides.Technical > 1 {
			return Weights{}, &InvalidWeightsError{Message: fmt.Sprintf("technical weight must not exceed 1.0, got %v", *overrides.Technical)}
		}
		w = Weights{Technical: *overrides.Technical, SoftSkills: 1.0 - *overrides.Technical}
	default:
		if *overrides.SoftSkills > 1 {
			return Weights{}, &InvalidWeightsError{Message: fmt.Sprintf("soft skills weight must not exceed 1.0, got %v", *overrides.SoftSkills)}
		}
		w = Weights{Technical: 1.0 - *overrides.SoftSkills, SoftSkills: *overrides.SoftSkills}
	}

	return w, nil
}

// Calculator computes fit scores. Stateless and safe for concurrent use.
type Calculator struct{}

// NewCalculator creates a Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate produces the fit score breakdown for a gap analysis. The resume
// and JD extraction results supply the education and certification lists and
// the JD skill total. Weight validation failures return an
// InvalidWeightsError before any scoring runs.
func (c *Calculator) Calculate(
	analysis types.GapAnalysis,
	resume, jd types.SkillExtractionResult,
	overrides *types.WeightOverrides,
) (types.FitScoreBreakdown, error) {
	weights, err := ResolveWeights(overrides)
	if err != nil {
		return types.FitScoreBreakdown{}, err
	}

	technicalScore := classScore(analysis, taxonomy.ClassTechnical)
	softScore := classScore(analysis, taxonomy.ClassSoft)
	overall := combineScores(technicalScore, softScore, weights)

	return types.FitScoreBreakdown{
		OverallScore:       overall,
		TechnicalScore:     technicalScore,
		SoftSkillsScore:    softScore,
		EducationScore:     educationScore(resume.Education, jd.Education),
		CertificationScore: certificationScore(resume.Certifications, jd.Certifications),
		MatchedCount:       len(analysis.MatchedSkills),
		MissingCount:       len(analysis.MissingSkills),
		TotalJDSkills:      len(analysis.MatchedSkills) + len(analysis.MissingSkills),
		TechnicalWeight:    weights.Technical,
		SoftSkillsWeight:   weights.SoftSkills,
	}, nil
}

// classScore computes matched-over-required for one scoring class, as a
// percentage. Returns nil when the JD has no skills of that class: a missing
// denominator is unscorable, not a zero.
func classScore(analysis types.GapAnalysis, class taxonomy.Class) *float64 {
	matched := 0
	for _, m := range analysis.MatchedSkills {
		if taxonomy.ClassOf(m.Skill.Category) == class {
			matched++
		}
	}
	total := matched
	for _, s := range analysis.MissingSkills {
		if taxonomy.ClassOf(s.Category) == class {
			total++
		}
	}

	if total == 0 {
		return nil
	}

	score := float64(matched) / float64(total) * 100.0
	return round2(clamp(score))
}

// combineScores weights the non-nil sub-scores, renormalizing the remaining
// weight to 1.0 so an unscorable component does not dilute the rest. Both
// sub-scores nil means no JD skills at all: the overall score is nil.
func combineScores(technical, soft *float64, w Weights) *float64 {
	sum := 0.0
	weightSum := 0.0
	if technical != nil {
		sum += *technical * w.Technical
		weightSum += w.Technical
	}
	if soft != nil {
		sum += *soft * w.SoftSkills
		weightSum += w.SoftSkills
	}

	if weightSum == 0 {
		// Either no scorable component, or the only scorable component
		// carries zero weight; in both cases nothing meaningful to report.
		if technical != nil {
			return round2(clamp(*technical))
		}
		if soft != nil {
			return round2(clamp(*soft))
		}
		return nil
	}

	return round2(clamp(sum / weightSum))
}

// educationScore scores the resume's education against JD requirements.
// Required entries gate a 0-or-100 base; preferred entries add a bonus of up
// to 20 points, capped at 100. Nil when the JD lists no education.
func educationScore(resume, jd []types.Education) *float64 {
	if len(jd) == 0 {
		return nil
	}

	var required, preferred []types.Education
	for _, e := range jd {
		if e.Required {
			required = append(required, e)
		}
		if e.Preferred {
			preferred = append(preferred, e)
		}
	}

	if len(required) > 0 {
		if len(matchEducation(resume, required)) == 0 {
			return round2(0.0)
		}
		score := 100.0
		if len(preferred) > 0 {
			bonus := float64(len(matchEducation(resume, preferred))) / float64(len(preferred)) * 20.0
			score = math.Min(100.0, score+bonus)
		}
		return round2(score)
	}

	if len(preferred) > 0 {
		score := float64(len(matchEducation(resume, preferred))) / float64(len(preferred)) * 100.0
		return round2(clamp(score))
	}

	return nil
}

// matchEducation returns the JD education entries satisfied by the resume.
// Degrees compare through the static degree mapping; a JD field constraint
// must also match when present.
func matchEducation(resume, jd []types.Education) []types.Education {
	var matches []types.Education
	for _, req := range jd {
		for _, have := range resume {
			if req.Degree == "" || have.Degree == "" {
				continue
			}
			if normalizeDegree(req.Degree) != normalizeDegree(have.Degree) {
				continue
			}
			if req.Field != "" {
				if have.Field == "" || !strings.EqualFold(strings.TrimSpace(req.Field), strings.TrimSpace(have.Field)) {
					continue
				}
			}
			matches = append(matches, req)
			break
		}
	}
	return matches
}

// degreeMapping reduces common degree spellings to a comparable form.
var degreeMapping = []struct {
	token  string
	degree string
}{
	{"bachelor", "bachelor"},
	{"b.sc", "bachelor"},
	{"bs", "bachelor"},
	{"ba", "bachelor"},
	{"master", "master"},
	{"m.sc", "master"},
	{"ms", "master"},
	{"ma", "master"},
	{"ph.d", "phd"},
	{"phd", "phd"},
	{"doctorate", "phd"},
	{"doctor", "phd"},
}

func normalizeDegree(degree string) string {
	lower := strings.ToLower(strings.TrimSpace(degree))
	for _, m := range degreeMapping {
		if strings.Contains(lower, m.token) {
			return m.degree
		}
	}
	return lower
}

// certificationScore scores the resume's certifications against JD
// requirements, with the same required/preferred shape as educationScore.
// Nil when the JD lists no certifications.
func certificationScore(resume, jd []types.Certification) *float64 {
	if len(jd) == 0 {
		return nil
	}

	var required, preferred []types.Certification
	for _, c := range jd {
		if c.Required {
			required = append(required, c)
		}
		if c.Preferred {
			preferred = append(preferred, c)
		}
	}

	if len(required) > 0 {
		if len(matchCertifications(resume, required)) == 0 {
			return round2(0.0)
		}
		score := 100.0
		if len(preferred) > 0 {
			bonus := float64(len(matchCertifications(resume, preferred))) / float64(len(preferred)) * 20.0
			score = math.Min(100.0, score+bonus)
		}
		return round2(score)
	}

	if len(preferred) > 0 {
		score := float64(len(matchCertifications(resume, preferred))) / float64(len(preferred)) * 100.0
		return round2(clamp(score))
	}

	return nil
}

// matchCertifications returns JD certifications the resume satisfies. Names
// match by normalized containment in either direction; a JD issuer
// constraint must also match when present.
func matchCertifications(resume, jd []types.Certification) []types.Certification {
	var matches []types.Certification
	for _, req := range jd {
		reqName := strings.ToLower(strings.TrimSpace(req.Name))
		if reqName == "" {
			continue
		}
		for _, have := range resume {
			haveName := strings.ToLower(strings.TrimSpace(have.Name))
			if haveName == "" {
				continue
			}
			if !strings.Contains(haveName, reqName) && !strings.Contains(reqName, haveName) {
				continue
			}
			if req.Issuer != "" {
				if have.Issuer == "" || !strings.EqualFold(strings.TrimSpace(req.Issuer), strings.TrimSpace(have.Issuer)) {
					continue
				}
			}
			matches = append(matches, req)
			break
		}
	}
	return matches
}

func clamp(score float64) float64 {
	return math.Min(100.0, math.Max(0.0, score))
}

func round2(score float64) *float64 {
	rounded := math.Round(score*100) / 100
	return &rounded
}

// Package recommend generates personalized recommendations from a gap
// analysis. Output is deterministic for identical input.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/skill-gap-analyzer/internal/taxonomy"
	"github.com/jonathan/skill-gap-analyzer/internal/types"
)

const (
	maxTechnicalSuggestions = 5
	maxExtraHighlights      = 3
	focusAreaThreshold      = 3 // missing skills per category to flag it
)

// Generate produces recommendation strings for a gap analysis. The overall
// score is nil when the JD listed no skills; the score-band summary is
// skipped in that case.
func Generate(analysis types.GapAnalysis, overallScore *float64) []string {
	var recs []string

	if overallScore != nil {
		recs = append(recs, scoreBandSummary(*overallScore))
	}

	recs = append(recs, missingSkillRecommendations(analysis.MissingSkills)...)

	if len(analysis.ExtraSkills) > 0 {
		n := min(len(analysis.ExtraSkills), maxExtraHighlights)
		recs = append(recs, fmt.Sprintf(
			"Highlight these additional skills in your application: %s. These can differentiate you from other candidates.",
			joinNames(analysis.ExtraSkills[:n])))
	}

	if fuzzy := countFuzzyMatches(analysis.MatchedSkills); fuzzy > 0 {
		recs = append(recs, fmt.Sprintf(
			"Note: %d of your skills matched with lower confidence. Consider updating your resume to use the exact terminology from the job description.",
			fuzzy))
	}

	if focus := focusAreas(analysis.CategoryBreakdown); len(focus) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Focus areas: %s. These categories have multiple missing skills; prioritize learning in these areas.",
			strings.Join(focus, ", ")))
	}

	if len(recs) == 0 {
		recs = append(recs, "Review the detailed breakdown to identify specific areas for improvement.")
	}

	return recs
}

func scoreBandSummary(score float64) string {
	switch {
	case score >= 80:
		return "Excellent match. Your skills align well with the job requirements; focus on highlighting your strengths in your application."
	case score >= 60:
		return "Good match. You have a solid foundation; consider focusing on the missing skills to improve your fit."
	case score >= 40:
		return "Moderate match. You have some relevant skills, but there are significant gaps; consider upskilling in the areas listed."
	default:
		return "Low match. This role may require significant skill development; consider whether this is the right opportunity or whether you are willing to invest in the required skills."
	}
}

func missingSkillRecommendations(missing []types.Skill) []string {
	if len(missing) == 0 {
		return nil
	}

	byClass := make(map[taxonomy.Class][]types.Skill)
	for _, s := range missing {
		class := taxonomy.ClassOf(s.Category)
		byClass[class] = append(byClass[class], s)
	}

	var recs []string
	if technical := byClass[taxonomy.ClassTechnical]; len(technical) > 0 {
		n := min(len(technical), maxTechnicalSuggestions)
		recs = append(recs, fmt.Sprintf(
			"Prioritize learning these technical skills: %s. Consider online courses, tutorials, or hands-on projects to build proficiency.",
			joinNames(technical[:n])))
	}
	if soft := byClass[taxonomy.ClassSoft]; len(soft) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Develop these soft skills: %s. Consider joining professional groups, taking communication courses, or seeking mentorship opportunities.",
			joinNames(soft)))
	}
	if methodologies := byClass[taxonomy.ClassMethodology]; len(methodologies) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Learn these methodologies: %s. Consider certifications or training programs to demonstrate proficiency.",
			joinNames(methodologies)))
	}

	return recs
}

func countFuzzyMatches(matched []types.SkillMatch) int {
	count := 0
	for _, m := range matched {
		if m.MatchType == types.MatchFuzzy {
			count++
		}
	}
	return count
}

// focusAreas returns categories with at least focusAreaThreshold missing
// skills, sorted for deterministic output.
func focusAreas(breakdown map[taxonomy.Category]types.CategoryCounts) []string {
	var areas []string
	for category, counts := range breakdown {
		if counts.Missing >= focusAreaThreshold {
			areas = append(areas, string(category))
		}
	}
	sort.Strings(areas)
	return areas
}

func joinNames(skills []types.Skill) string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

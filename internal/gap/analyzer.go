// Package gap partitions resume and job-description skill sets into
// matched, missing, and extra skills with a per-category breakdown.
package gap

import (
	"github.com/jonathan/skill-gap-analyzer/internal/matching"
	"github.com/jonathan/skill-gap-analyzer/internal/normalize"
	"github.com/jonathan/skill-gap-analyzer/internal/taxonomy"
	"github.com/jonathan/skill-gap-analyzer/internal/types"
)

// Analyzer orchestrates the matcher over two extraction results. It is
// stateless across calls and safe for concurrent use.
type Analyzer struct {
	normalizer *normalize.Normalizer
	matcher    *matching.Matcher
}

// NewAnalyzer creates an Analyzer from a normalizer and matcher.
func NewAnalyzer(normalizer *normalize.Normalizer, matcher *matching.Matcher) *Analyzer {
	return &Analyzer{normalizer: normalizer, matcher: matcher}
}

// Analyze compares resume skills against job-description skills.
//
// Each JD skill, in input order, claims the unconsumed resume skill with the
// highest match confidence; confidence ties go to the earliest resume skill.
// A resume skill satisfies at most one JD skill. JD skills left unclaimed
// become missing; resume skills left unconsumed become extra. Skills whose
// names normalize to the noise sentinel are excluded everywhere.
//
// Output is deterministic for identical input.
func (a *Analyzer) Analyze(resume, jd types.SkillExtractionResult) types.GapAnalysis {
	// Normalize each side exactly once per call.
	resumeKeys := make([]normalize.Key, len(resume.Skills))
	for i, s := range resume.Skills {
		resumeKeys[i] = a.normalizer.Normalize(s)
	}
	jdKeys := make([]normalize.Key, len(jd.Skills))
	for i, s := range jd.Skills {
		jdKeys[i] = a.normalizer.Normalize(s)
	}

	matched := make([]types.SkillMatch, 0, len(jd.Skills))
	missing := make([]types.Skill, 0)
	consumed := make([]bool, len(resume.Skills))

	for j, jdKey := range jdKeys {
		if jdKey.IsUnknown() {
			continue
		}

		bestIdx := -1
		var best matching.Result
		for r, resumeKey := range resumeKeys {
			if consumed[r] {
				continue
			}
			result, ok := a.matcher.Match(resumeKey, jdKey)
			if !ok {
				continue
			}
			if bestIdx == -1 || result.Confidence > best.Confidence {
				bestIdx = r
				best = result
			}
		}

		if bestIdx == -1 {
			missing = append(missing, jd.Skills[j])
			continue
		}

		consumed[bestIdx] = true
		matched = append(matched, types.SkillMatch{
			Skill:       jd.Skills[j],
			ResumeSkill: resume.Skills[bestIdx].Name,
			MatchType:   best.Type,
			Confidence:  best.Confidence,
		})
	}

	extra := make([]types.Skill, 0)
	for r, key := range resumeKeys {
		if key.IsUnknown() || consumed[r] {
			continue
		}
		extra = append(extra, resume.Skills[r])
	}

	return types.GapAnalysis{
		MatchedSkills:     matched,
		MissingSkills:     missing,
		ExtraSkills:       extra,
		CategoryBreakdown: buildCategoryBreakdown(matched, missing, extra),
	}
}

// buildCategoryBreakdown tallies matched/missing/extra counts per category.
// Matched and missing entries count under the JD skill's category, extra
// entries under the resume skill's category.
func buildCategoryBreakdown(matched []types.SkillMatch, missing, extra []types.Skill) map[taxonomy.Category]types.CategoryCounts {
	breakdown := make(map[taxonomy.Category]types.CategoryCounts)

	for _, m := range matched {
		counts := breakdown[m.Skill.Category]
		counts.Matched++
		breakdown[m.Skill.Category] = counts
	}
	for _, s := range missing {
		counts := breakdown[s.Category]
		counts.Missing++
		breakdown[s.Category] = counts
	}
	for _, s := range extra {
		counts := breakdown[s.Category]
		counts.Extra++
		breakdown[s.Category] = counts
	}

	return breakdown
}

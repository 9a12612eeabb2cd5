package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-gap-analyzer/internal/matching"
	"github.com/jonathan/skill-gap-analyzer/internal/normalize"
	"github.com/jonathan/skill-gap-analyzer/internal/taxonomy"
	"github.com/jonathan/skill-gap-analyzer/internal/types"
)

func newTestAnalyzer() *Analyzer {
	normalizer := normalize.NewNormalizer(normalize.DefaultAliasTable())
	return NewAnalyzer(normalizer, matching.NewMatcher(matching.DefaultFuzzyThreshold))
}

func extraction(skills ...types.Skill) types.SkillExtractionResult {
	return types.SkillExtractionResult{Skills: skills}
}

func TestAnalyze_ExactMatchAndPartitions(t *testing.T) {
	analyzer := newTestAnalyzer()

	resume := extraction(
		types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "AWS", Category: taxonomy.CloudServices},
	)
	jd := extraction(
		types.Skill{Name: "python", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Azure", Category: taxonomy.CloudServices},
	)

	result := analyzer.Analyze(resume, jd)

	require.Len(t, result.MatchedSkills, 1)
	assert.Equal(t, "python", result.MatchedSkills[0].Skill.Name)
	assert.Equal(t, "Python", result.MatchedSkills[0].ResumeSkill)
	assert.Equal(t, types.MatchExact, result.MatchedSkills[0].MatchType)
	assert.Equal(t, 1.0, result.MatchedSkills[0].Confidence)

	require.Len(t, result.MissingSkills, 1)
	assert.Equal(t, "Azure", result.MissingSkills[0].Name)

	require.Len(t, result.ExtraSkills, 1)
	assert.Equal(t, "AWS", result.ExtraSkills[0].Name)
}

func TestAnalyze_SynonymMatch(t *testing.T) {
	analyzer := newTestAnalyzer()

	resume := extraction(types.Skill{Name: "JavaScript", Category: taxonomy.ProgrammingLanguages})
	jd := extraction(types.Skill{Name: "JS", Category: taxonomy.ProgrammingLanguages})

	result := analyzer.Analyze(resume, jd)

	require.Len(t, result.MatchedSkills, 1)
	assert.Equal(t, types.MatchSynonym, result.MatchedSkills[0].MatchType)
	assert.Equal(t, 0.9, result.MatchedSkills[0].Confidence)
}

func TestAnalyze_FuzzyMatchOnTypo(t *testing.T) {
	analyzer := newTestAnalyzer()

	resume := extraction(types.Skill{Name: "Pythonn", Category: taxonomy.ProgrammingLanguages})
	jd := extraction(types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages})

	result := analyzer.Analyze(resume, jd)

	require.Len(t, result.MatchedSkills, 1)
	assert.Equal(t, types.MatchFuzzy, result.MatchedSkills[0].MatchType)
	assert.GreaterOrEqual(t, result.MatchedSkills[0].Confidence, matching.DefaultFuzzyThreshold)
}

func TestAnalyze_EmptyResume_AllJDSkillsMissing(t *testing.T) {
	analyzer := newTestAnalyzer()

	jd := extraction(
		types.Skill{Name: "Go", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Docker", Category: taxonomy.ToolsPlatforms},
	)

	result := analyzer.Analyze(extraction(), jd)

	assert.Empty(t, result.MatchedSkills)
	assert.Len(t, result.MissingSkills, 2)
	assert.Empty(t, result.ExtraSkills)
}

func TestAnalyze_EmptyJD_AllResumeSkillsExtra(t *testing.T) {
	analyzer := newTestAnalyzer()

	resume := extraction(
		types.Skill{Name: "Go", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Docker", Category: taxonomy.ToolsPlatforms},
	)

	result := analyzer.Analyze(resume, extraction())

	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Len(t, result.ExtraSkills, 2)
	assert.Empty(t, result.CategoryBreakdown[taxonomy.ProgrammingLanguages].Missing)
}

func TestAnalyze_NoiseSkillsExcludedEverywhere(t *testing.T) {
	analyzer := newTestAnalyzer()

	resume := extraction(
		types.Skill{Name: "  ", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Go", Category: taxonomy.ProgrammingLanguages},
	)
	jd := extraction(
		types.Skill{Name: "", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Go", Category: taxonomy.ProgrammingLanguages},
	)

	result := analyzer.Analyze(resume, jd)

	assert.Len(t, result.MatchedSkills, 1)
	assert.Empty(t, result.MissingSkills)
	assert.Empty(t, result.ExtraSkills)
}

func TestAnalyze_ResumeSkillConsumedAtMostOnce(t *testing.T) {
	analyzer := newTestAnalyzer()

	resume := extraction(types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages})
	jd := extraction(
		types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Python", Category: taxonomy.DataScience},
	)

	result := analyzer.Analyze(resume, jd)

	require.Len(t, result.MatchedSkills, 1)
	require.Len(t, result.MissingSkills, 1)
	assert.Equal(t, taxonomy.DataScience, result.MissingSkills[0].Category)
}

func TestAnalyze_HighestConfidenceWins(t *testing.T) {
	analyzer := newTestAnalyzer()

	// The fuzzy candidate appears first, but the exact one must win.
	resume := extraction(
		types.Skill{Name: "Pythonn", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages},
	)
	jd := extraction(types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages})

	result := analyzer.Analyze(resume, jd)

	require.Len(t, result.MatchedSkills, 1)
	assert.Equal(t, "Python", result.MatchedSkills[0].ResumeSkill)
	assert.Equal(t, types.MatchExact, result.MatchedSkills[0].MatchType)

	require.Len(t, result.ExtraSkills, 1)
	assert.Equal(t, "Pythonn", result.ExtraSkills[0].Name)
}

func TestAnalyze_ConfidenceTieGoesToFirstResumeSkill(t *testing.T) {
	analyzer := newTestAnalyzer()

	// Two identical resume entries both match exactly; the earlier one is
	// consumed.
	resume := extraction(
		types.Skill{Name: "go", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Go", Category: taxonomy.ToolsPlatforms},
	)
	jd := extraction(types.Skill{Name: "Go", Category: taxonomy.ProgrammingLanguages})

	result := analyzer.Analyze(resume, jd)

	require.Len(t, result.MatchedSkills, 1)
	assert.Equal(t, "go", result.MatchedSkills[0].ResumeSkill)

	require.Len(t, result.ExtraSkills, 1)
	assert.Equal(t, taxonomy.ToolsPlatforms, result.ExtraSkills[0].Category)
}

func TestAnalyze_CategoryBreakdownSumsToListLengths(t *testing.T) {
	analyzer := newTestAnalyzer()

	resume := extraction(
		types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Leadership", Category: taxonomy.Leadership},
		types.Skill{Name: "Terraform", Category: taxonomy.DevOps},
	)
	jd := extraction(
		types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Kubernetes", Category: taxonomy.DevOps},
		types.Skill{Name: "Communication", Category: taxonomy.Communication},
	)

	result := analyzer.Analyze(resume, jd)

	matched, missing, extra := 0, 0, 0
	for _, counts := range result.CategoryBreakdown {
		matched += counts.Matched
		missing += counts.Missing
		extra += counts.Extra
	}

	assert.Equal(t, len(result.MatchedSkills), matched)
	assert.Equal(t, len(result.MissingSkills), missing)
	assert.Equal(t, len(result.ExtraSkills), extra)
}

func TestAnalyze_BreakdownUsesJDCategoryForMatched(t *testing.T) {
	analyzer := newTestAnalyzer()

	// Same name, different categories: the JD's category counts.
	resume := extraction(types.Skill{Name: "Python", Category: taxonomy.ToolsPlatforms})
	jd := extraction(types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages})

	result := analyzer.Analyze(resume, jd)

	assert.Equal(t, 1, result.CategoryBreakdown[taxonomy.ProgrammingLanguages].Matched)
	assert.Zero(t, result.CategoryBreakdown[taxonomy.ToolsPlatforms].Matched)
}

func TestAnalyze_Deterministic(t *testing.T) {
	analyzer := newTestAnalyzer()

	resume := extraction(
		types.Skill{Name: "Python", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Pythonn", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "JS", Category: taxonomy.ProgrammingLanguages},
	)
	jd := extraction(
		types.Skill{Name: "JavaScript", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "python", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Rust", Category: taxonomy.ProgrammingLanguages},
	)

	first := analyzer.Analyze(resume, jd)
	second := analyzer.Analyze(resume, jd)

	assert.Equal(t, first, second)
}

func TestAnalyze_CompletenessInvariant(t *testing.T) {
	analyzer := newTestAnalyzer()

	resume := extraction(
		types.Skill{Name: "Go", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Docker", Category: taxonomy.ToolsPlatforms},
		types.Skill{Name: "Scrum", Category: taxonomy.Scrum},
	)
	jd := extraction(
		types.Skill{Name: "Go", Category: taxonomy.ProgrammingLanguages},
		types.Skill{Name: "Kubernetes", Category: taxonomy.DevOps},
	)

	result := analyzer.Analyze(resume, jd)

	assert.Equal(t, len(jd.Skills), len(result.MatchedSkills)+len(result.MissingSkills))
	assert.Equal(t, len(resume.Skills), len(result.MatchedSkills)+len(result.ExtraSkills))
}

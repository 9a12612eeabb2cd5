package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skill-gap-analyzer/internal/fitscore"
	"github.com/jonathan/skill-gap-analyzer/internal/taxonomy"
	"github.com/jonathan/skill-gap-analyzer/internal/types"
)

func ptr(v float64) *float64 { return &v }

func sampleResume() types.SkillExtractionResult {
	return types.SkillExtractionResult{
		Skills: []types.Skill{
			{Name: "Python", Category: taxonomy.ProgrammingLanguages},
			{Name: "Docker", Category: taxonomy.ToolsPlatforms},
			{Name: "Communication", Category: taxonomy.Communication},
		},
		Education: []types.Education{{Degree: "B.Sc.", Field: "Computer Science"}},
	}
}

func sampleJD() types.SkillExtractionResult {
	return types.SkillExtractionResult{
		Skills: []types.Skill{
			{Name: "python", Category: taxonomy.ProgrammingLanguages},
			{Name: "Kubernetes", Category: taxonomy.DevOps},
			{Name: "Communication", Category: taxonomy.Communication},
		},
		Education: []types.Education{{Degree: "Bachelor", Field: "Computer Science", Required: true}},
	}
}

func TestGenerate_AssemblesCompleteReport(t *testing.T) {
	g := NewDefaultGenerator()

	rep, err := g.Generate(sampleResume(), sampleJD(), nil)
	require.NoError(t, err)

	_, err = uuid.Parse(rep.ReportID)
	assert.NoError(t, err)
	assert.Equal(t, types.ReportVersion, rep.Version)
	assert.False(t, rep.GeneratedAt.IsZero())
	assert.Equal(t, time.UTC, rep.GeneratedAt.Location())

	assert.Equal(t, 3, rep.ResumeSummary.TotalSkills)
	assert.Equal(t, 1, rep.ResumeSummary.TotalEducation)
	assert.Equal(t, 3, rep.JobDescriptionSummary.TotalSkills)

	assert.Len(t, rep.GapAnalysis.MatchedSkills, 2)
	assert.Len(t, rep.GapAnalysis.MissingSkills, 1)
	assert.NotNil(t, rep.FitScore.OverallScore)
	assert.NotEmpty(t, rep.Recommendations)

	// Kubernetes is missing and curated, so a resource shows up.
	require.NotEmpty(t, rep.LearningResources)
	assert.Equal(t, "Kubernetes", rep.LearningResources[0].Skill)
}

func TestGenerate_InvalidWeightsReturnNoPartialReport(t *testing.T) {
	g := NewDefaultGenerator()

	rep, err := g.Generate(sampleResume(), sampleJD(), &types.WeightOverrides{
		Technical:  ptr(0.9),
		SoftSkills: ptr(0.9),
	})

	var invalid *fitscore.InvalidWeightsError
	require.ErrorAs(t, err, &invalid)
	assert.Zero(t, rep)
}

func TestGenerate_EmptyInputs(t *testing.T) {
	g := NewDefaultGenerator()

	rep, err := g.Generate(types.SkillExtractionResult{}, types.SkillExtractionResult{}, nil)
	require.NoError(t, err)

	assert.Nil(t, rep.FitScore.OverallScore)
	assert.Empty(t, rep.GapAnalysis.MatchedSkills)
	assert.Empty(t, rep.LearningResources)
	assert.NotEmpty(t, rep.Recommendations)
}

func TestGenerate_SummaryCategoriesFirstSeenOrder(t *testing.T) {
	g := NewDefaultGenerator()

	resume := types.SkillExtractionResult{
		Skills: []types.Skill{
			{Name: "Docker", Category: taxonomy.ToolsPlatforms},
			{Name: "Python", Category: taxonomy.ProgrammingLanguages},
			{Name: "Git", Category: taxonomy.ToolsPlatforms},
		},
	}

	rep, err := g.Generate(resume, types.SkillExtractionResult{}, nil)
	require.NoError(t, err)

	assert.Equal(t,
		[]taxonomy.Category{taxonomy.ToolsPlatforms, taxonomy.ProgrammingLanguages},
		rep.ResumeSummary.SkillCategories)
}

func TestGenerate_FreshReportIDPerCall(t *testing.T) {
	g := NewDefaultGenerator()

	first, err := g.Generate(sampleResume(), sampleJD(), nil)
	require.NoError(t, err)
	second, err := g.Generate(sampleResume(), sampleJD(), nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ReportID, second.ReportID)
	// Everything but identity and timestamp is deterministic.
	assert.Equal(t, first.GapAnalysis, second.GapAnalysis)
	assert.Equal(t, first.FitScore, second.FitScore)
	assert.Equal(t, first.Recommendations, second.Recommendations)
}

// Package report assembles complete skill gap reports from the engine's
// component outputs.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skill-gap-analyzer/internal/fitscore"
	"github.com/jonathan/skill-gap-analyzer/internal/gap"
	"github.com/jonathan/skill-gap-analyzer/internal/matching"
	"github.com/jonathan/skill-gap-analyzer/internal/normalize"
	"github.com/jonathan/skill-gap-analyzer/internal/recommend"
	"github.com/jonathan/skill-gap-analyzer/internal/resources"
	"github.com/jonathan/skill-gap-analyzer/internal/taxonomy"
	"github.com/jonathan/skill-gap-analyzer/internal/types"
)

// Generator runs the full analysis pipeline and assembles the report. All
// components are pure; a Generator may be shared across concurrent callers.
type Generator struct {
	analyzer   *gap.Analyzer
	calculator *fitscore.Calculator
	catalog    *resources.Catalog
	now        func() time.Time
}

// NewGenerator creates a Generator from a normalizer and matcher. The same
// normalizer drives gap analysis and learning-resource lookup so both see
// identical canonical forms.
func NewGenerator(normalizer *normalize.Normalizer, matcher *matching.Matcher) *Generator {
	return &Generator{
		analyzer:   gap.NewAnalyzer(normalizer, matcher),
		calculator: fitscore.NewCalculator(),
		catalog:    resources.NewCatalog(normalizer),
		now:        time.Now,
	}
}

// NewDefaultGenerator creates a Generator with the default alias table and
// fuzzy threshold.
func NewDefaultGenerator() *Generator {
	normalizer := normalize.NewNormalizer(normalize.DefaultAliasTable())
	return NewGenerator(normalizer, matching.NewMatcher(matching.DefaultFuzzyThreshold))
}

// Generate analyzes the two extraction results and assembles the complete
// report. Weight validation failures are returned before any analysis output
// is produced.
func (g *Generator) Generate(
	resume, jd types.SkillExtractionResult,
	weights *types.WeightOverrides,
) (types.SkillGapReport, error) {
	// Fail fast on malformed weights: all-or-nothing, no partial report.
	if _, err := fitscore.ResolveWeights(weights); err != nil {
		return types.SkillGapReport{}, err
	}

	analysis := g.analyzer.Analyze(resume, jd)

	score, err := g.calculator.Calculate(analysis, resume, jd, weights)
	if err != nil {
		return types.SkillGapReport{}, err
	}

	return types.SkillGapReport{
		ReportID:              uuid.NewString(),
		ResumeSummary:         summarize(resume),
		JobDescriptionSummary: summarize(jd),
		FitScore:              score,
		GapAnalysis:           analysis,
		Recommendations:       recommend.Generate(analysis, score.OverallScore),
		LearningResources:     g.catalog.ForMissingSkills(analysis.MissingSkills),
		GeneratedAt:           g.now().UTC(),
		Version:               types.ReportVersion,
	}, nil
}

// summarize builds the side summary; categories keep first-seen order so the
// summary is deterministic for identical input.
func summarize(side types.SkillExtractionResult) types.SideSummary {
	seen := make(map[taxonomy.Category]bool)
	categories := make([]taxonomy.Category, 0)
	for _, s := range side.Skills {
		if !seen[s.Category] {
			seen[s.Category] = true
			categories = append(categories, s.Category)
		}
	}

	return types.SideSummary{
		TotalSkills:         len(side.Skills),
		TotalEducation:      len(side.Education),
		TotalCertifications: len(side.Certifications),
		SkillCategories:     categories,
	}
}

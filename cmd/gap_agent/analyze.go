package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skill-gap-analyzer/internal/config"
	"github.com/jonathan/skill-gap-analyzer/internal/matching"
	"github.com/jonathan/skill-gap-analyzer/internal/normalize"
	"github.com/jonathan/skill-gap-analyzer/internal/observability"
	"github.com/jonathan/skill-gap-analyzer/internal/report"
	"github.com/jonathan/skill-gap-analyzer/internal/schemas"
	"github.com/jonathan/skill-gap-analyzer/internal/types"
)

var (
	analyzeResumePath      string
	analyzeJDPath          string
	analyzeConfigPath      string
	analyzeOutputPath      string
	analyzeTechnicalWeight float64
	analyzeSoftWeight      float64
	analyzeFuzzyThreshold  float64
	analyzeVerbose         bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the skill gap between a resume and a job description",
	Long:  `Analyze compares two skill extraction results (resume side and job description side) and writes a complete skill gap report as JSON.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumePath, "resume", "", "Path to resume extraction result JSON (required)")
	analyzeCmd.Flags().StringVar(&analyzeJDPath, "jd", "", "Path to job description extraction result JSON (required)")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeOutputPath, "output", "", "Path to write the report JSON (default stdout)")
	analyzeCmd.Flags().Float64Var(&analyzeTechnicalWeight, "technical-weight", 0, "Weight for technical skills (0.0-1.0)")
	analyzeCmd.Flags().Float64Var(&analyzeSoftWeight, "soft-weight", 0, "Weight for soft skills (0.0-1.0)")
	analyzeCmd.Flags().Float64Var(&analyzeFuzzyThreshold, "fuzzy-threshold", 0, "Minimum similarity for fuzzy matches (0.0-1.0)")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print detailed analysis breakdown")
	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("jd")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := resolveAnalyzeConfig()
	if err != nil {
		return err
	}

	resume, err := loadExtractionResult(analyzeResumePath)
	if err != nil {
		return fmt.Errorf("failed to load resume skills: %w", err)
	}
	jd, err := loadExtractionResult(analyzeJDPath)
	if err != nil {
		return fmt.Errorf("failed to load job description skills: %w", err)
	}

	normalizer := normalize.NewNormalizer(normalize.DefaultAliasTable())
	matcher := matching.NewMatcher(cfg.FuzzyThreshold)
	generator := report.NewGenerator(normalizer, matcher)

	result, err := generator.Generate(resume, jd, weightOverrides(cfg))
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintGapAnalysis(&result.GapAnalysis)
		printer.PrintCategoryBreakdown(&result.GapAnalysis)
		printer.PrintFitScore(&result.FitScore)
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, append(encoded, '\n'), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	fmt.Println(string(encoded))
	return nil
}

// resolveAnalyzeConfig merges config file values with CLI flags; flags win.
func resolveAnalyzeConfig() (config.Config, error) {
	var fileCfg config.Config
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	flagCfg := config.Config{
		TechnicalWeight:  analyzeTechnicalWeight,
		SoftSkillsWeight: analyzeSoftWeight,
		FuzzyThreshold:   analyzeFuzzyThreshold,
		Verbose:          analyzeVerbose,
		Output:           analyzeOutputPath,
	}

	merged := flagCfg.MergeWithDefaults(fileCfg)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}

	return merged, nil
}

// weightOverrides translates config weights into calculator overrides.
// Zero-valued weights mean "not supplied": the calculator applies defaults.
func weightOverrides(cfg config.Config) *types.WeightOverrides {
	if cfg.TechnicalWeight == 0 && cfg.SoftSkillsWeight == 0 {
		return nil
	}

	overrides := &types.WeightOverrides{}
	if cfg.TechnicalWeight != 0 {
		technical := cfg.TechnicalWeight
		overrides.Technical = &technical
	}
	if cfg.SoftSkillsWeight != 0 {
		soft := cfg.SoftSkillsWeight
		overrides.SoftSkills = &soft
	}
	return overrides
}

// loadExtractionResult reads a SkillExtractionResult JSON document,
// validating it against the wire schema before unmarshaling.
func loadExtractionResult(path string) (types.SkillExtractionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SkillExtractionResult{}, err
	}

	if err := schemas.ValidateExtractionResult(data); err != nil {
		return types.SkillExtractionResult{}, err
	}

	var result types.SkillExtractionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return types.SkillExtractionResult{}, err
	}

	return result, nil
}

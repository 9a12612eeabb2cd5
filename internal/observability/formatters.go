// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/skill-gap-analyzer/internal/taxonomy"
	"github.com/jonathan/skill-gap-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintGapAnalysis outputs a human-readable summary of the gap analysis.
func (p *Printer) PrintGapAnalysis(analysis *types.GapAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Matched:  %d\n", len(analysis.MatchedSkills)))
	sb.WriteString(fmt.Sprintf("Missing:  %d\n", len(analysis.MissingSkills)))
	sb.WriteString(fmt.Sprintf("Extra:    %d\n", len(analysis.ExtraSkills)))
	sb.WriteString("\n")

	if len(analysis.MatchedSkills) > 0 {
		sb.WriteString("Matched Skills:\n")
		count := min(len(analysis.MatchedSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := analysis.MatchedSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s ← %s (%s, %.2f)\n", m.Skill.Name, m.ResumeSkill, m.MatchType, m.Confidence))
		}
		if len(analysis.MatchedSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.MatchedSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(analysis.MissingSkills) > 0 {
		sb.WriteString("Missing Skills:\n")
		count := min(len(analysis.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := analysis.MissingSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", s.Name, s.Category))
		}
		if len(analysis.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.MissingSkills)-maxItemsToShow))
		}
	}

	p.printBox("Gap Analysis", strings.TrimRight(sb.String(), "\n"))
}

// PrintFitScore outputs a human-readable summary of the fit score breakdown.
func (p *Printer) PrintFitScore(score *types.FitScoreBreakdown) {
	if score == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:        %s\n", formatScore(score.OverallScore)))
	sb.WriteString(fmt.Sprintf("Technical:      %s (weight %.2f)\n", formatScore(score.TechnicalScore), score.TechnicalWeight))
	sb.WriteString(fmt.Sprintf("Soft Skills:    %s (weight %.2f)\n", formatScore(score.SoftSkillsScore), score.SoftSkillsWeight))
	if score.EducationScore != nil {
		sb.WriteString(fmt.Sprintf("Education:      %s\n", formatScore(score.EducationScore)))
	}
	if score.CertificationScore != nil {
		sb.WriteString(fmt.Sprintf("Certifications: %s\n", formatScore(score.CertificationScore)))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Matched %d of %d JD skills (%d missing)",
		score.MatchedCount, score.TotalJDSkills, score.MissingCount))

	p.printBox("Fit Score", sb.String())
}

// PrintCategoryBreakdown outputs per-category matched/missing/extra counts,
// sorted by category name for stable output.
func (p *Printer) PrintCategoryBreakdown(analysis *types.GapAnalysis) {
	if analysis == nil || len(analysis.CategoryBreakdown) == 0 {
		return
	}

	categories := make([]taxonomy.Category, 0, len(analysis.CategoryBreakdown))
	for category := range analysis.CategoryBreakdown {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	var sb strings.Builder
	for _, category := range categories {
		counts := analysis.CategoryBreakdown[category]
		sb.WriteString(fmt.Sprintf("%-24s matched %d, missing %d, extra %d\n",
			category, counts.Matched, counts.Missing, counts.Extra))
	}

	p.printBox("Category Breakdown", strings.TrimRight(sb.String(), "\n"))
}

func formatScore(score *float64) string {
	if score == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *score)
}

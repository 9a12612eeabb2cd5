// Package resources provides a curated catalog of learning resources for
// closing skill gaps.
package resources

import (
	"github.com/jonathan/skill-gap-analyzer/internal/normalize"
	"github.com/jonathan/skill-gap-analyzer/internal/taxonomy"
	"github.com/jonathan/skill-gap-analyzer/internal/types"
)

// Catalog looks up learning resources by canonical skill name. Immutable
// after construction; safe for concurrent use.
type Catalog struct {
	normalizer *normalize.Normalizer
	entries    map[string][]types.LearningResource
}

// NewCatalog creates a Catalog over the built-in curated entries, using the
// given normalizer so lookups tolerate alias and casing variation.
func NewCatalog(normalizer *normalize.Normalizer) *Catalog {
	return &Catalog{normalizer: normalizer, entries: curatedEntries()}
}

// ForMissingSkills returns resources for each missing skill that has catalog
// entries, in missing-skill order. Skills without entries are skipped.
func (c *Catalog) ForMissingSkills(missing []types.Skill) []types.LearningResource {
	var out []types.LearningResource
	for _, skill := range missing {
		key := c.normalizer.Normalize(skill)
		if key.IsUnknown() {
			continue
		}
		for _, entry := range c.entries[key.Canonical] {
			entry.Skill = skill.Name
			out = append(out, entry)
		}
	}
	return out
}

// curatedEntries is keyed by canonical skill name.
func curatedEntries() map[string][]types.LearningResource {
	return map[string][]types.LearningResource{
		"python": {
			{
				Name:        "Python for Everybody Specialization",
				Kind:        "Course",
				Platform:    "Coursera",
				URL:         "https://www.coursera.org/specializations/python",
				Description: "Python programming fundamentals and data structures",
				Category:    taxonomy.ProgrammingLanguages,
			},
		},
		"javascript": {
			{
				Name:        "JavaScript Algorithms and Data Structures",
				Kind:        "Course",
				Platform:    "freeCodeCamp",
				URL:         "https://www.freecodecamp.org/learn/javascript-algorithms-and-data-structures/",
				Description: "Free comprehensive JavaScript course",
				Category:    taxonomy.ProgrammingLanguages,
			},
		},
		"typescript": {
			{
				Name:        "Understanding TypeScript",
				Kind:        "Course",
				Platform:    "Udemy",
				URL:         "https://www.udemy.com/course/understanding-typescript/",
				Description: "TypeScript features and best practices",
				Category:    taxonomy.ProgrammingLanguages,
			},
		},
		"go": {
			{
				Name:        "A Tour of Go",
				Kind:        "Tutorial",
				Platform:    "Official",
				URL:         "https://go.dev/tour/",
				Description: "Official interactive introduction to Go",
				Category:    taxonomy.ProgrammingLanguages,
			},
		},
		"react": {
			{
				Name:        "React Documentation",
				Kind:        "Documentation",
				Platform:    "Official",
				URL:         "https://react.dev/",
				Description: "Official React documentation and tutorials",
				Category:    taxonomy.FrameworksLibraries,
			},
		},
		"kubernetes": {
			{
				Name:        "Kubernetes Basics",
				Kind:        "Tutorial",
				Platform:    "Official",
				URL:         "https://kubernetes.io/docs/tutorials/kubernetes-basics/",
				Description: "Official Kubernetes basics tutorial",
				Category:    taxonomy.DevOps,
			},
		},
		"docker": {
			{
				Name:        "Docker Getting Started",
				Kind:        "Tutorial",
				Platform:    "Official",
				URL:         "https://docs.docker.com/get-started/",
				Description: "Official Docker getting-started guide",
				Category:    taxonomy.ToolsPlatforms,
			},
		},
		"aws": {
			{
				Name:        "AWS Cloud Practitioner Essentials",
				Kind:        "Course",
				Platform:    "AWS Skill Builder",
				URL:         "https://skillbuilder.aws/",
				Description: "Foundational AWS cloud concepts",
				Category:    taxonomy.CloudServices,
			},
		},
		"postgresql": {
			{
				Name:        "PostgreSQL Tutorial",
				Kind:        "Tutorial",
				Platform:    "postgresqltutorial.com",
				URL:         "https://www.postgresqltutorial.com/",
				Description: "Practical PostgreSQL from basics to advanced",
				Category:    taxonomy.Databases,
			},
		},
		"communication": {
			{
				Name:        "Improving Communication Skills",
				Kind:        "Course",
				Platform:    "Coursera",
				URL:         "https://www.coursera.org/learn/wharton-communication-skills",
				Description: "Evidence-based communication techniques",
				Category:    taxonomy.Communication,
			},
		},
		"leadership": {
			{
				Name:        "Leading People and Teams Specialization",
				Kind:        "Course",
				Platform:    "Coursera",
				URL:         "https://www.coursera.org/specializations/leading-teams",
				Description: "Team leadership fundamentals",
				Category:    taxonomy.Leadership,
			},
		},
		"agile": {
			{
				Name:        "Agile with Atlassian Jira",
				Kind:        "Course",
				Platform:    "Coursera",
				URL:         "https://www.coursera.org/learn/agile-atlassian-jira",
				Description: "Agile principles with hands-on tooling",
				Category:    taxonomy.Agile,
			},
		},
	}
}

// Package normalize canonicalizes skill names into comparable keys.
package normalize

import (
	"regexp"
	"strings"

	"github.com/jonathan/skill-gap-analyzer/internal/taxonomy"
	"github.com/jonathan/skill-gap-analyzer/internal/types"
)

var (
	reFrameworkSuffix = regexp.MustCompile(`\.(jsx?|tsx?)$`)
	reSeparators      = regexp.MustCompile(`[-_]`)
	reFillerPrefix    = regexp.MustCompile(`^(proficient|experienced|skilled|expert|knowledge|familiar)\s+(in\s+|with\s+)?`)
	reFillerSuffix    = regexp.MustCompile(`\s+(experience|proficiency|skills?|knowledge)$`)
)

// Key is a normalized, comparable view of a skill. Name is the cleaned
// lowercase form; Canonical is the alias-table entry the name resolves to
// (equal to Name when the table has no entry). Category is preserved
// verbatim from the source skill.
type Key struct {
	Name      string
	Canonical string
	Category  taxonomy.Category
}

// IsUnknown reports whether the key is the noise sentinel produced from an
// empty or whitespace-only skill name. Unknown keys never match anything and
// are excluded from all counts.
func (k Key) IsUnknown() bool {
	return k.Name == ""
}

// Normalizer canonicalizes skill names using an immutable alias table.
type Normalizer struct {
	aliases map[string]string // normalized surface form -> canonical form
}

// NewNormalizer creates a Normalizer from an alias table mapping each
// canonical name to its surface forms. The table is flattened once at
// construction; the canonical name always resolves to itself.
func NewNormalizer(table AliasTable) *Normalizer {
	aliases := make(map[string]string)
	for canonical, surfaces := range table {
		cleanCanonical := cleanName(canonical)
		if cleanCanonical == "" {
			continue
		}
		aliases[cleanCanonical] = cleanCanonical
		for _, surface := range surfaces {
			cleanSurface := cleanName(surface)
			if cleanSurface == "" {
				continue
			}
			aliases[cleanSurface] = cleanCanonical
		}
	}
	return &Normalizer{aliases: aliases}
}

// Normalize canonicalizes a skill into a comparable key. Pure and
// deterministic; empty or whitespace-only names yield the unknown sentinel.
func (n *Normalizer) Normalize(skill types.Skill) Key {
	name := cleanName(skill.Name)
	if name == "" {
		return Key{Category: skill.Category}
	}

	canonical := name
	if c, ok := n.aliases[name]; ok {
		canonical = c
	}

	return Key{
		Name:      name,
		Canonical: canonical,
		Category:  skill.Category,
	}
}

// cleanName lowercases, trims, strips framework suffixes and proficiency
// filler, maps separators to spaces, and collapses internal whitespace.
func cleanName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}

	s = reFrameworkSuffix.ReplaceAllString(s, "")
	s = reSeparators.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	s = reFillerPrefix.ReplaceAllString(s, "")
	s = reFillerSuffix.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}

package compat

import "biomeready/internal/catalog"

// Match pairs an enabled ESLint rule with its documented Biome equivalent.
type Match struct {
	ESLint   string `json:"eslint"`
	Biome    string `json:"biome"`
	Category string `json:"category,omitempty"`
}

// Compatibility is the classification of an enabled rule set against the
// catalog.
type Compatibility struct {
	Compatible        []Match  `json:"compatible"`
	Incompatible      []string `json:"incompatible"`
	CompatibilityRate float64  `json:"compatibilityRate"`
}

// Report is the full result of one check run.
type Report struct {
	ESLintRules []string      `json:"eslintRules"`
	TotalRules  int           `json:"totalRules"`
	Biome       Compatibility `json:"biomeCompatibility"`
}

// Classify matches each enabled rule against the catalog: exact source-id
// match first, then one retry with the plugin prefix stripped. No match after
// both attempts means the rule is incompatible.
func Classify(rules []string, table *catalog.Table) *Report {
	rep := &Report{
		ESLintRules: append([]string(nil), rules...),
		TotalRules:  len(rules),
		Biome: Compatibility{
			Compatible:   []Match{},
			Incompatible: []string{},
		},
	}

	for _, id := range rules {
		entry, ok := table.Lookup(id)
		if !ok {
			if stripped, had := StripPluginPrefix(id); had {
				entry, ok = table.Lookup(stripped)
			}
		}
		if !ok {
			rep.Biome.Incompatible = append(rep.Biome.Incompatible, id)
			continue
		}
		rep.Biome.Compatible = append(rep.Biome.Compatible, Match{
			ESLint:   id,
			Biome:    entry.Target,
			Category: entry.Category,
		})
	}

	if rep.TotalRules > 0 {
		rep.Biome.CompatibilityRate = float64(len(rep.Biome.Compatible)) / float64(rep.TotalRules) * 100
	}
	return rep
}

package catalog

import (
	"encoding/json"
	"fmt"
)

// StructuredParser reads Biome's machine-readable rules metadata document:
// a nested mapping of language -> category -> rule id -> descriptor. A
// descriptor with sources yields one equivalence entry per listed external
// source; a descriptor with none is a Biome-exclusive rule.
type StructuredParser struct{}

type structuredDoc struct {
	Lints     *structuredLints                `json:"lints"`
	Languages map[string]structuredCategories `json:"languages"`
}

type structuredLints struct {
	Languages map[string]structuredCategories `json:"languages"`
}

type structuredCategories map[string]map[string]structuredRule

type structuredRule struct {
	Name    string             `json:"name"`
	Sources []structuredSource `json:"sources"`
}

type structuredSource struct {
	Kind   string            `json:"kind"`
	Source map[string]string `json:"source"`
}

// sourcePrefixes maps a catalog source key to the plugin prefix its rule ids
// carry in ESLint configurations. Keys absent here pass the rule id through
// bare; the matcher's prefix stripping keeps lookups symmetric either way.
var sourcePrefixes = map[string]string{
	"eslint":           "",
	"eslintTypeScript": "@typescript-eslint/",
	"eslintReact":      "react/",
	"eslintReactHooks": "react-hooks/",
	"eslintJsxA11y":    "jsx-a11y/",
	"eslintImport":     "import/",
	"eslintUnicorn":    "unicorn/",
	"eslintN":          "n/",
	"eslintJest":       "jest/",
	"eslintNext":       "@next/next/",
	"eslintSolid":      "solidjs/",
	"eslintStylistic":  "@stylistic/",
}

func (StructuredParser) Parse(data []byte) (*Table, error) {
	var doc structuredDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse rules catalog: %w", err)
	}

	languages := doc.Languages
	if doc.Lints != nil && len(doc.Lints.Languages) > 0 {
		languages = doc.Lints.Languages
	}
	if len(languages) == 0 {
		return nil, fmt.Errorf("parse rules catalog: no languages section")
	}

	// Keys are iterated in sorted order so first-match-wins is deterministic.
	table := NewTable()
	for _, lang := range sortedKeys(languages) {
		categories := languages[lang]
		for _, category := range sortedKeys(categories) {
			descriptors := categories[category]
			label := lang + "/" + category
			for _, id := range sortedKeys(descriptors) {
				desc := descriptors[id]
				name := desc.Name
				if name == "" {
					name = id
				}
				if len(desc.Sources) == 0 {
					table.AddExclusive(name)
					continue
				}
				for _, src := range desc.Sources {
					for _, key := range sortedKeys(src.Source) {
						ruleID := src.Source[key]
						if ruleID == "" {
							continue
						}
						table.Add(Entry{
							Source:   sourcePrefixes[key] + ruleID,
							Target:   name,
							Category: label,
						})
					}
				}
			}
		}
	}
	return table, nil
}

package compat

import (
	"reflect"
	"testing"

	"biomeready/internal/catalog"
)

func TestClassify(t *testing.T) {
	table := catalog.NewTable()
	table.Add(catalog.Entry{Source: "no-var", Target: "useVar", Category: "JS"})

	rep := Classify([]string{"no-var", "@typescript-eslint/no-explicit-any"}, table)

	if rep.TotalRules != 2 {
		t.Fatalf("want total 2, got %d", rep.TotalRules)
	}
	wantCompatible := []Match{{ESLint: "no-var", Biome: "useVar", Category: "JS"}}
	if !reflect.DeepEqual(rep.Biome.Compatible, wantCompatible) {
		t.Fatalf("want %v, got %v", wantCompatible, rep.Biome.Compatible)
	}
	if !reflect.DeepEqual(rep.Biome.Incompatible, []string{"@typescript-eslint/no-explicit-any"}) {
		t.Fatalf("want one incompatible rule, got %v", rep.Biome.Incompatible)
	}
	if rep.Biome.CompatibilityRate != 50 {
		t.Fatalf("want rate 50, got %v", rep.Biome.CompatibilityRate)
	}
}

func TestClassifyPrefixStrippedMatch(t *testing.T) {
	table := catalog.NewTable()
	table.Add(catalog.Entry{Source: "no-explicit-any", Target: "noExplicitAny", Category: "javascript/suspicious"})

	rep := Classify([]string{"@typescript-eslint/no-explicit-any"}, table)
	if len(rep.Biome.Compatible) != 1 {
		t.Fatalf("want a match via prefix stripping, got %v", rep.Biome.Incompatible)
	}
	m := rep.Biome.Compatible[0]
	if m.ESLint != "@typescript-eslint/no-explicit-any" || m.Biome != "noExplicitAny" {
		t.Fatalf("unexpected match %v", m)
	}
}

func TestClassifyExactMatchPrecedesStripped(t *testing.T) {
	table := catalog.NewTable()
	table.Add(catalog.Entry{Source: "@typescript-eslint/no-explicit-any", Target: "exactTarget"})
	table.Add(catalog.Entry{Source: "no-explicit-any", Target: "strippedTarget"})

	rep := Classify([]string{"@typescript-eslint/no-explicit-any"}, table)
	if rep.Biome.Compatible[0].Biome != "exactTarget" {
		t.Fatalf("exact match must win, got %s", rep.Biome.Compatible[0].Biome)
	}
}

func TestClassifyRate(t *testing.T) {
	table := catalog.NewTable()
	table.Add(catalog.Entry{Source: "no-var", Target: "useVar"})

	tests := []struct {
		name  string
		rules []string
		want  float64
	}{
		{"empty rule set", nil, 0},
		{"all compatible", []string{"no-var"}, 100},
		{"none compatible", []string{"semi"}, 0},
		{"one of three", []string{"no-var", "semi", "curly"}, float64(1) / float64(3) * 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := Classify(tt.rules, table)
			if rep.Biome.CompatibilityRate != tt.want {
				t.Fatalf("want %v, got %v", tt.want, rep.Biome.CompatibilityRate)
			}
			if rep.Biome.CompatibilityRate < 0 || rep.Biome.CompatibilityRate > 100 {
				t.Fatalf("rate out of bounds: %v", rep.Biome.CompatibilityRate)
			}
		})
	}
}

package output

import (
	"fmt"
	"io"

	"biomeready/internal/catalog"
	"biomeready/internal/compat"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderText writes the human-readable compatibility report.
func RenderText(w io.Writer, rep *compat.Report) error {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	if _, err := bold.Fprintf(w, "ESLint configuration: %d enabled rule(s)\n\n", rep.TotalRules); err != nil {
		return err
	}

	if rep.TotalRules == 0 {
		_, err := fmt.Fprintln(w, "No enabled rules found in the effective configuration.")
		return err
	}

	if len(rep.Biome.Compatible) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ESLint rule", "Biome rule", "Category"})
		for _, m := range rep.Biome.Compatible {
			t.AppendRow(table.Row{m.ESLint, m.Biome, m.Category})
		}
		t.Render()
		fmt.Fprintln(w)
	}

	if len(rep.Biome.Incompatible) > 0 {
		if _, err := red.Fprintln(w, "No Biome equivalent:"); err != nil {
			return err
		}
		for _, id := range rep.Biome.Incompatible {
			fmt.Fprintf(w, "  - %s\n", id)
		}
		fmt.Fprintln(w)
	}

	_, err := green.Fprintf(w, "Compatibility: %d/%d (%.1f%%)\n",
		len(rep.Biome.Compatible), rep.TotalRules, rep.Biome.CompatibilityRate)
	return err
}

// RenderRules writes the bare enabled-rule list, one id per line.
func RenderRules(w io.Writer, rules []string) error {
	for _, id := range rules {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return err
		}
	}
	return nil
}

// RenderCatalog writes the fetched rule catalog: the equivalence table
// followed by Biome-exclusive rules.
func RenderCatalog(w io.Writer, cat *catalog.Table) error {
	bold := color.New(color.Bold)

	entries := cat.Entries()
	if _, err := bold.Fprintf(w, "Documented equivalences: %d\n\n", len(entries)); err != nil {
		return err
	}
	if len(entries) > 0 {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ESLint rule", "Biome rule", "Category"})
		for _, e := range entries {
			t.AppendRow(table.Row{e.Source, e.Target, e.Category})
		}
		t.Render()
		fmt.Fprintln(w)
	}

	exclusive := cat.Exclusive()
	if len(exclusive) > 0 {
		if _, err := bold.Fprintf(w, "Biome exclusive rules: %d\n", len(exclusive)); err != nil {
			return err
		}
		for _, id := range exclusive {
			fmt.Fprintf(w, "  - %s\n", id)
		}
	}
	return nil
}

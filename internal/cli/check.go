package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"biomeready/internal/catalog"
	"biomeready/internal/compat"
	"biomeready/internal/config"
	"biomeready/internal/eslint"
	"biomeready/internal/flags"
	"biomeready/internal/output"

	"github.com/spf13/cobra"
)

var cfg = config.New()

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Check an ESLint configuration for Biome migration compatibility",
	Long: `Check a project's ESLint configuration for Biome migration compatibility.

BiomeReady resolves the effective ESLint configuration for the target by
running 'npx eslint --print-config', falling back to legacy config resolution
and an ancestor directory search for known configuration files. It then
fetches Biome's rule catalog and classifies every enabled rule as having (or
not having) a documented Biome equivalent.

The path may be a single file or a project root. For a project root,
configuration is resolved for <path>/index.js unless --file names an explicit
target.

Output:
	Human-readable by default. --json emits the structured report:
	{eslintRules, totalRules, biomeCompatibility:{compatible, incompatible,
	compatibilityRate}}. --rules-only stops after extraction and prints only
	the enabled ESLint rule ids (a bare sorted array in --json mode).

Exit codes:
	0 = report produced
	1 = handled error (missing path, no configuration, extraction failure,
	    catalog fetch failure)

Examples:
	# Check the project in the current directory
	biomeready check .

	# Check a specific file, machine-readable
	biomeready check src/app.ts --json

	# Resolve config for an explicit file within a project root
	biomeready check ./web --file src/main.tsx

	# Use the legacy markdown docs as the catalog source
	biomeready check . --source https://biomejs.dev/linter/rules-sources/
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && cmd.Flags().NFlag() == 0 {
			_ = cmd.Help()
			return
		}

		if len(args) > 0 {
			cfg.Target.Path = args[0]
		} else if cfg.Target.Path == "" {
			cfg.Target.Path = "."
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := runCheck(context.Background(), cmd, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error (%s): %v\n", errorClass(err), err)
			os.Exit(1)
		}
	},
}

func runCheck(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	var verbose io.Writer
	if cfg.Runtime.Verbose {
		verbose = cmd.ErrOrStderr()
	}

	// Target resolution happens before any subprocess or network activity so
	// a missing path fails fast.
	target, err := eslint.ResolveTarget(cfg.Target.Path, cfg.Target.File)
	if err != nil {
		return err
	}

	runner := eslint.NewRunner(
		eslint.WithTimeout(cfg.Runtime.Timeout),
		eslint.WithVerbose(verbose),
	)
	rules, err := runner.EnabledRules(ctx, target)
	if err != nil {
		return err
	}

	if cfg.Output.RulesOnly {
		if cfg.Output.JSON {
			return output.WriteJSON(cmd.OutOrStdout(), rules)
		}
		return output.RenderRules(cmd.OutOrStdout(), rules)
	}

	client := catalog.NewHTTPClient(cfg.Runtime.Verbose, cmd.ErrOrStderr())
	table, err := catalog.Load(ctx, client, cfg.Sources.URLs, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	rep := compat.Classify(rules, table)

	if cfg.Output.Out != "" {
		if err := output.WriteJSONFile(cfg.Output.Out, rep); err != nil {
			return err
		}
	}
	if cfg.Output.JSON {
		return output.WriteJSON(cmd.OutOrStdout(), rep)
	}
	return output.RenderText(cmd.OutOrStdout(), rep)
}

// errorClass names the failure taxonomy class for the top-level error
// message, so operators can tell which stage failed at a glance.
func errorClass(err error) string {
	switch {
	case errors.As(err, new(*eslint.PathNotFoundError)):
		return "path-not-found"
	case errors.As(err, new(*eslint.NoConfigurationError)):
		return "no-configuration"
	case errors.As(err, new(*eslint.ExtractionError)):
		return "config-extraction"
	case errors.As(err, new(*catalog.FetchError)):
		return "rule-fetch"
	default:
		return "unknown"
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Target
	checkCmd.Flags().StringVar(&cfg.Target.File, flags.FlagFile, "", "Explicit target file for config resolution (relative to the target directory)")

	// Sources
	checkCmd.Flags().StringSliceVar(&cfg.Sources.URLs, flags.FlagSource, nil, "Catalog source URL (repeatable; comma-separated accepted; default: Biome's rules metadata)")

	// Output
	checkCmd.Flags().BoolVar(&cfg.Output.JSON, flags.FlagJSON, false, "Emit the structured JSON report instead of text")
	checkCmd.Flags().BoolVar(&cfg.Output.RulesOnly, flags.FlagRulesOnly, false, "Stop after extraction and print only the enabled ESLint rule ids")
	checkCmd.Flags().StringVar(&cfg.Output.Out, flags.FlagOut, "", "Write the JSON report to this path")

	// Runtime
	checkCmd.Flags().DurationVar(&cfg.Runtime.Timeout, flags.FlagTimeout, cfg.Runtime.Timeout, "Per-invocation ESLint timeout (default: 1m)")
}

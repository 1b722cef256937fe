package cli

import (
	"fmt"
	"os"

	"biomeready/internal/flags"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "biomeready",
	Short: "Report how ready an ESLint configuration is for migration to Biome",
	Long: `BiomeReady compares a project's effective ESLint configuration against
Biome's rule catalog and reports which enabled rules have a documented Biome
equivalent.

BiomeReady is read-only: it resolves configuration by shelling out to ESLint
and never modifies the target project.

Examples:
	# Show available commands and global flags
	biomeready --help

	# Check the project in the current directory
	biomeready check .

	# List the Biome rule catalog
	biomeready catalog

	# Print build info
	biomeready version

Output:
	By default, commands write human-readable output to stdout.
	Pass --json for structured output.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, flags.FlagVerbose, false, "Enable verbose logging (prints every ESLint invocation and catalog fetch)")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package flags

// Package flags defines canonical CLI flag names shared across commands.
// Keeping these as constants helps avoid drift between Cobra flag wiring and
// other code paths that reference flags (e.g. error messages suggesting a
// flag).
// IMPORTANT: These are flag *names* without leading dashes.
const (
	// Target
	FlagFile = "file"

	// Sources
	FlagSource = "source"

	// Output
	FlagJSON      = "json"
	FlagRulesOnly = "rules-only"
	FlagOut       = "out"

	// Runtime
	FlagTimeout = "timeout"
	FlagVerbose = "verbose"
)

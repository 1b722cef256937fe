package eslint

import (
	"fmt"
	"strings"
)

// PathNotFoundError reports that the target path named on the command line
// does not exist on disk.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("path does not exist: %s", e.Path)
}

// NoConfigurationError reports that no ESLint configuration could be found
// after exhausting every fallback (flat resolution, legacy resolution, and
// the ancestor directory search).
type NoConfigurationError struct {
	SearchRoot string
}

func (e *NoConfigurationError) Error() string {
	return fmt.Sprintf(
		"no ESLint configuration found in %s or any parent directory (recognized filenames: %s); run 'npm init @eslint/config' to create one",
		e.SearchRoot, strings.Join(ConfigFileNames, ", "))
}

// ExtractionError wraps a subprocess or JSON-parse failure while resolving
// the effective configuration. It is terminal: the caller aborts the run
// rather than retrying further.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract ESLint configuration: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

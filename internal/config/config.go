package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Target  Target
	Sources Sources
	Output  Output
	Runtime Runtime
}

type Target struct {
	// Path is the file or project root named on the command line.
	Path string

	// File is an explicit target file for config resolution (see --file).
	// Relative values are resolved against the target directory.
	File string
}

type Sources struct {
	// URLs are the catalog documents to fetch (see --source). Values may be
	// provided as repeated flags and/or comma-separated lists. Empty means
	// the default structured catalog.
	URLs []string
}

type Output struct {
	// JSON switches output to the structured format (see --json).
	JSON bool

	// RulesOnly stops after extraction and prints only the enabled ESLint
	// rule ids (see --rules-only).
	RulesOnly bool

	// Out writes the JSON report to this path in addition to the console
	// rendering (see --out).
	Out string
}

type Runtime struct {
	// Timeout bounds each ESLint subprocess invocation (see --timeout).
	// Must be > 0.
	Timeout time.Duration

	// Verbose enables diagnostics for subprocess and fetch activity.
	Verbose bool
}

func New() *Config {
	return &Config{
		Runtime: Runtime{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *Config) Validate() error {
	// Normalize comma-delimited list inputs.
	c.Sources.URLs = splitCommaList(c.Sources.URLs)

	for _, u := range c.Sources.URLs {
		if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			return fmt.Errorf("invalid --source value %q: must be an http(s) URL", u)
		}
	}

	if strings.TrimSpace(c.Target.Path) == "" {
		return errors.New("a target path is required")
	}

	if c.Runtime.Timeout <= 0 {
		return errors.New("--timeout must be > 0")
	}

	return nil
}

func splitCommaList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			p := strings.TrimSpace(part)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

// Package eslint resolves a project's effective ESLint configuration by
// shelling out to ESLint and extracts the set of enabled rules from it.
package eslint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ConfigFileNames lists the configuration filenames recognized by the
// ancestor directory search, flat-config variants before legacy .eslintrc
// variants to mirror ESLint's own resolution precedence.
var ConfigFileNames = []string{
	"eslint.config.js",
	"eslint.config.mjs",
	"eslint.config.cjs",
	"eslint.config.ts",
	"eslint.config.mts",
	"eslint.config.cts",
	".eslintrc.js",
	".eslintrc.cjs",
	".eslintrc.yaml",
	".eslintrc.yml",
	".eslintrc.json",
	".eslintrc",
}

const defaultTimeout = 60 * time.Second

// Runner resolves effective ESLint configurations via `npx eslint
// --print-config`. It spawns subprocesses but never writes to the target
// project.
type Runner struct {
	command  string
	baseArgs []string
	timeout  time.Duration
	verbose  io.Writer
}

type Option func(*Runner)

// WithCommand substitutes the binary (and leading arguments) used to invoke
// ESLint. Tests use this to point at a stub.
func WithCommand(command string, args ...string) Option {
	return func(r *Runner) {
		r.command = command
		r.baseArgs = args
	}
}

// WithTimeout bounds each subprocess invocation. Zero or negative disables
// the bound (the caller's context still applies).
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithVerbose enables diagnostic logging of every invocation to w.
func WithVerbose(w io.Writer) Option {
	return func(r *Runner) {
		r.verbose = w
	}
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		command:  "npx",
		baseArgs: []string{"--no-install", "eslint"},
		timeout:  defaultTimeout,
	}
	for _, apply := range opts {
		if apply != nil {
			apply(r)
		}
	}
	return r
}

// ResolveTarget maps the CLI path argument (a file or a project root) to the
// file ESLint should resolve configuration for. explicit, when non-empty,
// overrides the default; relative values are taken relative to the target
// directory.
func ResolveTarget(path, explicit string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &PathNotFoundError{Path: path}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &PathNotFoundError{Path: path}
	}

	dir := abs
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}
	if explicit != "" {
		if filepath.IsAbs(explicit) {
			return filepath.Clean(explicit), nil
		}
		return filepath.Join(dir, explicit), nil
	}
	if !info.IsDir() {
		return abs, nil
	}
	// --print-config resolves configuration for a path whether or not the
	// file exists on disk, so a synthetic name inside the project is fine.
	return filepath.Join(abs, "index.js"), nil
}

// EnabledRules returns the sorted, deduplicated ids of every rule enabled for
// target under its effective ESLint configuration.
//
// Resolution ladder, where a tier fails on non-zero exit or unparseable
// output:
//  1. `eslint --print-config` with default (flat) resolution
//  2. retry with ESLINT_USE_FLAT_CONFIG=false
//  3. rerun from the nearest ancestor directory holding a recognized
//     configuration file; no such directory means no configuration exists
func (r *Runner) EnabledRules(ctx context.Context, target string) ([]string, error) {
	startDir := filepath.Dir(target)

	rules, flatErr := r.attempt(ctx, startDir, target, false)
	if flatErr == nil {
		return rules, nil
	}
	r.logf("flat config resolution failed, retrying in legacy mode: %v", flatErr)

	rules, legacyErr := r.attempt(ctx, startDir, target, true)
	if legacyErr == nil {
		return rules, nil
	}
	r.logf("legacy config resolution failed: %v", legacyErr)

	root, name, ok := findConfigRoot(startDir)
	if !ok {
		return nil, &NoConfigurationError{SearchRoot: startDir}
	}
	r.logf("found %s under %s, rerunning from there", name, root)
	rules, rootErr := r.attempt(ctx, root, target, strings.HasPrefix(name, ".eslintrc"))
	if rootErr != nil {
		return nil, &ExtractionError{Err: rootErr}
	}
	return rules, nil
}

func (r *Runner) attempt(ctx context.Context, dir, target string, legacy bool) ([]string, error) {
	out, err := r.printConfig(ctx, dir, target, legacy)
	if err != nil {
		return nil, err
	}
	return parseEnabledRules(out)
}

func (r *Runner) printConfig(ctx context.Context, dir, target string, legacy bool) ([]byte, error) {
	if r.timeout > 0 {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, r.timeout)
			defer cancel()
		}
	}

	args := append(append([]string{}, r.baseArgs...), "--print-config", target)
	cmd := exec.CommandContext(ctx, r.command, args...)
	cmd.Dir = dir

	// Set ESLINT_USE_FLAT_CONFIG deterministically (no duplicates).
	env := os.Environ()
	filtered := env[:0]
	for _, entry := range env {
		if strings.HasPrefix(entry, "ESLINT_USE_FLAT_CONFIG=") {
			continue
		}
		filtered = append(filtered, entry)
	}
	if legacy {
		filtered = append(filtered, "ESLINT_USE_FLAT_CONFIG=false")
	}
	cmd.Env = filtered

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logf("exec: %s %s (dir=%s legacy=%v)", r.command, strings.Join(args, " "), dir, legacy)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if msg := firstLine(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// parseEnabledRules extracts the enabled rule ids from a --print-config JSON
// document. Rules with an unrecognized severity shape are treated as disabled
// rather than failing the whole extraction.
func parseEnabledRules(raw []byte) ([]string, error) {
	var cfg struct {
		Rules map[string]any `json:"rules"`
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse effective config: %w", err)
	}

	rules := make([]string, 0, len(cfg.Rules))
	for id, value := range cfg.Rules {
		sev, err := ParseSeverity(value)
		if err != nil {
			continue
		}
		if sev.Enabled() {
			rules = append(rules, id)
		}
	}
	sort.Strings(rules)
	return rules, nil
}

func findConfigRoot(start string) (dir, name string, ok bool) {
	dir = start
	for {
		for _, candidate := range ConfigFileNames {
			info, err := os.Stat(filepath.Join(dir, candidate))
			if err == nil && !info.IsDir() {
				return dir, candidate, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", false
		}
		dir = parent
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func (r *Runner) logf(format string, args ...any) {
	if r.verbose == nil {
		return
	}
	fmt.Fprintf(r.verbose, "[verbose] eslint: "+format+"\n", args...)
}

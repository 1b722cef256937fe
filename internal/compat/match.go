// Package compat classifies an enabled ESLint rule set against the Biome
// rule catalog.
package compat

import "strings"

// pluginPrefixes lists the plugin namespaces stripped before retrying a
// catalog lookup. Order matters: the first matching prefix wins, and at most
// one prefix is ever stripped. react-hooks/ must precede react/.
var pluginPrefixes = []string{
	"@typescript-eslint/",
	"react-hooks/",
	"jsx-a11y/",
	"react/",
	"import/",
	"unicorn/",
	"n/",
	"jest/",
	"@next/next/",
	"solidjs/",
	"@stylistic/",
}

// StripPluginPrefix removes the leading plugin namespace from a rule id, if
// it carries a recognized one. Ids without a recognized prefix are returned
// unchanged.
func StripPluginPrefix(id string) (string, bool) {
	for _, prefix := range pluginPrefixes {
		if strings.HasPrefix(id, prefix) {
			return strings.TrimPrefix(id, prefix), true
		}
	}
	return id, false
}

package eslint

import (
	"fmt"
	"strings"
)

// Severity is the enabled/disabled state of a single ESLint rule.
//
// ESLint configs express severity as a number (0/1/2), a string
// ("off"/"warn"/"error"), or an options array whose first element is either
// form. ParseSeverity collapses all of those shapes once at the
// config-loading boundary so downstream code only ever sees the tagged value.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityWarn
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "off"
	}
}

// Enabled reports whether a rule with this severity participates in linting.
func (s Severity) Enabled() bool {
	return s != SeverityOff
}

// ParseSeverity interprets a raw severity value as decoded by encoding/json.
// For an options array only the first element carries the severity; the rest
// are rule options and are ignored.
func ParseSeverity(raw any) (Severity, error) {
	switch v := raw.(type) {
	case float64:
		return severityFromNumber(v)
	case string:
		return severityFromString(v), nil
	case []any:
		if len(v) == 0 {
			return SeverityOff, fmt.Errorf("empty rule settings array")
		}
		switch first := v[0].(type) {
		case float64:
			return severityFromNumber(first)
		case string:
			return severityFromString(first), nil
		default:
			return SeverityOff, fmt.Errorf("unsupported severity type %T in settings array", first)
		}
	default:
		return SeverityOff, fmt.Errorf("unsupported severity type %T", raw)
	}
}

func severityFromNumber(v float64) (Severity, error) {
	switch {
	case v == 0:
		return SeverityOff, nil
	case v == 1:
		return SeverityWarn, nil
	case v == 2:
		return SeverityError, nil
	default:
		return SeverityOff, fmt.Errorf("unsupported numeric severity %v", v)
	}
}

func severityFromString(v string) Severity {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "off":
		return SeverityOff
	case "error":
		return SeverityError
	default:
		// ESLint treats any non-"off" severity as enabled.
		return SeverityWarn
	}
}

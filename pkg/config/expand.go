package config

import (
	"log/slog"
	"os"
	"regexp"
)

// placeholder matches ${NAME} and ${NAME:-default}.
// Groups: 1 = variable name, 2 = ":-" marker, 3 = default value.
var placeholder = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(:-([^}]*))?\}`)

// Expand replaces ${NAME} and ${NAME:-default} placeholders in value with
// environment variable values. An unset variable without a default expands to
// the empty string and logs a warning.
func Expand(value string) string {
	if value == "" {
		return value
	}

	return placeholder.ReplaceAllStringFunc(value, expandPlaceholder)
}

func expandPlaceholder(match string) string {
	groups := placeholder.FindStringSubmatch(match)

	name := groups[1]
	if envValue, ok := os.LookupEnv(name); ok {
		return envValue
	}

	if groups[2] != "" {
		return groups[3]
	}

	slog.Warn("environment variable not set", "variable", name)

	return ""
}

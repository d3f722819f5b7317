package purge

import "strings"

// ParseTargets splits a raw comma-separated targets string into an ordered
// list of trimmed target strings. An absent (empty) input yields an empty
// list. Blank elements produced by inputs like "a,,b" are kept as-is;
// whether they are acceptable is the validator's call, not the parser's.
func ParseTargets(raw string) []string {
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	targets := make([]string, len(parts))
	for i, p := range parts {
		targets[i] = strings.TrimSpace(p)
	}

	return targets
}

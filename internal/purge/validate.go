package purge

import (
	"cfpurge/pkg/domain"
	"cfpurge/pkg/serrors"
	"strings"
)

// ParsePurgeType maps a user-supplied purge type name onto the closed
// domain.PurgeType set. Unknown names are rejected with an error naming the
// bad value and every accepted name.
func ParsePurgeType(s string) (domain.PurgeType, error) {
	for _, pt := range domain.PurgeTypes() {
		if string(pt) == s {
			return pt, nil
		}
	}

	accepted := make([]string, 0, len(domain.PurgeTypes()))
	for _, pt := range domain.PurgeTypes() {
		accepted = append(accepted, string(pt))
	}

	return "", serrors.With(serrors.ErrBadRequest,
		"invalid purge type %q, must be one of: %s", s, strings.Join(accepted, ", "))
}

// hasProtocol reports whether the target carries an explicit http(s) scheme.
func hasProtocol(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// ValidateTargets enforces the per-type syntactic rules on a parsed target
// list. It fails fast: the first violated rule is reported and checking
// stops. prefixLimit caps the target count for the prefix type.
//
// Rules:
//   - every type except "everything" requires at least one target
//   - "url"/"files": every target must start with http:// or https://
//   - "prefix": the count must not exceed prefixLimit, and every target must
//     start with http:// or https://
//   - "hostname": no target may start with http:// or https://
//   - "tags", "everything": no syntactic rule
func ValidateTargets(pt domain.PurgeType, targets []string, prefixLimit int) error {
	if pt != domain.PurgeEverything && len(targets) == 0 {
		return serrors.With(serrors.ErrBadRequest, "purge type %q requires --targets", pt)
	}

	switch pt {
	case domain.PurgeURL, domain.PurgeFiles:
		for _, target := range targets {
			if !hasProtocol(target) {
				return serrors.With(serrors.ErrBadRequest,
					"target %q must start with http:// or https:// for purge type %q", target, pt)
			}
		}
	case domain.PurgePrefix:
		// the count rule applies regardless of the targets' syntax
		if len(targets) > prefixLimit {
			return serrors.With(serrors.ErrBadRequest,
				"purge type %q accepts at most %d targets per call, got %d", pt, prefixLimit, len(targets))
		}
		for _, target := range targets {
			if !hasProtocol(target) {
				return serrors.With(serrors.ErrBadRequest,
					"target %q must start with http:// or https:// for purge type %q", target, pt)
			}
		}
	case domain.PurgeHostname:
		for _, target := range targets {
			if hasProtocol(target) {
				return serrors.With(serrors.ErrBadRequest,
					"target %q must not include a protocol for purge type %q", target, pt)
			}
		}
	case domain.PurgeEverything, domain.PurgeTags:
		// nothing beyond the emptiness rule above
	}

	return nil
}

package purge

import "cfpurge/pkg/domain"

// BuildRequest maps a validated (purge type, target list) pair onto the wire
// payload. It is a pure function: the target list is embedded verbatim and
// identical inputs always yield an identical payload. Callers must validate
// the targets first; BuildRequest applies no rules of its own.
func BuildRequest(pt domain.PurgeType, targets []string) domain.PurgeRequest {
	switch pt {
	case domain.PurgeEverything:
		return domain.PurgeRequest{PurgeEverything: true}
	case domain.PurgeHostname:
		return domain.PurgeRequest{Hosts: targets}
	case domain.PurgeURL, domain.PurgeFiles:
		return domain.PurgeRequest{Files: targets}
	case domain.PurgePrefix:
		return domain.PurgeRequest{Prefixes: targets}
	case domain.PurgeTags:
		return domain.PurgeRequest{Tags: targets}
	}

	// unreachable for values produced by ParsePurgeType
	return domain.PurgeRequest{}
}

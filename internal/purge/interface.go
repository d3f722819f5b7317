package purge

import (
	"cfpurge/pkg/domain"
	"context"
)

// Purger drives a single cache purge run end to end.
type Purger interface {
	// Run resolves the zone, validates the targets, builds the payload and
	// submits the purge. It returns the provider receipt on success.
	Run(ctx context.Context, zoneName, purgeType, rawTargets string) (*domain.PurgeReceipt, error)
}

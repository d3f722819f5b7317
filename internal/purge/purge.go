// Package purge implements the core of the tool: parsing and validating
// purge targets, shaping the purge payload, and orchestrating the run
// against the CDN client.
package purge

import (
	"cfpurge/internal/config"
	"cfpurge/pkg/cdn"
	"cfpurge/pkg/domain"
	"cfpurge/pkg/logger"
	"cfpurge/pkg/serrors"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Options configure how purge requests are validated.
// These settings are typically derived from application configuration.
type Options struct {
	// PrefixLimit caps how many prefix targets a single purge call may carry.
	PrefixLimit int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PrefixLimit: cfg.Purge.PrefixLimit,
	}
}

// purger is the concrete implementation of the Purger interface.
// It composes the pure parsing/validation/payload steps with the CDN client.
type purger struct {
	// options holds runtime limits that affect validation.
	options Options
	// client is the CDN management API used for zone lookup and purging.
	client cdn.Client
}

// Run executes the strictly linear purge pipeline: parse the purge type,
// parse and validate the targets, resolve the zone, build the payload and
// submit it. Any failure aborts the run; the purge call is never attempted
// when an earlier step failed, and a payload is never built from an
// unvalidated target list.
func (p purger) Run(ctx context.Context, zoneName, purgeType, rawTargets string) (*domain.PurgeReceipt, error) {
	pt, err := ParsePurgeType(purgeType)
	if err != nil {
		return nil, err
	}

	targets := ParseTargets(rawTargets)
	if err := ValidateTargets(pt, targets, p.options.PrefixLimit); err != nil {
		return nil, err
	}

	zoneID, err := p.resolveZone(ctx, zoneName)
	if err != nil {
		return nil, err
	}

	req := BuildRequest(pt, targets)
	logger.Debug(ctx, "submitting purge",
		zap.String("zone", zoneName),
		zap.String("zone_id", zoneID),
		zap.String("purge_type", string(pt)),
		zap.Int("targets", len(targets)))

	receipt, err := p.client.PurgeCache(ctx, zoneID, req)
	if err != nil {
		return nil, fmt.Errorf("could not purge cache: %w", err)
	}

	return receipt, nil
}

// resolveZone looks the zone name up exactly once and extracts its
// identifier. An empty result collection means the zone does not exist for
// these credentials; a matching record without an id is a malformed response.
func (p purger) resolveZone(ctx context.Context, zoneName string) (string, error) {
	zones, err := p.client.ZonesByName(ctx, zoneName)
	if err != nil {
		return "", fmt.Errorf("could not list zones: %w", err)
	}
	if len(zones) == 0 {
		return "", serrors.With(serrors.ErrNotFound,
			"zone %q not found, verify the name and that your credentials can access it", zoneName)
	}

	id := zones[0].ID
	if id == "" {
		return "", serrors.With(serrors.ErrMalformedResponse,
			"zone lookup for %q returned a record without an id", zoneName)
	}

	return id, nil
}

// New creates a new Purger instance backed by the provided CDN client and
// configured with the given options.
func New(client cdn.Client, options Options) Purger {
	return &purger{
		options: options,
		client:  client,
	}
}

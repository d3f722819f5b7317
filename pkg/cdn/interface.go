// Package cdn defines the interface and wire-level error types used to talk
// to a CDN provider's management API. The orchestrator depends only on this
// abstraction; the concrete Cloudflare implementation lives in a subpackage.
package cdn

import (
	"cfpurge/pkg/domain"
	"cfpurge/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"strings"
)

// APIMessage is one {code, message} pair from the provider's error list.
type APIMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// APIError is returned when the provider answered with a 2xx status but a
// success=false envelope. It carries every reported {code, message} pair and
// matches serrors.ErrUpstream through errors.Is.
type APIError struct {
	Errors []APIMessage
}

// Error enumerates every reported code/message pair.
func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return "api reported failure without errors"
	}
	parts := make([]string, len(e.Errors))
	for i, m := range e.Errors {
		parts[i] = fmt.Sprintf("%d: %s", m.Code, m.Message)
	}

	return "api reported failure: " + strings.Join(parts, "; ")
}

// Is lets errors.Is treat an APIError as an upstream failure.
func (e *APIError) Is(target error) bool {
	return errors.Is(serrors.ErrUpstream, target)
}

// Client is the abstraction for CDN management APIs. Implementations look up
// zones by name and submit cache purge requests.
//
//go:generate mockgen -package mockcdn -source=interface.go -destination=mock/mockcdn.go *
type Client interface {
	// ZonesByName lists the zones whose name matches the given filter exactly.
	// An empty slice with a nil error means no zone matched.
	ZonesByName(ctx context.Context, name string) ([]domain.Zone, error)
	// PurgeCache submits the purge payload for the given zone identifier and
	// returns the provider's receipt on success.
	PurgeCache(ctx context.Context, zoneID string, req domain.PurgeRequest) (*domain.PurgeReceipt, error)
}

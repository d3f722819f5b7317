// Package cloudflare provides a cdn.Client implementation backed by the
// Cloudflare v4 management API.
package cloudflare

import (
	"cfpurge/pkg/cdn"
	"cfpurge/pkg/domain"
	"cfpurge/pkg/logger"
	"cfpurge/pkg/serrors"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Credentials selects one of the two Cloudflare authentication modes. A
// non-empty Token takes precedence; otherwise Key and Email are sent as the
// legacy header pair. Resolution of which mode is usable happens at startup
// in the config layer, not here.
type Credentials struct {
	Token string // API token for "Authorization: Bearer" auth
	Email string // account email for legacy key auth
	Key   string // global API key for legacy key auth
}

// apply sets the authentication headers on an outgoing request.
func (c Credentials) apply(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)

		return
	}
	req.Header.Set("X-Auth-Key", c.Key)
	req.Header.Set("X-Auth-Email", c.Email)
}

// Client talks to the Cloudflare v4 REST API and fulfills the cdn.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the API
	baseURL    string       // baseURL is the API endpoint without trailing slash
	creds      Credentials  // creds provides the authentication headers
}

// ZonesByName lists the zones whose name equals the given filter.
// An empty result with a nil error means Cloudflare knows no such zone for
// these credentials.
func (c *Client) ZonesByName(ctx context.Context, name string) ([]domain.Zone, error) {
	// https://developers.cloudflare.com/api/resources/zones/methods/list/
	req, err := http.NewRequestWithContext(ctx,
		http.MethodGet,
		c.baseURL+"/zones?name="+url.QueryEscape(name),
		nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not create request")
	}
	c.creds.apply(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not read response body")
	}
	logger.Debug(ctx, "zone lookup response",
		zap.String("status", resp.Status),
		zap.ByteString("body", b))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUpstream,
			"zone lookup failed: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	// successful
	var zonesResp struct {
		Success bool             `json:"success"`
		Errors  []cdn.APIMessage `json:"errors"`
		Result  []domain.Zone    `json:"result"`
	}
	if err := json.Unmarshal(b, &zonesResp); err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformedResponse, err, "could not decode zone lookup response")
	}
	if !zonesResp.Success {
		return nil, &cdn.APIError{Errors: zonesResp.Errors}
	}

	return zonesResp.Result, nil
}

// PurgeCache submits the purge payload for the given zone identifier.
// It returns the provider receipt (operation ID and, when reported, the number
// of purged files), or an error when the request failed at any level.
func (c *Client) PurgeCache(ctx context.Context, zoneID string, purgeReq domain.PurgeRequest) (*domain.PurgeReceipt, error) {
	// https://developers.cloudflare.com/api/resources/cache/methods/purge/
	bodyBytes, err := json.Marshal(purgeReq)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not marshal request")
	}
	logger.Debug(ctx, "purge request",
		zap.String("zone_id", zoneID),
		zap.ByteString("body", bodyBytes))

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/zones/"+zoneID+"/purge_cache",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/json")
	c.creds.apply(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not read response body")
	}
	logger.Debug(ctx, "purge response",
		zap.String("status", resp.Status),
		zap.ByteString("body", b))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUpstream,
			"purge failed: %s: %s", resp.Status, strings.TrimSpace(string(b)))
	}

	// successful
	var purgeResp struct {
		Success bool             `json:"success"`
		Errors  []cdn.APIMessage `json:"errors"`
		Result  struct {
			ID          string `json:"id"`
			FilesPurged *int   `json:"files_purged"`
		} `json:"result"`
	}
	if err := json.Unmarshal(b, &purgeResp); err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformedResponse, err, "could not decode purge response")
	}
	if !purgeResp.Success {
		return nil, &cdn.APIError{Errors: purgeResp.Errors}
	}

	return &domain.PurgeReceipt{
		ID:          purgeResp.Result.ID,
		FilesPurged: purgeResp.Result.FilesPurged,
	}, nil
}

// Ensure Client conforms to the cdn.Client interface at compile time.
var _ cdn.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and credentials
// to interact with the Cloudflare API at baseURL.
func New(httpClient *http.Client, baseURL string, creds Credentials) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
	}
}

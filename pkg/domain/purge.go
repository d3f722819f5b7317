package domain

// PurgeType selects the cache invalidation strategy for a single run.
// It is a closed set; ParsePurgeType in internal/purge is the only way a
// user-supplied string becomes one of these values.
type PurgeType string

const (
	// PurgeEverything invalidates the entire cache of the zone.
	PurgeEverything PurgeType = "everything"
	// PurgeHostname invalidates everything cached under the given hostnames.
	PurgeHostname PurgeType = "hostname"
	// PurgeURL invalidates individual URLs. Alias of PurgeFiles on the wire.
	PurgeURL PurgeType = "url"
	// PurgeFiles invalidates individual URLs ("files" in API terms).
	PurgeFiles PurgeType = "files"
	// PurgePrefix invalidates every URL under the given URL prefixes.
	PurgePrefix PurgeType = "prefix"
	// PurgeTags invalidates cached objects carrying the given cache tags.
	PurgeTags PurgeType = "tags"
)

// PurgeTypes returns every accepted purge type name, in the order they are
// documented. Used for diagnostics when an unknown name is supplied.
func PurgeTypes() []PurgeType {
	return []PurgeType{PurgeEverything, PurgeHostname, PurgeURL, PurgeFiles, PurgePrefix, PurgeTags}
}

// PurgeRequest is the JSON body of a purge_cache call. Exactly one field is
// populated; the shape is a pure function of the purge type and target list.
type PurgeRequest struct {
	// PurgeEverything requests invalidation of the whole zone.
	PurgeEverything bool `json:"purge_everything,omitempty"`
	// Files lists individual URLs to invalidate (purge types url and files).
	Files []string `json:"files,omitempty"`
	// Hosts lists hostnames to invalidate (purge type hostname).
	Hosts []string `json:"hosts,omitempty"`
	// Prefixes lists URL prefixes to invalidate (purge type prefix).
	Prefixes []string `json:"prefixes,omitempty"`
	// Tags lists cache tags to invalidate (purge type tags).
	Tags []string `json:"tags,omitempty"`
}

// PurgeReceipt is the outcome of a successful purge call. Both fields are
// optional in the upstream response; FilesPurged is nil when the API did not
// report a count.
type PurgeReceipt struct {
	// ID is the purge operation identifier assigned by the provider, if any.
	ID string `json:"id,omitempty"`
	// FilesPurged is the number of files invalidated, when reported.
	FilesPurged *int `json:"files_purged,omitempty"`
}

// Zone is a managed domain within the CDN provider's administration scope.
type Zone struct {
	// ID is the opaque zone identifier used by all zone-scoped API calls.
	ID string `json:"id"`
	// Name is the human-readable zone name, e.g. "example.com".
	Name string `json:"name"`
	// Status is the provider-reported zone status, e.g. "active".
	Status string `json:"status,omitempty"`
}

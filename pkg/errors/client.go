// SPDX-License-Identifier: MIT

package errors

// FetchKind distinguishes a retried-then-gave-up network failure from
// one that is never worth retrying.
type FetchKind string

const (
	// FetchTransient covers timeouts, 5xx, and connection resets —
	// retried up to the fetcher's configured attempt count before
	// surfacing.
	FetchTransient FetchKind = "transient"
	// FetchPermanent covers 4xx responses and malformed URLs —
	// surfaced immediately, no retry.
	FetchPermanent FetchKind = "permanent"
)

// Fetch represents an HTTP-level failure from the fetcher (spec §4.1).
type Fetch struct {
	base
	Kind     FetchKind
	URL      string
	Attempts int
}

func (f Fetch) Error() string { return f.error() }

// NewFetch creates a new Fetch error of the given kind.
func NewFetch(kind FetchKind, url string, attempts int, err ...error) Fetch {
	return Fetch{
		base:     newBase("fetch "+string(kind)+" error for "+url, err...),
		Kind:     kind,
		URL:      url,
		Attempts: attempts,
	}
}

// ParseWarning is a non-fatal parser issue: the offending record is
// skipped and the warning is logged by the caller, but the batch
// continues.
type ParseWarning struct {
	base
	SourceURL string
}

func (p ParseWarning) Error() string { return p.error() }

// NewParseWarning creates a new ParseWarning for the given source URL.
func NewParseWarning(sourceURL, message string, err ...error) ParseWarning {
	return ParseWarning{base: newBase(message, err...), SourceURL: sourceURL}
}

// ParseError means a page's overall structure could not be interpreted
// at all; the containing batch aborts (spec §7).
type ParseError struct {
	base
	SourceURL string
}

func (p ParseError) Error() string { return p.error() }

// NewParseError creates a new ParseError for the given source URL.
func NewParseError(sourceURL, message string, err ...error) ParseError {
	return ParseError{base: newBase(message, err...), SourceURL: sourceURL}
}

// CacheMissing means a cache file is absent. Callers in the Cache Store
// treat this as an empty collection; callers elsewhere may want to know
// the difference between "empty" and "never written."
type CacheMissing struct {
	base
	Path string
}

func (c CacheMissing) Error() string { return c.error() }

// NewCacheMissing creates a new CacheMissing error for the given path.
func NewCacheMissing(path string, err ...error) CacheMissing {
	return CacheMissing{base: newBase("cache file missing: " + path), Path: path}
}

// CacheCorrupt means a cache file exists but failed to decode.
type CacheCorrupt struct {
	base
	Path string
}

func (c CacheCorrupt) Error() string { return c.error() }

// NewCacheCorrupt creates a new CacheCorrupt error for the given path.
func NewCacheCorrupt(path string, err ...error) CacheCorrupt {
	return CacheCorrupt{base: newBase("cache file corrupt: "+path, err...), Path: path}
}

// StaleCacheUsed is informational: a component failed to refresh and the
// previous cached value is being served instead.
type StaleCacheUsed struct {
	base
	Component string
}

func (s StaleCacheUsed) Error() string { return s.error() }

// NewStaleCacheUsed creates a new StaleCacheUsed notice for the given
// component.
func NewStaleCacheUsed(component string, err ...error) StaleCacheUsed {
	return StaleCacheUsed{base: newBase("serving stale cache for " + component, err...), Component: component}
}

// Config means a required environment variable was malformed or absent.
type Config struct {
	base
	Key string
}

func (c Config) Error() string { return c.error() }

// NewConfig creates a new Config error for the given environment key.
func NewConfig(key, message string, err ...error) Config {
	return Config{base: newBase(message, err...), Key: key}
}

// NotFound represents a GraphQL (or crosswalk) lookup that found no
// entity.
type NotFound struct {
	base
}

// Error returns the error message for NotFound.
func (v NotFound) Error() string {
	return v.error()
}

// NewNotFound creates a new NotFound error with the provided message.
func NewNotFound(message string, err ...error) NotFound {
	return NotFound{base: newBase(message, err...)}
}

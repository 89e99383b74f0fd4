// Copyright (c) 2026 Folio. All rights reserved.
// Author: code@chalkfarm.mx

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Resolution: Cache TTLs and contribution labels for the ISBN resolver.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "folio-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	// A resolution that misses both caches pays one remote round-trip plus a
	// multi-row transaction, so this must exceed the ISBNdb client timeout.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute

	// RemoteLookupRPS caps calls to the isbndb.com service. The provider's
	// cheapest plan allows 1 request/second.
	RemoteLookupRPS = 1.0

	// RemoteLookupBurst allows short bursts against the remote service.
	RemoteLookupBurst = 3
)

// # ISBN Resolution

const (
	// ContributionAuthor is the role label attached to contributor links
	// created from remote payload author lists.
	ContributionAuthor = "author"

	// DefaultAssociationConfidence is the confidence score assigned to
	// associations materialized from a remote lookup. Remote data is trusted
	// but unverified by a human, so it sits below the maximum of 100.
	DefaultAssociationConfidence = 80

	// ResolveCacheTTL bounds how long a resolved isbn -> book edition id
	// mapping lives in Redis. Rows are immutable once created, so this is
	// purely a memory-pressure bound.
	ResolveCacheTTL = 24 * time.Hour

	// ResolveMissTTL bounds how long a remote 404 is remembered. Kept short so
	// a book added to the provider's catalog becomes resolvable quickly.
	ResolveMissTTL = 15 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixResolve     = "catalog:isbn:"
	RedisPrefixResolveMiss = "catalog:isbn_miss:"
)

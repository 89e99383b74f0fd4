// Copyright (c) 2026 Folio. All rights reserved.
// Author: code@chalkfarm.mx

/*
Package isbndb is the client for the isbndb.com bibliographic web service.

It is the only component that talks to the network besides the HTTP server
itself. The contract is deliberately narrow: one lookup call, keyed by a
canonical ISBN, returning a typed result:

  - (*Book, nil):   the identifier is known to the provider.
  - (nil, ErrNotFound): the provider does not know the identifier.
  - (nil, *ServiceError): everything else — unexpected status codes,
    transport failures, timeouts, and payloads failing schema validation.

Every call is tagged with a UUIDv7 correlation token that appears in log
lines only; it is never sent over the wire.
*/
package isbndb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/chalkfarm/folio/internal/platform/constants"
	"github.com/chalkfarm/folio/internal/platform/ctxutil"
	"github.com/chalkfarm/folio/pkg/uuidv7"
)

// ErrNotFound reports that the remote service has no record for the
// identifier. This is a legitimate negative result, not a failure.
var ErrNotFound = errors.New("isbndb: identifier unknown to provider")

// ServiceError reports a failed remote call: an unexpected status code, a
// transport-level failure, or a payload that failed schema validation.
type ServiceError struct {
	// StatusCode is the upstream HTTP status. Zero for transport failures,
	// 200 for schema violations.
	StatusCode int
	// Reason is a short diagnostic label safe to propagate to callers.
	Reason string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("isbndb: %s (status %d)", e.Reason, e.StatusCode)
}

// ReasonMalformedPayload marks a 200 response whose body did not match the
// documented schema. Distinct from transport failures so monitoring can tell
// provider contract drift from provider outage.
const ReasonMalformedPayload = "malformed payload"

// Book is the validated subset of the provider's response used for
// materialization. All fields except ISBN/ISBN13 are required; at least one
// of the two identifiers must be present.
type Book struct {
	Title    string   `json:"title"`
	Language string   `json:"language"`
	Authors  []string `json:"authors"`
	ISBN     string   `json:"isbn"`
	ISBN13   string   `json:"isbn13"`
}

// Config carries the explicit settings for a [Client]. Constructed once at
// startup from the application config; the client never reads ambient
// process state.
type Config struct {
	// BaseURL is the service root, e.g. "https://api2.isbndb.com".
	BaseURL string
	// APIKey is sent verbatim in the Authorization header.
	APIKey string
	// Timeout bounds a single lookup end to end.
	Timeout time.Duration
}

// Client issues authenticated lookups against the isbndb.com REST API.
//
// # Concurrency
//
// Client is safe for concurrent use. The embedded rate limiter serializes
// bursts above the provider's allowance across all in-flight requests.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient constructs a Client from explicit configuration.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(constants.RemoteLookupRPS), constants.RemoteLookupBurst),
		logger:  logger,
	}
}

// bookEnvelope mirrors the provider's response shape: the record is nested
// under a "book" key.
type bookEnvelope struct {
	Book *Book `json:"book"`
}

// Lookup fetches the provider's record for a canonical ISBN.
//
// The caller is expected to pass an already-normalized identifier; Lookup
// does not re-validate it. The context governs cancellation: an aborted
// inbound request aborts the remote call.
func (client *Client) Lookup(ctx context.Context, canonicalISBN string) (*Book, error) {
	// Reuse the resolver's correlation token when the call runs inside a
	// resolution pipeline; direct callers get a fresh one.
	correlation := ctxutil.GetCorrelationID(ctx)
	if correlation == "" {
		correlation = uuidv7.New()
	}
	logger := client.logger.With(
		slog.String("correlation_id", correlation),
		slog.String("isbn", canonicalISBN),
	)

	// Respect the provider's request allowance before spending the network.
	if err := client.limiter.Wait(ctx); err != nil {
		return nil, &ServiceError{Reason: "rate limit wait aborted"}
	}

	url := fmt.Sprintf("%s/book/%s", client.cfg.BaseURL, canonicalISBN)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ServiceError{Reason: "request construction failed"}
	}
	request.Header.Set("Authorization", client.cfg.APIKey)
	request.Header.Set("Accept", "application/json")

	logger.Debug("isbndb_lookup_started")
	startTime := time.Now()

	response, err := client.httpClient.Do(request)
	if err != nil {
		logger.Warn("isbndb_lookup_transport_failure", slog.Any("error", err))
		return nil, &ServiceError{Reason: "transport failure"}
	}
	defer func() { _ = response.Body.Close() }()

	logger.Debug("isbndb_lookup_finished",
		slog.Int("status", response.StatusCode),
		slog.Int64("latency_ms", time.Since(startTime).Milliseconds()),
	)

	switch {
	case response.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case response.StatusCode != http.StatusOK:
		logger.Warn("isbndb_lookup_unexpected_status", slog.Int("status", response.StatusCode))
		return nil, &ServiceError{StatusCode: response.StatusCode, Reason: "unexpected status"}
	}

	var envelope bookEnvelope
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		logger.Warn("isbndb_payload_undecodable", slog.Any("error", err))
		return nil, &ServiceError{StatusCode: response.StatusCode, Reason: ReasonMalformedPayload}
	}

	if err := validatePayload(envelope.Book); err != nil {
		logger.Warn("isbndb_payload_schema_violation", slog.Any("error", err))
		return nil, &ServiceError{StatusCode: response.StatusCode, Reason: ReasonMalformedPayload}
	}

	return envelope.Book, nil
}

// validatePayload enforces the fixed response schema: title, language, and a
// non-empty author list are required, plus at least one identifier. A payload
// failing any rule is rejected wholesale — never partially applied.
func validatePayload(book *Book) error {
	if book == nil {
		return errors.New("missing book object")
	}
	if book.Title == "" {
		return errors.New("missing title")
	}
	if book.Language == "" {
		return errors.New("missing language")
	}
	if len(book.Authors) == 0 {
		return errors.New("missing authors")
	}
	for _, author := range book.Authors {
		if author == "" {
			return errors.New("empty author entry")
		}
	}
	if book.ISBN == "" && book.ISBN13 == "" {
		return errors.New("missing both isbn and isbn13")
	}
	return nil
}

package resolve

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/singleflight"

	"github.com/chalkfarm/folio/internal/catalog/book"
	"github.com/chalkfarm/folio/internal/isbndb"
	"github.com/chalkfarm/folio/internal/platform/apperr"
	"github.com/chalkfarm/folio/internal/platform/ctxutil"
	"github.com/chalkfarm/folio/pkg/isbn"
	"github.com/chalkfarm/folio/pkg/uuidv7"
)

type Service struct {
	books  BookFinder
	remote RemoteLookup
	store  Materializer
	cache  ResultCache
	group  singleflight.Group
	logger *slog.Logger
}

func NewService(books BookFinder, remote RemoteLookup, store Materializer, cache ResultCache, logger *slog.Logger) *Service {
	return &Service{
		books:  books,
		remote: remote,
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Resolve turns a raw ISBN into the id of the book edition representing it,
// materializing the full bibliographic graph when the identifier is new.
//
// Concurrent calls for the same canonical ISBN collapse into one execution;
// followers receive the leader's result.
func (service *Service) Resolve(context context.Context, rawISBN string) (*Resolution, error) {
	canonical, err := isbn.Normalize(rawISBN)
	if err != nil {
		return nil, apperr.ValidationError("Invalid ISBN", apperr.FieldError{
			Field:   "isbn",
			Message: "must contain exactly 10 or 13 digits after removing separators",
		})
	}

	value, err, _ := service.group.Do(canonical, func() (any, error) {
		return service.resolveCanonical(context, canonical)
	})
	if err != nil {
		return nil, err
	}
	return value.(*Resolution), nil
}

func (service *Service) resolveCanonical(context context.Context, canonical string) (*Resolution, error) {
	// One correlation token per resolution; every downstream log line for
	// this pipeline run carries it.
	correlation := uuidv7.New()
	context = ctxutil.WithCorrelationID(context, correlation)
	logger := service.logger.With(
		slog.String("correlation_id", correlation),
		slog.String("isbn", canonical),
	)

	if resolution := service.fromCache(context, canonical, logger); resolution != nil {
		return resolution, nil
	}

	if miss, err := service.cache.GetMiss(context, canonical); err != nil {
		logger.Warn("resolve_cache_unavailable", slog.Any("error", err))
	} else if miss {
		logger.Debug("resolve_negative_cache_hit")
		return nil, apperr.NotFound("Book edition")
	}

	// Local catalog first; a hit never touches the network.
	existing, err := service.books.FindByISBN(context, canonical)
	if err == nil {
		service.cacheResolved(context, canonical, existing.ID, logger)
		logger.Debug("resolve_local_hit", slog.Int64("book_edition_id", existing.ID))
		return &Resolution{BookEditionID: existing.ID}, nil
	}
	if appErr := apperr.As(err); appErr == nil || appErr.HTTPStatus != http.StatusNotFound {
		return nil, err
	}

	payload, err := service.remote.Lookup(context, canonical)
	if err != nil {
		return nil, service.classifyRemoteError(context, canonical, err, logger)
	}

	edition, err := service.materialize(context, canonical, payload, logger)
	if err != nil {
		return nil, err
	}

	service.cacheResolved(context, canonical, edition.ID, logger)
	return &Resolution{BookEditionID: edition.ID, Created: true}, nil
}

// fromCache consults the positive cache and verifies the referenced row still
// exists. A stale entry falls through to the full pipeline.
func (service *Service) fromCache(context context.Context, canonical string, logger *slog.Logger) *Resolution {
	id, found, err := service.cache.GetResolved(context, canonical)
	if err != nil {
		logger.Warn("resolve_cache_unavailable", slog.Any("error", err))
		return nil
	}
	if !found {
		return nil
	}

	if _, err := service.books.GetBookEdition(context, id); err != nil {
		logger.Warn("resolve_cache_stale", slog.Int64("book_edition_id", id))
		return nil
	}

	logger.Debug("resolve_cache_hit", slog.Int64("book_edition_id", id))
	return &Resolution{BookEditionID: id}
}

func (service *Service) classifyRemoteError(context context.Context, canonical string, err error, logger *slog.Logger) error {
	if errors.Is(err, isbndb.ErrNotFound) {
		if cacheErr := service.cache.SetMiss(context, canonical); cacheErr != nil {
			logger.Warn("resolve_cache_unavailable", slog.Any("error", cacheErr))
		}
		logger.Info("resolve_remote_unknown")
		return apperr.NotFound("Book edition")
	}

	var serviceErr *isbndb.ServiceError
	if errors.As(err, &serviceErr) {
		logger.Warn("resolve_remote_failure",
			slog.Int("upstream_status", serviceErr.StatusCode),
			slog.String("reason", serviceErr.Reason),
		)
		return apperr.Upstream(serviceErr.StatusCode, serviceErr.Reason)
	}

	return apperr.Internal(err)
}

// materialize persists the remote payload, falling back to a fetch when a
// concurrent writer won the unique index race on the isbn columns.
func (service *Service) materialize(context context.Context, canonical string, payload *isbndb.Book, logger *slog.Logger) (*book.BookEdition, error) {
	edition, err := service.store.Materialize(context, canonical, payload)
	if err == nil {
		logger.Info("resolve_materialized",
			slog.Int64("book_edition_id", edition.ID),
			slog.String("title", payload.Title),
			slog.Int("authors", len(payload.Authors)),
		)
		return edition, nil
	}

	conflict := apperr.As(err)
	if conflict == nil || conflict.HTTPStatus != http.StatusConflict {
		return nil, err
	}

	winner, fetchErr := service.books.FindByISBN(context, canonical)
	if fetchErr != nil {
		return nil, err
	}
	logger.Info("resolve_conflict_refetch", slog.Int64("book_edition_id", winner.ID))
	return winner, nil
}

func (service *Service) cacheResolved(context context.Context, canonical string, id int64, logger *slog.Logger) {
	if err := service.cache.SetResolved(context, canonical, id); err != nil {
		logger.Warn("resolve_cache_unavailable", slog.Any("error", err))
	}
}

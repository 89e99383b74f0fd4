/*
Package resolve orchestrates the ISBN resolution workflow, the core write
path of the catalog.

A resolution takes a raw ISBN string and produces the id of a book edition
that represents it, creating the full bibliographic graph on first sight:

	normalize -> local lookup -> remote lookup -> materialize

Concurrent requests for the same unknown ISBN are collapsed in-process with
singleflight; cross-process races are closed by the partial unique indexes
on the book edition isbn columns plus an insert-or-fetch on conflict.
*/
package resolve

import (
	"context"

	"github.com/chalkfarm/folio/internal/catalog/book"
	"github.com/chalkfarm/folio/internal/isbndb"
)

// Resolution is the outcome of a successful resolve call.
type Resolution struct {
	BookEditionID int64 `json:"book_edition_id"`
	// Created is true when this call materialized the edition, false when the
	// identifier was already known (locally or via cache).
	Created bool `json:"created"`
}

// BookFinder is the subset of the book repository the resolver reads from.
type BookFinder interface {
	FindByISBN(context context.Context, canonical string) (*book.BookEdition, error)
	GetBookEdition(context context.Context, id int64) (*book.BookEdition, error)
}

// RemoteLookup fetches bibliographic records from the external provider.
type RemoteLookup interface {
	Lookup(context context.Context, canonicalISBN string) (*isbndb.Book, error)
}

// Materializer persists a validated remote payload as the complete
// story -> story edition -> contributors -> book edition graph, atomically.
type Materializer interface {
	Materialize(context context.Context, canonicalISBN string, payload *isbndb.Book) (*book.BookEdition, error)
}

// ResultCache is the advisory cache in front of the database and the remote
// service. Implementations must treat their own failures as soft; the
// resolver logs and proceeds without them.
type ResultCache interface {
	// GetResolved returns the cached book edition id for a canonical ISBN,
	// with found=false when no entry exists.
	GetResolved(context context.Context, canonical string) (int64, bool, error)
	// GetMiss reports whether a recent remote 404 is on record.
	GetMiss(context context.Context, canonical string) (bool, error)
	SetResolved(context context.Context, canonical string, bookEditionID int64) error
	SetMiss(context context.Context, canonical string) error
}

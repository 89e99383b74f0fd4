package resolve

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalkfarm/folio/internal/catalog/book"
	"github.com/chalkfarm/folio/internal/isbndb"
	"github.com/chalkfarm/folio/internal/platform/apperr"
	"github.com/chalkfarm/folio/internal/platform/dberr"
)

type fakeBooks struct {
	mu       sync.Mutex
	byISBN   map[string]*book.BookEdition
	byID     map[int64]*book.BookEdition
	findErrs int
}

func newFakeBooks() *fakeBooks {
	return &fakeBooks{
		byISBN: map[string]*book.BookEdition{},
		byID:   map[int64]*book.BookEdition{},
	}
}

func (f *fakeBooks) add(edition *book.BookEdition) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if edition.ISBN != "" {
		f.byISBN[edition.ISBN] = edition
	}
	if edition.ISBN13 != "" {
		f.byISBN[edition.ISBN13] = edition
	}
	f.byID[edition.ID] = edition
}

func (f *fakeBooks) FindByISBN(_ context.Context, canonical string) (*book.BookEdition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if edition, ok := f.byISBN[canonical]; ok {
		return edition, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeBooks) GetBookEdition(_ context.Context, id int64) (*book.BookEdition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if edition, ok := f.byID[id]; ok {
		return edition, nil
	}
	return nil, dberr.ErrNotFound
}

type fakeRemote struct {
	calls   atomic.Int64
	book    *isbndb.Book
	err     error
	release chan struct{} // when non-nil, Lookup blocks until closed
}

func (f *fakeRemote) Lookup(_ context.Context, _ string) (*isbndb.Book, error) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	return f.book, f.err
}

type fakeStore struct {
	calls  atomic.Int64
	books  *fakeBooks
	err    error
	winner *book.BookEdition // row committed by a concurrent process, surfaced on conflict
	nextID atomic.Int64
}

func (f *fakeStore) Materialize(_ context.Context, canonical string, payload *isbndb.Book) (*book.BookEdition, error) {
	f.calls.Add(1)
	if f.err != nil {
		if f.winner != nil {
			f.books.add(f.winner)
		}
		return nil, f.err
	}

	isbn10, isbn13 := storedIdentifiers(canonical, payload)
	edition := &book.BookEdition{
		ID:     f.nextID.Add(1),
		Name:   &payload.Title,
		ISBN:   isbn10,
		ISBN13: isbn13,
	}
	f.books.add(edition)
	return edition, nil
}

type fakeCache struct {
	mu       sync.Mutex
	resolved map[string]int64
	misses   map[string]bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{resolved: map[string]int64{}, misses: map[string]bool{}}
}

func (f *fakeCache) GetResolved(_ context.Context, canonical string) (int64, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.resolved[canonical]
	return id, ok, nil
}

func (f *fakeCache) GetMiss(_ context.Context, canonical string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.misses[canonical], nil
}

func (f *fakeCache) SetResolved(_ context.Context, canonical string, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolved[canonical] = id
	return nil
}

func (f *fakeCache) SetMiss(_ context.Context, canonical string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.misses[canonical] = true
	return nil
}

type fixture struct {
	service *Service
	books   *fakeBooks
	remote  *fakeRemote
	store   *fakeStore
	cache   *fakeCache
}

func newFixture(remote *fakeRemote) *fixture {
	books := newFakeBooks()
	store := &fakeStore{books: books}
	cache := newFakeCache()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		service: NewService(books, remote, store, cache, logger),
		books:   books,
		remote:  remote,
		store:   store,
		cache:   cache,
	}
}

func patternRecognition() *isbndb.Book {
	return &isbndb.Book{
		Title:    "Pattern Recognition",
		Language: "en",
		Authors:  []string{"William Gibson"},
		ISBN:     "0425192938",
		ISBN13:   "9780425192931",
	}
}

func TestResolveInvalidFormat(t *testing.T) {
	f := newFixture(&fakeRemote{})

	cases := []string{"", "12345", "12345678901234", "no digits here"}
	for _, raw := range cases {
		_, err := f.service.Resolve(context.Background(), raw)

		appErr := apperr.As(err)
		require.NotNil(t, appErr, "input %q", raw)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	}

	assert.Zero(t, f.remote.calls.Load())
}

func TestResolveMaterializesUnknownISBN(t *testing.T) {
	f := newFixture(&fakeRemote{book: patternRecognition()})

	resolution, err := f.service.Resolve(context.Background(), "0-425-19293-8")
	require.NoError(t, err)

	assert.True(t, resolution.Created)
	assert.NotZero(t, resolution.BookEditionID)
	assert.EqualValues(t, 1, f.remote.calls.Load())
	assert.EqualValues(t, 1, f.store.calls.Load())

	stored, err := f.books.FindByISBN(context.Background(), "0425192938")
	require.NoError(t, err)
	assert.Equal(t, "Pattern Recognition", *stored.Name)
}

func TestResolveTwiceIsIdempotent(t *testing.T) {
	f := newFixture(&fakeRemote{book: patternRecognition()})

	first, err := f.service.Resolve(context.Background(), "0425192938")
	require.NoError(t, err)

	second, err := f.service.Resolve(context.Background(), "0425192938")
	require.NoError(t, err)

	assert.Equal(t, first.BookEditionID, second.BookEditionID)
	assert.True(t, first.Created)
	assert.False(t, second.Created)
	assert.EqualValues(t, 1, f.remote.calls.Load(), "second call must not reach the network")
}

func TestResolvePayloadWithoutQueriedIdentifierStaysFindable(t *testing.T) {
	// The provider answers a 13-digit lookup with only the 10-digit isbn.
	// The stored row must still match the identifier the caller resolved by,
	// or every resolve after cache expiry re-contacts the network and trips
	// the unique index.
	payload := patternRecognition()
	payload.ISBN13 = ""
	f := newFixture(&fakeRemote{book: payload})

	first, err := f.service.Resolve(context.Background(), "9780425192931")
	require.NoError(t, err)
	require.True(t, first.Created)

	// Expire the cache; the local store alone must answer the retry.
	f.cache.mu.Lock()
	f.cache.resolved = map[string]int64{}
	f.cache.misses = map[string]bool{}
	f.cache.mu.Unlock()

	second, err := f.service.Resolve(context.Background(), "9780425192931")
	require.NoError(t, err)

	assert.Equal(t, first.BookEditionID, second.BookEditionID)
	assert.False(t, second.Created)
	assert.EqualValues(t, 1, f.remote.calls.Load())
	assert.EqualValues(t, 1, f.store.calls.Load())
}

func TestResolveLocalHitSkipsRemote(t *testing.T) {
	f := newFixture(&fakeRemote{})
	f.books.add(&book.BookEdition{ID: 42, ISBN: "0425192938"})

	resolution, err := f.service.Resolve(context.Background(), "0425192938")
	require.NoError(t, err)

	assert.EqualValues(t, 42, resolution.BookEditionID)
	assert.False(t, resolution.Created)
	assert.Zero(t, f.remote.calls.Load())
}

func TestResolveRemoteNotFound(t *testing.T) {
	f := newFixture(&fakeRemote{err: isbndb.ErrNotFound})

	_, err := f.service.Resolve(context.Background(), "0425192938")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)

	// The 404 is remembered; a retry short-circuits on the negative cache.
	_, err = f.service.Resolve(context.Background(), "0425192938")
	require.NotNil(t, apperr.As(err))
	assert.EqualValues(t, 1, f.remote.calls.Load())
	assert.Zero(t, f.store.calls.Load())
}

func TestResolveUpstreamFailure(t *testing.T) {
	f := newFixture(&fakeRemote{err: &isbndb.ServiceError{StatusCode: 503, Reason: "unexpected status"}})

	_, err := f.service.Resolve(context.Background(), "0425192938")

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPStatus)
	assert.Equal(t, 503, appErr.UpstreamStatus)
	assert.Zero(t, f.store.calls.Load(), "failed lookups must not write rows")
}

func TestResolveMalformedPayloadWritesNothing(t *testing.T) {
	f := newFixture(&fakeRemote{err: &isbndb.ServiceError{StatusCode: 200, Reason: isbndb.ReasonMalformedPayload}})

	_, err := f.service.Resolve(context.Background(), "0425192938")

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPStatus)
	assert.Zero(t, f.store.calls.Load())
}

func TestResolveConflictRefetchesWinner(t *testing.T) {
	f := newFixture(&fakeRemote{book: patternRecognition()})

	// Another process commits the same ISBN between our remote lookup and our
	// insert; the store surfaces its row alongside the unique violation.
	f.store.err = dberr.Wrap(&pgconn.PgError{Code: "23505"}, "materialize_book_edition")
	f.store.winner = &book.BookEdition{ID: 77, ISBN: "0425192938"}

	resolution, err := f.service.Resolve(context.Background(), "0425192938")
	require.NoError(t, err)

	assert.EqualValues(t, 77, resolution.BookEditionID)
	assert.False(t, resolution.Created)
	assert.EqualValues(t, 1, f.remote.calls.Load())
}

func TestResolveConcurrentRequestsCollapse(t *testing.T) {
	remote := &fakeRemote{book: patternRecognition(), release: make(chan struct{})}
	f := newFixture(remote)

	var wg sync.WaitGroup
	results := make([]*Resolution, 2)
	errs := make([]error, 2)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.service.Resolve(context.Background(), "0425192938")
		}(i)
	}

	// Hold the remote call open long enough for both goroutines to join the
	// in-flight resolution, then let it finish.
	time.Sleep(50 * time.Millisecond)
	close(remote.release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, results[0].BookEditionID, results[1].BookEditionID)
	assert.EqualValues(t, 1, f.remote.calls.Load(), "one network call for concurrent duplicates")
	assert.EqualValues(t, 1, f.store.calls.Load(), "one materialization for concurrent duplicates")
}

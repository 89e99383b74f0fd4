package book

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalkfarm/folio/internal/platform/apperr"
	"github.com/chalkfarm/folio/internal/platform/constants"
	"github.com/chalkfarm/folio/internal/platform/dberr"
	"github.com/chalkfarm/folio/pkg/pointer"
)

type fakeRepository struct {
	editions map[int64]*BookEdition
	links    []*StoryEditionLink
	nextID   int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{editions: map[int64]*BookEdition{}}
}

func (f *fakeRepository) ListBookEditions(_ context.Context, filter Filter, _, _ int) ([]*BookEdition, int, error) {
	var editions []*BookEdition
	for _, e := range f.editions {
		if filter.ISBN != "" && e.ISBN != filter.ISBN && e.ISBN13 != filter.ISBN {
			continue
		}
		editions = append(editions, e)
	}
	return editions, len(editions), nil
}

func (f *fakeRepository) GetBookEdition(_ context.Context, id int64) (*BookEdition, error) {
	if e, ok := f.editions[id]; ok {
		return e, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) FindByISBN(_ context.Context, canonical string) (*BookEdition, error) {
	for _, e := range f.editions {
		if e.ISBN == canonical || e.ISBN13 == canonical {
			return e, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) CreateBookEdition(_ context.Context, e *BookEdition) error {
	f.nextID++
	e.ID = f.nextID
	f.editions[e.ID] = e
	return nil
}

func (f *fakeRepository) LinkStoryEdition(_ context.Context, link *StoryEditionLink) error {
	f.nextID++
	link.ID = f.nextID
	f.links = append(f.links, link)
	return nil
}

func (f *fakeRepository) ListStoryEditionLinks(_ context.Context, bookEditionID int64) ([]*StoryEditionLink, error) {
	var links []*StoryEditionLink
	for _, l := range f.links {
		if l.BookEditionID == bookEditionID {
			links = append(links, l)
		}
	}
	return links, nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, logger), repo
}

func TestCreateBookEditionNormalizesIdentifiers(t *testing.T) {
	service, repo := newTestService()

	input := &BookEdition{
		Name:   pointer.To("Pattern Recognition"),
		ISBN:   "0-425-19293-8",
		ISBN13: "978-0-425-19293-1",
	}
	require.NoError(t, service.CreateBookEdition(context.Background(), input))

	stored := repo.editions[input.ID]
	assert.Equal(t, "0425192938", stored.ISBN)
	assert.Equal(t, "9780425192931", stored.ISBN13)
	assert.False(t, stored.ISBNUnknown)
}

func TestCreateBookEditionWithoutIdentifiers(t *testing.T) {
	service, _ := newTestService()

	input := &BookEdition{Name: pointer.To("Samizdat chapbook")}
	require.NoError(t, service.CreateBookEdition(context.Background(), input))

	assert.True(t, input.ISBNUnknown, "an edition without identifiers is cataloged as isbn_unknown")
}

func TestCreateBookEditionShouldExistSuppressesUnknown(t *testing.T) {
	service, _ := newTestService()

	input := &BookEdition{Name: pointer.To("Mass market reprint"), ISBNShouldExist: true}
	require.NoError(t, service.CreateBookEdition(context.Background(), input))

	assert.False(t, input.ISBNUnknown)
}

func TestCreateBookEditionValidation(t *testing.T) {
	service, repo := newTestService()

	cases := []struct {
		name  string
		input *BookEdition
	}{
		{"missing name", &BookEdition{ISBN: "0425192938"}},
		{"isbn wrong length", &BookEdition{Name: pointer.To("X"), ISBN: "9780425192931"}},
		{"isbn13 wrong length", &BookEdition{Name: pointer.To("X"), ISBN13: "0425192938"}},
		{"isbn not digits", &BookEdition{Name: pointer.To("X"), ISBN: "not an isbn"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := service.CreateBookEdition(context.Background(), c.input)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		})
	}

	assert.Empty(t, repo.editions)
}

func TestLinkStoryEditionDefaultsConfidence(t *testing.T) {
	service, repo := newTestService()
	repo.editions[7] = &BookEdition{ID: 7}

	link := &StoryEditionLink{BookEditionID: 7, StoryEditionID: 3}
	require.NoError(t, service.LinkStoryEdition(context.Background(), link))

	require.NotNil(t, link.Confidence)
	assert.Equal(t, constants.DefaultAssociationConfidence, *link.Confidence)
	assert.Len(t, repo.links, 1)
}

func TestLinkStoryEditionUnknownBookEdition(t *testing.T) {
	service, _ := newTestService()

	link := &StoryEditionLink{BookEditionID: 99, StoryEditionID: 3}
	err := service.LinkStoryEdition(context.Background(), link)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestLinkStoryEditionRequiresStoryEditionID(t *testing.T) {
	service, repo := newTestService()
	repo.editions[7] = &BookEdition{ID: 7}

	err := service.LinkStoryEdition(context.Background(), &StoryEditionLink{BookEditionID: 7})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Empty(t, repo.links)
}

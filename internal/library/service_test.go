package library

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chalkfarm/folio/internal/platform/apperr"
	"github.com/chalkfarm/folio/internal/platform/dberr"
)

type fakeRepository struct {
	users       map[int64]*User
	collections map[int64]*Collection
	items       []*CollectionItem
	nextID      int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users:       map[int64]*User{},
		collections: map[int64]*Collection{},
	}
}

func (f *fakeRepository) ListUsers(_ context.Context, _, _ int) ([]*User, int, error) {
	return nil, 0, nil
}

func (f *fakeRepository) GetUser(_ context.Context, id int64) (*User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) CreateUser(_ context.Context, u *User) error {
	f.nextID++
	u.ID = f.nextID
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepository) ListStorages(_ context.Context, _, _ int) ([]*PhysicalStorage, int, error) {
	return nil, 0, nil
}

func (f *fakeRepository) GetStorage(_ context.Context, _ int64) (*PhysicalStorage, error) {
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) CreateStorage(_ context.Context, s *PhysicalStorage) error {
	f.nextID++
	s.ID = f.nextID
	return nil
}

func (f *fakeRepository) ListCollections(_ context.Context, _ int64, _, _ int) ([]*Collection, int, error) {
	return nil, 0, nil
}

func (f *fakeRepository) GetCollection(_ context.Context, id int64) (*Collection, error) {
	if c, ok := f.collections[id]; ok {
		return c, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) CreateCollection(_ context.Context, c *Collection) error {
	f.nextID++
	c.ID = f.nextID
	f.collections[c.ID] = c
	return nil
}

func (f *fakeRepository) AddCollectionItem(_ context.Context, item *CollectionItem) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeRepository) ListCollectionItems(_ context.Context, _ int64) ([]*CollectionItem, error) {
	return f.items, nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, logger), repo
}

func TestCreateUserValidation(t *testing.T) {
	service, _ := newTestService()

	cases := []struct {
		name string
		user User
	}{
		{name: "empty username", user: User{Email: "a@b.org"}},
		{name: "empty email", user: User{Username: "reader"}},
		{name: "bad email", user: User{Username: "reader", Email: "not-an-email"}},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			err := service.CreateUser(context.Background(), &testCase.user)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		})
	}
}

func TestCreateCollectionRequiresOwner(t *testing.T) {
	service, _ := newTestService()

	err := service.CreateCollection(context.Background(), &Collection{Name: "Shelf", UserID: 404})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestAddCollectionItem(t *testing.T) {
	service, repo := newTestService()

	owner := &User{Username: "reader", Email: "reader@chalkfarm.mx"}
	require.NoError(t, service.CreateUser(context.Background(), owner))

	collection := &Collection{Name: "Shelf", UserID: owner.ID}
	require.NoError(t, service.CreateCollection(context.Background(), collection))

	item := &CollectionItem{CollectionID: collection.ID, BookEditionID: 7}
	require.NoError(t, service.AddCollectionItem(context.Background(), item))
	assert.Len(t, repo.items, 1)
}

func TestAddCollectionItemUnknownCollection(t *testing.T) {
	service, _ := newTestService()

	err := service.AddCollectionItem(context.Background(), &CollectionItem{CollectionID: 404, BookEditionID: 7})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

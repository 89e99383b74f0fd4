package story

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
	stories  map[int64]*Story
	editions map[int64]*StoryEdition
	nextID   int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		stories:  map[int64]*Story{},
		editions: map[int64]*StoryEdition{},
	}
}

func (f *fakeRepository) ListStories(_ context.Context, _ Filter, _, _ int) ([]*Story, int, error) {
	var stories []*Story
	for _, s := range f.stories {
		stories = append(stories, s)
	}
	return stories, len(stories), nil
}

func (f *fakeRepository) GetStory(_ context.Context, id int64) (*Story, error) {
	if s, ok := f.stories[id]; ok {
		return s, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) CreateStory(_ context.Context, s *Story) error {
	f.nextID++
	s.ID = f.nextID
	f.stories[s.ID] = s
	return nil
}

func (f *fakeRepository) CreateStoryEdition(_ context.Context, e *StoryEdition) error {
	f.nextID++
	e.ID = f.nextID
	f.editions[e.ID] = e
	return nil
}

func (f *fakeRepository) ListEditionsByStory(_ context.Context, storyID int64) ([]*StoryEdition, error) {
	var editions []*StoryEdition
	for _, e := range f.editions {
		if e.StoryID == storyID {
			editions = append(editions, e)
		}
	}
	return editions, nil
}

func (f *fakeRepository) GetStoryEdition(_ context.Context, id int64) (*StoryEdition, error) {
	if e, ok := f.editions[id]; ok {
		return e, nil
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeRepository) ListContributors(_ context.Context, _ int64) ([]*Contributor, error) {
	return nil, nil
}

func newTestService() (*Service, *fakeRepository) {
	repo := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, logger), repo
}

func TestCreateStorySetsSlug(t *testing.T) {
	service, repo := newTestService()

	input := &Story{Name: "Pattern Recognition"}
	require.NoError(t, service.CreateStory(context.Background(), input))

	assert.NotZero(t, input.ID)
	assert.Equal(t, "pattern-recognition", input.Slug)
	assert.Contains(t, repo.stories, input.ID)
}

func TestCreateStoryRequiresName(t *testing.T) {
	service, _ := newTestService()

	err := service.CreateStory(context.Background(), &Story{})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
}

func TestCreateStoryMissingParent(t *testing.T) {
	service, _ := newTestService()

	missing := int64(999)
	err := service.CreateStory(context.Background(), &Story{Name: "Remake", BasedOn: &missing})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestCreateStoryDerivation(t *testing.T) {
	service, _ := newTestService()

	parent := &Story{Name: "Original"}
	require.NoError(t, service.CreateStory(context.Background(), parent))

	derived := &Story{Name: "Retelling", BasedOn: &parent.ID}
	require.NoError(t, service.CreateStory(context.Background(), derived))
	assert.Equal(t, parent.ID, *derived.BasedOn)
}

func TestCreateStoryEditionRequiresStory(t *testing.T) {
	service, _ := newTestService()

	err := service.CreateStoryEdition(context.Background(), &StoryEdition{StoryID: 404})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestListEditionsByStory(t *testing.T) {
	service, _ := newTestService()

	parent := &Story{Name: "Original"}
	require.NoError(t, service.CreateStory(context.Background(), parent))

	language := "en"
	edition := &StoryEdition{StoryID: parent.ID, Language: &language}
	require.NoError(t, service.CreateStoryEdition(context.Background(), edition))

	editions, err := service.ListEditionsByStory(context.Background(), parent.ID)
	require.NoError(t, err)
	require.Len(t, editions, 1)
	assert.Equal(t, edition.ID, editions[0].ID)
}

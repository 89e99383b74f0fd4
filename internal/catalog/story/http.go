package story

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/chalkfarm/folio/internal/platform/request"
	"github.com/chalkfarm/folio/internal/platform/respond"
	"github.com/chalkfarm/folio/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listStories)
	router.Post("/", handler.createStory)
	router.Get("/{id}", handler.getStory)
	router.Get("/{id}/editions", handler.listEditions)
	router.Post("/{id}/editions", handler.createEdition)
	router.Get("/editions/{editionID}/contributors", handler.listContributors)

	return router
}

func (handler *Handler) listStories(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	stories, total, err := handler.service.ListStories(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, stories, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getStory(writer http.ResponseWriter, request *http.Request) {
	storyID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	story, err := handler.service.GetStory(request.Context(), storyID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, story)
}

func (handler *Handler) createStory(writer http.ResponseWriter, request *http.Request) {
	var input Story
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateStory(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) listEditions(writer http.ResponseWriter, request *http.Request) {
	storyID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	editions, err := handler.service.ListEditionsByStory(request.Context(), storyID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, editions)
}

func (handler *Handler) createEdition(writer http.ResponseWriter, request *http.Request) {
	storyID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input StoryEdition
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.StoryID = storyID

	if err := handler.service.CreateStoryEdition(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) listContributors(writer http.ResponseWriter, request *http.Request) {
	editionID, err := requestutil.IntParam(request, "editionID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	contributors, err := handler.service.ListContributors(request.Context(), editionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, contributors)
}

package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/chalkfarm/folio/internal/platform/request"
	"github.com/chalkfarm/folio/internal/platform/respond"
	"github.com/chalkfarm/folio/pkg/convert"
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

	router.Get("/", handler.listBookEditions)
	router.Post("/", handler.createBookEdition)
	router.Get("/{id}", handler.getBookEdition)
	router.Get("/{id}/story-editions", handler.listStoryEditionLinks)
	router.Post("/{id}/story-editions", handler.linkStoryEdition)

	return router
}

func (handler *Handler) createBookEdition(writer http.ResponseWriter, request *http.Request) {
	var input BookEdition
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateBookEdition(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) linkStoryEdition(writer http.ResponseWriter, request *http.Request) {
	bookEditionID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input StoryEditionLink
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.BookEditionID = bookEditionID

	if err := handler.service.LinkStoryEdition(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) listBookEditions(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		ISBN:         request.URL.Query().Get("isbn"),
		PhysicalOnly: convert.ToBool(request.URL.Query().Get("physical")),
	}

	editions, total, err := handler.service.ListBookEditions(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, editions, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getBookEdition(writer http.ResponseWriter, request *http.Request) {
	bookEditionID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	edition, err := handler.service.GetBookEdition(request.Context(), bookEditionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, edition)
}

func (handler *Handler) listStoryEditionLinks(writer http.ResponseWriter, request *http.Request) {
	bookEditionID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	links, err := handler.service.ListStoryEditionLinks(request.Context(), bookEditionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, links)
}

package person

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

	router.Get("/", handler.listProsoponyms)
	router.Get("/{id}", handler.getProsoponym)
	router.Get("/{id}/persons", handler.listNameLinks)
	router.Post("/", handler.createProsoponym)

	return router
}

func (handler *Handler) listProsoponyms(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	names, total, err := handler.service.ListProsoponyms(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, names, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getProsoponym(writer http.ResponseWriter, request *http.Request) {
	prosoponymID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	prosoponym, err := handler.service.GetProsoponym(request.Context(), prosoponymID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, prosoponym)
}

func (handler *Handler) listNameLinks(writer http.ResponseWriter, request *http.Request) {
	prosoponymID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	links, err := handler.service.ListNameLinks(request.Context(), prosoponymID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, links)
}

type createProsoponymInput struct {
	Name          string `json:"name"`
	Style         string `json:"style"`
	IsPseudonym   bool   `json:"is_pseudonym"`
	IsCollective  bool   `json:"is_collective"`
	BestKnownAs   bool   `json:"best_known_as"`
	WidelyKnownAs bool   `json:"widely_known_as"`
	Confidence    *int   `json:"confidence"`
}

func (handler *Handler) createProsoponym(writer http.ResponseWriter, request *http.Request) {
	var input createProsoponymInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	prosoponym := &Prosoponym{
		Name:         input.Name,
		Style:        input.Style,
		IsPseudonym:  input.IsPseudonym,
		IsCollective: input.IsCollective,
	}
	link := NameLink{
		BestKnownAs:   input.BestKnownAs,
		WidelyKnownAs: input.WidelyKnownAs,
		Confidence:    input.Confidence,
	}

	owner, err := handler.service.CreatePersonWithName(request.Context(), prosoponym, link)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		"person":     owner,
		"prosoponym": prosoponym,
	})
}

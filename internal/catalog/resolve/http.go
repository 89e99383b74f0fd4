package resolve

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/chalkfarm/folio/internal/platform/request"
	"github.com/chalkfarm/folio/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/{isbn}", handler.resolveISBN)

	return router
}

func (handler *Handler) resolveISBN(writer http.ResponseWriter, request *http.Request) {
	rawISBN := requestutil.Param(request, "isbn")

	resolution, err := handler.service.Resolve(request.Context(), rawISBN)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, resolution)
}

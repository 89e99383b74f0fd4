package library

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

// UserRoutes serves /users.
func (handler *Handler) UserRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listUsers)
	router.Post("/", handler.createUser)
	router.Get("/{id}", handler.getUser)
	router.Get("/{id}/collections", handler.listUserCollections)

	return router
}

// StorageRoutes serves /storages.
func (handler *Handler) StorageRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listStorages)
	router.Post("/", handler.createStorage)
	router.Get("/{id}", handler.getStorage)

	return router
}

// CollectionRoutes serves /collections.
func (handler *Handler) CollectionRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createCollection)
	router.Get("/{id}", handler.getCollection)
	router.Get("/{id}/items", handler.listCollectionItems)
	router.Post("/{id}/items", handler.addCollectionItem)

	return router
}

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	users, total, err := handler.service.ListUsers(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, users, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.GetUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user)
}

func (handler *Handler) createUser(writer http.ResponseWriter, request *http.Request) {
	var input User
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateUser(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) listUserCollections(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	collections, total, err := handler.service.ListCollections(request.Context(), userID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, collections, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listStorages(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	storages, total, err := handler.service.ListStorages(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, storages, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getStorage(writer http.ResponseWriter, request *http.Request) {
	storageID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	storage, err := handler.service.GetStorage(request.Context(), storageID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, storage)
}

func (handler *Handler) createStorage(writer http.ResponseWriter, request *http.Request) {
	var input PhysicalStorage
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateStorage(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) createCollection(writer http.ResponseWriter, request *http.Request) {
	var input Collection
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCollection(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) getCollection(writer http.ResponseWriter, request *http.Request) {
	collectionID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	collection, err := handler.service.GetCollection(request.Context(), collectionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, collection)
}

func (handler *Handler) listCollectionItems(writer http.ResponseWriter, request *http.Request) {
	collectionID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.service.ListCollectionItems(request.Context(), collectionID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, items)
}

func (handler *Handler) addCollectionItem(writer http.ResponseWriter, request *http.Request) {
	collectionID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CollectionItem
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.CollectionID = collectionID

	if err := handler.service.AddCollectionItem(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

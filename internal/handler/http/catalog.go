package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexhr/hr-panel-go/internal/domain/catalog"
	"github.com/nexhr/hr-panel-go/internal/handler/http/response"
)

type CatalogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type catalogHandlerImpl struct {
	catalogService catalog.CatalogService
}

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandlerImpl{
		catalogService: catalogService,
	}
}

// Create implements CatalogHandler.
func (h *catalogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req catalog.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Service entry created", result)
}

// Get implements CatalogHandler.
func (h *catalogHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.catalogService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CatalogHandler.
func (h *catalogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result.Entries)
}

// Update implements CatalogHandler.
func (h *catalogHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req catalog.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.catalogService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service entry updated", result)
}

// Delete implements CatalogHandler.
func (h *catalogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Service entry deleted", nil)
}

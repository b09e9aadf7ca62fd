package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexhr/hr-panel-go/internal/domain/certificate"
	"github.com/nexhr/hr-panel-go/internal/handler/http/response"
)

type CertificateHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Issue(w http.ResponseWriter, r *http.Request)
}

type certificateHandlerImpl struct {
	certificateService certificate.CertificateService
}

func NewCertificateHandler(certificateService certificate.CertificateService) CertificateHandler {
	return &certificateHandlerImpl{
		certificateService: certificateService,
	}
}

// Create implements CertificateHandler.
func (h *certificateHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req certificate.CreateCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.certificateService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Certificate request created", result)
}

// Get implements CertificateHandler.
func (h *certificateHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.certificateService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CertificateHandler.
func (h *certificateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := certificate.CertificateFilter{
		Page:  parsePage(q.Get("page")),
		Limit: parseLimit(q.Get("limit")),
	}
	if v := q.Get("course_name"); v != "" {
		filter.CourseName = &v
	}

	result, err := h.certificateService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Certificates, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Update implements CertificateHandler.
func (h *certificateHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req certificate.UpdateCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.certificateService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Certificate request updated", result)
}

// Delete implements CertificateHandler.
func (h *certificateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.certificateService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Certificate request deleted", nil)
}

// Issue implements CertificateHandler.
func (h *certificateHandlerImpl) Issue(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	content, filename, err := h.certificateService.IssuePDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, filename, content)
}

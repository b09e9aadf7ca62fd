package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nexhr/hr-panel-go/internal/domain/salaryslip"
	"github.com/nexhr/hr-panel-go/internal/handler/http/response"
)

type SalarySlipHandler interface {
	CreateDraft(w http.ResponseWriter, r *http.Request)
	UpdateDraft(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Publish(w http.ResponseWriter, r *http.Request)
	DeleteDraft(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
}

type salarySlipHandlerImpl struct {
	slipService salaryslip.SalarySlipService
}

func NewSalarySlipHandler(slipService salaryslip.SalarySlipService) SalarySlipHandler {
	return &salarySlipHandlerImpl{
		slipService: slipService,
	}
}

// CreateDraft implements SalarySlipHandler.
func (h *salarySlipHandlerImpl) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var req salaryslip.CreateSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.slipService.CreateDraft(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary slip draft created", result)
}

// UpdateDraft implements SalarySlipHandler.
func (h *salarySlipHandlerImpl) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req salaryslip.UpdateSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.slipService.UpdateDraft(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary slip draft updated", result)
}

// Get implements SalarySlipHandler.
func (h *salarySlipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.slipService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements SalarySlipHandler.
func (h *salarySlipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := salaryslip.SlipFilter{
		Page:  parsePage(q.Get("page")),
		Limit: parseLimit(q.Get("limit")),
	}
	if v := q.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := q.Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Invalid month", nil)
			return
		}
		filter.PeriodMonth = &month
	}
	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		filter.PeriodYear = &year
	}
	if v := q.Get("status"); v != "" {
		filter.Status = &v
	}

	result, err := h.slipService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Slips, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Publish implements SalarySlipHandler.
func (h *salarySlipHandlerImpl) Publish(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.slipService.Publish(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary slip published", result)
}

// DeleteDraft implements SalarySlipHandler.
func (h *salarySlipHandlerImpl) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.slipService.DeleteDraft(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary slip draft deleted", nil)
}

// ExportPDF implements SalarySlipHandler.
func (h *salarySlipHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	content, filename, err := h.slipService.ExportPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, filename, content)
}

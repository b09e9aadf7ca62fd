package http

import (
	"encoding/json"
	"net/http"

	"github.com/nexhr/hr-panel-go/internal/domain/document"
	"github.com/nexhr/hr-panel-go/internal/handler/http/response"
)

type DocumentHandler interface {
	OfferLetter(w http.ResponseWriter, r *http.Request)
	ExperienceLetter(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{
		documentService: documentService,
	}
}

// OfferLetter implements DocumentHandler.
func (h *documentHandlerImpl) OfferLetter(w http.ResponseWriter, r *http.Request) {
	var req document.OfferLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	content, filename, err := h.documentService.GenerateOfferLetter(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, filename, content)
}

// ExperienceLetter implements DocumentHandler.
func (h *documentHandlerImpl) ExperienceLetter(w http.ResponseWriter, r *http.Request) {
	var req document.ExperienceLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	content, filename, err := h.documentService.GenerateExperienceLetter(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.PDF(w, filename, content)
}

package v1handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage"
)

func (h *Handler) createValidation(w http.ResponseWriter, r *http.Request) {
	var req createValidationRequest
	if err := h.bind(w, r, domain.FamilyValidation, &req); err != nil {
		writeError(w, r, err)

		return
	}

	validation, err := h.deps.Catalog.CreateValidation(r.Context(), req.attrs(), ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, toValidation(*validation))
}

func (h *Handler) getValidation(w http.ResponseWriter, r *http.Request) {
	validation, err := h.deps.Catalog.GetValidation(r.Context(), chi.URLParam(r, "validation"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toValidation(*validation))
}

func (h *Handler) listValidations(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	status, err := statusFilter(r, domain.FamilyValidation)
	if err != nil {
		writeError(w, r, err)

		return
	}
	filter := storage.ValidationFilter{
		Status:   status,
		DataType: domain.DataType(strings.ToUpper(r.URL.Query().Get("dataType"))),
	}
	if filter.DataType != "" && !filter.DataType.Valid() {
		writeError(w, r, domain.FamilyValidation.InvalidData([]string{"dataType"}, "unknown data type %q",
			filter.DataType))

		return
	}

	res, err := h.deps.Catalog.ListValidations(r.Context(), filter, page)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, newPage(res, page, toValidation))
}

func (h *Handler) updateValidation(w http.ResponseWriter, r *http.Request) {
	var req updateValidationRequest
	if err := h.bind(w, r, domain.FamilyValidation, &req); err != nil {
		writeError(w, r, err)

		return
	}

	validation, err := h.deps.Catalog.UpdateValidation(r.Context(), chi.URLParam(r, "validation"), req.update(),
		ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toValidation(*validation))
}

func (h *Handler) changeValidationStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := h.bind(w, r, domain.FamilyValidation, &req); err != nil {
		writeError(w, r, err)

		return
	}

	validation, err := h.deps.Catalog.ChangeValidationStatus(r.Context(), chi.URLParam(r, "validation"), req.Status,
		ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toValidation(*validation))
}

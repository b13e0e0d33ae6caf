package v1handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage"
)

func agencyKey(r *http.Request) domain.AgencyKey {
	return domain.AgencyKey{
		SubtypeCode: chi.URLParam(r, "subtype"),
		AgencyCode:  chi.URLParam(r, "agency"),
	}
}

func (h *Handler) createAgency(w http.ResponseWriter, r *http.Request) {
	var req createAgencyRequest
	if err := h.bind(w, r, domain.FamilyAgency, &req); err != nil {
		writeError(w, r, err)

		return
	}

	key := domain.AgencyKey{SubtypeCode: chi.URLParam(r, "subtype"), AgencyCode: req.AgencyCode}
	agency, err := h.deps.Catalog.CreateAgency(r.Context(), key, req.attrs(), ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, toAgency(*agency))
}

func (h *Handler) getAgency(w http.ResponseWriter, r *http.Request) {
	agency, err := h.deps.Catalog.GetAgency(r.Context(), agencyKey(r))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toAgency(*agency))
}

func (h *Handler) listAgencies(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	status, err := statusFilter(r, domain.FamilyAgency)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Catalog.ListAgencies(r.Context(), storage.AgencyFilter{
		SubtypeCode: chi.URLParam(r, "subtype"),
		Status:      status,
	}, page)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, newPage(res, page, toAgency))
}

func (h *Handler) updateAgency(w http.ResponseWriter, r *http.Request) {
	var req agencyAttrsRequest
	if err := h.bind(w, r, domain.FamilyAgency, &req); err != nil {
		writeError(w, r, err)

		return
	}

	agency, err := h.deps.Catalog.UpdateAgency(r.Context(), agencyKey(r), req.attrs(), ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toAgency(*agency))
}

func (h *Handler) changeAgencyStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := h.bind(w, r, domain.FamilyAgency, &req); err != nil {
		writeError(w, r, err)

		return
	}

	agency, err := h.deps.Catalog.ChangeAgencyStatus(r.Context(), agencyKey(r), req.Status,
		ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toAgency(*agency))
}

package v1handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage"
)

func (h *Handler) createSubtype(w http.ResponseWriter, r *http.Request) {
	var req createSubtypeRequest
	if err := h.bind(w, r, domain.FamilySubtype, &req); err != nil {
		writeError(w, r, err)

		return
	}

	subtype, err := h.deps.Catalog.CreateSubtype(r.Context(), req.SubtypeCode, req.Bin, req.attrs(),
		ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, toSubtype(*subtype))
}

func (h *Handler) getSubtype(w http.ResponseWriter, r *http.Request) {
	subtype, err := h.deps.Catalog.GetSubtype(r.Context(), chi.URLParam(r, "subtype"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toSubtype(*subtype))
}

func (h *Handler) listSubtypes(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	status, err := statusFilter(r, domain.FamilySubtype)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Catalog.ListSubtypes(r.Context(), storage.SubtypeFilter{
		Bin:    r.URL.Query().Get("bin"),
		Status: status,
	}, page)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, newPage(res, page, toSubtype))
}

func (h *Handler) updateSubtype(w http.ResponseWriter, r *http.Request) {
	var req subtypeAttrsRequest
	if err := h.bind(w, r, domain.FamilySubtype, &req); err != nil {
		writeError(w, r, err)

		return
	}

	subtype, err := h.deps.Catalog.UpdateSubtype(r.Context(), chi.URLParam(r, "subtype"), req.attrs(),
		ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toSubtype(*subtype))
}

func (h *Handler) changeSubtypeStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := h.bind(w, r, domain.FamilySubtype, &req); err != nil {
		writeError(w, r, err)

		return
	}

	subtype, err := h.deps.Catalog.ChangeSubtypeStatus(r.Context(), chi.URLParam(r, "subtype"), req.Status,
		ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toSubtype(*subtype))
}

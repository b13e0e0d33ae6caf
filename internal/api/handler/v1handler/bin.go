package v1handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage"
)

func (h *Handler) createBin(w http.ResponseWriter, r *http.Request) {
	var req createBinRequest
	if err := h.bind(w, r, domain.FamilyBin, &req); err != nil {
		writeError(w, r, err)

		return
	}

	bin, err := h.deps.Catalog.CreateBin(r.Context(), req.Bin, req.attrs(), ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, toBin(*bin))
}

func (h *Handler) getBin(w http.ResponseWriter, r *http.Request) {
	bin, err := h.deps.Catalog.GetBin(r.Context(), chi.URLParam(r, "bin"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toBin(*bin))
}

func (h *Handler) listBins(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	status, err := statusFilter(r, domain.FamilyBin)
	if err != nil {
		writeError(w, r, err)

		return
	}
	filter := storage.BinFilter{
		Status:  status,
		TypeBin: domain.TypeBin(strings.ToUpper(r.URL.Query().Get("typeBin"))),
	}
	if filter.TypeBin != "" && !filter.TypeBin.Valid() {
		writeError(w, r, domain.FamilyBin.InvalidData([]string{"typeBin"}, "unknown bin type %q", filter.TypeBin))

		return
	}

	res, err := h.deps.Catalog.ListBins(r.Context(), filter, page)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, newPage(res, page, toBin))
}

func (h *Handler) updateBin(w http.ResponseWriter, r *http.Request) {
	var req binAttrsRequest
	if err := h.bind(w, r, domain.FamilyBin, &req); err != nil {
		writeError(w, r, err)

		return
	}

	bin, err := h.deps.Catalog.UpdateBin(r.Context(), chi.URLParam(r, "bin"), req.attrs(), ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toBin(*bin))
}

func (h *Handler) changeBinStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := h.bind(w, r, domain.FamilyBin, &req); err != nil {
		writeError(w, r, err)

		return
	}

	bin, err := h.deps.Catalog.ChangeBinStatus(r.Context(), chi.URLParam(r, "bin"), req.Status, ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toBin(*bin))
}

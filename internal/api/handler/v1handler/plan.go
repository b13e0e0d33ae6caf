package v1handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage"
)

func (h *Handler) createPlan(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := h.bind(w, r, domain.FamilyCommercePlan, &req); err != nil {
		writeError(w, r, err)

		return
	}

	plan, err := h.deps.Catalog.CreatePlan(r.Context(), req.Code, req.attrs(), ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, toPlan(*plan))
}

func (h *Handler) getPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.deps.Catalog.GetPlan(r.Context(), chi.URLParam(r, "plan"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toPlan(*plan))
}

func (h *Handler) listPlans(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	status, err := statusFilter(r, domain.FamilyCommercePlan)
	if err != nil {
		writeError(w, r, err)

		return
	}
	filter := storage.PlanFilter{
		Status: status,
		Mode:   domain.ValidationMode(strings.ToUpper(r.URL.Query().Get("mode"))),
	}
	if filter.Mode != "" && !filter.Mode.Valid() {
		writeError(w, r, domain.FamilyCommercePlan.InvalidData([]string{"mode"}, "unknown validation mode %q",
			filter.Mode))

		return
	}

	res, err := h.deps.Catalog.ListPlans(r.Context(), filter, page)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, newPage(res, page, toPlan))
}

func (h *Handler) updatePlan(w http.ResponseWriter, r *http.Request) {
	var req planAttrsRequest
	if err := h.bind(w, r, domain.FamilyCommercePlan, &req); err != nil {
		writeError(w, r, err)

		return
	}

	plan, err := h.deps.Catalog.UpdatePlan(r.Context(), chi.URLParam(r, "plan"), req.attrs(),
		ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toPlan(*plan))
}

func (h *Handler) changePlanStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := h.bind(w, r, domain.FamilyCommercePlan, &req); err != nil {
		writeError(w, r, err)

		return
	}

	plan, err := h.deps.Catalog.ChangePlanStatus(r.Context(), chi.URLParam(r, "plan"), req.Status,
		ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toPlan(*plan))
}

func (h *Handler) addPlanItems(w http.ResponseWriter, r *http.Request) {
	var req addItemsRequest
	if err := h.bind(w, r, domain.FamilyPlanItem, &req); err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Catalog.AddPlanItems(r.Context(), chi.URLParam(r, "plan"), req.Values,
		ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	status := http.StatusOK
	if res.Inserted > 0 {
		status = http.StatusCreated
	}
	writeJSON(w, r, status, toItemsResult(res))
}

func (h *Handler) listPlanItems(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Catalog.ListPlanItems(r.Context(), chi.URLParam(r, "plan"), r.URL.Query().Get("status"), page)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, newPage(res, page, toPlanItem))
}

func (h *Handler) removePlanItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.deps.Catalog.RemovePlanItem(r.Context(), chi.URLParam(r, "plan"), chi.URLParam(r, "value"),
		ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toPlanItem(*item))
}

func (h *Handler) assignPlan(w http.ResponseWriter, r *http.Request) {
	var req assignPlanRequest
	if err := h.bind(w, r, domain.FamilySubtypePlan, &req); err != nil {
		writeError(w, r, err)

		return
	}

	link, err := h.deps.Catalog.AssignPlan(r.Context(), chi.URLParam(r, "subtype"), req.PlanCode,
		ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toSubtypePlan(*link))
}

func (h *Handler) getSubtypePlan(w http.ResponseWriter, r *http.Request) {
	link, err := h.deps.Catalog.GetSubtypePlan(r.Context(), chi.URLParam(r, "subtype"))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toSubtypePlan(*link))
}

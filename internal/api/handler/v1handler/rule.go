package v1handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bincatalog/internal/catalog"
	"bincatalog/pkg/domain"
	"bincatalog/pkg/storage"
)

func ruleKey(r *http.Request) catalog.RuleKey {
	return catalog.RuleKey{
		SubtypeCode:    chi.URLParam(r, "subtype"),
		Bin:            chi.URLParam(r, "bin"),
		ValidationCode: chi.URLParam(r, "validation"),
	}
}

func (h *Handler) attachRule(w http.ResponseWriter, r *http.Request) {
	var req attachRuleRequest
	if err := h.bind(w, r, domain.FamilyValidationMap, &req); err != nil {
		writeError(w, r, err)

		return
	}

	key := ruleKey(r)
	key.ValidationCode = req.ValidationCode
	rule, err := h.deps.Catalog.AttachRule(r.Context(), catalog.AttachRule{
		RuleKey:  key,
		Priority: req.Priority,
		Override: req.Override.value(),
	}, ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, toRule(*rule))
}

// resolveRules returns the rules of the pair. Without a status only active
// definitions effective now are returned.
func (h *Handler) resolveRules(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Catalog.ResolveRules(r.Context(), catalog.ResolveRequest{
		SubtypeCode: chi.URLParam(r, "subtype"),
		Bin:         chi.URLParam(r, "bin"),
		Status:      r.URL.Query().Get("status"),
	}, page)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, newPage(res, page, toResolvedRule))
}

func (h *Handler) changeRuleStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := h.bind(w, r, domain.FamilyValidationMap, &req); err != nil {
		writeError(w, r, err)

		return
	}

	rule, err := h.deps.Catalog.ChangeRuleStatus(r.Context(), ruleKey(r), req.Status, ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toRule(*rule))
}

func (h *Handler) detachRule(w http.ResponseWriter, r *http.Request) {
	rule, err := h.deps.Catalog.DetachRule(r.Context(), ruleKey(r), ActorFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, toRule(*rule))
}

func (h *Handler) listRules(w http.ResponseWriter, r *http.Request) {
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, r, err)

		return
	}
	status, err := statusFilter(r, domain.FamilyValidationMap)
	if err != nil {
		writeError(w, r, err)

		return
	}

	res, err := h.deps.Catalog.ListRules(r.Context(), storage.ValidationMapFilter{
		SubtypeCode: r.URL.Query().Get("subtype"),
		Bin:         r.URL.Query().Get("bin"),
		Status:      status,
	}, page)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, newPage(res, page, toRule))
}

// Package v1handler serves version 1 of the catalog HTTP API.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"bincatalog/internal/catalog"
	"bincatalog/pkg/domain"
	"bincatalog/pkg/logger"
	"bincatalog/pkg/serrors"
	"bincatalog/pkg/storage"
)

// maxBodyBytes bounds the size of a decoded request body.
const maxBodyBytes = 1 << 20

type Deps struct {
	Catalog catalog.Catalog
}

type Handler struct {
	deps     Deps
	validate *validator.Validate
}

func New(deps Deps) *Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Handler{
		deps:     deps,
		validate: validate,
	}
}

// Routes registers every v1 endpoint on r.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/bins", func(r chi.Router) {
		r.Post("/", h.createBin)
		r.Get("/", h.listBins)
		r.Get("/{bin}", h.getBin)
		r.Put("/{bin}", h.updateBin)
		r.Patch("/{bin}/status", h.changeBinStatus)
	})

	r.Route("/subtypes", func(r chi.Router) {
		r.Post("/", h.createSubtype)
		r.Get("/", h.listSubtypes)

		r.Route("/{subtype}", func(r chi.Router) {
			r.Get("/", h.getSubtype)
			r.Put("/", h.updateSubtype)
			r.Patch("/status", h.changeSubtypeStatus)

			r.Route("/agencies", func(r chi.Router) {
				r.Post("/", h.createAgency)
				r.Get("/", h.listAgencies)
				r.Get("/{agency}", h.getAgency)
				r.Put("/{agency}", h.updateAgency)
				r.Patch("/{agency}/status", h.changeAgencyStatus)
			})

			r.Route("/bins/{bin}/rules", func(r chi.Router) {
				r.Post("/", h.attachRule)
				r.Get("/", h.resolveRules)
				r.Patch("/{validation}/status", h.changeRuleStatus)
				r.Delete("/{validation}", h.detachRule)
			})

			r.Put("/plan", h.assignPlan)
			r.Get("/plan", h.getSubtypePlan)
		})
	})

	r.Route("/validations", func(r chi.Router) {
		r.Post("/", h.createValidation)
		r.Get("/", h.listValidations)
		r.Get("/{validation}", h.getValidation)
		r.Put("/{validation}", h.updateValidation)
		r.Patch("/{validation}/status", h.changeValidationStatus)
	})

	r.Get("/rules", h.listRules)

	r.Route("/plans", func(r chi.Router) {
		r.Post("/", h.createPlan)
		r.Get("/", h.listPlans)
		r.Get("/{plan}", h.getPlan)
		r.Put("/{plan}", h.updatePlan)
		r.Patch("/{plan}/status", h.changePlanStatus)
		r.Post("/{plan}/items", h.addPlanItems)
		r.Get("/{plan}/items", h.listPlanItems)
		r.Delete("/{plan}/items/{value}", h.removePlanItem)
	})
}

// ErrorBody is the JSON document returned for every failed request.
type ErrorBody struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// ErrorResponse pairs an ErrorBody with its HTTP status code.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

var kindStatuses = []struct { //nolint: gochecknoglobals
	kind    serrors.Kind
	status  int
	message string
}{
	{serrors.ErrInvalidData, http.StatusBadRequest, "invalid data"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrAlreadyExists, http.StatusConflict, "resource already exists"},
	{serrors.ErrConflictRule, http.StatusUnprocessableEntity, "operation violates a catalog rule"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
}

// NewError converts err into the response sent to the client. Errors without
// a known kind are logged and reported as INTERNAL without their text.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorResponse {
	for _, ks := range kindStatuses {
		if !errors.Is(err, ks.kind) {
			continue
		}

		body := ErrorBody{
			Code:    ks.kind.Error(),
			Message: ks.message,
			Fields:  serrors.FieldsOf(err),
		}
		var se *serrors.Error
		if errors.As(err, &se) {
			body.Code = se.Code()
			if se.Message() != "" {
				body.Message = se.Message()
			}
		}
		logger.Debug(ctx, "request failed", zap.String("code", body.Code), zap.Error(err))

		return &ErrorResponse{StatusCode: ks.status, Response: body}
	}

	logger.Error(ctx, "internal error while handling request", zap.Error(err))

	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Response: ErrorBody{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal error",
		},
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	writeJSON(w, r, res.StatusCode, res.Response)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(r.Context(), "could not write response body", zap.Error(err))
	}
}

// bind decodes the JSON body of r into dst and checks its shape. Shape
// violations are reported as INVALID_DATA of family with the offending fields.
func (h *Handler) bind(w http.ResponseWriter, r *http.Request, family domain.Family, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
		}

		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}

		return family.InvalidData(fields, "invalid request body")
	}

	return nil
}

// pageRequest reads the page and size query parameters.
func pageRequest(r *http.Request) (storage.PageRequest, error) {
	var page storage.PageRequest

	for name, dst := range map[string]*uint{"page": &page.Page, "size": &page.Size} {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return storage.PageRequest{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s parameter", name).
				WithFields(name)
		}
		*dst = uint(v)
	}

	return page.Normalize(), nil
}

// statusFilter parses the optional status query parameter.
func statusFilter(r *http.Request, family domain.Family) (domain.Status, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return "", nil
	}
	status, ok := domain.ParseStatus(raw)
	if !ok {
		return "", family.InvalidData([]string{"status"}, "status must be A or I")
	}

	return status, nil
}

// PageResponse is one page of a listing.
type PageResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  uint  `json:"page"`
	Size  uint  `json:"size"`
}

func newPage[S, T any](page storage.Page[S], req storage.PageRequest, convert func(S) T) PageResponse[T] {
	items := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, convert(item))
	}

	return PageResponse[T]{
		Items: items,
		Total: page.Total,
		Page:  req.Page,
		Size:  req.Size,
	}
}

package dashboardhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/analytics"
	"workforce/internal/requestctx"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/shared"
)

type Handler struct {
	Service *analytics.Service
}

func NewHandler(service *analytics.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/stats", h.handleStats)
		r.Get("/gender-distribution", h.handleGenderDistribution)
		r.Get("/department-employees", h.handleDepartmentEmployees)
		r.Get("/recent-appraisals", h.handleRecentAppraisals)
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, stats, requestID)
}

func (h *Handler) handleGenderDistribution(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	distribution, err := h.Service.GenderDistribution(r.Context())
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, distribution, requestID)
}

func (h *Handler) handleDepartmentEmployees(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	counts, err := h.Service.DepartmentEmployeeCounts(r.Context())
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, counts, requestID)
}

func (h *Handler) handleRecentAppraisals(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	limit := shared.QueryInt(r, "limit", 0)
	appraisals, err := h.Service.RecentAppraisals(r.Context(), limit)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, appraisals, requestID)
}

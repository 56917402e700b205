package performancehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/performance"
	"workforce/internal/requestctx"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/shared"
)

type Handler struct {
	Service *performance.Service
	Admin   func(http.Handler) http.Handler
}

func NewHandler(service *performance.Service, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{Service: service, Admin: admin}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/performance", func(r chi.Router) {
		r.Get("/cycles", h.handleListCycles)
		r.With(h.Admin).Post("/cycles", h.handleCreateCycle)

		r.Get("/appraisals", h.handleListAppraisals)
		r.With(h.Admin).Post("/appraisals", h.handleCreateAppraisal)

		r.With(h.Admin).Post("/kpi-scores", h.handleScoreKPI)
		r.Get("/kpi-scores/{cycleID}", h.handleKPIScoresForCycle)

		r.Get("/appeals", h.handleListAppeals)
		r.Post("/appeals", h.handleSubmitAppeal)
		r.With(h.Admin).Put("/appeals/{appealID}", h.handleDecideAppeal)
	})
}

func (h *Handler) handleListCycles(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	cycles, err := h.Service.ListCycles(r.Context())
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, cycles, requestID)
}

type cyclePayload struct {
	Name               string  `json:"name"`
	Type               string  `json:"type"`
	StartDate          string  `json:"startDate"`
	EndDate            string  `json:"endDate"`
	SubmissionDeadline *string `json:"submissionDeadline"`
}

func (h *Handler) handleCreateCycle(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	var payload cyclePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	startDate, err := shared.ParseDate(payload.StartDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid start date", requestID)
		return
	}
	endDate, err := shared.ParseDate(payload.EndDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid end date", requestID)
		return
	}
	in := performance.CycleInput{Name: payload.Name, Type: payload.Type, StartDate: startDate, EndDate: endDate}
	if deadline, err := shared.ParseOptionalDate(payload.SubmissionDeadline); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid submission deadline", requestID)
		return
	} else if deadline != nil {
		in.SubmissionDeadline = *deadline
	}

	id, err := h.Service.CreateCycle(r.Context(), in)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) handleListAppraisals(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	appraisals, err := h.Service.ListAppraisals(r.Context())
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, appraisals, requestID)
}

func (h *Handler) handleCreateAppraisal(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	var payload performance.AppraisalInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	id, err := h.Service.CreateAppraisal(r.Context(), payload)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) handleScoreKPI(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	var payload performance.KPIScoreInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	score, err := h.Service.ScoreKPI(r.Context(), payload)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Created(w, score, requestID)
}

func (h *Handler) handleKPIScoresForCycle(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	cycleID, ok := shared.PathID(r, "cycleID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid cycle id", requestID)
		return
	}
	employeeID := shared.QueryID(r, "employeeId")
	scores, err := h.Service.KPIScoresForCycle(r.Context(), cycleID, employeeID)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, scores, requestID)
}

func (h *Handler) handleListAppeals(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	appeals, err := h.Service.ListAppeals(r.Context())
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, appeals, requestID)
}

type appealPayload struct {
	AppraisalID int64   `json:"appraisalId"`
	Reason      *string `json:"reason"`
}

func (h *Handler) handleSubmitAppeal(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	var payload appealPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	id, err := h.Service.SubmitAppeal(r.Context(), payload.AppraisalID, payload.Reason)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) handleDecideAppeal(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	appealID, ok := shared.PathID(r, "appealID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid appeal id", requestID)
		return
	}
	var decision performance.AppealDecision
	if err := json.NewDecoder(r.Body).Decode(&decision); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if err := h.Service.DecideAppeal(r.Context(), appealID, decision); err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"status": decision.Status}, requestID)
}

package jobshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/job"
	"workforce/internal/requestctx"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/shared"
)

type Handler struct {
	Service *job.Service
	Admin   func(http.Handler) http.Handler
}

func NewHandler(service *job.Service, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{Service: service, Admin: admin}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{jobID}", h.handleGet)
		r.Get("/{jobID}/assignments", h.handleAssignments)
		r.With(h.Admin).Post("/", h.handleCreate)
		r.With(h.Admin).Put("/{jobID}", h.handleUpdate)
		r.With(h.Admin).Delete("/{jobID}", h.handleDelete)
		r.With(h.Admin).Post("/{jobID}/objectives", h.handleCreateObjective)
		r.With(h.Admin).Post("/objectives/{objectiveID}/kpis", h.handleAddKPI)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	jobs, err := h.Service.ListJobs(r.Context())
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, jobs, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := shared.PathID(r, "jobID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid job id", requestID)
		return
	}
	detail, err := h.Service.GetJob(r.Context(), id)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, detail, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	var payload job.Input
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	id, err := h.Service.CreateJob(r.Context(), payload)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := shared.PathID(r, "jobID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid job id", requestID)
		return
	}
	var patch job.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if err := h.Service.UpdateJob(r.Context(), id, patch); err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := shared.PathID(r, "jobID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid job id", requestID)
		return
	}
	if err := h.Service.DeleteJob(r.Context(), id); err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.NoContent(w)
}

func (h *Handler) handleAssignments(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := shared.PathID(r, "jobID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid job id", requestID)
		return
	}
	assignments, err := h.Service.Assignments(r.Context(), id)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, assignments, requestID)
}

type objectivePayload struct {
	Description string `json:"description"`
}

func (h *Handler) handleCreateObjective(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := shared.PathID(r, "jobID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid job id", requestID)
		return
	}
	var payload objectivePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	objectiveID, err := h.Service.CreateObjective(r.Context(), id, payload.Description)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Created(w, map[string]int64{"id": objectiveID}, requestID)
}

type kpiPayload struct {
	Name        string  `json:"name"`
	TargetValue float64 `json:"targetValue"`
	Weight      float64 `json:"weight"`
}

func (h *Handler) handleAddKPI(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	objectiveID, ok := shared.PathID(r, "objectiveID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid objective id", requestID)
		return
	}
	var payload kpiPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	kpiID, err := h.Service.AddKPI(r.Context(), job.KPI{
		ObjectiveID: objectiveID,
		Name:        payload.Name,
		TargetValue: payload.TargetValue,
		Weight:      payload.Weight,
	})
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Created(w, map[string]int64{"id": kpiID}, requestID)
}

package employeeshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/employee"
	"workforce/internal/requestctx"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/shared"
)

type Handler struct {
	Service *employee.Service
	Admin   func(http.Handler) http.Handler
}

func NewHandler(service *employee.Service, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{Service: service, Admin: admin}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/{employeeID}", h.handleGet)
		r.Get("/{employeeID}/assignments", h.handleAssignments)
		r.Get("/{employeeID}/performance", h.handlePerformance)
		r.With(h.Admin).Post("/", h.handleCreate)
		r.With(h.Admin).Put("/{employeeID}", h.handleUpdate)
		r.With(h.Admin).Delete("/{employeeID}", h.handleDelete)
		r.With(h.Admin).Post("/{employeeID}/assignments", h.handleCreateAssignment)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	employees, err := h.Service.ListEmployees(r.Context())
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, employees, requestID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := shared.PathID(r, "employeeID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", requestID)
		return
	}
	emp, err := h.Service.GetEmployee(r.Context(), id)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, emp, requestID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	var payload employee.Input
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	id, err := h.Service.CreateEmployee(r.Context(), payload)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := shared.PathID(r, "employeeID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", requestID)
		return
	}
	var patch employee.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if err := h.Service.UpdateEmployee(r.Context(), id, patch); err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, requestID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := shared.PathID(r, "employeeID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", requestID)
		return
	}
	if err := h.Service.DeleteEmployee(r.Context(), id); err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.NoContent(w)
}

func (h *Handler) handleAssignments(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := shared.PathID(r, "employeeID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", requestID)
		return
	}
	assignments, err := h.Service.Assignments(r.Context(), id)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, assignments, requestID)
}

type assignmentPayload struct {
	JobID          int64   `json:"jobId"`
	ContractID     int64   `json:"contractId"`
	StartDate      string  `json:"startDate"`
	EndDate        *string `json:"endDate"`
	AssignedSalary float64 `json:"assignedSalary"`
}

func (h *Handler) handleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := shared.PathID(r, "employeeID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", requestID)
		return
	}
	var payload assignmentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	startDate, err := shared.ParseDate(payload.StartDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid start date", requestID)
		return
	}
	endDate, err := shared.ParseOptionalDate(payload.EndDate)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid end date", requestID)
		return
	}

	assignmentID, err := h.Service.CreateAssignment(r.Context(), id, employee.AssignmentInput{
		JobID:          payload.JobID,
		ContractID:     payload.ContractID,
		StartDate:      startDate,
		EndDate:        endDate,
		AssignedSalary: payload.AssignedSalary,
	})
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Created(w, map[string]int64{"id": assignmentID}, requestID)
}

func (h *Handler) handlePerformance(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := shared.PathID(r, "employeeID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", requestID)
		return
	}
	history, err := h.Service.Performance(r.Context(), id)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, history, requestID)
}

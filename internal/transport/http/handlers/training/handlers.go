package traininghandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/training"
	"workforce/internal/requestctx"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/shared"
)

type Handler struct {
	Service *training.Service
	Admin   func(http.Handler) http.Handler
}

func NewHandler(service *training.Service, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{Service: service, Admin: admin}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/training", func(r chi.Router) {
		r.Get("/programs", h.handlePrograms)
		r.With(h.Admin).Post("/programs", h.handleCreateProgram)
		r.Get("/employees/{employeeID}", h.handleEmployeeRecords)
		r.Post("/enroll", h.handleEnroll)
		r.With(h.Admin).Put("/enrollments/{enrollmentID}/status", h.handleUpdateStatus)
		r.With(h.Admin).Post("/enrollments/{enrollmentID}/certificate", h.handleIssueCertificate)
	})
}

func (h *Handler) handlePrograms(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	programs, err := h.Service.ProgramsWithCounts(r.Context())
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, programs, requestID)
}

func (h *Handler) handleCreateProgram(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	var payload training.ProgramInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	id, err := h.Service.CreateProgram(r.Context(), payload)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) handleEmployeeRecords(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	employeeID, ok := shared.PathID(r, "employeeID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid employee id", requestID)
		return
	}
	records, err := h.Service.EmployeeRecords(r.Context(), employeeID)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, records, requestID)
}

func (h *Handler) handleEnroll(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	var payload training.EnrollmentInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	id, err := h.Service.Enroll(r.Context(), payload)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

type statusPayload struct {
	CompletionStatus string `json:"completionStatus"`
}

func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	enrollmentID, ok := shared.PathID(r, "enrollmentID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid enrollment id", requestID)
		return
	}
	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if err := h.Service.UpdateEnrollmentStatus(r.Context(), enrollmentID, payload.CompletionStatus); err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, requestID)
}

func (h *Handler) handleIssueCertificate(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	enrollmentID, ok := shared.PathID(r, "enrollmentID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid enrollment id", requestID)
		return
	}
	certificate, err := h.Service.IssueCertificate(r.Context(), enrollmentID)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Created(w, certificate, requestID)
}

package orghandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/org"
	"workforce/internal/requestctx"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/shared"
)

type Handler struct {
	Service *org.Service
	Admin   func(http.Handler) http.Handler
}

func NewHandler(service *org.Service, admin func(http.Handler) http.Handler) *Handler {
	return &Handler{Service: service, Admin: admin}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/universities", h.handleListUniversities)
	r.Get("/faculties", h.handleListFaculties)
	r.Route("/departments", func(r chi.Router) {
		r.Get("/", h.handleListDepartments)
		r.Get("/{departmentID}", h.handleGetDepartment)
		r.With(h.Admin).Post("/", h.handleCreateDepartment)
		r.With(h.Admin).Put("/{departmentID}", h.handleUpdateDepartment)
		r.With(h.Admin).Delete("/{departmentID}", h.handleDeleteDepartment)
	})
}

func (h *Handler) handleListUniversities(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	universities, err := h.Service.ListUniversities(r.Context())
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, universities, requestID)
}

func (h *Handler) handleListFaculties(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	faculties, err := h.Service.ListFaculties(r.Context())
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, faculties, requestID)
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	departments, err := h.Service.ListDepartments(r.Context())
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, departments, requestID)
}

func (h *Handler) handleGetDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := shared.PathID(r, "departmentID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid department id", requestID)
		return
	}
	department, err := h.Service.GetDepartment(r.Context(), id)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, department, requestID)
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	var payload org.DepartmentInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	id, err := h.Service.CreateDepartment(r.Context(), payload)
	if err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Created(w, map[string]int64{"id": id}, requestID)
}

func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := shared.PathID(r, "departmentID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid department id", requestID)
		return
	}
	var patch org.DepartmentPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	if err := h.Service.UpdateDepartment(r.Context(), id, patch); err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, requestID)
}

func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	requestID := requestctx.GetRequestID(r.Context())
	id, ok := shared.PathID(r, "departmentID")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid department id", requestID)
		return
	}
	if err := h.Service.DeleteDepartment(r.Context(), id); err != nil {
		api.Err(w, err, requestID)
		return
	}
	api.NoContent(w)
}

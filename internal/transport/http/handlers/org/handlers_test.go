package orghandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"workforce/internal/admingate"
	"workforce/internal/apperr"
	"workforce/internal/domain/org"
	"workforce/internal/transport/http/middleware"
)

type fakeStore struct {
	departments map[int64]org.Department
	jobCounts   map[int64]int
	nextID      int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{departments: map[int64]org.Department{}, jobCounts: map[int64]int{}, nextID: 1}
}

func (f *fakeStore) ListUniversities(ctx context.Context) ([]org.University, error) { return nil, nil }
func (f *fakeStore) ListFaculties(ctx context.Context) ([]org.Faculty, error)       { return nil, nil }

func (f *fakeStore) ListDepartments(ctx context.Context) ([]org.Department, error) {
	var out []org.Department
	for _, d := range f.departments {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeStore) GetDepartment(ctx context.Context, id int64) (*org.Department, error) {
	d, ok := f.departments[id]
	if !ok {
		return nil, apperr.NotFound("department not found")
	}
	return &d, nil
}

func (f *fakeStore) CreateDepartment(ctx context.Context, in org.DepartmentInput) (int64, error) {
	id := f.nextID
	f.nextID++
	f.departments[id] = org.Department{ID: id, Name: in.Name, Type: in.Type, FacultyID: in.FacultyID}
	return id, nil
}

func (f *fakeStore) UpdateDepartment(ctx context.Context, id int64, patch org.DepartmentPatch) error {
	d, ok := f.departments[id]
	if !ok {
		return apperr.NotFound("department not found")
	}
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.Type != nil {
		d.Type = *patch.Type
	}
	f.departments[id] = d
	return nil
}

func (f *fakeStore) DeleteDepartment(ctx context.Context, id int64) error {
	if _, ok := f.departments[id]; !ok {
		return apperr.NotFound("department not found")
	}
	delete(f.departments, id)
	return nil
}

func (f *fakeStore) DepartmentJobCount(ctx context.Context, id int64) (int, error) {
	return f.jobCounts[id], nil
}

type allowGate struct{}

func (allowGate) Authorize(token string) error {
	if token == "admin-token" {
		return nil
	}
	return admingate.ErrUnauthorized
}

func newTestRouter(store *fakeStore) http.Handler {
	router := chi.NewRouter()
	handler := NewHandler(org.NewService(store), middleware.RequireAdmin(allowGate{}))
	handler.RegisterRoutes(router)
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, router http.Handler, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Admin-Token", token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("invalid envelope: %v (%s)", err, rec.Body.String())
		}
	}
	return rec, env
}

func TestCreateDepartmentRequiresAdminToken(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec, env := doJSON(t, router, http.MethodPost, "/departments/", `{"name":"Physics","type":"Academic"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if env.Success || env.Error == nil || env.Error.Code != "unauthorized" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestDepartmentLifecycle(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store)

	rec, env := doJSON(t, router, http.MethodPost, "/departments/", `{"name":"Physics","type":"Academic"}`, "admin-token")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil || created.ID == 0 {
		t.Fatalf("create: bad payload %s", env.Data)
	}

	rec, _ = doJSON(t, router, http.MethodGet, "/departments/1", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	rec, _ = doJSON(t, router, http.MethodPut, "/departments/1", `{"name":"Applied Physics"}`, "admin-token")
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if store.departments[1].Name != "Applied Physics" {
		t.Fatalf("update not applied: %+v", store.departments[1])
	}

	rec, _ = doJSON(t, router, http.MethodDelete, "/departments/1", "", "admin-token")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
}

func TestErrorKindsMapToStatuses(t *testing.T) {
	store := newFakeStore()
	store.departments[7] = org.Department{ID: 7, Name: "Chemistry", Type: "Academic"}
	store.jobCounts[7] = 3
	router := newTestRouter(store)

	rec, env := doJSON(t, router, http.MethodGet, "/departments/99", "", "")
	if rec.Code != http.StatusNotFound || env.Error.Code != "not_found" {
		t.Fatalf("missing department: got %d / %+v", rec.Code, env.Error)
	}

	rec, env = doJSON(t, router, http.MethodPut, "/departments/7", `{}`, "admin-token")
	if rec.Code != http.StatusBadRequest || env.Error.Code != "bad_request" {
		t.Fatalf("empty patch: got %d / %+v", rec.Code, env.Error)
	}

	// Dependent jobs block deletion.
	rec, env = doJSON(t, router, http.MethodDelete, "/departments/7", "", "admin-token")
	if rec.Code != http.StatusConflict || env.Error.Code != "referential_integrity" {
		t.Fatalf("blocked delete: got %d / %+v", rec.Code, env.Error)
	}
}

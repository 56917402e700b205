package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"workforce/internal/admingate"
	"workforce/internal/requestctx"
)

type stubGate struct {
	accept string
}

func (g *stubGate) Authorize(token string) error {
	if token == g.accept && token != "" {
		return nil
	}
	return admingate.ErrUnauthorized
}

type rejectAllGate struct{}

func (rejectAllGate) Authorize(string) error { return errors.New("nope") }

func TestRequireAdminPassesValidToken(t *testing.T) {
	var sawAdmin bool
	handler := RequireAdmin(&stubGate{accept: "s3cret"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAdmin = requestctx.IsAdmin(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/departments", nil)
	req.Header.Set("X-Admin-Token", "s3cret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through, got status %d", rec.Code)
	}
	if !sawAdmin {
		t.Fatal("expected admin marker on the request context")
	}
}

func TestRequireAdminRejects(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"wrong token", "guess"},
	}
	handler := RequireAdmin(&stubGate{accept: "s3cret"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/departments", nil)
		if tc.token != "" {
			req.Header.Set("X-Admin-Token", tc.token)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, rec.Code)
		}
	}
}

func TestRequireAdminUnconfiguredGate(t *testing.T) {
	handler := RequireAdmin(rejectAllGate{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))
	req := httptest.NewRequest(http.MethodDelete, "/employees/1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

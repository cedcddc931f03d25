package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCanonicalPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"", "/"},
		{"/api/groups", "/api/groups"},
		{"/api/groups/507f1f77bcf86cd799439011", "/api/groups/:id"},
		{"/api/groups/507f1f77bcf86cd799439011/expenses/507f191e810c19729de860ea", "/api/groups/:id/expenses/:id"},
		{"/api/users/me", "/api/users/me"},
		{"/api/groups/not-an-id", "/api/groups/not-an-id"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := canonicalPath(tc.in); got != tc.want {
				t.Errorf("canonicalPath(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestInstrument_PassesThrough(t *testing.T) {
	called := false
	h := Instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/api/groups", nil))

	if !called {
		t.Fatal("handler not called")
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestHandler_ServesMetrics(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected metrics exposition output")
	}
}

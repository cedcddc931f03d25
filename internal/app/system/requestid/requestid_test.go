package requestid

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddleware_AssignsID(t *testing.T) {
	var got string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if got == "" {
		t.Fatal("expected request ID in context")
	}
	if rec.Header().Get(Header) != got {
		t.Errorf("response header %q does not match context id %q", rec.Header().Get(Header), got)
	}
}

func TestMiddleware_ReusesInboundID(t *testing.T) {
	var got string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(Header, "proxy-assigned-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got != "proxy-assigned-id" {
		t.Errorf("id = %q, want proxy-assigned-id", got)
	}
}

func TestFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if id := FromContext(req.Context()); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}

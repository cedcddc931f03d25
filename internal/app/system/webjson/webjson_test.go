package webjson

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"go.uber.org/zap"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, http.StatusCreated, map[string]string{"message": "ok"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestDecode(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com"}`))
		var p payload
		if err := Decode(req, &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Email != "a@b.com" {
			t.Errorf("email = %q", p.Email)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))
		var p payload
		err := Decode(req, &p)
		if apperr.Status(err) != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", apperr.Status(err))
		}
	})

	t.Run("malformed", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":`))
		var p payload
		err := Decode(req, &p)
		if apperr.Status(err) != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", apperr.Status(err))
		}
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com","extra":1}`))
		var p payload
		err := Decode(req, &p)
		if apperr.Status(err) != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", apperr.Status(err))
		}
	})
}

func TestWriteError(t *testing.T) {
	ew := ErrorWriter{Log: zap.NewNop()}

	t.Run("classified", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/groups/x", nil)
		ew.WriteError(rec, req, apperr.New(apperr.NotFound, "Group not found"))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d", rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["error"] != "Group not found" {
			t.Errorf("error = %q", body["error"])
		}
	})

	t.Run("internal hides detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/groups", nil)
		ew.WriteError(rec, req, apperr.Wrap(apperr.Internal, "query failed", errTest))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "connection refused") {
			t.Error("internal detail leaked to client")
		}
		if !strings.Contains(rec.Body.String(), "Internal Server Error") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})
}

var errTest = &connError{}

type connError struct{}

func (*connError) Error() string { return "connection refused" }

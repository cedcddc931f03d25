package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/bonkersapp/bonkers/internal/app/features/auth"
	userstore "github.com/bonkersapp/bonkers/internal/app/store/users"
	sysauth "github.com/bonkersapp/bonkers/internal/app/system/auth"
	"github.com/bonkersapp/bonkers/internal/app/system/indexes"
	"github.com/bonkersapp/bonkers/internal/app/system/ratelimit"
	"github.com/bonkersapp/bonkers/internal/testutil"
)

func newTestHandler(t *testing.T) *auth.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	sm, err := sysauth.NewSessionManager(
		"test-jwt-secret-must-be-32-chars-long!!",
		"jwt-bonkers",
		168*time.Hour,
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	limiter := ratelimit.NewLoginLimiterWithConfig(1000, time.Minute, 1000, time.Minute)
	return auth.NewHandler(userstore.New(db), sm, limiter, zap.NewNop())
}

func postJSON(path, body string) *http.Request {
	r := httptest.NewRequest("POST", path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r.RemoteAddr = "192.0.2.1:1000"
	return r
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestRegister_Success(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleRegister(rec, postJSON("/api/auth/register", `{"fullName":"Ada","email":"a@x.com","password":"pw123456"}`))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if body["email"] != "a@x.com" {
		t.Errorf("email = %v", body["email"])
	}
	if _, hasPassword := body["password"]; hasPassword {
		t.Error("password must not appear in the response")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "jwt-bonkers" || cookies[0].Value == "" {
		t.Errorf("expected session cookie, got %v", cookies)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleRegister(rec, postJSON("/api/auth/register", `{"fullName":"Ada","email":"a@x.com","password":"pw123456"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("first register: status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.HandleRegister(rec, postJSON("/api/auth/register", `{"fullName":"Imposter","email":"a@x.com","password":"pw123456"}`))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Email already exists" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestRegister_Validation(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing fields", `{"email":"a@x.com","password":"pw123456"}`, "All fields are required"},
		{"blank name", `{"fullName":"   ","email":"a@x.com","password":"pw123456"}`, "All fields are required"},
		{"short password", `{"fullName":"Ada","email":"a@x.com","password":"pw1"}`, "Password must be at least 6 characters"},
		{"bad email", `{"fullName":"Ada","email":"not-an-email","password":"pw123456"}`, "Invalid email format"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleRegister(rec, postJSON("/api/auth/register", tc.body))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", rec.Code)
			}
			if body := decodeBody(t, rec); body["error"] != tc.wantErr {
				t.Errorf("error = %v, want %q", body["error"], tc.wantErr)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleRegister(rec, postJSON("/api/auth/register", `{"fullName":"Ada","email":"a@x.com","password":"pw123456"}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status = %d", rec.Code)
	}

	t.Run("correct credentials", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleLogin(rec, postJSON("/api/auth/login", `{"email":"a@x.com","password":"pw123456"}`))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		if body := decodeBody(t, rec); body["email"] != "a@x.com" {
			t.Errorf("email = %v", body["email"])
		}
		if len(rec.Result().Cookies()) != 1 {
			t.Error("expected session cookie")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleLogin(rec, postJSON("/api/auth/login", `{"email":"a@x.com","password":"wrong-pass"}`))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
		if body := decodeBody(t, rec); body["error"] != "Invalid credentials" {
			t.Errorf("error = %v", body["error"])
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.HandleLogin(rec, postJSON("/api/auth/login", `{"email":"ghost@x.com","password":"pw123456"}`))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", rec.Code)
		}
		if body := decodeBody(t, rec); body["error"] != "Invalid credentials" {
			t.Errorf("error = %v", body["error"])
		}
	})
}

func TestLogin_RateLimited(t *testing.T) {
	db := testutil.SetupTestDB(t)
	sm, err := sysauth.NewSessionManager(
		"test-jwt-secret-must-be-32-chars-long!!",
		"jwt-bonkers",
		time.Hour,
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatal(err)
	}
	limiter := ratelimit.NewLoginLimiterWithConfig(2, time.Minute, 1000, time.Minute)
	h := auth.NewHandler(userstore.New(db), sm, limiter, zap.NewNop())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		h.HandleLogin(rec, postJSON("/api/auth/login", `{"email":"a@x.com","password":"nope"}`))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("attempt %d: status = %d", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	h.HandleLogin(rec, postJSON("/api/auth/login", `{"email":"a@x.com","password":"nope"}`))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
}

func TestLogout(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleLogout(rec, postJSON("/api/auth/logout", ``))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Logged out successfully" {
		t.Errorf("message = %v", body["message"])
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Errorf("expected expired cookie, got %v", cookies)
	}
}

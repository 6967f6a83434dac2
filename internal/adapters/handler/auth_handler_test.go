package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/adapters/handler"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/services"
	"github.com/hopehomes/orphanage-platform/backoffice-service/test/mocks"
)

func newAuthHandler() *handler.AuthHandler {
	repo := mocks.NewMockAccountRepository()
	tokens := services.NewJWTTokenService("test-secret")
	return handler.NewAuthHandler(services.NewAuthService(repo, tokens))
}

func postJSON(t *testing.T, h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid", `{"name":"Hope House","email":"hope@example.com","password":"s3cret"}`, http.StatusCreated},
		{"missing_email", `{"name":"Hope House","password":"s3cret"}`, http.StatusBadRequest},
		{"unsupported_role", `{"name":"x","email":"x@example.com","password":"p","role":"superuser"}`, http.StatusBadRequest},
		{"malformed_body", `{"name":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newAuthHandler()
			rec := postJSON(t, h.Register, "/register", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := newAuthHandler()
	register := `{"name":"Hope House","email":"hope@example.com","password":"s3cret"}`
	if rec := postJSON(t, h.Register, "/register", register); rec.Code != http.StatusCreated {
		t.Fatalf("register failed with %d", rec.Code)
	}

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"valid", `{"email":"hope@example.com","password":"s3cret"}`, http.StatusOK, ""},
		{"unknown_email", `{"email":"nobody@example.com","password":"s3cret"}`, http.StatusNotFound, "user not found"},
		{"wrong_password", `{"email":"hope@example.com","password":"wrong"}`, http.StatusUnauthorized, "incorrect password"},
		{"empty_credentials", `{}`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.Login, "/login", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if tt.wantStatus == http.StatusOK {
				if body["token"] == "" {
					t.Error("expected a token in the login response")
				}
				if body["message"] != "Login successful!" {
					t.Errorf("message = %q", body["message"])
				}
			} else if tt.wantError != "" && body["error"] != tt.wantError {
				t.Errorf("error = %q, want %q", body["error"], tt.wantError)
			}
		})
	}
}

func TestAuthHandler_AdminLogin(t *testing.T) {
	h := newAuthHandler()
	admin := `{"name":"Admin","email":"admin@example.com","password":"s3cret","role":"admin"}`
	if rec := postJSON(t, h.Register, "/register", admin); rec.Code != http.StatusCreated {
		t.Fatalf("register failed with %d", rec.Code)
	}
	orphanage := `{"name":"Hope House","email":"hope@example.com","password":"s3cret"}`
	if rec := postJSON(t, h.Register, "/register", orphanage); rec.Code != http.StatusCreated {
		t.Fatalf("register failed with %d", rec.Code)
	}

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid_admin", `{"email":"admin@example.com","password":"s3cret"}`, http.StatusOK},
		{"wrong_password", `{"email":"admin@example.com","password":"wrong"}`, http.StatusUnauthorized},
		// non-admin accounts are indistinguishable from unknown ones
		{"orphanage_account", `{"email":"hope@example.com","password":"s3cret"}`, http.StatusUnauthorized},
		{"unknown_email", `{"email":"nobody@example.com","password":"s3cret"}`, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postJSON(t, h.AdminLogin, "/admin/login", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

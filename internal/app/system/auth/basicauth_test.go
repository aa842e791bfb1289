package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestAdmin_Verify(t *testing.T) {
	admin := Admin{Username: "admin", Password: "admin123"}

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid credentials", "admin", "admin123", true},
		{"wrong password", "admin", "wrong", false},
		{"wrong username", "other", "admin123", false},
		{"both wrong", "other", "wrong", false},
		{"empty credentials", "", "", false},
		{"case sensitive username", "Admin", "admin123", false},
		{"case sensitive password", "admin", "Admin123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := admin.Verify(tt.username, tt.password); got != tt.want {
				t.Errorf("Verify(%q, %q) = %v, want %v", tt.username, tt.password, got, tt.want)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	admin := Admin{Username: "admin", Password: "admin123"}

	var reached bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAdmin(admin, zap.NewNop())(next)

	t.Run("valid credentials pass through", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		req.SetBasicAuth("admin", "admin123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if !reached {
			t.Error("wrapped handler was not reached")
		}
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("invalid credentials rejected", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		req.SetBasicAuth("admin", "wrong")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if reached {
			t.Error("wrapped handler ran despite invalid credentials")
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
		if got := rec.Header().Get("WWW-Authenticate"); got != `Basic realm="admin"` {
			t.Errorf("WWW-Authenticate = %q, want %q", got, `Basic realm="admin"`)
		}
		if !strings.Contains(rec.Body.String(), "Credenciais inválidas") {
			t.Errorf("body = %q, want error message", rec.Body.String())
		}
	})

	t.Run("missing credentials rejected", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if reached {
			t.Error("wrapped handler ran without credentials")
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})
}

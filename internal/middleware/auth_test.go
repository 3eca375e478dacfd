package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminAuth_Verify(t *testing.T) {
	auth := NewAdminAuth("admin", "secret")

	tests := []struct {
		name     string
		login    string
		password string
		want     bool
	}{
		{"valid", "admin", "secret", true},
		{"wrong password", "admin", "nope", false},
		{"wrong login", "root", "secret", false},
		{"both wrong", "root", "nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.SetBasicAuth(tt.login, tt.password)
			assert.Equal(t, tt.want, auth.Verify(req))
		})
	}

	t.Run("no header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.False(t, auth.Verify(req))
	})
}

func TestAdminAuth_Require(t *testing.T) {
	auth := NewAdminAuth("admin", "secret")

	called := false
	handler := auth.Require(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("rejects without credential", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodPost, "/api/games", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})

	t.Run("passes with credential", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodPost, "/api/games", nil)
		req.SetBasicAuth("admin", "secret")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})
}

package middleware

import (
	"crypto/subtle"
	"net/http"

	json "github.com/goccy/go-json"
)

// AdminAuth guards administrative endpoints with a single static HTTP Basic
// credential pair. No session or token is issued; the client re-sends the
// credential on each request.
type AdminAuth struct {
	login    string
	password string
}

func NewAdminAuth(login, password string) *AdminAuth {
	return &AdminAuth{
		login:    login,
		password: password,
	}
}

// Verify reports whether the request carries the admin credential.
func (a *AdminAuth) Verify(r *http.Request) bool {
	login, password, ok := r.BasicAuth()
	if !ok {
		return false
	}

	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(a.login)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1

	return loginOK && passwordOK
}

// Require rejects requests without the admin credential.
func (a *AdminAuth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.Verify(r) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":   "Unauthorized",
				"message": "Admin credentials required",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

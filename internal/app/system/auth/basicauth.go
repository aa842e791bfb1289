// internal/app/system/auth/basicauth.go

// Package auth provides the fixed-credential gate for admin routes.
//
// There is a single administrator identity, supplied through
// configuration at startup. Authentication is stateless HTTP Basic:
// every admin request carries the full credentials, and no session or
// token is ever issued.
package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/chronospesquisa/blogapi/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Admin holds the fixed administrator credentials.
type Admin struct {
	Username string
	Password string
}

// Verify reports whether the submitted pair matches the configured
// identity. Both comparisons always run, in constant time, so a miss on
// the username does not short-circuit the password check.
func (a Admin) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.Password)) == 1
	return userOK && passOK
}

// RequireAdmin returns middleware that rejects requests without valid
// HTTP Basic admin credentials.
//
// Rejections get a 401 with a Basic challenge and a JSON error body;
// the wrapped handler never runs, so failed requests cannot mutate
// anything.
func RequireAdmin(admin Admin, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok || !admin.Verify(username, password) {
				logger.Warn("admin request rejected: invalid credentials",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
				)
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				jsonutil.Unauthorized(w, "Credenciais inválidas")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

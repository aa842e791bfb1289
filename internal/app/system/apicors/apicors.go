// Package apicors provides CORS middleware for the public and admin
// JSON API.
//
// The allowed origin list comes from configuration. The default, a
// single "*", reflects that the blog is read by anonymous browsers on
// arbitrary sites; deployments that want to pin the frontend origin set
// cors_origins instead.
package apicors

import (
	"net/http"
)

// Middleware returns CORS middleware allowing the given origins.
//
// A list containing "*" allows any origin by echoing the request's
// Origin header, which keeps credentialed requests (the admin UI sends
// Basic auth) working where a literal "*" would not. Preflight OPTIONS
// requests are answered directly.
func Middleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowAll := false
	originSet := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
			continue
		}
		originSet[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				_, listed := originSet[origin]
				if allowAll || listed {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Set("Vary", "Origin")
				}
				// Unlisted origins get no CORS headers; the browser blocks.
			}

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept")
			w.Header().Set("Access-Control-Max-Age", "86400")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Package network provides request-level network helpers.
package network

import (
	"net/http"
	"strings"
)

// GetClientIP returns the originating client IP for a request. Behind a
// reverse proxy the X-Forwarded-For chain's first entry is the client;
// X-Real-IP is the single-proxy equivalent. Without either header the
// request's RemoteAddr is used with its port stripped.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if idx := strings.LastIndex(r.RemoteAddr, ":"); idx != -1 {
		return r.RemoteAddr[:idx]
	}
	return r.RemoteAddr
}

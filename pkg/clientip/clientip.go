// Package clientip resolves the address of the client that sent a request
package clientip

import (
	"net"
	"net/http"
	"strings"

	"bitwise74/visitor-api/internal/model"
)

// Resolve picks the client IP in this order: the first entry of the
// X-Forwarded-For header, the host part of the connection address and
// finally the loopback fallback.
func Resolve(forwardedFor, remoteAddr string) string {
	if forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if remoteAddr != "" {
		host, _, err := net.SplitHostPort(remoteAddr)
		if err != nil {
			// No port attached
			return remoteAddr
		}

		if host != "" {
			return host
		}
	}

	return model.FallbackIP
}

func FromRequest(r *http.Request) string {
	return Resolve(r.Header.Get("X-Forwarded-For"), r.RemoteAddr)
}

package pkg

import (
	"net"
	"net/http"
	"strings"
)

// ReadUserIP returns the client address, preferring the proxy headers set by the gateway.
func ReadUserIP(r *http.Request) string {
	if ipAddr := r.Header.Get("X-Real-Ip"); ipAddr != "" {
		return ipAddr
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

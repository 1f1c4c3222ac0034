package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultHeaders is the lookup order used by GetIP and Middleware. Every one
// of them is client-controlled unless a proxy in front overwrites it, so
// services reachable directly should build a Resolver with no headers.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"True-Client-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver extracts the originating client address from a request by
// inspecting proxy headers in order and falling back to RemoteAddr.
type Resolver struct {
	headers []string
}

// NewResolver returns a Resolver that trusts the given headers in order.
// With no headers only RemoteAddr is consulted. Blank names are ignored.
func NewResolver(headers ...string) *Resolver {
	clean := make([]string, 0, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			clean = append(clean, h)
		}
	}
	return &Resolver{headers: clean}
}

var defaultResolver = NewResolver(DefaultHeaders...)

// GetIP resolves the client address using DefaultHeaders.
func GetIP(r *http.Request) string {
	return defaultResolver.IP(r)
}

// IP returns the normalized client address, or "" when none of the sources
// holds a valid one. For list headers such as X-Forwarded-For the right-most
// valid entry wins: it is the hop appended by the trusted proxy, while
// entries to its left come from the client.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		parts := strings.Split(r.Header.Get(h), ",")
		for i := len(parts) - 1; i >= 0; i-- {
			if ip := parseIP(parts[i]); ip != "" {
				return ip
			}
		}
	}
	return RemoteIP(r)
}

// RemoteIP returns the normalized address of the connection peer, ignoring
// all headers.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// Middleware stores the resolved address in the request context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithContext(r.Context(), res.IP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Middleware is Resolver.Middleware with DefaultHeaders.
func Middleware(next http.Handler) http.Handler {
	return defaultResolver.Middleware(next)
}

// parseIP trims brackets, zones and IPv4-in-IPv6 mapping so equal clients
// produce equal keys.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// LoggerExtractor adds "client_ip" to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}

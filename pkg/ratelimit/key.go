package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/dmitrymomot/webtools/pkg/clientip"
)

const maxKeyLength = 64

// KeyFunc identifies the caller of a request. An empty key bypasses limiting.
type KeyFunc func(*http.Request) string

// ByClientIP keys on the address stored by a clientip middleware. Without
// one it falls back to the connection peer, since proxy headers are only
// meaningful behind a Resolver configured to trust them.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.RemoteIP(r)
}

// ByHeader keys on the value of a request header, e.g. an API key.
func ByHeader(name string) KeyFunc {
	return func(r *http.Request) string {
		return strings.TrimSpace(r.Header.Get(name))
	}
}

// Composite joins the non-empty keys of fns with ":". Results longer than 64
// bytes are replaced by a 32 character SHA-256 prefix.
func Composite(fns ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(fns))
		for _, fn := range fns {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		key := strings.Join(parts, ":")
		if len(key) > maxKeyLength {
			sum := sha256.Sum256([]byte(key))
			return hex.EncodeToString(sum[:16])
		}
		return key
	}
}

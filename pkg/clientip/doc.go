// Package clientip resolves the originating client address of an HTTP
// request running behind reverse proxies.
//
// Headers are consulted in order (DefaultHeaders unless a custom Resolver is
// built). Within a list header such as X-Forwarded-For the right-most valid
// hop wins. RemoteAddr is the fallback, and RemoteIP reads it alone.
// Addresses are normalized: IPv4-mapped IPv6 is unmapped and zones are
// dropped, so the result is usable as a rate-limit key.
//
//	r := chi.NewRouter()
//	r.Use(clientip.Middleware)
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		ip := clientip.FromContext(r.Context())
//		...
//	})
//
// Only trust headers your edge proxy overwrites; anything else is client
// controlled. A service reachable without a proxy should use NewResolver()
// with no headers:
//
//	r.Use(clientip.NewResolver().Middleware)
package clientip

package useragent

import "net/http"

// Middleware classifies the request User-Agent header and stores the result
// in the request context.
func Middleware(next http.Handler) http.Handler {
	return MiddlewareWithClassifier(nil)(next)
}

// MiddlewareWithClassifier is Middleware backed by a memoizing Classifier.
// A nil classifier falls back to Parse.
func MiddlewareWithClassifier(c *Classifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua := c.Parse(r.UserAgent())
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), ua)))
		})
	}
}

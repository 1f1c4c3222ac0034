package useragent

import (
	"context"
	"log/slog"
)

type userAgentContextKey struct{}

// WithContext stores the classified user agent in ctx.
func WithContext(ctx context.Context, ua UserAgent) context.Context {
	return context.WithValue(ctx, userAgentContextKey{}, ua)
}

// FromContext returns the user agent stored by WithContext or Middleware.
func FromContext(ctx context.Context) (UserAgent, bool) {
	if ctx == nil {
		return UserAgent{}, false
	}
	ua, ok := ctx.Value(userAgentContextKey{}).(UserAgent)
	return ua, ok
}

// LoggerExtractor returns a ContextExtractor for the logger. It adds the
// "browser" attribute for recognized user agents.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ua, ok := FromContext(ctx); ok && !ua.IsUnknown() {
			return slog.String("browser", ua.FullName()), true
		}
		return slog.Attr{}, false
	}
}

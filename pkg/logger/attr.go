package logger

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/webtools/pkg/useragent"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ClientIP records the caller address under the key "client_ip".
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// UserAgent groups the classification of a user agent under "user_agent".
// Absent fields are omitted; an unknown agent only carries "unknown=true".
func UserAgent(ua useragent.UserAgent) slog.Attr {
	if ua.IsUnknown() {
		return slog.Group("user_agent", slog.Bool("unknown", true))
	}

	attrs := []any{slog.String("browser", ua.BrowserName())}
	if v := ua.BrowserVersion(); v != "" {
		attrs = append(attrs, slog.String("version", v))
	}
	if e := ua.BrowserEngine(); e != "" {
		attrs = append(attrs, slog.String("engine", e))
	}
	if os := ua.OperatingSystem(); os != "" {
		attrs = append(attrs, slog.String("os", os))
	}
	if ua.IsBot() {
		attrs = append(attrs, slog.Bool("bot", true))
	}
	return slog.Group("user_agent", attrs...)
}

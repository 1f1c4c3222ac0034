package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webtools/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "192.0.2.10:51234",
			want:       "192.0.2.10",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.11",
			want:       "192.0.2.11",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "cloudflare header wins",
			headers:    map[string]string{"CF-Connecting-IP": "203.0.113.5", "X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "10.0.0.1:80",
			want:       "203.0.113.5",
		},
		{
			name:       "right-most valid forwarded entry",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.99, 198.51.100.7 , unknown"},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.7",
		},
		{
			name:       "invalid header falls through",
			headers:    map[string]string{"CF-Connecting-IP": "not-an-ip", "X-Real-IP": "198.51.100.9"},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.9",
		},
		{
			name:       "mapped ipv4 is unmapped",
			headers:    map[string]string{"X-Real-IP": "::ffff:198.51.100.20"},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.20",
		},
		{
			name:       "bracketed ipv6 header",
			headers:    map[string]string{"True-Client-IP": "[2001:db8::2]"},
			remoteAddr: "10.0.0.1:80",
			want:       "2001:db8::2",
		},
		{
			name:       "nothing valid",
			remoteAddr: "garbage",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.GetIP(req))
		})
	}
}

func TestResolver_CustomHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:80"
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	req.Header.Set("Fly-Client-IP", "203.0.113.77")

	assert.Equal(t, "203.0.113.77", clientip.NewResolver("Fly-Client-IP").IP(req))
	assert.Equal(t, "10.0.0.1", clientip.NewResolver().IP(req), "no trusted headers")
	assert.Equal(t, "10.0.0.1", clientip.NewResolver("", " ").IP(req), "blank names are ignored")
}

func TestResolver_SpoofedForwardedFor(t *testing.T) {
	t.Parallel()

	res := clientip.NewResolver("X-Forwarded-For")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:80"
	// The client sent "1.2.3.4"; the proxy appended the real peer.
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 198.51.100.50")

	assert.Equal(t, "198.51.100.50", res.IP(req))
}

func TestRemoteIP(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "[::ffff:192.0.2.44]:8080"
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	req.Header.Set("CF-Connecting-IP", "198.51.100.2")

	assert.Equal(t, "192.0.2.44", clientip.RemoteIP(req))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	handler := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.3")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "198.51.100.3", got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := clientip.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(clientip.WithContext(context.Background(), "192.0.2.1"))
	require.True(t, ok)
	assert.Equal(t, "client_ip", attr.Key)
	assert.Equal(t, "192.0.2.1", attr.Value.String())
}

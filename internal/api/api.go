package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/webtools/internal/stats"
	"github.com/dmitrymomot/webtools/pkg/clientip"
	"github.com/dmitrymomot/webtools/pkg/httpserver"
	"github.com/dmitrymomot/webtools/pkg/logger"
	"github.com/dmitrymomot/webtools/pkg/ratelimit"
	"github.com/dmitrymomot/webtools/pkg/requestid"
	"github.com/dmitrymomot/webtools/pkg/useragent"
)

// Option configures the API.
type Option func(*API)

func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithServiceName names the OpenTelemetry server spans.
func WithServiceName(name string) Option {
	return func(a *API) {
		if name != "" {
			a.serviceName = name
		}
	}
}

// WithLimiter replaces the limiter built from Config.RateLimit.
func WithLimiter(l ratelimit.Limiter) Option {
	return func(a *API) { a.limiter = l }
}

// API serves user agent classification over HTTP.
type API struct {
	cfg         Config
	classifier  *useragent.Classifier
	ips         *clientip.Resolver
	recorder    stats.Recorder
	limiter     ratelimit.Limiter
	log         *slog.Logger
	serviceName string
}

// New builds the API. The recorder counts the user agents of callers of the
// /v1 routes and backs the readiness probe.
func New(cfg Config, recorder stats.Recorder, opts ...Option) (*API, error) {
	if recorder == nil {
		recorder = stats.NewMemoryRecorder()
	}
	a := &API{
		cfg:         cfg,
		classifier:  useragent.NewClassifier(cfg.CacheSize),
		ips:         clientip.NewResolver(cfg.TrustedProxyHeaders...),
		recorder:    recorder,
		log:         logger.Discard(),
		serviceName: "uaserver",
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.limiter == nil && cfg.RateLimitEnabled {
		lim, err := ratelimit.NewKeyedLimiter(cfg.RateLimit)
		if err != nil {
			return nil, err
		}
		a.limiter = lim
	}
	return a, nil
}

// Limiter returns the active limiter, or nil when rate limiting is disabled.
func (a *API) Limiter() ratelimit.Limiter { return a.limiter }

// Router returns the HTTP handler with the full middleware chain.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(
		recoverer(a.log),
		requestid.Middleware,
		a.ips.Middleware,
		useragent.MiddlewareWithClassifier(a.classifier),
		tracing(a.serviceName),
		requestLogger(a.log),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", errNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", errMethodNotAllowed)
	})

	r.Get("/health/live", httpserver.LivenessHandler())
	r.Get("/health/ready", httpserver.ReadinessHandler(a.log, a.recorder.Ping))

	r.Route("/v1", func(v1 chi.Router) {
		if a.limiter != nil {
			v1.Use(ratelimit.Middleware(a.limiter, ratelimit.ByClientIP,
				ratelimit.WithLogger(a.log),
				ratelimit.WithOnLimitReached(func(w http.ResponseWriter, _ *http.Request, _ ratelimit.Result) {
					writeError(w, http.StatusTooManyRequests, "rate_limited", errRateLimited)
				}),
			))
		}
		v1.Use(a.recordVisitor)

		v1.Get("/classify", a.classifyOne)
		v1.Post("/classify", a.classifyBatch)
		v1.Get("/whoami", a.whoami)
		v1.Get("/stats", a.stats)
	})

	return r
}

// recordVisitor counts the caller's own user agent. Failures are logged and
// never fail the request.
func (a *API) recordVisitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua, ok := useragent.FromContext(r.Context()); ok {
			if err := a.recorder.Record(r.Context(), ua); err != nil {
				a.log.WarnContext(r.Context(), "failed to record visitor", logger.Error(err))
			}
		}
		next.ServeHTTP(w, r)
	})
}

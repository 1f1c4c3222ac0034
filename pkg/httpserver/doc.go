// Package httpserver runs an http.Handler with graceful shutdown.
//
// Server opens its listener eagerly so address errors surface from Run as
// ErrStart. Run then blocks until the context is cancelled, SIGINT or SIGTERM
// arrives, or Shutdown is called, and drains in-flight requests within the
// configured shutdown timeout. Stop hooks run after draining, which is where
// callers close backing clients.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStopHook(func(context.Context) error { return rec.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// LivenessHandler and ReadinessHandler provide plain-text probes for
// orchestrators.
package httpserver

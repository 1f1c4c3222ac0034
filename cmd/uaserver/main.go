// Command uaserver serves user agent classification over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/webtools/internal/api"
	"github.com/dmitrymomot/webtools/internal/stats"
	"github.com/dmitrymomot/webtools/pkg/clientip"
	"github.com/dmitrymomot/webtools/pkg/config"
	"github.com/dmitrymomot/webtools/pkg/httpserver"
	"github.com/dmitrymomot/webtools/pkg/logger"
	"github.com/dmitrymomot/webtools/pkg/ratelimit"
	"github.com/dmitrymomot/webtools/pkg/requestid"
	"github.com/dmitrymomot/webtools/pkg/useragent"
)

type appConfig struct {
	Env           string        `env:"APP_ENV" envDefault:"development"`
	ServiceName   string        `env:"SERVICE_NAME" envDefault:"uaserver"`
	LogLevel      string        `env:"LOG_LEVEL"`
	SweepInterval time.Duration `env:"RATE_LIMIT_SWEEP_INTERVAL" envDefault:"1m"`
}

func main() {
	var app appConfig
	config.MustLoad(&app)

	log := logger.New(
		logger.WithEnvironment(logger.ParseEnvironment(app.Env), app.ServiceName),
		logger.WithLevelName(app.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			useragent.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	if err := run(app, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(app appConfig, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		srvCfg   httpserver.Config
		statsCfg stats.Config
		apiCfg   api.Config
	)
	if err := errors.Join(
		config.Load(&srvCfg),
		config.Load(&statsCfg),
		config.Load(&apiCfg),
	); err != nil {
		return err
	}

	recorder, err := stats.New(ctx, statsCfg, log.With(logger.Component("stats")))
	if err != nil {
		return err
	}

	service, err := api.New(apiCfg, recorder,
		api.WithLogger(log.With(logger.Component("api"))),
		api.WithServiceName(app.ServiceName),
	)
	if err != nil {
		_ = recorder.Close()
		return err
	}

	if lim, ok := service.Limiter().(*ratelimit.KeyedLimiter); ok {
		go func() {
			if err := lim.RunSweeper(ctx, app.SweepInterval); err != nil {
				log.WarnContext(ctx, "rate limit sweeper disabled", logger.Error(err))
			}
		}()
	}

	srv := httpserver.NewFromConfig(srvCfg,
		httpserver.WithLogger(log.With(logger.Component("http"))),
		httpserver.WithStopHook(func(context.Context) error { return recorder.Close() }),
	)
	return srv.Run(ctx, service.Router())
}

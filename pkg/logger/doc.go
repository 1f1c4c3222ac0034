// Package logger builds *slog.Logger instances with functional options and
// transparent injection of request-scoped values stored in context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks before delegating. Packages that keep values in
// the context expose a LoggerExtractor for this purpose (see
// useragent.LoggerExtractor).
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(logger.ParseEnvironment(cfg.Env), "uaserver"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextExtractors(useragent.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "classified", logger.UserAgent(ua), logger.Duration(d))
//
// Attribute helpers such as Error and RequestID return an empty slog.Attr for
// zero input, which slog drops, so callers do not need nil checks.
package logger

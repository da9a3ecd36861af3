// Package logger builds *slog.Logger instances from functional options and
// injects context-derived attributes, such as the current request id, into
// every record.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler according to the
// configured Format and wraps it in a ContextHandler. The ContextHandler
// runs each registered ContextExtractor against the context passed to
// InfoContext, ErrorContext and friends, so a single process-wide logger
// stamps the right request id on lines logged from any goroutine that
// holds the request's context.
//
// # Usage
//
//	tracer := requestid.New()
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "api"),
//	    logger.WithContextExtractors(tracer.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "charged card", logger.Duration(time.Since(start)))
//
// # Configuration
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment
//   - WithFormat / WithTextFormatter / WithJSONFormatter
//   - WithLevel / WithLevelName
//   - WithOutput / WithRotatingFile (lumberjack)
//   - WithAttr / WithHandlerOptions
//   - WithContextExtractors / WithContextValue
//
// Invalid formats and level names panic: misconfiguration should stop the
// process at startup.
//
// Attribute helpers (Error, Errors, Group, RequestID, ScopeID, Hop,
// Duration, Component) keep key names consistent. Error and Errors return
// an empty Attr for nil input, so they can be passed unconditionally.
package logger

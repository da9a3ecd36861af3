// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, middleware wiring and health-check handlers.
//
//   - Run blocks until its context is done or SIGINT/SIGTERM arrives, then
//     calls http.Server.Shutdown with the configured deadline.
//   - Options (WithAddr, WithReadTimeout, WithMiddleware, WithLogger, ...)
//     or NewFromConfig with env-tagged Config build the server.
//   - WithStartHook and WithStopHook run side effects around the life cycle.
//   - HealthCheckHandler serves liveness and readiness probes.
//
// # Usage
//
//	tracer := requestid.New()
//	log := logger.New(logger.WithContextExtractors(tracer.LoggerExtractor()))
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithLogger(log),
//		httpserver.WithMiddleware(tracer.Middleware),
//	)
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Run wraps listen errors with ErrStart and Shutdown wraps shutdown errors
// with ErrShutdown; match them with errors.Is.
package httpserver

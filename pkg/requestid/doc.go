// Package requestid assigns a correlation id to every inbound HTTP request
// and makes it readable from any code running on behalf of that request.
//
// A Tracer owns a ctxstore.Namespace. Its Middleware resolves the id (the
// configured header when enabled and non-empty, otherwise a fresh UUIDv4),
// opens a scope for the request, stores the id under Key and calls the next
// handler with the scoped request. Downstream code calls Tracer.ID or
// Tracer.FromContext with whatever context it was handed; goroutines,
// timers and futures started through ctxstore keep seeing the same id after
// the handler returns.
//
// Caller-supplied ids are used verbatim. No validation, length or format
// constraint is applied.
//
// # Usage
//
//	tracer := requestid.New()
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//	    id := tracer.FromContext(r.Context())
//	    w.Header().Set(requestid.Header, id)
//	})
//
//	http.ListenAndServe(":8080", tracer.Middleware(mux))
//
// Package-level Middleware, ID and FromContext use a lazily created Default
// tracer for programs that do not want to pass a Tracer around.
//
// # Configuration
//
//   - WithUseHeader (default true) and WithHeaderName (default "X-Request-Id").
//   - WithResponseHeader echoes the id to the client (default off).
//   - WithGenerator replaces uuid.NewString.
//   - WithNamespace shares scopes with another tracer.
//
// Config and NewFromConfig cover the same settings from environment
// variables.
//
// # Logger integration
//
//	log := logger.New(logger.WithContextExtractors(tracer.LoggerExtractor()))
//	log.InfoContext(ctx, "payment captured") // ... request_id=<id>
//
// # Error Handling
//
// The package does not return errors. A missing header falls back to a
// generated id; reading outside a request yields "" and false. The default
// generator panics if the system entropy source fails, since no id can be
// produced without it.
package requestid

package requestid

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rtracer/pkg/ctxstore"
)

const (
	// Header is the default inbound header carrying a caller-supplied id.
	Header = "X-Request-Id"
	// Key is the scope key the id is stored under.
	Key = "requestId"

	namespacePrefix = "rtracer:"
)

// Tracer assigns request ids and stores them in a ctxstore scope so that
// any code holding the request context can read them back.
type Tracer struct {
	ns         *ctxstore.Namespace
	useHeader  bool
	headerName string
	echo       bool
	generate   func() string
}

// New returns a Tracer. Without WithNamespace it registers a fresh,
// process-unique namespace.
func New(opts ...Option) *Tracer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.ns == nil {
		cfg.ns = ctxstore.CreateNamespace(namespacePrefix + uuid.NewString())
	}
	return &Tracer{
		ns:         cfg.ns,
		useHeader:  cfg.useHeader,
		headerName: cfg.headerName,
		echo:       cfg.echo,
		generate:   cfg.generate,
	}
}

// Namespace returns the namespace holding the tracer's scopes.
func (t *Tracer) Namespace() *ctxstore.Namespace {
	return t.ns
}

// HeaderName returns the inbound header consulted by Resolve.
func (t *Tracer) HeaderName() string {
	return t.headerName
}

// Resolve picks the id for r: the configured header if enabled and
// non-empty, taken verbatim, otherwise a freshly generated one.
func (t *Tracer) Resolve(r *http.Request) string {
	if t.useHeader && r != nil {
		if id := lookupHeader(r.Header, t.headerName); id != "" {
			return id
		}
	}
	return t.generate()
}

// lookupHeader matches name case-insensitively, including keys that were
// put into the map without canonicalization.
func lookupHeader(h http.Header, name string) string {
	if v := h.Get(name); v != "" {
		return v
	}
	for k, vs := range h {
		if len(vs) > 0 && vs[0] != "" && strings.EqualFold(k, name) {
			return vs[0]
		}
	}
	return ""
}

// Echo writes id to h when WithResponseHeader is enabled.
func (t *Tracer) Echo(h http.Header, id string) {
	if t.echo {
		h.Set(t.headerName, id)
	}
}

package requestid

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/rtracer/pkg/ctxstore"
)

type config struct {
	ns         *ctxstore.Namespace
	useHeader  bool
	headerName string
	echo       bool
	generate   func() string
}

func defaultConfig() *config {
	return &config{
		useHeader:  true,
		headerName: Header,
		generate:   uuid.NewString,
	}
}

// Option configures a Tracer.
type Option func(*config)

// WithUseHeader toggles reading the id from the inbound header.
func WithUseHeader(use bool) Option {
	return func(c *config) { c.useHeader = use }
}

// WithHeaderName sets the inbound header name. Matching is case-insensitive.
func WithHeaderName(name string) Option {
	if name == "" {
		panic("WithHeaderName: name cannot be empty")
	}
	return func(c *config) { c.headerName = name }
}

// WithGenerator replaces the id generator. The generator must return
// non-empty, unique values; uuid.NewString is the default.
func WithGenerator(fn func() string) Option {
	if fn == nil {
		panic("WithGenerator: nil generator")
	}
	return func(c *config) { c.generate = fn }
}

// WithNamespace makes the tracer store ids in ns, for example to share
// scopes with other tracers.
func WithNamespace(ns *ctxstore.Namespace) Option {
	if ns == nil {
		panic("WithNamespace: nil namespace")
	}
	return func(c *config) { c.ns = ns }
}

// WithResponseHeader makes the middleware echo the id in the response
// header named by WithHeaderName. Off by default.
func WithResponseHeader(echo bool) Option {
	return func(c *config) { c.echo = echo }
}

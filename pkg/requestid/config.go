package requestid

// Config holds tracer settings loadable with pkg/config.
type Config struct {
	UseHeader  bool   `env:"REQUEST_ID_USE_HEADER" envDefault:"true"`     // UseHeader honours a caller-supplied id.
	HeaderName string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-Id"` // HeaderName is the inbound header consulted.
	EchoHeader bool   `env:"REQUEST_ID_ECHO_HEADER" envDefault:"false"`   // EchoHeader writes the id back on responses.
}

// DefaultConfig mirrors the env defaults.
func DefaultConfig() Config {
	return Config{UseHeader: true, HeaderName: Header}
}

// NewFromConfig creates a Tracer from cfg. UseHeader and EchoHeader are
// applied as given; an empty HeaderName keeps the default. opts are
// applied last.
func NewFromConfig(cfg Config, opts ...Option) *Tracer {
	configOpts := make([]Option, 0, 3+len(opts))
	configOpts = append(configOpts, WithUseHeader(cfg.UseHeader), WithResponseHeader(cfg.EchoHeader))
	if cfg.HeaderName != "" {
		configOpts = append(configOpts, WithHeaderName(cfg.HeaderName))
	}
	configOpts = append(configOpts, opts...)
	return New(configOpts...)
}

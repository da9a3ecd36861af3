package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one parsed copy per configuration type.
type cache struct {
	mu     sync.Mutex
	values map[string]any
}

var (
	globalCache = &cache{values: make(map[string]any)}

	defaultEnvMu     sync.Mutex
	defaultEnvLoaded bool
)

// Load parses environment variables into v according to its `env` tags.
// Each configuration type is parsed once per process; later calls copy the
// cached value. The default .env file, if present, is loaded before the
// first parse.
//
//	type TracerConfig struct {
//		UseHeader  bool   `env:"REQUEST_ID_USE_HEADER" envDefault:"true"`
//		HeaderName string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-Id"`
//	}
//
//	var cfg TracerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultEnv()

	key := typeName[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}
	return parseLocked(key, v)
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig parses v again and replaces the cached copy.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	loadDefaultEnv()

	key := typeName[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	delete(globalCache.values, key)
	return parseLocked(key, v)
}

// ResetCache drops every cached configuration and forgets that the default
// .env file was loaded.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.mu.Unlock()

	defaultEnvMu.Lock()
	defaultEnvLoaded = false
	defaultEnvMu.Unlock()
}

// LoadEnv loads the given .env files into the process environment, later
// files overriding earlier ones. With no arguments it loads ./.env.
// Variables already present in the environment are overridden.
func LoadEnv(paths ...string) error {
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

func parseLocked[T any](key string, v *T) error {
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	globalCache.values[key] = *v
	return nil
}

func loadDefaultEnv() {
	defaultEnvMu.Lock()
	defer defaultEnvMu.Unlock()
	if defaultEnvLoaded {
		return
	}
	defaultEnvLoaded = true
	// A missing .env file is not an error.
	_ = godotenv.Load()
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}

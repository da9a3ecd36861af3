package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rtracer/pkg/config"
)

type customEnvConfig struct {
	TestString    string   `env:"TEST_CUSTOM_STRING"`
	TestInt       int      `env:"TEST_CUSTOM_INT"`
	TestBool      bool     `env:"TEST_CUSTOM_BOOL"`
	TestArray     []string `env:"TEST_CUSTOM_ARRAY" envSeparator:","`
	TestWithQuote string   `env:"TEST_CUSTOM_WITH_QUOTES"`
	TestEmpty     string   `env:"TEST_CUSTOM_EMPTY"`
	TestPriority  string   `env:"TEST_PRIORITY"`
}

type overrideConfig struct {
	TestUnique   string `env:"TEST_OVERRIDE_UNIQUE"`
	TestMultiEnv string `env:"TEST_MULTIENV_FEATURE"`
}

type tracerEnvConfig struct {
	UseHeader  bool   `env:"REQUEST_ID_USE_HEADER" envDefault:"true"`
	HeaderName string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-Id"`
}

var customKeys = []string{
	"TEST_CUSTOM_STRING", "TEST_CUSTOM_INT", "TEST_CUSTOM_BOOL", "TEST_CUSTOM_ARRAY",
	"TEST_CUSTOM_WITH_QUOTES", "TEST_CUSTOM_EMPTY", "TEST_PRIORITY",
	"TEST_OVERRIDE_UNIQUE", "TEST_MULTIENV_FEATURE",
	"REQUEST_ID_USE_HEADER", "REQUEST_ID_HEADER",
}

func cleanEnv(t *testing.T) {
	t.Helper()
	unset := func() {
		for _, k := range customKeys {
			os.Unsetenv(k)
		}
		config.ResetCache()
	}
	unset()
	t.Cleanup(unset)
}

func TestLoadEnv_CustomPath(t *testing.T) {
	cleanEnv(t)

	require.NoError(t, config.LoadEnv("testdata/.env.custom"))

	var cfg customEnvConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "custom_value", cfg.TestString)
	assert.Equal(t, 1234, cfg.TestInt)
	assert.True(t, cfg.TestBool)
	assert.Equal(t, []string{"item1", "item2", "item3"}, cfg.TestArray)
	assert.Equal(t, "quoted value", cfg.TestWithQuote)
	assert.Empty(t, cfg.TestEmpty)
	assert.Equal(t, "custom_file_value", cfg.TestPriority)
}

func TestLoadEnv_MultiplePaths(t *testing.T) {
	cleanEnv(t)

	require.NoError(t, config.LoadEnv("testdata/.env.custom", "testdata/.env.override"))

	var custom customEnvConfig
	require.NoError(t, config.Load(&custom))
	assert.Equal(t, "override_value", custom.TestString)
	assert.Equal(t, 9999, custom.TestInt)
	assert.Equal(t, "override_value", custom.TestPriority)
	assert.Equal(t, "quoted value", custom.TestWithQuote, "keys only in the first file survive")

	var override overrideConfig
	require.NoError(t, config.Load(&override))
	assert.Equal(t, "unique_to_override", override.TestUnique)
	assert.Equal(t, "enabled", override.TestMultiEnv)
}

func TestLoadEnv_TracerSettings(t *testing.T) {
	cleanEnv(t)

	var defaults tracerEnvConfig
	require.NoError(t, config.Load(&defaults))
	assert.True(t, defaults.UseHeader)
	assert.Equal(t, "X-Request-Id", defaults.HeaderName)

	require.NoError(t, config.LoadEnv("testdata/.env.tracer"))

	var cfg tracerEnvConfig
	require.NoError(t, config.ForceReloadConfig(&cfg))
	assert.False(t, cfg.UseHeader)
	assert.Equal(t, "X-Correlation-Id", cfg.HeaderName)
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv("testdata/non_existent_file.env")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoadEnv(t *testing.T) {
	cleanEnv(t)

	assert.NotPanics(t, func() { config.MustLoadEnv("testdata/.env.custom") })
	assert.Panics(t, func() { config.MustLoadEnv("testdata/non_existent_file.env") })
}

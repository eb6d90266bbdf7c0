package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/numguard/pkg/config"
	"github.com/dmitrymomot/numguard/pkg/numeric"
)

type defaultsConfig struct {
	Name      string `env:"NUMGUARD_TEST_DEFAULT_NAME" envDefault:"numguard"`
	Precision int    `env:"NUMGUARD_TEST_DEFAULT_PRECISION" envDefault:"17"`
	Strict    bool   `env:"NUMGUARD_TEST_DEFAULT_STRICT" envDefault:"true"`
}

type cachedConfig struct {
	Value string `env:"NUMGUARD_TEST_CACHED"`
}

type requiredConfig struct {
	Required string `env:"NUMGUARD_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Name       string `env:"NUMGUARD_TEST_NAME"`
	Precision  int    `env:"NUMGUARD_TEST_PRECISION"`
	Shared     string `env:"NUMGUARD_TEST_SHARED"`
	OnlySecond string `env:"NUMGUARD_TEST_ONLY_SECOND"`
}

type badIntConfig struct {
	Precision int `env:"NUMGUARD_TEST_BAD_INT"`
}

func unsetAfter(t *testing.T, keys ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
		config.ResetCache()
	})
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, defaultsConfig{Name: "numguard", Precision: 17, Strict: true}, cfg)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_CachesPerType(t *testing.T) {
	config.ResetCache()
	unsetAfter(t)

	t.Setenv("NUMGUARD_TEST_CACHED", "first")
	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("NUMGUARD_TEST_CACHED", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	var reloaded cachedConfig
	require.NoError(t, config.ForceReload(&reloaded))
	assert.Equal(t, "second", reloaded.Value)
}

func TestLoad_RequiredMissing(t *testing.T) {
	config.ResetCache()
	unsetAfter(t)
	os.Unsetenv("NUMGUARD_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("NUMGUARD_TEST_REQUIRED", "present")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "present", cfg.Required)
}

func TestLoad_InvalidValue(t *testing.T) {
	config.ResetCache()
	unsetAfter(t)
	t.Setenv("NUMGUARD_TEST_BAD_INT", "many")

	var cfg badIntConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoad_NumericConfig(t *testing.T) {
	config.ResetCache()
	unsetAfter(t)
	t.Setenv("NUMBER_PRECISION", "4")
	t.Setenv("NUMBER_SCALE", "2")
	t.Setenv("NUMBER_ONLY_POSITIVE", "true")

	var cfg numeric.Config
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, numeric.Config{Precision: 4, Scale: 2, OnlyPositive: true}, cfg)

	v, err := numeric.NewFromConfig(cfg)
	require.NoError(t, err)
	assert.True(t, v.IsValid("+1.23"))
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	unsetAfter(t,
		"NUMGUARD_TEST_NAME",
		"NUMGUARD_TEST_PRECISION",
		"NUMGUARD_TEST_SHARED",
		"NUMGUARD_TEST_ONLY_SECOND",
	)
	t.Setenv("NUMGUARD_TEST_NAME", "from_process")

	require.NoError(t, config.LoadEnv("testdata/.env.first", "testdata/.env.second"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_process", cfg.Name)
	assert.Equal(t, 9, cfg.Precision)
	assert.Equal(t, "first", cfg.Shared)
	assert.Equal(t, "quoted value", cfg.OnlySecond)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does_not_exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

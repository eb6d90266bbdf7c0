package main

import (
	"github.com/dmitrymomot/numguard/pkg/config"
	"github.com/dmitrymomot/numguard/pkg/httpserver"
	"github.com/dmitrymomot/numguard/pkg/numeric"
	"github.com/dmitrymomot/numguard/pkg/ratelimiter"
)

type appConfig struct {
	Env             string `env:"APP_ENV" envDefault:"development"`
	Name            string `env:"APP_NAME" envDefault:"numguard"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`

	// TrustedProxyHeaders lists forwarding headers consulted for the client
	// address in serve mode, e.g. "X-Forwarded-For".
	TrustedProxyHeaders []string `env:"TRUSTED_PROXY_HEADERS" envSeparator:","`
	MaxBatch            int      `env:"MAX_BATCH" envDefault:"1000"`
}

type settings struct {
	app     appConfig
	numeric numeric.Config
	http    httpserver.Config

	// rate limiting is disabled when rate.Capacity is 0
	rate ratelimiter.Config
}

// loadSettings reads envFile (when set) and then the process environment.
// Variables already present in the environment take precedence over the
// file. Loading a file re-parses every section so the file's values are not
// hidden by a cached parse.
func loadSettings(envFile string) (settings, error) {
	var s settings

	reload := envFile != ""
	if reload {
		if err := config.LoadEnv(envFile); err != nil {
			return s, err
		}
	}
	if err := loadSection(&s.app, reload); err != nil {
		return s, err
	}
	if err := loadSection(&s.numeric, reload); err != nil {
		return s, err
	}
	if err := loadSection(&s.http, reload); err != nil {
		return s, err
	}
	if err := loadSection(&s.rate, reload); err != nil {
		return s, err
	}
	return s, nil
}

func loadSection[T any](v *T, reload bool) error {
	if reload {
		return config.ForceReload(v)
	}
	return config.Load(v)
}

// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads optional .env files
// into the process environment, with github.com/caarlos0/env/v11, which
// parses the environment into tagged structs. Each configuration type is
// parsed once and cached for the lifetime of the process:
//
//	var rules numeric.Config
//	if err := config.Load(&rules); err != nil {
//	    return err
//	}
//
// Variables already present in the environment always win over values
// read from .env files, and earlier files win over later ones.
//
// ForceReload and ResetCache exist for tests that change the environment
// between loads.
package config

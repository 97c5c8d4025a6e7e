// Package config handles reportdiff configuration loading and merging.
//
// The effective configuration is built from four layers, later layers
// winning: compiled defaults, the JSON config file in the platform config
// directory, REPORTDIFF_* environment variables, and CLI flag overrides.
package config

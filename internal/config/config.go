// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// DefaultNotesURL is the notes endpoint used when nothing else is
	// configured.
	DefaultNotesURL = "http://localhost:8080/memos"

	// DefaultRequestTimeout bounds every outbound request when no timeout is
	// configured.
	DefaultRequestTimeout = 15 * time.Second

	// DefaultLogLevel is the zerolog level used when none is configured.
	DefaultLogLevel = "debug"
)

// StructuredConfig is the raw configuration container. It is populated
// separately from every source and the results are merged by the builder.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the notes service transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Adapter holds settings of the notes service transport.
type Adapter struct {
	// NotesURL is the full URL of the notes collection resource. GET lists
	// notes, POST creates one.
	// Env: ADAPTER_NOTES_URL
	NotesURL string `env:"NOTES_URL"`

	// RequestTimeout is the maximum duration of a single request
	// (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Adapter: Adapter{
			NotesURL:       DefaultNotesURL,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. Returns an error if any source fails to load or the merged
// config is invalid.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

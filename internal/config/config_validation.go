// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate rejects malformed values in the merged [StructuredConfig].
// Required-field checks live in [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.NotesURL != "" {
		if err := validateNotesURL(cfg.Adapter.NotesURL); err != nil {
			return err
		}
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validateNotesURL(cfg.Adapter.NotesURL); err != nil {
		return err
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}

	return nil
}

func validateNotesURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: notes url must use http or https", ErrInvalidAdapterConfigs)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: notes url must include a host", ErrInvalidAdapterConfigs)
	}

	return nil
}

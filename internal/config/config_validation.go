// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-meet-bridge/internal/codec"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] names known
// payload formats and a known log level.
func (cfg *StructuredConfig) validate() error {
	if _, err := codec.ByName(cfg.Bridge.InputFormat); err != nil {
		return fmt.Errorf("%w: input format: %w", ErrInvalidBridgeConfigs, err)
	}

	if _, err := codec.ByName(cfg.Bridge.OutputFormat); err != nil {
		return fmt.Errorf("%w: output format: %w", ErrInvalidBridgeConfigs, err)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec moves bundles in and out of the byte payloads a host bridge
// exchanges: JSON, YAML and CBOR.
//
// Codecs never coerce scalar values. A payload whose "port" is a number
// decodes to a bundle holding that number, and the mismatch surfaces when a
// model reads the key as a string.
package codec

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-meet-bridge/internal/bundle"
)

// Format names accepted by [ByName].
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCBOR = "cbor"
)

//go:generate mockgen -source=codec.go -destination=../mock/codec_mock.go -package=mock

// Codec encodes and decodes values for one payload format.
type Codec interface {
	// Name returns the format identifier used in configuration and logs.
	Name() string
	// Marshal serializes v into bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserializes data into v (must be a pointer).
	Unmarshal(data []byte, v any) error
}

// ByName returns the codec registered for name. Matching is case-insensitive
// and "yml" is accepted as an alias of "yaml".
func ByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatJSON:
		return JSON{}, nil
	case FormatYAML, "yml":
		return YAML{}, nil
	case FormatCBOR:
		return CBOR{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// DecodeBundle unmarshals a payload whose top-level value is a map.
// An empty payload, or one holding only null, yields an empty bundle.
func DecodeBundle(c Codec, data []byte) (bundle.Bundle, error) {
	if len(data) == 0 {
		return bundle.New(), nil
	}

	var v any
	if err := c.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("error decoding %s payload: %w", c.Name(), err)
	}

	var (
		b   bundle.Bundle
		err error
	)
	switch m := v.(type) {
	case nil:
		return bundle.New(), nil
	case map[string]any:
		b, err = bundle.FromMap(m)
	case map[any]any:
		b, err = bundle.FromAnyMap(m)
	default:
		return nil, fmt.Errorf("%w: %s payload holds %T", ErrNotAMap, c.Name(), v)
	}
	if err != nil {
		return nil, fmt.Errorf("error normalizing %s payload: %w", c.Name(), err)
	}

	return b, nil
}

// EncodeBundle marshals b with c. A nil bundle encodes as an empty map.
func EncodeBundle(c Codec, b bundle.Bundle) ([]byte, error) {
	data, err := c.Marshal(b.ToMap())
	if err != nil {
		return nil, fmt.Errorf("error encoding %s payload: %w", c.Name(), err)
	}
	return data, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/MKhiriev/go-meet-bridge/internal/bundle"

// ProxyServerInfo describes the proxy endpoint a conference connects through.
//
// Every field is optional and carried verbatim: values such as Port are not
// parsed or validated here.
type ProxyServerInfo struct {
	// Type is the proxy kind, e.g. "http" or "socks5".
	Type Optional[string]

	Host Optional[string]

	// Port is kept as a string, exactly as the host bridge supplied it.
	Port Optional[string]

	Username Optional[string]
	Password Optional[string]
}

// DecodeProxyServerInfo builds a ProxyServerInfo from b.
// A nil b yields an instance with every field absent.
func DecodeProxyServerInfo(b bundle.Bundle, opts ...Option) (*ProxyServerInfo, error) {
	p := new(ProxyServerInfo)
	if err := p.Decode(b, opts...); err != nil {
		return nil, err
	}
	return p, nil
}

// Decode merges the fields present in b into p. Fields whose keys are absent
// from b keep their current value. On error p is left unchanged.
func (p *ProxyServerInfo) Decode(b bundle.Bundle, _ ...Option) error {
	next := *p
	fields := []struct {
		key string
		dst *Optional[string]
	}{
		{KeyType, &next.Type},
		{KeyHost, &next.Host},
		{KeyPort, &next.Port},
		{KeyUsername, &next.Username},
		{KeyPassword, &next.Password},
	}

	for _, f := range fields {
		if err := readString(b, f.key, f.dst); err != nil {
			return err
		}
	}

	*p = next
	return nil
}

// Encode returns a new bundle holding only the fields that are set.
func (p ProxyServerInfo) Encode(_ ...Option) bundle.Bundle {
	b := bundle.New()
	writeString(b, KeyType, p.Type)
	writeString(b, KeyHost, p.Host)
	writeString(b, KeyPort, p.Port)
	writeString(b, KeyUsername, p.Username)
	writeString(b, KeyPassword, p.Password)
	return b
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-meet-bridge/internal/bundle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// proxyWithMask sets the i-th field of the proxy when bit i of mask is set.
func proxyWithMask(mask int) ProxyServerInfo {
	var p ProxyServerInfo
	fields := []*Optional[string]{&p.Type, &p.Host, &p.Port, &p.Username, &p.Password}
	values := []string{"socks5", "proxy.example.com", "1080", "alice", ""}
	for i, f := range fields {
		if mask&(1<<i) != 0 {
			f.Set(values[i])
		}
	}
	return p
}

func TestProxyServerInfo_RoundTripAllSubsets(t *testing.T) {
	for mask := 0; mask < 1<<5; mask++ {
		p := proxyWithMask(mask)

		got, err := DecodeProxyServerInfo(p.Encode())
		require.NoError(t, err, "mask %05b", mask)
		assert.Equal(t, p, *got, "mask %05b", mask)
	}
}

func TestProxyServerInfo_EncodeIsSparse(t *testing.T) {
	var p ProxyServerInfo
	assert.Equal(t, 0, p.Encode().Len())

	p.Host.Set("proxy.example.com")
	p.Password.Set("")

	assert.Equal(t, bundle.Bundle{
		"host":     "proxy.example.com",
		"password": "",
	}, p.Encode())
}

func TestProxyServerInfo_EncodeAllKeys(t *testing.T) {
	p := ProxyServerInfo{
		Type:     Some("http"),
		Host:     Some("h"),
		Port:     Some("8080"),
		Username: Some("u"),
		Password: Some("p"),
	}

	assert.Equal(t, bundle.Bundle{
		"type":     "http",
		"host":     "h",
		"port":     "8080",
		"username": "u",
		"password": "p",
	}, p.Encode())
}

func TestDecodeProxyServerInfo_AbsentKeysStayAbsent(t *testing.T) {
	p, err := DecodeProxyServerInfo(bundle.Bundle{"port": "not-a-number"})
	require.NoError(t, err)

	assert.Equal(t, Some("not-a-number"), p.Port)
	assert.False(t, p.Type.IsSet())
	assert.False(t, p.Host.IsSet())
	assert.False(t, p.Username.IsSet())
	assert.False(t, p.Password.IsSet())
}

func TestDecodeProxyServerInfo_NilBundle(t *testing.T) {
	p, err := DecodeProxyServerInfo(nil)
	require.NoError(t, err)
	assert.Equal(t, ProxyServerInfo{}, *p)
}

func TestDecodeProxyServerInfo_IgnoresUnknownKeys(t *testing.T) {
	p, err := DecodeProxyServerInfo(bundle.Bundle{"host": "h", "proxy": 42})
	require.NoError(t, err)
	assert.Equal(t, ProxyServerInfo{Host: Some("h")}, *p)
}

func TestProxyServerInfo_DecodeMerges(t *testing.T) {
	p := ProxyServerInfo{Username: Some("kept"), Host: Some("old")}

	require.NoError(t, p.Decode(bundle.Bundle{"host": "new"}))

	assert.Equal(t, Some("kept"), p.Username)
	assert.Equal(t, Some("new"), p.Host)
}

func TestProxyServerInfo_DecodeFailureLeavesFieldsUnchanged(t *testing.T) {
	p := ProxyServerInfo{Host: Some("old")}

	err := p.Decode(bundle.Bundle{"host": "new", "port": 8080})
	require.ErrorIs(t, err, bundle.ErrTypeMismatch)

	assert.Equal(t, ProxyServerInfo{Host: Some("old")}, p)
}

func TestProxyServerInfo_DecodeTypeMismatchIsUnwrapped(t *testing.T) {
	p, err := DecodeProxyServerInfo(bundle.Bundle{"port": 8080})
	require.Error(t, err)
	assert.Nil(t, p)

	var mismatch *bundle.TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Same(t, mismatch, err)
	assert.Equal(t, "port", mismatch.Key)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"testing"

	"github.com/MKhiriev/go-meet-bridge/internal/bundle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBundle() bundle.Bundle {
	return bundle.Bundle{
		"proxyServerInfo": bundle.Bundle{
			"host": "proxy.example.com",
			"port": "8080",
		},
		"remoteVideoInfo": bundle.Bundle{
			"height": "720",
			"width":  "1280",
		},
	}
}

// ── ByName ────────────────────────────────────────────────────────────────────

func TestByName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{" yaml ", FormatYAML},
		{"yml", FormatYAML},
		{"cbor", FormatCBOR},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ByName(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Name())
		})
	}
}

func TestByName_Unknown(t *testing.T) {
	c, err := ByName("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), `"xml"`)
}

// ── DecodeBundle ──────────────────────────────────────────────────────────────

func TestDecodeBundle_SameShapeAcrossFormats(t *testing.T) {
	jsonPayload := []byte(`{
		"proxyServerInfo": {"host": "proxy.example.com", "port": "8080"},
		"remoteVideoInfo": {"height": "720", "width": "1280"}
	}`)
	yamlPayload := []byte(`
proxyServerInfo:
  host: proxy.example.com
  port: "8080"
remoteVideoInfo:
  height: "720"
  width: "1280"
`)
	cborPayload, err := CBOR{}.Marshal(sampleBundle().ToMap())
	require.NoError(t, err)

	for name, tc := range map[string]struct {
		c    Codec
		data []byte
	}{
		"json": {JSON{}, jsonPayload},
		"yaml": {YAML{}, yamlPayload},
		"cbor": {CBOR{}, cborPayload},
	} {
		t.Run(name, func(t *testing.T) {
			b, err := DecodeBundle(tc.c, tc.data)
			require.NoError(t, err)
			assert.Equal(t, sampleBundle(), b)
		})
	}
}

func TestDecodeBundle_Empty(t *testing.T) {
	for _, c := range []Codec{JSON{}, YAML{}, CBOR{}} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := DecodeBundle(c, nil)
			require.NoError(t, err)
			assert.Equal(t, 0, b.Len())
		})
	}

	b, err := DecodeBundle(JSON{}, []byte("null"))
	require.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 0, b.Len())
}

func TestDecodeBundle_NotAMap(t *testing.T) {
	_, err := DecodeBundle(JSON{}, []byte(`["a","b"]`))
	require.ErrorIs(t, err, ErrNotAMap)

	_, err = DecodeBundle(YAML{}, []byte("just a string"))
	require.ErrorIs(t, err, ErrNotAMap)
}

func TestDecodeBundle_Malformed(t *testing.T) {
	_, err := DecodeBundle(JSON{}, []byte(`{"a":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json payload")
}

func TestDecodeBundle_ScalarsNotCoerced(t *testing.T) {
	b, err := DecodeBundle(YAML{}, []byte("proxyServerInfo:\n  port: 8080\n"))
	require.NoError(t, err)

	proxy, err := b.GetBundle("proxyServerInfo")
	require.NoError(t, err)

	_, err = proxy.GetString("port")
	require.ErrorIs(t, err, bundle.ErrTypeMismatch)
}

func TestDecodeBundle_YAMLNonStringKey(t *testing.T) {
	_, err := DecodeBundle(YAML{}, []byte("remoteVideoInfo:\n  1: x\n"))
	require.ErrorIs(t, err, bundle.ErrInvalidKey)
}

// ── EncodeBundle ──────────────────────────────────────────────────────────────

func TestEncodeBundle_JSON(t *testing.T) {
	data, err := EncodeBundle(JSON{}, sampleBundle())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"proxyServerInfo": {"host": "proxy.example.com", "port": "8080"},
		"remoteVideoInfo": {"height": "720", "width": "1280"}
	}`, string(data))
}

func TestEncodeBundle_NilBundle(t *testing.T) {
	data, err := EncodeBundle(JSON{}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, c := range []Codec{JSON{}, YAML{}, CBOR{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := EncodeBundle(c, sampleBundle())
			require.NoError(t, err)

			b, err := DecodeBundle(c, data)
			require.NoError(t, err)
			assert.Equal(t, sampleBundle(), b)
		})
	}
}

func TestCBOR_Deterministic(t *testing.T) {
	first, err := EncodeBundle(CBOR{}, sampleBundle())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := EncodeBundle(CBOR{}, sampleBundle())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

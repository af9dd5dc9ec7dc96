// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── presence ──────────────────────────────────────────────────────────────────

func TestBundle_NilIsEmpty(t *testing.T) {
	var b Bundle

	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Keys())
	assert.False(t, b.ContainsKey("host"))

	s, err := b.GetString("host")
	require.NoError(t, err)
	assert.Empty(t, s)

	nested, err := b.GetBundle("proxyServerInfo")
	require.NoError(t, err)
	assert.Nil(t, nested)
}

func TestBundle_EmptyStringIsPresent(t *testing.T) {
	b := New()
	b.PutString("host", "")

	assert.True(t, b.ContainsKey("host"))
	s, err := b.GetString("host")
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestBundle_KeysSorted(t *testing.T) {
	b := New()
	b.PutString("port", "1")
	b.PutString("host", "h")
	b.PutBundle("a", New())

	assert.Equal(t, []string{"a", "host", "port"}, b.Keys())
}

// ── typed getters ─────────────────────────────────────────────────────────────

func TestGetString_TypeMismatch(t *testing.T) {
	b := Bundle{"port": 8080}

	_, err := b.GetString("port")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	var mismatch *TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "port", mismatch.Key)
	assert.Equal(t, "string", mismatch.Expected)
	assert.Equal(t, "int", mismatch.Actual)
}

func TestGetBundle(t *testing.T) {
	t.Run("nested bundle", func(t *testing.T) {
		inner := Bundle{"host": "h"}
		b := Bundle{"proxyServerInfo": inner}

		got, err := b.GetBundle("proxyServerInfo")
		require.NoError(t, err)
		assert.Equal(t, inner, got)
	})

	t.Run("plain map", func(t *testing.T) {
		b := Bundle{"proxyServerInfo": map[string]any{"host": "h"}}

		got, err := b.GetBundle("proxyServerInfo")
		require.NoError(t, err)
		assert.Equal(t, Bundle{"host": "h"}, got)
	})

	t.Run("string instead of bundle", func(t *testing.T) {
		b := Bundle{"proxyServerInfo": "nope"}

		_, err := b.GetBundle("proxyServerInfo")
		require.ErrorIs(t, err, ErrTypeMismatch)
		assert.Contains(t, err.Error(), `"proxyServerInfo"`)
		assert.Contains(t, err.Error(), "expected bundle, got string")
	})

	t.Run("null value", func(t *testing.T) {
		b := Bundle{"proxyServerInfo": nil}

		_, err := b.GetBundle("proxyServerInfo")
		require.ErrorIs(t, err, ErrTypeMismatch)
		assert.Contains(t, err.Error(), "got null")
	})
}

// ── normalisation ─────────────────────────────────────────────────────────────

func TestFromMap_NestsMaps(t *testing.T) {
	m := map[string]any{
		"proxyServerInfo": map[string]any{"host": "h", "port": "1"},
		"remoteVideoInfo": map[any]any{"height": "720"},
		"flag":            true,
	}

	b, err := FromMap(m)
	require.NoError(t, err)

	proxy, ok := b["proxyServerInfo"].(Bundle)
	require.True(t, ok)
	assert.Equal(t, Bundle{"host": "h", "port": "1"}, proxy)

	video, ok := b["remoteVideoInfo"].(Bundle)
	require.True(t, ok)
	assert.Equal(t, Bundle{"height": "720"}, video)

	assert.Equal(t, true, b["flag"])
}

func TestFromAnyMap_RejectsNonStringKey(t *testing.T) {
	_, err := FromAnyMap(map[any]any{1: "x"})
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestFromMap_NestedInvalidKeyReportsPath(t *testing.T) {
	_, err := FromMap(map[string]any{"remoteVideoInfo": map[any]any{2: "x"}})
	require.ErrorIs(t, err, ErrInvalidKey)
	assert.Contains(t, err.Error(), `"remoteVideoInfo"`)
}

func TestToMap_DeepCopy(t *testing.T) {
	inner := Bundle{"host": "h"}
	b := Bundle{"proxyServerInfo": inner, "x": "y"}

	m := b.ToMap()
	assert.Equal(t, map[string]any{
		"proxyServerInfo": map[string]any{"host": "h"},
		"x":               "y",
	}, m)

	m["proxyServerInfo"].(map[string]any)["host"] = "changed"
	assert.Equal(t, "h", inner["host"])
}

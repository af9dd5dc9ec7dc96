// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"fmt"
	"sort"
)

// Bundle is a string-keyed container whose values are strings, nested
// bundles or, when produced by a codec, other scalars that callers reject
// through the typed getters.
//
// A nil Bundle is a valid, empty, read-only bundle.
type Bundle map[string]any

// New returns an empty, writable Bundle.
func New() Bundle {
	return make(Bundle)
}

// Len returns the number of keys in b.
func (b Bundle) Len() int {
	return len(b)
}

// Keys returns the keys of b in ascending order.
func (b Bundle) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ContainsKey reports whether key is present in b.
func (b Bundle) ContainsKey(key string) bool {
	_, ok := b[key]
	return ok
}

// GetString returns the string stored under key.
//
// An absent key yields "" and a nil error; callers that need to tell absence
// from an empty string check [Bundle.ContainsKey] first.
func (b Bundle) GetString(key string) (string, error) {
	v, ok := b[key]
	if !ok {
		return "", nil
	}

	s, ok := v.(string)
	if !ok {
		return "", &TypeMismatchError{Key: key, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetBundle returns the nested bundle stored under key.
// An absent key yields a nil Bundle and a nil error.
func (b Bundle) GetBundle(key string) (Bundle, error) {
	v, ok := b[key]
	if !ok {
		return nil, nil
	}

	switch nested := v.(type) {
	case Bundle:
		return nested, nil
	case map[string]any:
		return Bundle(nested), nil
	default:
		return nil, &TypeMismatchError{Key: key, Expected: "bundle", Actual: typeName(v)}
	}
}

// PutString stores value under key. b must not be nil.
func (b Bundle) PutString(key, value string) {
	b[key] = value
}

// PutBundle stores value under key. b must not be nil.
func (b Bundle) PutBundle(key string, value Bundle) {
	b[key] = value
}

// FromMap converts a decoded map into a Bundle, turning every nested map into
// a nested Bundle. Scalars are copied as-is; no value is coerced to string.
func FromMap(m map[string]any) (Bundle, error) {
	b := make(Bundle, len(m))
	for k, v := range m {
		nv, err := normalize(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		b[k] = nv
	}
	return b, nil
}

// FromAnyMap is FromMap for decoders that produce interface-keyed maps.
// Every key must be a string.
func FromAnyMap(m map[any]any) (Bundle, error) {
	sm := make(map[string]any, len(m))
	for k, v := range m {
		ks, ok := k.(string)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrInvalidKey, k)
		}
		sm[ks] = v
	}
	return FromMap(sm)
}

func normalize(v any) (any, error) {
	switch nested := v.(type) {
	case Bundle:
		return FromMap(nested)
	case map[string]any:
		return FromMap(nested)
	case map[any]any:
		return FromAnyMap(nested)
	default:
		return v, nil
	}
}

// ToMap returns a deep copy of b as plain nested map[string]any values,
// suitable for handing to a serializer.
func (b Bundle) ToMap() map[string]any {
	m := make(map[string]any, len(b))
	for k, v := range b {
		if nested, ok := v.(Bundle); ok {
			m[k] = nested.ToMap()
			continue
		}
		m[k] = v
	}
	return m
}

package models

import "github.com/MKhiriev/go-meet-bridge/internal/bundle"

// readString copies b[key] into dst when the key is present.
// dst is left untouched when the key is absent. Access errors are returned
// as produced by the bundle.
func readString(b bundle.Bundle, key string, dst *Optional[string]) error {
	if !b.ContainsKey(key) {
		return nil
	}

	v, err := b.GetString(key)
	if err != nil {
		return err
	}
	dst.Set(v)
	return nil
}

// writeString puts src under key when src is present.
func writeString(b bundle.Bundle, key string, src Optional[string]) {
	if v, ok := src.Get(); ok {
		b.PutString(key, v)
	}
}

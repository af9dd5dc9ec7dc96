// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/MKhiriev/go-meet-bridge/internal/bundle"

// RemoteVideoInfo describes the frame size requested for remote video.
// Both dimensions are optional strings and are not parsed here.
type RemoteVideoInfo struct {
	Height Optional[string]
	Width  Optional[string]
}

// DecodeRemoteVideoInfo builds a RemoteVideoInfo from b.
func DecodeRemoteVideoInfo(b bundle.Bundle, opts ...Option) (*RemoteVideoInfo, error) {
	v := new(RemoteVideoInfo)
	if err := v.Decode(b, opts...); err != nil {
		return nil, err
	}
	return v, nil
}

// Decode merges the dimensions present in b into v.
//
// With [WithLegacyWidthKey], a missing "width" is read from "port".
// On error v is left unchanged.
func (v *RemoteVideoInfo) Decode(b bundle.Bundle, opts ...Option) error {
	o := applyOptions(opts)
	next := *v

	if err := readString(b, KeyHeight, &next.Height); err != nil {
		return err
	}

	widthKey := KeyWidth
	if o.legacyWidthKey && !b.ContainsKey(KeyWidth) {
		widthKey = KeyLegacyWidth
	}
	if err := readString(b, widthKey, &next.Width); err != nil {
		return err
	}

	*v = next
	return nil
}

// Encode returns a new bundle holding only the dimensions that are set.
//
// Width is written under "width", or under "port" with [WithLegacyWidthKey].
func (v RemoteVideoInfo) Encode(opts ...Option) bundle.Bundle {
	o := applyOptions(opts)

	b := bundle.New()
	writeString(b, KeyHeight, v.Height)
	if o.legacyWidthKey {
		writeString(b, KeyLegacyWidth, v.Width)
	} else {
		writeString(b, KeyWidth, v.Width)
	}
	return b
}

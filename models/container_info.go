// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/MKhiriev/go-meet-bridge/internal/bundle"

// ContainerInfo is the top-level configuration handed over by the host
// bridge. It owns its two children exclusively; a nil child is absent.
type ContainerInfo struct {
	ProxyServerInfo *ProxyServerInfo
	RemoteVideoInfo *RemoteVideoInfo
}

// NewContainerInfo returns a ContainerInfo owning the given children.
// Either child may be nil.
func NewContainerInfo(proxy *ProxyServerInfo, video *RemoteVideoInfo) *ContainerInfo {
	return &ContainerInfo{
		ProxyServerInfo: proxy,
		RemoteVideoInfo: video,
	}
}

// DecodeContainerInfo builds a ContainerInfo from b.
// A nil or empty b yields an instance with both children absent.
func DecodeContainerInfo(b bundle.Bundle, opts ...Option) (*ContainerInfo, error) {
	c := new(ContainerInfo)
	if err := c.Decode(b, opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// Decode merges the children present in b into c.
//
// A present child key is decoded into the existing child, which is allocated
// when absent. A missing child key leaves that child untouched. Both children
// are decoded before either is stored, so on error c is left unchanged.
func (c *ContainerInfo) Decode(b bundle.Bundle, opts ...Option) error {
	var proxy *ProxyServerInfo
	if b.ContainsKey(KeyProxyServerInfo) {
		nested, err := b.GetBundle(KeyProxyServerInfo)
		if err != nil {
			return err
		}
		proxy = new(ProxyServerInfo)
		if c.ProxyServerInfo != nil {
			*proxy = *c.ProxyServerInfo
		}
		if err = proxy.Decode(nested, opts...); err != nil {
			return err
		}
	}

	var video *RemoteVideoInfo
	if b.ContainsKey(KeyRemoteVideoInfo) {
		nested, err := b.GetBundle(KeyRemoteVideoInfo)
		if err != nil {
			return err
		}
		video = new(RemoteVideoInfo)
		if c.RemoteVideoInfo != nil {
			*video = *c.RemoteVideoInfo
		}
		if err = video.Decode(nested, opts...); err != nil {
			return err
		}
	}

	switch {
	case proxy == nil:
	case c.ProxyServerInfo == nil:
		c.ProxyServerInfo = proxy
	default:
		*c.ProxyServerInfo = *proxy
	}

	switch {
	case video == nil:
	case c.RemoteVideoInfo == nil:
		c.RemoteVideoInfo = video
	default:
		*c.RemoteVideoInfo = *video
	}

	return nil
}

// Encode returns a new bundle with a nested bundle for every present child.
// Options are passed down to the children.
func (c ContainerInfo) Encode(opts ...Option) bundle.Bundle {
	b := bundle.New()

	if c.ProxyServerInfo != nil {
		b.PutBundle(KeyProxyServerInfo, c.ProxyServerInfo.Encode(opts...))
	}

	if c.RemoteVideoInfo != nil {
		b.PutBundle(KeyRemoteVideoInfo, c.RemoteVideoInfo.Encode(opts...))
	}

	return b
}

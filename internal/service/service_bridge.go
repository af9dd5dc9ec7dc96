package service

import (
	"context"

	"github.com/MKhiriev/go-meet-bridge/internal/bundle"
	"github.com/MKhiriev/go-meet-bridge/internal/config"
	"github.com/MKhiriev/go-meet-bridge/models"
)

type bridgeService struct {
	opts []models.Option
}

// NewCoreBridgeService returns the undecorated BridgeService. It applies the
// marshalling options selected in cfg and does nothing else.
func NewCoreBridgeService(cfg config.Bridge) BridgeService {
	var opts []models.Option
	if cfg.LegacyWidthKey {
		opts = append(opts, models.WithLegacyWidthKey())
	}

	return &bridgeService{opts: opts}
}

// DecodeContainerInfo returns model errors unchanged.
func (s *bridgeService) DecodeContainerInfo(_ context.Context, b bundle.Bundle) (*models.ContainerInfo, error) {
	return models.DecodeContainerInfo(b, s.opts...)
}

func (s *bridgeService) EncodeContainerInfo(_ context.Context, info *models.ContainerInfo) (bundle.Bundle, error) {
	if info == nil {
		return nil, ErrNilContainerInfo
	}

	return info.Encode(s.opts...), nil
}

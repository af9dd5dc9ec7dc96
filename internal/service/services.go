package service

import (
	"github.com/MKhiriev/go-meet-bridge/internal/config"
	"github.com/MKhiriev/go-meet-bridge/internal/logger"
)

// NewBridgeService assembles the BridgeService used by the bridge: the core
// service, wrapped by validation in strict mode, wrapped by logging.
func NewBridgeService(cfg config.Bridge, logger *logger.Logger) BridgeService {
	svc := NewCoreBridgeService(cfg)

	if cfg.Strict {
		svc = NewBridgeValidationService().Wrap(svc)
	}

	return NewBridgeLoggingService(logger).Wrap(svc)
}

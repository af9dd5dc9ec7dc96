package service

import (
	"context"

	"github.com/MKhiriev/go-meet-bridge/internal/bundle"
	"github.com/MKhiriev/go-meet-bridge/internal/logger"
	"github.com/MKhiriev/go-meet-bridge/models"
	"github.com/rs/zerolog"
)

// BridgeLoggingService logs every call of the wrapped BridgeService.
// Only key names are logged, never values, so proxy credentials stay out of
// the log.
type BridgeLoggingService struct {
	inner  BridgeService
	logger *logger.Logger
}

func NewBridgeLoggingService(logger *logger.Logger) BridgeServiceWrapper {
	return &BridgeLoggingService{logger: logger}
}

func (s *BridgeLoggingService) DecodeContainerInfo(ctx context.Context, b bundle.Bundle) (*models.ContainerInfo, error) {
	log := s.callLogger(ctx)
	log.Debug().Strs("keys", b.Keys()).Msg("decoding container info")

	info, err := s.inner.DecodeContainerInfo(ctx, b)
	if err != nil {
		log.Err(err).Msg("error decoding container info")
		return nil, err
	}

	log.Info().
		Bool("proxy", info.ProxyServerInfo != nil).
		Bool("remote_video", info.RemoteVideoInfo != nil).
		Msg("container info decoded")
	return info, nil
}

func (s *BridgeLoggingService) EncodeContainerInfo(ctx context.Context, info *models.ContainerInfo) (bundle.Bundle, error) {
	log := s.callLogger(ctx)

	b, err := s.inner.EncodeContainerInfo(ctx, info)
	if err != nil {
		log.Err(err).Msg("error encoding container info")
		return nil, err
	}

	log.Debug().Strs("keys", b.Keys()).Msg("container info encoded")
	return b, nil
}

func (s *BridgeLoggingService) Wrap(inner BridgeService) BridgeService {
	s.inner = inner
	return s
}

// callLogger prefers the call-scoped logger attached to ctx, which carries
// the request id, and falls back to the service logger.
func (s *BridgeLoggingService) callLogger(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}

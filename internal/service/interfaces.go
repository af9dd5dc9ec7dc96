package service

//go:generate mockgen -source=interfaces.go -destination=../mock/bridge_service_mock.go -package=mock -exclude_interfaces=BridgeServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-meet-bridge/internal/bundle"
	"github.com/MKhiriev/go-meet-bridge/models"
)

// BridgeService maps between the host bridge's bundles and the typed
// configuration model.
type BridgeService interface {
	DecodeContainerInfo(ctx context.Context, b bundle.Bundle) (*models.ContainerInfo, error)
	EncodeContainerInfo(ctx context.Context, info *models.ContainerInfo) (bundle.Bundle, error)
}

// BridgeServiceWrapper defines middleware composition for BridgeService.
// Implementations wrap an existing BridgeService to add behavior such as
// logging or validating.
type BridgeServiceWrapper interface {
	Wrap(BridgeService) BridgeService // returns a decorated BridgeService applying additional behavior
}

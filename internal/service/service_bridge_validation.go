package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-meet-bridge/internal/bundle"
	"github.com/MKhiriev/go-meet-bridge/internal/validators"
	"github.com/MKhiriev/go-meet-bridge/models"
)

// BridgeValidationService rejects decoded or to-be-encoded configuration
// that fails host-side validation.
type BridgeValidationService struct {
	inner     BridgeService
	validator validators.Validator
}

func NewBridgeValidationService() BridgeServiceWrapper {
	return &BridgeValidationService{
		validator: validators.NewContainerInfoValidator(),
	}
}

func (v *BridgeValidationService) DecodeContainerInfo(ctx context.Context, b bundle.Bundle) (*models.ContainerInfo, error) {
	info, err := v.inner.DecodeContainerInfo(ctx, b)
	if err != nil {
		return nil, err
	}

	if err = v.validator.Validate(ctx, info); err != nil {
		return nil, fmt.Errorf("%w after decoding: %w", ErrValidation, err)
	}

	return info, nil
}

func (v *BridgeValidationService) EncodeContainerInfo(ctx context.Context, info *models.ContainerInfo) (bundle.Bundle, error) {
	if err := v.validator.Validate(ctx, info); err != nil {
		return nil, fmt.Errorf("%w before encoding: %w", ErrValidation, err)
	}

	return v.inner.EncodeContainerInfo(ctx, info)
}

func (v *BridgeValidationService) Wrap(inner BridgeService) BridgeService {
	v.inner = inner
	return v
}

package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-meet-bridge/models"
)

const (
	FieldProxyServerInfo = models.KeyProxyServerInfo
	FieldRemoteVideoInfo = models.KeyRemoteVideoInfo
)

var allowedProxyTypes = []string{"http", "https", "socks4", "socks5"}

// ContainerInfoValidator checks the fields that are present on a
// ContainerInfo and its children. Absent fields are always valid.
type ContainerInfoValidator struct {
}

func NewContainerInfoValidator() Validator {
	return &ContainerInfoValidator{}
}

func (v *ContainerInfoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ContainerInfo:
		return v.validateContainerInfo(ctx, value, fields...)
	case *models.ContainerInfo:
		if value == nil {
			return nil
		}
		return v.validateContainerInfo(ctx, *value, fields...)

	case models.ProxyServerInfo:
		return v.validateProxyServerInfo(value)
	case *models.ProxyServerInfo:
		if value == nil {
			return nil
		}
		return v.validateProxyServerInfo(*value)

	case models.RemoteVideoInfo:
		return v.validateRemoteVideoInfo(value)
	case *models.RemoteVideoInfo:
		if value == nil {
			return nil
		}
		return v.validateRemoteVideoInfo(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContainerInfoValidator) validateContainerInfo(_ context.Context, c models.ContainerInfo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProxyServerInfo, FieldRemoteVideoInfo}
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldProxyServerInfo:
			if c.ProxyServerInfo != nil {
				if err := v.validateProxyServerInfo(*c.ProxyServerInfo); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", field, err))
				}
			}
		case FieldRemoteVideoInfo:
			if c.RemoteVideoInfo != nil {
				if err := v.validateRemoteVideoInfo(*c.RemoteVideoInfo); err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", field, err))
				}
			}
		default:
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, field))
		}
	}

	return errors.Join(errs...)
}

func (v *ContainerInfoValidator) validateProxyServerInfo(p models.ProxyServerInfo) error {
	var errs []error

	if t, ok := p.Type.Get(); ok && !slices.Contains(allowedProxyTypes, strings.ToLower(t)) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidProxyType, t))
	}

	if h, ok := p.Host.Get(); ok && strings.TrimSpace(h) == "" {
		errs = append(errs, ErrEmptyHost)
	}

	if port, ok := p.Port.Get(); ok {
		n, ok := parseDecimal(port)
		if !ok || n < 1 || n > 65535 {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidPort, port))
		}
	}

	return errors.Join(errs...)
}

func (v *ContainerInfoValidator) validateRemoteVideoInfo(r models.RemoteVideoInfo) error {
	var errs []error

	dims := []struct {
		name  string
		value models.Optional[string]
	}{
		{models.KeyHeight, r.Height},
		{models.KeyWidth, r.Width},
	}
	for _, dim := range dims {
		if s, ok := dim.value.Get(); ok {
			if n, ok := parseDecimal(s); !ok || n < 1 {
				errs = append(errs, fmt.Errorf("%w: %s=%q", ErrInvalidDimension, dim.name, s))
			}
		}
	}

	return errors.Join(errs...)
}

// parseDecimal accepts plain decimal digits only: no sign, no leading zeros.
func parseDecimal(s string) (int, bool) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	return n, err == nil
}

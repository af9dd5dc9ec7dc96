package codec

import (
	"gopkg.in/yaml.v3"
)

// YAML is the YAML codec.
type YAML struct{}

func (YAML) Name() string { return FormatYAML }

func (YAML) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAML) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

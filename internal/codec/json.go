package codec

import (
	gojson "github.com/goccy/go-json"
)

// JSON is the JSON codec. Output is compact; map keys are sorted by the
// encoder.
type JSON struct{}

func (JSON) Name() string { return FormatJSON }

func (JSON) Marshal(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

func (JSON) Unmarshal(data []byte, v any) error {
	return gojson.Unmarshal(data, v)
}

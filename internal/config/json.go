package config

import (
	"fmt"
	"os"

	gojson "github.com/goccy/go-json"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names.
type StructuredJSONConfig struct {
	Bridge struct {
		InputFormat    string `json:"input_format"`
		OutputFormat   string `json:"output_format"`
		InputPath      string `json:"input_path"`
		OutputPath     string `json:"output_path"`
		LegacyWidthKey bool   `json:"legacy_width_key"`
		Strict         bool   `json:"strict"`
	} `json:"bridge,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := gojson.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Bridge: Bridge{
			InputFormat:    jsonCfg.Bridge.InputFormat,
			OutputFormat:   jsonCfg.Bridge.OutputFormat,
			InputPath:      jsonCfg.Bridge.InputPath,
			OutputPath:     jsonCfg.Bridge.OutputPath,
			LegacyWidthKey: jsonCfg.Bridge.LegacyWidthKey,
			Strict:         jsonCfg.Bridge.Strict,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

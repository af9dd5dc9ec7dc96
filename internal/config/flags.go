package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses the bridge command-line flags from args.
//
// Flags:
//
//	-in input file path ("-" for stdin)
//	-out output file path ("-" for stdout)
//	-from input payload format (json, yaml, cbor)
//	-to output payload format (json, yaml, cbor)
//	-legacy-width-key write/read remote video width under "port"
//	-strict validate decoded configuration
//
// Sources are merged by filling zero fields only, so a boolean flag can turn
// an option on but -strict=false cannot turn off BRIDGE_STRICT=true.
//	-log-level minimum log level
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var inputPath, outputPath string
	var inputFormat, outputFormat string
	var legacyWidthKey, strict bool
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("bridge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&inputPath, "in", "", "Input file path (- for stdin)")
	fs.StringVar(&outputPath, "out", "", "Output file path (- for stdout)")
	fs.StringVar(&inputFormat, "from", "", "Input payload format: json, yaml, cbor")
	fs.StringVar(&outputFormat, "to", "", "Output payload format: json, yaml, cbor")
	fs.BoolVar(&legacyWidthKey, "legacy-width-key", false, "Write remote video width under the legacy \"port\" key (cannot switch off BRIDGE_LEGACY_WIDTH_KEY=true)")
	fs.BoolVar(&strict, "strict", false, "Reject configuration that fails validation (cannot switch off BRIDGE_STRICT=true)")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Bridge: Bridge{
			InputFormat:    inputFormat,
			OutputFormat:   outputFormat,
			InputPath:      inputPath,
			OutputPath:     outputPath,
			LegacyWidthKey: legacyWidthKey,
			Strict:         strict,
		},
		Log: Log{
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

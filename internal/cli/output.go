package cli

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputYAML = "yaml"
)

func checkOutput(format string) error {
	switch format {
	case outputText, outputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want %s or %s)", format, outputText, outputYAML)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling as YAML: %w", err)
	}
	return enc.Close()
}

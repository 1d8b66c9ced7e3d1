// Package output renders resolved configuration for the build tooling.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"
)

// Format is an output encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json or yaml)", s)
	}
}

// Encode writes v to w. pretty only affects JSON; YAML is always indented.
func Encode(w io.Writer, v any, f Format, pretty bool) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		if pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case YAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

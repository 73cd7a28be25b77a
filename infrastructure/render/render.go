// Package render turns raw dispatch results into structured text. The
// format is a presentation strategy chosen by the composing layer; every
// renderer preserves all fields of the raw result.
package render

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Renderer serializes one dispatch result, independent of which operation
// produced it.
type Renderer interface {
	Render(v any) ([]byte, error)
}

// Supported output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// New returns the renderer for the given format name.
func New(format string) (Renderer, error) {
	switch format {
	case FormatJSON:
		return JSON{Indent: true}, nil
	case FormatYAML:
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}
}

// JSON renders results as JSON, optionally indented for terminals.
type JSON struct {
	Indent bool
}

func (r JSON) Render(v any) ([]byte, error) {
	if r.Indent {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// YAML renders results as YAML.
type YAML struct{}

func (YAML) Render(v any) ([]byte, error) {
	// yaml.v3 ignores json tags, so round-trip through JSON to keep the
	// wire field names.
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return yaml.Marshal(generic)
}

package store

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var builtinPresets []byte

// ErrUnknownFormat is returned for parameter files that are neither YAML nor TOML.
var ErrUnknownFormat = errors.New("unknown parameter file format")

// Builtin returns the preset table the viewer ships with.
func Builtin() Presets {
	var p Presets
	if err := yaml.Unmarshal(builtinPresets, &p); err != nil {
		panic(fmt.Sprintf("store: embedded presets: %v", err))
	}
	return p.sanitized()
}

// LoadPresets reads a preset table from a .yaml, .yml or .toml file.
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Presets
	if err := decode(path, data, &p); err != nil {
		return nil, fmt.Errorf("decode presets %s: %w", path, err)
	}
	return p.sanitized(), nil
}

func (p Presets) sanitized() Presets {
	for name, cfg := range p {
		cfg = cfg.Sanitized()
		cfg.Texture = ""
		p[name] = cfg
	}
	return p
}

// decode picks the decoder from the file extension.
func decode(path string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	case ".toml":
		return toml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

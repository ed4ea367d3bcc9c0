package household

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath guesses the profile format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported profile extension: %q", filepath.Ext(path))
}

type profiles struct {
	Households []Household `mapstructure:"households"`
}

// LoadProfiles reads the households described in a YAML or JSON file.
func LoadProfiles(path string) ([]Household, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer f.Close()

	return DecodeProfiles(f, format)
}

// DecodeProfiles decodes a document of the form:
//
//	households:
//	  - name: the smiths
//	    state: Texas
//	    diet: {meat: 440, grains: 600}
//
// Unknown keys are rejected. Households without name are named after their position.
func DecodeProfiles(r io.Reader, format Format) ([]Household, error) {
	raw := make(map[string]any)

	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to parse yaml profile: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to parse json profile: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported profile format: %q", format)
	}

	p := new(profiles)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      p,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create profile decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	for i := range p.Households {
		if p.Households[i].Name == "" {
			p.Households[i].Name = fmt.Sprintf("household-%d", i+1)
		}
	}

	return p.Households, nil
}

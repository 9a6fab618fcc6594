package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// LocalPath is where Load looks when no explicit path is given.
var LocalPath = filepath.Join("content", "portfolio.yaml")

// Load reads portfolio content. YAML and JSON are both accepted.
// Search order: path -> ./content/portfolio.yaml -> embedded default
func Load(path string) (*Portfolio, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read content %s: %w", path, err)
		}
		p, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse content %s: %w", path, err)
		}
		return p, nil
	}

	if data, err := os.ReadFile(LocalPath); err == nil {
		if p, err := Parse(data); err == nil {
			return p, nil
		}
	}

	return Default()
}

// Default returns the embedded sample portfolio.
func Default() (*Portfolio, error) {
	p, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded content: %w", err)
	}
	return p, nil
}

// Parse decodes and validates content bytes.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

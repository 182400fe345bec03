package tilecoder

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Displacement scheme names accepted in configuration files.
const (
	SchemeAsymmetric  = "asymmetric"
	SchemeUniform     = "uniform"
	SchemeMultipliers = "multipliers"
	SchemeJitter      = "jitter"
)

// Config is the declarative form of a TileCoder, as read from YAML.
type Config struct {
	Tilings      int                `yaml:"tilings"`
	Dimensions   []DimensionConfig  `yaml:"dimensions"`
	Displacement DisplacementConfig `yaml:"displacement"`
}

// DimensionConfig describes one dimension.
type DimensionConfig struct {
	Tiles int     `yaml:"tiles"`
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
}

// DisplacementConfig selects a displacement strategy.
type DisplacementConfig struct {
	Scheme      string `yaml:"scheme"`      // asymmetric|uniform|multipliers|jitter
	Multipliers []int  `yaml:"multipliers"` // multipliers only
	Seed        int64  `yaml:"seed"`        // jitter only
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML document. Unknown keys are rejected.
// Structural validation is deferred to Build.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	cfg.Displacement.Scheme = strings.ToLower(strings.TrimSpace(cfg.Displacement.Scheme))
	if cfg.Displacement.Scheme == "" {
		cfg.Displacement.Scheme = SchemeAsymmetric
	}
}

// Strategy resolves the configured displacement scheme.
// Returns ErrUnknownScheme for unrecognised names.
func (c DisplacementConfig) Strategy() (DisplacementStrategy, error) {
	switch c.Scheme {
	case "", SchemeAsymmetric:
		return Asymmetric, nil
	case SchemeUniform:
		return Uniform, nil
	case SchemeMultipliers:
		return Multipliers(c.Multipliers...), nil
	case SchemeJitter:
		return Jitter(c.Seed), nil
	default:
		return nil, fmt.Errorf("%q: %w", c.Scheme, ErrUnknownScheme)
	}
}

// Build validates c and constructs the TileCoder it describes.
func (c Config) Build() (*TileCoder, error) {
	s, err := c.Displacement.Strategy()
	if err != nil {
		return nil, err
	}
	dims := make([]int, len(c.Dimensions))
	lims := make([]Limit, len(c.Dimensions))
	for i, d := range c.Dimensions {
		dims[i] = d.Tiles
		lims[i] = Limit{Lower: d.Lower, Upper: d.Upper}
	}
	return New(dims, lims, c.Tilings, WithDisplacement(s))
}

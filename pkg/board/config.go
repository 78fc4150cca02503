package board

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a board definition is inconsistent.
var ErrInvalidConfig = errors.New("invalid board config")

const (
	DefaultSize           = 100
	DefaultDice           = 6
	DefaultMaxRouteLength = 60
)

// Jump is a ladder (From < To) or a snake (From > To).
type Jump struct {
	From int `yaml:"from" mapstructure:"from"`
	To   int `yaml:"to" mapstructure:"to"`
}

// IsLadder reports whether the jump moves forward.
func (j Jump) IsLadder() bool {
	return j.From < j.To
}

// DefaultJumps is the classic board layout.
var DefaultJumps = []Jump{
	{13, 4}, {85, 17}, {95, 67}, {97, 58}, {66, 89},
	{87, 31}, {57, 83}, {91, 25}, {28, 50}, {35, 11},
	{8, 30}, {41, 62}, {81, 43}, {69, 32}, {20, 39},
	{33, 70}, {79, 99}, {23, 76}, {15, 47}, {61, 14},
}

// Config describes a board.
type Config struct {
	Size           int
	Dice           int
	MaxRouteLength int
	Jumps          []Jump
}

// DefaultConfig returns the classic 100-cell board.
func DefaultConfig() Config {
	return Config{
		Size:           DefaultSize,
		Dice:           DefaultDice,
		MaxRouteLength: DefaultMaxRouteLength,
		Jumps:          append([]Jump(nil), DefaultJumps...),
	}
}

// configFile is the YAML layout. Jumps accept either `{from: 13, to: 4}`
// mappings or `[13, 4]` pairs, so they are decoded in a second pass.
type configFile struct {
	Size           int    `yaml:"size"`
	Dice           int    `yaml:"dice"`
	MaxRouteLength int    `yaml:"max_route_length"`
	Jumps          *[]any `yaml:"jumps"`
}

// LoadConfig reads a YAML board definition.
// Missing fields fall back to DefaultConfig; an explicit empty jump list means no jumps.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read board config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML board definition. See LoadConfig.
func ParseConfig(data []byte) (Config, error) {
	var raw configFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse board config: %w", err)
	}

	cfg := DefaultConfig()
	if raw.Size != 0 {
		cfg.Size = raw.Size
	}
	if raw.Dice != 0 {
		cfg.Dice = raw.Dice
	}
	if raw.MaxRouteLength != 0 {
		cfg.MaxRouteLength = raw.MaxRouteLength
	}
	if raw.Jumps != nil {
		cfg.Jumps = make([]Jump, 0, len(*raw.Jumps))
		for i, entry := range *raw.Jumps {
			j, err := decodeJump(entry)
			if err != nil {
				return Config{}, fmt.Errorf("%w: jump #%d: %v", ErrInvalidConfig, i+1, err)
			}
			cfg.Jumps = append(cfg.Jumps, j)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeJump(entry any) (Jump, error) {
	switch v := entry.(type) {
	case []any:
		if len(v) != 2 {
			return Jump{}, fmt.Errorf("expected [from, to], got %d values", len(v))
		}
		from, ok1 := v[0].(int)
		to, ok2 := v[1].(int)
		if !ok1 || !ok2 {
			return Jump{}, fmt.Errorf("expected integer cells, got %v", v)
		}
		return Jump{From: from, To: to}, nil
	case map[string]any:
		var j Jump
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &j,
			ErrorUnused: true,
		})
		if err != nil {
			return Jump{}, err
		}
		if err := dec.Decode(v); err != nil {
			return Jump{}, err
		}
		return j, nil
	}
	return Jump{}, fmt.Errorf("unsupported jump entry %T", entry)
}

// Validate checks that the board is playable.
func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("%w: size must be at least 2, got %d", ErrInvalidConfig, c.Size)
	}
	if c.Dice < 1 {
		return fmt.Errorf("%w: dice must have at least one face, got %d", ErrInvalidConfig, c.Dice)
	}
	if c.MaxRouteLength < 1 {
		return fmt.Errorf("%w: max route length must be positive, got %d", ErrInvalidConfig, c.MaxRouteLength)
	}
	seen := make(map[int]bool, len(c.Jumps))
	for _, j := range c.Jumps {
		switch {
		case j.From < 1 || j.From >= c.Size:
			return fmt.Errorf("%w: jump from %d is outside cells 1..%d", ErrInvalidConfig, j.From, c.Size-1)
		case j.To < 1 || j.To > c.Size:
			return fmt.Errorf("%w: jump to %d is outside cells 1..%d", ErrInvalidConfig, j.To, c.Size)
		case j.From == j.To:
			return fmt.Errorf("%w: jump from %d to itself", ErrInvalidConfig, j.From)
		case seen[j.From]:
			return fmt.Errorf("%w: more than one jump from %d", ErrInvalidConfig, j.From)
		}
		seen[j.From] = true
	}
	return nil
}

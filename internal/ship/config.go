package ship

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"shipgen/internal/core"
)

// ErrInvalidConfig is wrapped by Config.Validate failures.
var ErrInvalidConfig = errors.New("invalid ship config")

// Band describes one carving pass: how many holes to cut and how large each
// side of a hole may be. Both ranges are inclusive.
type Band struct {
	MinAmount int
	MaxAmount int
	MinSize   int
	MaxSize   int
}

func (b Band) String() string {
	return fmt.Sprintf("%d:%d:%d:%d", b.MinAmount, b.MaxAmount, b.MinSize, b.MaxSize)
}

// Holes configures interior hole cutting. Candidates are cells whose torus
// distance is within Threshold of the farthest cell.
type Holes struct {
	Band
	Threshold int
}

// Enabled reports whether any hole can be cut.
func (h Holes) Enabled() bool { return h.MaxAmount > 0 }

func (h Holes) String() string {
	return fmt.Sprintf("%s:%d", h.Band, h.Threshold)
}

// Config controls ship generation.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Cutouts run in order against the hull ring of the blank ship.
	Cutouts []Band
	// Holes are cut from the interior after the first group pruning.
	Holes Holes

	DeadEndPasses int
	RoomPaddingX  int
	RoomPaddingY  int

	// WindowChance is the probability a qualifying wall becomes a window.
	WindowChance float64

	PlayerSpawn core.Point
}

// DefaultConfig returns the reference deployment's settings.
func DefaultConfig() Config {
	return Config{
		Width:  64,
		Height: 40,
		Seed:   1457192532778,
		Cutouts: []Band{
			{MinAmount: 3, MaxAmount: 3, MinSize: 17, MaxSize: 20},
			{MinAmount: 6, MaxAmount: 6, MinSize: 8, MaxSize: 10},
			{MinAmount: 10, MaxAmount: 10, MinSize: 4, MaxSize: 5},
		},
		Holes:         Holes{Band: Band{MinSize: 4, MaxSize: 8}, Threshold: 1},
		DeadEndPasses: 8,
		RoomPaddingX:  20,
		RoomPaddingY:  10,
	}
}

// Validate reports the first setting generation cannot work with.
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return fmt.Errorf("%w: size %dx%d, need at least 3x3", ErrInvalidConfig, c.Width, c.Height)
	}
	for i, b := range c.Cutouts {
		if err := b.validate(); err != nil {
			return fmt.Errorf("%w: cutout %d: %v", ErrInvalidConfig, i, err)
		}
	}
	if c.Holes.Enabled() {
		if err := c.Holes.validate(); err != nil {
			return fmt.Errorf("%w: holes: %v", ErrInvalidConfig, err)
		}
	}
	if c.Holes.Threshold < 0 {
		return fmt.Errorf("%w: holes threshold %d is negative", ErrInvalidConfig, c.Holes.Threshold)
	}
	if c.DeadEndPasses < 0 {
		return fmt.Errorf("%w: dead end passes %d is negative", ErrInvalidConfig, c.DeadEndPasses)
	}
	if c.RoomPaddingX < 0 || c.RoomPaddingY < 0 {
		return fmt.Errorf("%w: room padding %d,%d is negative", ErrInvalidConfig, c.RoomPaddingX, c.RoomPaddingY)
	}
	if c.WindowChance < 0 || c.WindowChance > 1 {
		return fmt.Errorf("%w: window chance %g outside [0,1]", ErrInvalidConfig, c.WindowChance)
	}
	return nil
}

func (b Band) validate() error {
	switch {
	case b.MinAmount < 0 || b.MaxAmount < b.MinAmount:
		return fmt.Errorf("amount range %d..%d", b.MinAmount, b.MaxAmount)
	case b.MinSize < 1 || b.MaxSize < b.MinSize:
		return fmt.Errorf("size range %d..%d", b.MinSize, b.MaxSize)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that do not parse are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["cutouts"]; ok {
		if bands, err := ParseBands(v); err == nil {
			c.Cutouts = bands
		}
	}
	if v, ok := cfg["holes"]; ok {
		if holes, err := ParseHoles(v); err == nil {
			c.Holes = holes
		}
	}
	if v, ok := cfg["dead_end_passes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.DeadEndPasses = parsed
		}
	}
	if v, ok := cfg["room_padding_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.RoomPaddingX = parsed
		}
	}
	if v, ok := cfg["room_padding_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.RoomPaddingY = parsed
		}
	}
	if v, ok := cfg["window_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.WindowChance = parsed
		}
	}
	if v, ok := cfg["spawn_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.PlayerSpawn.X = parsed
		}
	}
	if v, ok := cfg["spawn_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.PlayerSpawn.Y = parsed
		}
	}
	return c
}

// ParseBands reads a comma separated list of min:max:smin:smax bands. An
// empty string yields no bands.
func ParseBands(s string) ([]Band, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	bands := make([]Band, 0, len(parts))
	for _, part := range parts {
		vals, err := parseInts(part, 4)
		if err != nil {
			return nil, err
		}
		b := Band{MinAmount: vals[0], MaxAmount: vals[1], MinSize: vals[2], MaxSize: vals[3]}
		if err := b.validate(); err != nil {
			return nil, fmt.Errorf("band %q: %w", part, err)
		}
		bands = append(bands, b)
	}
	return bands, nil
}

// ParseHoles reads a min:max:smin:smax:threshold hole setting.
func ParseHoles(s string) (Holes, error) {
	vals, err := parseInts(s, 5)
	if err != nil {
		return Holes{}, err
	}
	h := Holes{
		Band:      Band{MinAmount: vals[0], MaxAmount: vals[1], MinSize: vals[2], MaxSize: vals[3]},
		Threshold: vals[4],
	}
	if err := h.validate(); err != nil {
		return Holes{}, fmt.Errorf("holes %q: %w", s, err)
	}
	if h.Threshold < 0 {
		return Holes{}, fmt.Errorf("holes %q: negative threshold", s)
	}
	return h, nil
}

func parseInts(s string, n int) ([]int, error) {
	fields := strings.Split(strings.TrimSpace(s), ":")
	if len(fields) != n {
		return nil, fmt.Errorf("%q: want %d colon separated values, got %d", s, n, len(fields))
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}

func formatBands(bands []Band) string {
	parts := make([]string, len(bands))
	for i, b := range bands {
		parts[i] = b.String()
	}
	return strings.Join(parts, ",")
}

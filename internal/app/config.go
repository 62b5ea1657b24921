package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config holds the command-line settings shared by the ship tools.
type Config struct {
	Scale int
	TPS   int
	// Rate is how many pipeline phases the viewer runs per second.
	Rate int
	Seed int64
	// Overrides are key=value pairs handed to ship.FromMap.
	Overrides KVList
}

// NewConfig returns the defaults used when no flags are given.
func NewConfig() *Config {
	return &Config{Scale: 12, TPS: 60, Rate: 4}
}

// Bind registers the config's flags on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "pipeline phases per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generation seed; 0 keeps the configured one (use -set seed=0 to run seed 0)")
	fs.Var(&c.Overrides, "set", "generator setting in key=value form (repeatable)")
}

// Params returns the overrides as a map, with -seed applied on top when set.
func (c *Config) Params() (map[string]string, error) {
	params, err := c.Overrides.Map()
	if err != nil {
		return nil, err
	}
	if c.Seed != 0 {
		params["seed"] = fmt.Sprint(c.Seed)
	}
	return params, nil
}

// KVList is a repeatable key=value flag.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits each entry at the first '='. Later keys win.
func (l KVList) Map() (map[string]string, error) {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("override %q: want key=value", kv)
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out, nil
}

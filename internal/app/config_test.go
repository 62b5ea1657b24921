package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-scale", "4", "-seed", "9", "-set", "w=32", "-set", "cutouts=1:1:3:4"}))

	assert.Equal(t, 4, cfg.Scale)
	params, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"w": "32", "cutouts": "1:1:3:4", "seed": "9"}, params)
}

func TestZeroSeedFlagKeepsConfiguredSeed(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-seed", "0", "-set", "seed=0"}))

	params, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"seed": "0"}, params)
}

func TestKVListRejectsMalformed(t *testing.T) {
	_, err := KVList{"w32"}.Map()
	assert.Error(t, err)
	_, err = KVList{"=3"}.Map()
	assert.Error(t, err)

	m, err := KVList{"h=1", "h=2"}.Map()
	require.NoError(t, err)
	assert.Equal(t, "2", m["h"])
}

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"hmactors/internal/gamemap"
	"hmactors/internal/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadLayersOverDefault(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "arena.toml"))
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 20, cfg.TickRate, "unset keys keep their default")
	assert.Equal(t, 300, cfg.Ticks)
	assert.Equal(t, "text", cfg.LogFormat)
	require.Len(t, cfg.Arena.Water, 1)
	assert.Equal(t, 30.0, cfg.Arena.Water[0].Depth)
	assert.Equal(t, 4, cfg.Arena.Water[0].X2)
	require.Len(t, cfg.Spawns, 2)
	assert.Equal(t, int16(1), cfg.Spawns[1].Params)
	assert.True(t, cfg.Target.MirrorShield)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "typo.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tick_rat")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"tick rate", func(c *Config) { c.TickRate = 0 }, "tick_rate"},
		{"negative ticks", func(c *Config) { c.Ticks = -1 }, "ticks"},
		{"max actors", func(c *Config) { c.MaxActors = 0 }, "max_actors"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "log_format"},
		{"tiny arena", func(c *Config) { c.Arena.Width = 2 }, "arena"},
		{"water outside", func(c *Config) {
			c.Arena.Water = []Water{{Rect: Rect{0, 0, 2, 2}, Depth: 10}}
		}, "arena.water[0]"},
		{"dry water", func(c *Config) {
			c.Arena.Water = []Water{{Rect: Rect{2, 2, 3, 3}}}
		}, "depth"},
		{"target in wall", func(c *Config) { c.Target.X = 19 }, "target"},
		{"unknown kind", func(c *Config) { c.Spawns = []Spawn{{Kind: "dragon", X: 3, Z: 3}} }, "dragon"},
		{"spawn outside", func(c *Config) { c.Spawns = []Spawn{{Kind: "rat", X: 0, Z: 3}} }, "spawn[0]"},
		{"generate leaves", func(c *Config) { c.Generate.Enabled, c.Generate.MinLeaf = true, 3 }, "min_leaf"},
		{"generate corridor", func(c *Config) { c.Generate.Enabled, c.Generate.Corridor = true, "s" }, "corridor"},
		{"generate with spawns", func(c *Config) {
			c.Generate.Enabled = true
			c.Spawns = []Spawn{{Kind: "rat", X: 3, Z: 3}}
		}, "cannot be combined"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.TickRate = 0
	cfg.LogFormat = "xml"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tick_rate")
	assert.Contains(t, err.Error(), "log_format")
}

func TestParse(t *testing.T) {
	cfg, err := Parse(`
seed = 9
[[spawn]]
kind = "rat"
x = 4
z = 4
`)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, "rat", cfg.Spawns[0].Kind)

	_, err = Parse("seed = ")
	assert.Error(t, err)
}

func TestBuildArena(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "arena.toml"))
	require.NoError(t, err)
	m := cfg.BuildArena()

	assert.Equal(t, 16, m.Width)
	assert.Equal(t, 12, m.Depth)
	assert.Equal(t, gamemap.TileWater, m.At(3, 2).Kind)
	assert.Equal(t, -30.0, m.At(3, 2).Floor)
	assert.True(t, m.At(10, 8).Dynamic)
	assert.Equal(t, gamemap.TileWall, m.At(0, 0).Kind)
	assert.Equal(t, gamemap.TileFloor, m.At(5, 5).Kind)
}

func TestNewScenePlacesSpawns(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "arena.toml"))
	require.NoError(t, err)

	s, err := cfg.NewScene(slog.New(slog.DiscardHandler), scene.Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len(), "caster, platform and its border")
	assert.Equal(t, gamemap.CellCenter(8, 6), s.Target.Pos)
	assert.Equal(t, 32, s.Target.Health.Max)
	assert.True(t, s.Target.MirrorShield)
	assert.Equal(t, uint64(42), s.Seed)
}

func TestNewSceneFailsWhenFull(t *testing.T) {
	cfg := Default()
	cfg.MaxActors = 1
	cfg.Spawns = []Spawn{{Kind: "rat", X: 3, Z: 3}, {Kind: "rat", X: 4, Z: 3}}
	_, err := cfg.NewScene(slog.New(slog.DiscardHandler), scene.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spawn[1]")
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
	_, err = ParseLevel("")
	assert.Error(t, err)
}

func TestValidateEvents(t *testing.T) {
	cfg := Default()
	cfg.Events = []Event{
		{Tick: 1, Action: "dance"},
		{Tick: 2, Action: EventStrike, Source: "laser", X: 3, Z: 3},
		{Tick: 3, Action: EventStrike, Source: "ice_arrow", X: 0, Z: 3},
		{Tick: 4, Action: EventJump},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `event[0]: unknown action "dance"`)
	assert.Contains(t, err.Error(), "laser")
	assert.Contains(t, err.Error(), "event[2]")
	assert.NotContains(t, err.Error(), "event[3]")
}

func TestEventApply(t *testing.T) {
	cfg := Default()
	s, err := cfg.NewScene(slog.New(slog.DiscardHandler), scene.Options{})
	require.NoError(t, err)

	Event{Action: EventShield}.Apply(s)
	assert.True(t, s.Target.MirrorShield)
	Event{Action: EventSong}.Apply(s)
	assert.True(t, s.Shared.SongPlayed)

	s.Tick()
	start := s.Target.Pos
	Event{Action: EventMove, DX: -10}.Apply(s)
	s.Tick()
	assert.InDelta(t, start.X-10, s.Target.Pos.X, 1e-9)

	Event{Action: EventJump}.Apply(s)
	s.Tick()
	assert.False(t, s.Target.Grounded)
}

func TestGeneratedScene(t *testing.T) {
	cfg, err := Parse(`
seed = 5
[arena]
width = 30
depth = 24
[generate]
enabled = true
budget = 6
`)
	require.NoError(t, err)

	m, x, z, spawns := cfg.GenerateLayout()
	assert.True(t, m.IsWalkable(x, z), "target starts on floor")
	require.NotEmpty(t, spawns)
	assert.Equal(t, "jumptoggle", spawns[0].Kind)

	m2, x2, z2, spawns2 := cfg.GenerateLayout()
	assert.Equal(t, m.Tiles, m2.Tiles, "same seed, same layout")
	assert.Equal(t, [2]int{x, z}, [2]int{x2, z2})
	assert.Equal(t, spawns, spawns2)

	s, err := cfg.NewScene(slog.New(slog.DiscardHandler), scene.Options{})
	require.NoError(t, err)
	assert.Equal(t, gamemap.CellCenter(x, z), s.Target.Pos)
	assert.Equal(t, len(spawns)+1, s.Len(), "the platform brings its border")
}

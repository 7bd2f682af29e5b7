// Package config loads sandbox and scenario settings from TOML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"hmactors/internal/actor"
	"hmactors/internal/component"
	"hmactors/internal/gamemap"
	"hmactors/internal/generate"
	"hmactors/internal/scene"

	"github.com/BurntSushi/toml"
)

// Rect is an inclusive cell rectangle.
type Rect struct {
	X1 int `toml:"x1"`
	Z1 int `toml:"z1"`
	X2 int `toml:"x2"`
	Z2 int `toml:"z2"`
}

// Water is a pool of the given depth.
type Water struct {
	Rect
	Depth float64 `toml:"depth"`
}

// Arena describes the tile arena.
type Arena struct {
	Width     int     `toml:"width"`
	Depth     int     `toml:"depth"`
	Water     []Water `toml:"water"`
	Platforms []Rect  `toml:"platform"`
}

// Generate replaces the fixed arena with a procedural temple layout of the
// arena's size. The target starts in the first room.
type Generate struct {
	Enabled     bool    `toml:"enabled"`
	MinLeaf     int     `toml:"min_leaf"`
	MaxLeaf     int     `toml:"max_leaf"`
	MinRoom     int     `toml:"min_room"`
	Corridor    string  `toml:"corridor"`
	WaterChance float64 `toml:"water_chance"`
	WaterDepth  float64 `toml:"water_depth"`
	// Budget is the total guard cost spread over the rooms.
	Budget int `toml:"budget"`
}

// Target describes the stand-in player.
type Target struct {
	X            int  `toml:"x"`
	Z            int  `toml:"z"`
	Health       int  `toml:"health"`
	MirrorShield bool `toml:"mirror_shield"`
	Child        bool `toml:"child"`
}

// Spawn places one actor at a cell.
type Spawn struct {
	Kind   string `toml:"kind"`
	X      int    `toml:"x"`
	Z      int    `toml:"z"`
	Yaw    int16  `toml:"yaw"`
	Params int16  `toml:"params"`
}

// Event is a scripted target input applied at the start of a tick.
type Event struct {
	Tick   uint64  `toml:"tick"`
	Action string  `toml:"action"`
	X      int     `toml:"x"`
	Z      int     `toml:"z"`
	DX     float64 `toml:"dx"`
	DZ     float64 `toml:"dz"`
	Source string  `toml:"source"`
	Radius float64 `toml:"radius"`
}

// Event actions.
const (
	EventMove    = "move"
	EventJump    = "jump"
	EventStrike  = "strike"
	EventSong    = "song"
	EventShield  = "shield"
	EventRelease = "release"
)

// DefaultStrikeRadius is used by strike events without a radius.
const DefaultStrikeRadius = 30.0

// Config is the whole file.
type Config struct {
	Name      string   `toml:"name"`
	Seed      uint64   `toml:"seed"`
	TickRate  int      `toml:"tick_rate"`
	Ticks     int      `toml:"ticks"`
	MaxActors int      `toml:"max_actors"`
	LogLevel  string   `toml:"log_level"`
	LogFormat string   `toml:"log_format"`
	Arena     Arena    `toml:"arena"`
	Generate  Generate `toml:"generate"`
	Target    Target   `toml:"target"`
	Spawns    []Spawn  `toml:"spawn"`
	Events    []Event  `toml:"event"`
}

// Default returns the built-in sandbox: an empty 20×20 arena with the target
// in the middle.
func Default() Config {
	return Config{
		Name:      "sandbox",
		Seed:      1,
		TickRate:  20,
		Ticks:     600,
		MaxActors: scene.DefaultMaxActors,
		LogLevel:  "info",
		LogFormat: "text",
		Arena:     Arena{Width: 20, Depth: 20},
		Generate: Generate{
			MinLeaf:     8,
			MaxLeaf:     16,
			MinRoom:     4,
			Corridor:    "l",
			WaterChance: 0.3,
			WaterDepth:  30,
			Budget:      8,
		},
		Target:    Target{X: 10, Z: 10, Health: 48},
	}
}

// Load decodes path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over Default and validates the result.
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem in c, joined.
func (c Config) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Ticks < 0 {
		errs = append(errs, fmt.Errorf("ticks must not be negative, got %d", c.Ticks))
	}
	if c.MaxActors <= 0 {
		errs = append(errs, fmt.Errorf("max_actors must be positive, got %d", c.MaxActors))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", c.LogFormat))
	}
	if c.Arena.Width < 3 || c.Arena.Depth < 3 {
		errs = append(errs, fmt.Errorf("arena must be at least 3×3, got %d×%d", c.Arena.Width, c.Arena.Depth))
	}
	inside := func(x, z int) bool {
		return x >= 1 && z >= 1 && x < c.Arena.Width-1 && z < c.Arena.Depth-1
	}
	for i, w := range c.Arena.Water {
		if !inside(w.X1, w.Z1) || !inside(w.X2, w.Z2) {
			errs = append(errs, fmt.Errorf("arena.water[%d] lies outside the floor", i))
		}
		if w.Depth <= 0 {
			errs = append(errs, fmt.Errorf("arena.water[%d] depth must be positive", i))
		}
	}
	for i, p := range c.Arena.Platforms {
		if !inside(p.X1, p.Z1) || !inside(p.X2, p.Z2) {
			errs = append(errs, fmt.Errorf("arena.platform[%d] lies outside the floor", i))
		}
	}
	if !inside(c.Target.X, c.Target.Z) {
		errs = append(errs, fmt.Errorf("target (%d, %d) lies outside the floor", c.Target.X, c.Target.Z))
	}
	if c.Target.Health <= 0 {
		errs = append(errs, fmt.Errorf("target health must be positive, got %d", c.Target.Health))
	}
	for i, s := range c.Spawns {
		if _, ok := actor.ParseKind(s.Kind); !ok {
			errs = append(errs, fmt.Errorf("spawn[%d]: unknown kind %q", i, s.Kind))
		}
		if !inside(s.X, s.Z) {
			errs = append(errs, fmt.Errorf("spawn[%d] (%d, %d) lies outside the floor", i, s.X, s.Z))
		}
	}
	if g := c.Generate; g.Enabled {
		if g.MinRoom < 2 || g.MinLeaf < g.MinRoom+2 || g.MaxLeaf < g.MinLeaf {
			errs = append(errs, fmt.Errorf("generate: need 2 <= min_room, min_room+2 <= min_leaf <= max_leaf, got %d, %d, %d", g.MinRoom, g.MinLeaf, g.MaxLeaf))
		}
		if c.Arena.Width < g.MinLeaf+2 || c.Arena.Depth < g.MinLeaf+2 {
			errs = append(errs, fmt.Errorf("generate: arena %d×%d is smaller than one leaf", c.Arena.Width, c.Arena.Depth))
		}
		if g.Corridor != "l" && g.Corridor != "z" {
			errs = append(errs, fmt.Errorf("generate: corridor must be l or z, got %q", g.Corridor))
		}
		if g.WaterChance < 0 || g.WaterChance > 1 {
			errs = append(errs, fmt.Errorf("generate: water_chance must be in [0, 1], got %v", g.WaterChance))
		}
		if g.WaterDepth <= 0 {
			errs = append(errs, fmt.Errorf("generate: water_depth must be positive"))
		}
		if g.Budget < 0 {
			errs = append(errs, fmt.Errorf("generate: budget must not be negative"))
		}
		if len(c.Arena.Water) > 0 || len(c.Arena.Platforms) > 0 || len(c.Spawns) > 0 {
			errs = append(errs, errors.New("generate: cannot be combined with arena.water, arena.platform or spawn"))
		}
	}
	for i, e := range c.Events {
		switch e.Action {
		case EventMove, EventJump, EventSong, EventShield, EventRelease:
		case EventStrike:
			if _, ok := component.ParseAttackSource(e.Source); !ok {
				errs = append(errs, fmt.Errorf("event[%d]: unknown attack source %q", i, e.Source))
			}
			if !inside(e.X, e.Z) {
				errs = append(errs, fmt.Errorf("event[%d] (%d, %d) lies outside the floor", i, e.X, e.Z))
			}
		default:
			errs = append(errs, fmt.Errorf("event[%d]: unknown action %q", i, e.Action))
		}
	}
	return errors.Join(errs...)
}

// Apply performs e on s.
func (e Event) Apply(s *scene.Scene) {
	switch e.Action {
	case EventMove:
		s.MoveTarget(e.DX, e.DZ)
	case EventJump:
		s.Jump()
	case EventStrike:
		src, _ := component.ParseAttackSource(e.Source)
		r := e.Radius
		if r <= 0 {
			r = DefaultStrikeRadius
		}
		pos := gamemap.CellCenter(e.X, e.Z)
		pos.Y = s.Target.Collar().Y
		s.StrikeAt(src, pos, r)
	case EventSong:
		s.PlaySong()
	case EventShield:
		s.Target.MirrorShield = !s.Target.MirrorShield
	case EventRelease:
		s.Release()
	}
}

// ParseLevel maps a log_level value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// BuildArena lays out the configured arena.
func (c Config) BuildArena() *gamemap.GameMap {
	m := gamemap.NewArena(c.Arena.Width, c.Arena.Depth)
	for _, w := range c.Arena.Water {
		m.Fill(gamemap.Rect{X1: w.X1, Z1: w.Z1, X2: w.X2, Z2: w.Z2}, gamemap.MakeWater(w.Depth))
	}
	for _, p := range c.Arena.Platforms {
		m.Fill(gamemap.Rect{X1: p.X1, Z1: p.Z1, X2: p.X2, Z2: p.Z2}, gamemap.MakePlatform())
	}
	return m
}

// GenerateLayout runs the procedural generator with the configured seed and
// returns the arena, the start cell and the guards to spawn.
func (c Config) GenerateLayout() (*gamemap.GameMap, int, int, []Spawn) {
	g := c.Generate
	gc := generate.DefaultConfig(rand.New(rand.NewPCG(c.Seed, 0x7e3a1e)))
	gc.Width, gc.Depth = c.Arena.Width, c.Arena.Depth
	gc.MinLeafSize, gc.MaxLeafSize, gc.MinRoomSize = g.MinLeaf, g.MaxLeaf, g.MinRoom
	gc.WaterChance, gc.WaterDepth = g.WaterChance, g.WaterDepth
	if g.Corridor == "z" {
		gc.CorridorStyle = generate.CorridorZ
	}
	lay := generate.Generate(gc)
	placed := generate.Populate(lay, gc, generate.DefaultGuards, g.Budget)
	spawns := make([]Spawn, len(placed))
	for i, p := range placed {
		spawns[i] = Spawn{Kind: p.Kind.String(), X: p.X, Z: p.Z, Yaw: p.Yaw, Params: p.Params}
	}
	return lay.Map, lay.StartX, lay.StartZ, spawns
}

// BuildTarget places the target on cell (x, z).
func (c Config) BuildTarget(x, z int) *actor.Target {
	t := actor.NewTarget(gamemap.CellCenter(x, z), c.Target.Health)
	t.MirrorShield = c.Target.MirrorShield
	t.Adult = !c.Target.Child
	return t
}

// NewScene builds a scene from c and places every configured spawn. It
// fails if any spawn is refused.
func (c Config) NewScene(logger *slog.Logger, opts scene.Options) (*scene.Scene, error) {
	opts.Seed = c.Seed
	opts.MaxActors = c.MaxActors
	spawns := c.Spawns
	if c.Generate.Enabled {
		var x, z int
		opts.Arena, x, z, spawns = c.GenerateLayout()
		opts.Target = c.BuildTarget(x, z)
	} else {
		opts.Arena = c.BuildArena()
		opts.Target = c.BuildTarget(c.Target.X, c.Target.Z)
	}
	opts.Logger = logger
	s := scene.New(opts)
	for i, sp := range spawns {
		kind, _ := actor.ParseKind(sp.Kind)
		pos := gamemap.CellCenter(sp.X, sp.Z)
		pos.Y = s.Arena.At(sp.X, sp.Z).Floor
		if _, ok := s.SpawnAt(kind, sp.Params, pos, sp.Yaw); !ok {
			return nil, fmt.Errorf("config: spawn[%d] %s refused", i, sp.Kind)
		}
	}
	return s, nil
}

// Package game is the interactive sandbox: a tcell view of a scene driven in
// real time, with keys for moving the target, striking and spawning actors.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hmactors/internal/actor"
	"hmactors/internal/component"
	"hmactors/internal/config"
	"hmactors/internal/factory"
	"hmactors/internal/magic"
	"hmactors/internal/platform"
	"hmactors/internal/render"
	"hmactors/internal/scene"
	"hmactors/internal/vmath"

	"github.com/gdamore/tcell/v2"
)

const (
	moveStep      = 10.0
	swordReach    = 30.0
	swordRadius   = 25.0
	arrowReach    = 120.0
	arrowRadius   = 30.0
	spawnDistance = 120.0
	maxMessages   = 50
	targetGlyph   = "🧝"
)

// Game is the top-level orchestrator.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	scene    *scene.Scene
	cfg      config.Config
	log      *slog.Logger
	messages []string
	paused   bool
	lastHP   int
	dl       render.DrawList
	legend   []render.LegendEntry
}

// New creates a Game on the terminal.
func New(cfg config.Config, logger *slog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, cfg, logger)
}

// NewWithScreen creates a Game on an initialised screen.
func NewWithScreen(screen tcell.Screen, cfg config.Config, logger *slog.Logger) (*Game, error) {
	s, err := cfg.NewScene(logger, scene.Options{})
	if err != nil {
		return nil, err
	}
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, render.DefaultTheme),
		scene:    s,
		cfg:      cfg,
		log:      s.Logger(),
		lastHP:   s.Target.Health.Current,
		legend:   legend(),
	}
	g.addMessage("Move with hjkl or arrows, space jumps, a strikes, i shoots ice, s plays the song.")
	g.addMessage("1-5 spawn caster, ice caster, rat, Pols Voice, platform. p pauses, q quits.")
	return g, nil
}

// legend lists every spawnable kind with its profile glyph.
func legend() []render.LegendEntry {
	var out []render.LegendEntry
	for _, k := range factory.Kinds() {
		p, _ := factory.Lookup(k)
		out = append(out, render.LegendEntry{Name: k.String(), Glyph: p.Renderable.Glyph, FG: p.Renderable.FGColor})
	}
	return out
}

// Scene exposes the running scene.
func (g *Game) Scene() *scene.Scene { return g.scene }

// Run is the main loop. It returns when the player quits or ctx ends, and
// appends the run log on the way out.
func (g *Game) Run(ctx context.Context) {
	defer g.screen.Fini()
	defer func() { scene.SaveRunLog(g.scene.RunLog(g.cfg.Name), g.log) }()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.TickRate))
	defer ticker.Stop()

	g.draw()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.renderer.Resize()
				g.screen.Sync()
			case *tcell.EventKey:
				if !g.processAction(keyToAction(ev)) {
					return
				}
			}
		case <-ticker.C:
			if !g.paused {
				g.step()
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done
// is closed.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// step advances the scene one tick and redraws.
func (g *Game) step() {
	g.scene.Tick()
	t := g.scene.Target
	if t.Health.Current < g.lastHP {
		g.addMessage(fmt.Sprintf("You take %d damage.", g.lastHP-t.Health.Current))
	} else if t.Health.Current > g.lastHP {
		g.addMessage(fmt.Sprintf("You recover %d health.", t.Health.Current-g.lastHP))
	}
	g.lastHP = t.Health.Current
	g.draw()
}

func (g *Game) draw() {
	t := g.scene.Target
	g.dl.Reset()
	g.scene.Draw(&g.dl)
	g.dl.Add(render.Sprite{Pos: t.Pos, Glyph: targetGlyph, FG: tcell.ColorWhite, Scale: 0.01, Alpha: 255, Order: 4})
	g.renderer.CenterOn(t.Pos)
	g.renderer.DrawFrame(g.scene.Arena, &g.dl)
	g.renderer.DrawHUD(render.Status{
		Tick:       g.scene.Ticks(),
		Health:     t.Health.Current,
		MaxHealth:  t.Health.Max,
		Actors:     g.scene.Len(),
		Grabbed:    t.Grabbed,
		Invincible: t.InvincibilityTimer,
		Shield:     t.MirrorShield,
		Paused:     g.paused,
		Legend:     g.legend,
	}, g.messages)
}

// processAction applies one command. It returns false on quit.
func (g *Game) processAction(action Action) bool {
	s := g.scene
	t := s.Target
	switch action {
	case ActionQuit:
		return false
	case ActionJump:
		s.Jump()
	case ActionSword:
		s.StrikeAt(component.SourceKokiriSword, g.ahead(swordReach, t.Collar().Y), swordRadius)
	case ActionIceArrow:
		s.StrikeAt(component.SourceIceArrow, g.ahead(arrowReach, t.Collar().Y), arrowRadius)
		g.addMessage("You loose an ice arrow.")
	case ActionSong:
		s.PlaySong()
		g.addMessage("You play the song.")
	case ActionShield:
		t.MirrorShield = !t.MirrorShield
		if t.MirrorShield {
			g.addMessage("You raise the mirror shield.")
		} else {
			g.addMessage("You put the mirror shield away.")
		}
	case ActionRelease:
		if t.Grabbed {
			s.Release()
			g.addMessage("You wrench yourself free.")
		}
	case ActionPause:
		g.paused = !g.paused
	case ActionStep:
		if g.paused {
			g.step()
			return true
		}
	case ActionSpawnCaster:
		g.spawn(actor.KindCaster, magic.CasterFire)
	case ActionSpawnIceCaster:
		g.spawn(actor.KindCaster, magic.CasterIce)
	case ActionSpawnRat:
		g.spawn(actor.KindRat, 0)
	case ActionSpawnPolsVoice:
		g.spawn(actor.KindPolsVoice, 0)
	case ActionSpawnPlatform:
		g.spawn(actor.KindJumptoggle, int16(platform.VariantStartRed))
	default:
		dx, dz := actionToDelta(action)
		if dx != 0 || dz != 0 {
			s.MoveTarget(float64(dx)*moveStep, float64(dz)*moveStep)
		}
	}
	g.draw()
	return true
}

// ahead is the point reach units in front of the target at height y.
func (g *Game) ahead(reach, y float64) vmath.Vec3f {
	t := g.scene.Target
	p := t.Pos.Add(vmath.Vec3f{X: vmath.Sins(t.Yaw) * reach, Z: vmath.Coss(t.Yaw) * reach})
	p.Y = y
	return p
}

func (g *Game) spawn(kind actor.Kind, params int16) {
	pos := g.ahead(spawnDistance, g.scene.Target.Pos.Y)
	yaw := g.scene.Target.Yaw + vmath.HalfTurn
	if _, ok := g.scene.SpawnAt(kind, params, pos, yaw); !ok {
		g.addMessage(fmt.Sprintf("Cannot spawn %s here.", kind))
		return
	}
	g.addMessage(fmt.Sprintf("A %s appears.", kind))
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

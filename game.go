package main

import (
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/dungeon/config"
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"github.com/milk9111/dungeon/ecs/entity"
	"github.com/milk9111/dungeon/ecs/system"
	"github.com/milk9111/dungeon/event"
	"github.com/milk9111/dungeon/hud"
	"github.com/milk9111/dungeon/levels"
	"github.com/milk9111/dungeon/prefabs"
)

type Game struct {
	cfg *config.Config
	log *zap.Logger

	world   *ecs.World
	events  *event.Channel
	physics *system.PhysicsSystem
	scripts *system.WanderScripts
	random  system.DirectionChooser
	catalog *prefabs.Catalog
	level   *levels.Level
	spawned *entity.Spawned

	hud     *hud.Model
	hudUI   *HUDUI
	pauseUI *ebitenui.UI
	paused  bool
	quit    bool

	watcher *prefabs.Watcher
	frame   time.Duration
}

func NewGame(cfg *config.Config, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		cfg:     cfg,
		log:     log,
		scripts: system.NewWanderScripts(nil),
		random:  system.NewRandomDirections(cfg.Game.Seed),
		frame:   time.Second / time.Duration(cfg.Game.TPS),
	}

	lvl, err := levels.LoadLevelFromFS(cfg.Game.Level)
	if err != nil {
		return nil, err
	}
	g.level = lvl

	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		return nil, err
	}
	g.catalog = catalog

	if err := g.reset(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if cfg.Game.WatchPrefabs {
		w, err := prefabs.NewWatcher(log, prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Warn("prefabs: watch disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// reset builds a fresh session: world, channel, HUD and the spawned level.
// Entities are built from the current catalog, so prefab reloads show up on
// the next restart.
func (g *Game) reset() error {
	world := ecs.NewWorld()
	events := event.NewChannel()
	physics := system.NewPhysicsSystem()

	world.AddSystem(NewInputSystem())
	world.AddSystem(physics)
	world.AddSystem(system.NewCollisionDispatcher(events, physics, g.log))
	world.AddSystem(system.NewPlayerHealthSystem())
	world.AddSystem(system.NewPlayerControllerSystem(events, g.log))
	world.AddSystem(system.NewEnemyWanderSystem(g.random, g.scripts, g.log))
	world.AddSystem(system.NewAnimationSystem())

	spawned, err := entity.SpawnLevel(world, g.level, g.catalog, g.log)
	if err != nil {
		return err
	}

	maxHearts := 3
	if h, ok := ecs.Get(world, spawned.Player, component.HealthComponent.Kind()); ok {
		maxHearts = h.Initial
	}
	if g.hud != nil {
		g.hud.Detach()
	}
	model := hud.NewModel(maxHearts)
	model.Attach(events)

	g.world, g.events, g.physics = world, events, physics
	g.spawned = spawned
	g.hud = model
	g.hudUI = NewHUDUI(model)
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	g.hudUI.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.playerDead() {
		if err := g.reset(); err != nil {
			return err
		}
	}

	g.world.Update(g.frame)
	return nil
}

func (g *Game) playerDead() bool {
	h, ok := ecs.Get(g.world, g.spawned.Player, component.HealthComponent.Kind())
	return ok && h.Dead()
}

// applyReloads drains pending prefab changes without blocking. New values
// apply to entities spawned afterwards; scripts apply on the next reroll.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			catalog, err := prefabs.LoadCatalog()
			if err != nil {
				g.log.Warn("prefabs: reload failed", zap.String("file", name), zap.Error(err))
				continue
			}
			g.catalog = catalog
			g.scripts.Reset()
			g.log.Info("prefabs: reloaded", zap.String("file", name))
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.world, g.cfg.Game.Debug)
	g.hudUI.Draw(screen)
	if g.playerDead() {
		drawBanner(screen, "You fainted. Press R to restart.")
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width / g.cfg.Window.Scale, g.cfg.Window.Height / g.cfg.Window.Scale
}

// Close releases the HUD subscriptions and the prefab watcher.
func (g *Game) Close() {
	if g.hud != nil {
		g.hud.Detach()
	}
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("prefabs: close watcher", zap.Error(err))
		}
		g.watcher = nil
	}
}

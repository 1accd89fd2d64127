package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/milk9111/paperplane/combat"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
	"github.com/milk9111/paperplane/ecs/entity"
	"github.com/milk9111/paperplane/ecs/system"
	"github.com/milk9111/paperplane/prefabs"
	"github.com/milk9111/paperplane/terrain"
)

const defaultTickRate = 60

// ErrSceneChange is returned by Update once a scene load has been requested.
var ErrSceneChange = errors.New("scene change requested")

// Summary describes a finished run.
type Summary struct {
	Ticks         uint64
	Elapsed       float64
	Kills         int
	Despawned     int
	Scene         string
	Chunks        int
	Health        int
	Destroyed     bool
	PartsReleased int
	GameOver      bool
}

type Game struct {
	world   *ecs.World
	kills   *combat.KillCounter
	scripts *entity.ScriptCache
	terrain *system.TerrainSystem
	systems *ecs.Scheduler
	player  ecs.Entity

	dt        float64
	reloads   chan prefabs.Change
	despawned int
	scene     string
}

// NewGame assembles a headless run from game.yaml.
func NewGame(seed int64) (*Game, error) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, fmt.Errorf("load game spec: %w", err)
	}
	tspec, err := prefabs.LoadTerrainSpec()
	if err != nil {
		return nil, fmt.Errorf("load terrain spec: %w", err)
	}

	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	hud, err := entity.NewHUD(w)
	if err != nil {
		return nil, fmt.Errorf("create hud: %w", err)
	}
	kills := combat.NewKillCounter(hud)
	scripts := entity.NewScriptCache()
	target := &entity.PlayerTarget{World: w}
	env := &entity.Env{
		Kills:   kills,
		Target:  target,
		Scenes:  &entity.SceneRequester{World: w},
		Health:  hud,
		Scripts: scripts,
		Rand:    rand.New(rand.NewSource(seed)),
	}

	player, err := entity.BuildPlayer(w, spec.Player, env)
	if err != nil {
		return nil, fmt.Errorf("build player: %w", err)
	}
	if spec.Spawner != "" {
		if _, err := entity.BuildEntity(w, spec.Spawner, env); err != nil {
			return nil, fmt.Errorf("build spawner: %w", err)
		}
	}

	streamer, err := terrain.NewStreamer(terrainConfig(tspec), &entity.WorldSpawner{World: w, Env: env})
	if err != nil {
		return nil, fmt.Errorf("create streamer: %w", err)
	}
	pw.SetGround(streamer.HeightAt)
	terrainSys := system.NewTerrainSystem(streamer, target)

	// Agents steer before physics integrates them; hits resolve after both.
	systems := ecs.NewScheduler(
		system.NewInputSystem(&autopilot{}),
		system.NewPilotSystem(env),
		terrainSys,
		system.NewSpawnerSystem(env),
		system.NewAISystem(),
		system.NewPhysicsSystem(spec.Gravity),
		system.NewProjectileSystem(env),
		system.NewContactSystem(),
		system.NewHealthSystem(env),
		system.NewTTLSystem(),
		system.NewEffectSystem(),
	)
	w.AddSystem(systems)

	rate := spec.TickRate
	if rate <= 0 {
		rate = defaultTickRate
	}

	return &Game{
		world:   w,
		kills:   kills,
		scripts: scripts,
		terrain: terrainSys,
		systems: systems,
		player:  player,
		dt:      1 / rate,
		reloads: make(chan prefabs.Change, 16),
	}, nil
}

// Reload queues a prefab or script change. It is safe to call from the
// watcher goroutine; changes are applied between ticks.
func (g *Game) Reload(ch prefabs.Change) {
	select {
	case g.reloads <- ch:
	default:
		slog.Warn("game: reload queue full, dropping change", "name", ch.Name)
	}
}

// Update advances the world by one fixed tick.
func (g *Game) Update() error {
	g.applyReloads()
	g.world.Tick(g.dt)

	for _, evt := range g.world.Events().Drain() {
		switch evt.Kind {
		case ecs.EventAgentKilled:
			slog.Info("agent shot down", "agent", evt.Data, "kills", g.kills.Count())
		case ecs.EventAgentDespawned:
			g.despawned++
			slog.Debug("agent despawned", "entity", evt.Entity, "reason", evt.Data)
		case ecs.EventPlayerDamaged:
			slog.Debug("player hit", "health", evt.Data)
		case ecs.EventPlayerDestroyed:
			slog.Info("player destroyed", "tick", g.world.Ticks())
		case ecs.EventGameOver:
			slog.Info("game over", "kills", g.kills.Count())
		}
	}

	if e, ok := ecs.First(g.world, component.SceneRequestComponent.Kind()); ok {
		req, _ := ecs.Get(g.world, e, component.SceneRequestComponent.Kind())
		g.scene = req.Scene
		ecs.DestroyEntity(g.world, e)
		return ErrSceneChange
	}
	return nil
}

// Run ticks until a scene change, maxTicks (0 means no limit) or ctx is
// done. With realtime set ticks are paced to the wall clock.
func (g *Game) Run(ctx context.Context, maxTicks uint64, realtime bool) (Summary, error) {
	var pace <-chan time.Time
	if realtime {
		ticker := time.NewTicker(time.Duration(g.dt * float64(time.Second)))
		defer ticker.Stop()
		pace = ticker.C
	}

	for maxTicks == 0 || g.world.Ticks() < maxTicks {
		if pace != nil {
			select {
			case <-ctx.Done():
				return g.Summary(), ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return g.Summary(), err
		}

		if err := g.Update(); err != nil {
			if errors.Is(err, ErrSceneChange) {
				return g.Summary(), nil
			}
			return g.Summary(), err
		}
	}
	return g.Summary(), nil
}

func (g *Game) Summary() Summary {
	s := Summary{
		Ticks:     g.world.Ticks(),
		Elapsed:   g.world.Elapsed(),
		Kills:     g.kills.Count(),
		Despawned: g.despawned,
		Scene:     g.scene,
		Chunks:    g.terrain.Streamer().Len(),
	}
	if ph, ok := ecs.Get(g.world, g.player, component.PlayerHealthComponent.Kind()); ok {
		s.Health = ph.Health.Current()
		s.Destroyed = ph.Health.Destroyed()
		s.PartsReleased = ph.Breakup.Released()
		s.GameOver = ph.GameOver.Fired()
	}
	return s
}

func (g *Game) applyReloads() {
	for {
		select {
		case ch := <-g.reloads:
			g.apply(ch)
		default:
			return
		}
	}
}

func (g *Game) apply(ch prefabs.Change) {
	switch {
	case ch.Script:
		g.scripts.Invalidate(ch.Name)
		slog.Info("game: script reloaded", "script", ch.Name)
	case prefabs.SchemaFor(ch.Name) == "terrain.schema.json":
		spec, err := prefabs.LoadTerrainSpec()
		if err != nil {
			slog.Error("game: terrain reload failed", "err", err)
			return
		}
		if err := g.terrain.Streamer().SetConfig(terrainConfig(spec)); err != nil {
			slog.Error("game: terrain config rejected", "err", err)
			return
		}
		slog.Info("game: terrain reloaded")
	case prefabs.SchemaFor(ch.Name) == "game.schema.json":
		slog.Warn("game: game.yaml changes apply on the next run")
	default:
		entity.Invalidate(ch.Name)
		slog.Info("game: prefab reloaded", "prefab", ch.Name)
	}
}

func terrainConfig(spec *prefabs.TerrainSpec) terrain.Config {
	d := spec.Decorations
	return terrain.Config{
		ChunkSize:       spec.ChunkSize,
		ViewRadius:      spec.ViewRadius,
		BaseHeight:      spec.BaseHeight,
		TerrainPrefab:   spec.TerrainPrefab,
		Decorations:     d.Prefabs,
		DecorationCount: d.Count,
		MinSeparation:   d.MinSeparation,
		MaxAttempts:     d.MaxAttempts,
		ScaleMin:        d.ScaleMin,
		ScaleMax:        d.ScaleMax,
		HeightOffset:    d.HeightOffset,
		HeightJitter:    d.HeightJitter,
		FaceDown:        d.FaceDown,
		Seed:            spec.Seed,
	}
}

// autopilot weaves gently and holds the trigger so a headless run sees
// combat.
type autopilot struct{}

var _ system.Axis = (*autopilot)(nil)

func (a *autopilot) Read(w *ecs.World) component.Input {
	t := w.Elapsed()
	return component.Input{
		Yaw:   0.6 * math.Sin(t*0.4),
		Pitch: 0.3 * math.Sin(t*0.25),
		Fire:  true,
	}
}

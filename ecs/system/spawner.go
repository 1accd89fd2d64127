package system

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/ecs/component"
	"github.com/milk9111/paperplane/ecs/entity"
)

// SpawnerSystem tops up the agent population around the player. Every
// Interval each spawner adds one agent while fewer than MaxEnemies are alive.
type SpawnerSystem struct {
	env *entity.Env
}

func NewSpawnerSystem(env *entity.Env) *SpawnerSystem {
	return &SpawnerSystem{env: env}
}

func (s *SpawnerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.DeltaTime()

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	center := pt.Position

	for _, e := range w.Query(component.EnemySpawnerComponent.Kind()) {
		sp, ok := ecs.Get(w, e, component.EnemySpawnerComponent.Kind())
		if !ok || sp.Prefab == "" || sp.Interval <= 0 {
			continue
		}
		sp.Elapsed += dt
		for sp.Elapsed >= sp.Interval {
			sp.Elapsed -= sp.Interval
			if ecs.Count(w, component.AgentTagComponent.Kind()) >= sp.MaxEnemies {
				continue
			}
			s.spawn(w, sp, center)
		}
	}
}

func (s *SpawnerSystem) spawn(w *ecs.World, sp *component.EnemySpawner, center mgl64.Vec3) {
	rng := s.env.Rand
	dx, dz := 0.0, 0.0
	if rng != nil && sp.Range > 0 {
		dx = (rng.Float64()*2 - 1) * sp.Range
		dz = (rng.Float64()*2 - 1) * sp.Range
	}
	pos := center.Add(mgl64.Vec3{dx, sp.Altitude, dz})

	e, err := entity.SpawnAgent(w, sp.Prefab, pos, mgl64.QuatIdent(), s.env)
	if err != nil {
		slog.Error("spawner: spawn agent failed", "prefab", sp.Prefab, "err", err)
		return
	}
	sp.Spawned++
	slog.Debug("spawner: agent spawned", "entity", e, "pos", pos, "total", sp.Spawned)
}

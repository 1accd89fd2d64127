package system

import (
	"github.com/milk9111/paperplane/ecs"
	"github.com/milk9111/paperplane/terrain"
)

// TerrainSystem keeps the chunk window centred on the reference.
type TerrainSystem struct {
	streamer *terrain.Streamer
	ref      terrain.Reference
	last     terrain.Stats
}

func NewTerrainSystem(streamer *terrain.Streamer, ref terrain.Reference) *TerrainSystem {
	return &TerrainSystem{streamer: streamer, ref: ref}
}

func (s *TerrainSystem) Update(w *ecs.World) {
	if s == nil || s.streamer == nil || w == nil {
		return
	}
	s.last = s.streamer.Tick(s.ref)
}

// Stats returns the result of the latest update.
func (s *TerrainSystem) Stats() terrain.Stats {
	return s.last
}

func (s *TerrainSystem) Streamer() *terrain.Streamer {
	return s.streamer
}

// Package terrain streams a square window of fixed-size terrain chunks around
// a moving reference point and dresses each new chunk with decorations.
package terrain

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Coord is a chunk's integer grid coordinate on the XZ plane.
type Coord struct {
	X int
	Z int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Z)
}

// Handle identifies a world object created through a Spawner.
type Handle uint64

// Reference supplies the tracked position. ok is false while no reference
// is available.
type Reference interface {
	Position() (pos mgl64.Vec3, ok bool)
}

//go:generate go tool mockgen -destination=./mocks/spawner_mock.go -package=mocks . Spawner

// Spawner creates and destroys world objects on behalf of the streamer.
type Spawner interface {
	Spawn(prefab string, pos mgl64.Vec3, rot mgl64.Quat, scale float64) (Handle, error)
	Destroy(h Handle)
}

// Chunk is one loaded terrain cell.
type Chunk struct {
	Coord       Coord
	Origin      mgl64.Vec3
	Terrain     Handle
	Decorations []Handle
	Placements  []Placement
}

// Stats summarises the work done by one update.
type Stats struct {
	Spawned int
	Evicted int
	Loaded  int
}

// Streamer owns the chunk registry. It is not safe for concurrent use; the
// host calls it once per tick.
type Streamer struct {
	cfg     Config
	spawner Spawner
	chunks  map[Coord]*Chunk
	center  Coord
	hasTick bool
}

// NewStreamer validates cfg and returns an empty streamer.
func NewStreamer(cfg Config, spawner Spawner) (*Streamer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if spawner == nil {
		return nil, fmt.Errorf("terrain: nil spawner")
	}
	return &Streamer{
		cfg:     cfg,
		spawner: spawner,
		chunks:  make(map[Coord]*Chunk),
	}, nil
}

// Config returns the active configuration.
func (s *Streamer) Config() Config {
	return s.cfg
}

// SetConfig swaps tuning between ticks. Loaded chunks keep their decorations;
// a changed chunk size or view radius takes effect on the next update.
func (s *Streamer) SetConfig(cfg Config) error {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.ChunkSize != s.cfg.ChunkSize {
		s.Clear()
	}
	s.cfg = cfg
	return nil
}

// CoordOf maps a world position to the chunk coordinate containing it.
func (s *Streamer) CoordOf(pos mgl64.Vec3) Coord {
	return Coord{
		X: int(math.Round(pos.X() / s.cfg.ChunkSize)),
		Z: int(math.Round(pos.Z() / s.cfg.ChunkSize)),
	}
}

// Tick reads the reference and streams around it. A missing reference makes
// the tick a no-op.
func (s *Streamer) Tick(ref Reference) Stats {
	if ref == nil {
		slog.Warn("terrain: no reference assigned, skipping tick")
		return Stats{Loaded: len(s.chunks)}
	}
	pos, ok := ref.Position()
	if !ok {
		slog.Warn("terrain: reference position unavailable, skipping tick")
		return Stats{Loaded: len(s.chunks)}
	}
	return s.Update(pos)
}

// Update spawns every window coordinate missing from the registry, then
// evicts every registered chunk outside the window.
func (s *Streamer) Update(pos mgl64.Vec3) Stats {
	center := s.CoordOf(pos)
	v := s.cfg.ViewRadius
	var st Stats

	for dz := -v; dz <= v; dz++ {
		for dx := -v; dx <= v; dx++ {
			c := Coord{X: center.X + dx, Z: center.Z + dz}
			if _, ok := s.chunks[c]; ok {
				continue
			}
			if s.spawnChunk(c) {
				st.Spawned++
			}
		}
	}

	for c := range s.chunks {
		if s.inWindow(center, c) {
			continue
		}
		s.evict(c)
		st.Evicted++
	}

	if !s.hasTick || center != s.center {
		slog.Debug("terrain: window moved", "center", center, "spawned", st.Spawned, "evicted", st.Evicted)
	}
	s.center = center
	s.hasTick = true
	st.Loaded = len(s.chunks)
	return st
}

func (s *Streamer) inWindow(center, c Coord) bool {
	v := s.cfg.ViewRadius
	return abs(c.X-center.X) <= v && abs(c.Z-center.Z) <= v
}

func (s *Streamer) spawnChunk(c Coord) bool {
	origin := mgl64.Vec3{float64(c.X) * s.cfg.ChunkSize, s.cfg.BaseHeight, float64(c.Z) * s.cfg.ChunkSize}
	h, err := s.spawner.Spawn(s.cfg.TerrainPrefab, origin, mgl64.QuatIdent(), 1)
	if err != nil {
		slog.Error("terrain: spawn chunk failed", "coord", c, "err", err)
		return false
	}
	chunk := &Chunk{Coord: c, Origin: origin, Terrain: h}
	s.chunks[c] = chunk
	s.decorate(chunk)
	return true
}

func (s *Streamer) decorate(chunk *Chunk) {
	if s.cfg.DecorationCount <= 0 || len(s.cfg.Decorations) == 0 {
		return
	}
	placements := Place(s.cfg, chunkRNG(s.cfg.Seed, chunk.Coord), chunk.Origin)
	rot := mgl64.QuatIdent()
	if s.cfg.FaceDown {
		rot = faceDown
	}
	for _, p := range placements {
		h, err := s.spawner.Spawn(p.Prefab, p.Position, rot, p.Scale)
		if err != nil {
			slog.Warn("terrain: spawn decoration failed", "coord", chunk.Coord, "prefab", p.Prefab, "err", err)
			continue
		}
		chunk.Decorations = append(chunk.Decorations, h)
		chunk.Placements = append(chunk.Placements, p)
	}
}

func (s *Streamer) evict(c Coord) {
	chunk, ok := s.chunks[c]
	if !ok {
		return
	}
	for _, h := range chunk.Decorations {
		s.spawner.Destroy(h)
	}
	s.spawner.Destroy(chunk.Terrain)
	delete(s.chunks, c)
}

// Clear releases every loaded chunk.
func (s *Streamer) Clear() {
	for c := range s.chunks {
		s.evict(c)
	}
	s.hasTick = false
}

// Len returns the number of loaded chunks.
func (s *Streamer) Len() int {
	return len(s.chunks)
}

// Chunk returns the loaded chunk at c.
func (s *Streamer) Chunk(c Coord) (*Chunk, bool) {
	chunk, ok := s.chunks[c]
	return chunk, ok
}

// Coords lists loaded coordinates ordered by Z then X.
func (s *Streamer) Coords() []Coord {
	out := make([]Coord, 0, len(s.chunks))
	for c := range s.chunks {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return out[i].X < out[j].X
	})
	return out
}

// HeightAt returns the terrain base height under (x, z) when the chunk there
// is loaded.
func (s *Streamer) HeightAt(x, z float64) (float64, bool) {
	c := s.CoordOf(mgl64.Vec3{x, 0, z})
	chunk, ok := s.chunks[c]
	if !ok {
		return 0, false
	}
	return chunk.Origin.Y(), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

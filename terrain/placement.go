package terrain

import (
	"encoding/binary"
	"hash/fnv"
	"log/slog"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// faceDown turns a decoration upside down about the X axis.
var faceDown = mgl64.QuatRotate(math.Pi, mgl64.Vec3{1, 0, 0})

// Placement is one accepted decoration slot.
type Placement struct {
	Local    mgl64.Vec2
	Position mgl64.Vec3
	Prefab   string
	Scale    float64
}

// Place picks up to cfg.DecorationCount decoration placements for a chunk
// whose centre is origin. Every accepted placement is at least
// cfg.MinSeparation away (on the XZ plane) from every other one; slots that
// cannot satisfy this within cfg.MaxAttempts samples are skipped.
func Place(cfg Config, rng *rand.Rand, origin mgl64.Vec3) []Placement {
	if cfg.DecorationCount <= 0 || len(cfg.Decorations) == 0 || rng == nil {
		return nil
	}
	half := cfg.ChunkSize / 2
	accepted := make([]Placement, 0, cfg.DecorationCount)

	for slot := 0; slot < cfg.DecorationCount; slot++ {
		placed := false
		for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
			local := mgl64.Vec2{
				-half + rng.Float64()*cfg.ChunkSize,
				-half + rng.Float64()*cfg.ChunkSize,
			}
			if !separated(local, accepted, cfg.MinSeparation) {
				continue
			}
			height := cfg.HeightOffset
			if cfg.HeightJitter > 0 {
				height += rng.Float64() * cfg.HeightJitter
			}
			accepted = append(accepted, Placement{
				Local:    local,
				Position: origin.Add(mgl64.Vec3{local.X(), height, local.Y()}),
				Prefab:   cfg.Decorations[rng.Intn(len(cfg.Decorations))],
				Scale:    cfg.ScaleMin + rng.Float64()*(cfg.ScaleMax-cfg.ScaleMin),
			})
			placed = true
			break
		}
		if !placed {
			slog.Warn("terrain: decoration slot skipped", "slot", slot, "attempts", cfg.MaxAttempts, "min_separation", cfg.MinSeparation)
		}
	}
	return accepted
}

func separated(p mgl64.Vec2, accepted []Placement, minSep float64) bool {
	for _, a := range accepted {
		if a.Local.Sub(p).Len() < minSep {
			return false
		}
	}
	return true
}

// chunkRNG derives a deterministic RNG for a chunk from the world seed and
// its coordinate.
func chunkRNG(seed int64, c Coord) *rand.Rand {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(c.X)))
	h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(c.Z)))
	h.Write(buf[:])
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

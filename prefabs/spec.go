// Package prefabs loads the YAML tuning and entity definitions, validates
// them against their JSON schemas and watches them for edits.
package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSpec wraps every schema or decode failure.
var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// LoadSpec reads filename, validates it against its schema and decodes it
// into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return DecodeSpec[T](filename, data)
}

// DecodeSpec validates data as the named prefab and decodes it into T.
func DecodeSpec[T any](filename string, data []byte) (T, error) {
	var zero T
	if err := Validate(filename, data); err != nil {
		return zero, err
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("%w: unmarshal %s: %v", ErrInvalidSpec, filename, err)
	}

	return spec, nil
}

// TerrainSpec tunes the world streamer.
type TerrainSpec struct {
	ChunkSize     float64 `yaml:"chunk_size"`
	ViewRadius    int     `yaml:"view_radius"`
	BaseHeight    float64 `yaml:"base_height"`
	TerrainPrefab string  `yaml:"terrain_prefab"`
	Seed          int64   `yaml:"seed"`

	Decorations DecorationSpec `yaml:"decorations"`
}

type DecorationSpec struct {
	Prefabs       []string `yaml:"prefabs"`
	Count         int      `yaml:"count"`
	MinSeparation float64  `yaml:"min_separation"`
	MaxAttempts   int      `yaml:"max_attempts"`
	ScaleMin      float64  `yaml:"scale_min"`
	ScaleMax      float64  `yaml:"scale_max"`
	HeightOffset  float64  `yaml:"height_offset"`
	HeightJitter  float64  `yaml:"height_jitter"`
	FaceDown      bool     `yaml:"face_down"`
}

func LoadTerrainSpec() (*TerrainSpec, error) {
	spec, err := LoadSpec[TerrainSpec]("terrain.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// GameSpec names the prefabs a run is assembled from.
type GameSpec struct {
	Player     string  `yaml:"player"`
	Spawner    string  `yaml:"spawner"`
	Projectile string  `yaml:"projectile"`
	TickRate   float64 `yaml:"tick_rate"`
	Gravity    float64 `yaml:"gravity"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

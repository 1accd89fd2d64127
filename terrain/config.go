package terrain

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("terrain: invalid config")

// Config tunes streaming and decoration placement.
type Config struct {
	ChunkSize     float64
	ViewRadius    int
	BaseHeight    float64
	TerrainPrefab string

	Decorations     []string
	DecorationCount int
	MinSeparation   float64
	MaxAttempts     int
	ScaleMin        float64
	ScaleMax        float64
	HeightOffset    float64
	HeightJitter    float64
	FaceDown        bool

	Seed int64
}

const defaultMaxAttempts = 10

// DefaultConfig mirrors the shipped terrain prefab.
func DefaultConfig() Config {
	return Config{
		ChunkSize:       1000,
		ViewRadius:      2,
		TerrainPrefab:   "ground",
		Decorations:     []string{"cube", "pyramid", "pillar"},
		DecorationCount: 10,
		MinSeparation:   120,
		MaxAttempts:     defaultMaxAttempts,
		ScaleMin:        1,
		ScaleMax:        10,
		HeightJitter:    5,
	}
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = defaultMaxAttempts
	}
	if c.ScaleMin == 0 && c.ScaleMax == 0 {
		c.ScaleMin, c.ScaleMax = 1, 1
	}
	return c
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.ChunkSize <= 0:
		return fmt.Errorf("%w: chunk size %v must be positive", ErrInvalidConfig, c.ChunkSize)
	case c.ViewRadius < 0:
		return fmt.Errorf("%w: view radius %d must not be negative", ErrInvalidConfig, c.ViewRadius)
	case c.DecorationCount < 0:
		return fmt.Errorf("%w: decoration count %d must not be negative", ErrInvalidConfig, c.DecorationCount)
	case c.MinSeparation < 0:
		return fmt.Errorf("%w: min separation %v must not be negative", ErrInvalidConfig, c.MinSeparation)
	case c.MaxAttempts < 0:
		return fmt.Errorf("%w: max attempts %d must not be negative", ErrInvalidConfig, c.MaxAttempts)
	case c.ScaleMin <= 0 || c.ScaleMax < c.ScaleMin:
		return fmt.Errorf("%w: scale range [%v, %v]", ErrInvalidConfig, c.ScaleMin, c.ScaleMax)
	case c.HeightJitter < 0:
		return fmt.Errorf("%w: height jitter %v must not be negative", ErrInvalidConfig, c.HeightJitter)
	}
	return nil
}

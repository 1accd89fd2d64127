package component

import "github.com/milk9111/paperplane/terrain"

// TerrainChunk marks the ground entity of a streamed chunk.
type TerrainChunk struct {
	Coord terrain.Coord
}

var TerrainChunkComponent = NewComponent[TerrainChunk]()

// Decoration is scenery placed on a chunk by the streamer.
type Decoration struct {
	Prefab string
}

var DecorationComponent = NewComponent[Decoration]()


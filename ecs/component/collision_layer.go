package component

import "github.com/milk9111/paperplane/ai"

// CollisionLayer declares which query layer an entity's collider belongs to
// and which layers its own sweeps test against.
type CollisionLayer struct {
	// Category is the layer this entity's collider is indexed under.
	Category ai.Layer `json:"category,omitempty"`
	// Mask selects the layers this entity collides with. Zero means all.
	Mask ai.Layer `json:"mask,omitempty"`
}

func (l CollisionLayer) Collides(other ai.Layer) bool {
	mask := l.Mask
	if mask == ai.LayerNone {
		mask = ai.LayerAll
	}
	return mask&other != 0
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()

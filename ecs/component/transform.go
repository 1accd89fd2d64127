package component

import "github.com/go-gl/mathgl/mgl64"

// Transform places an entity in the world. Y is up and an identity rotation
// faces +Z.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    float64
}

var TransformComponent = NewComponent[Transform]()

package ecs

import (
	"errors"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/paperplane/ai"
)

var ErrAlreadyRegistered = errors.New("ecs: entity already has a physics shape")

const (
	planarEpsilon = 1e-9
	allCategories = ^uint(0)
)

// GroundFunc returns the ground height under (x, z), if known.
type GroundFunc func(x, z float64) (float64, bool)

type physicsEntry struct {
	body       *cp.Body
	shape      *cp.Shape
	y          float64
	halfHeight float64
	radius     float64
	center     cp.Vector
	layer      ai.Layer
	static     bool
}

// PhysicsWorld indexes colliders in a Chipmunk space laid out on the XZ
// plane. Every collider is an upright cylinder: a circle in the space plus a
// height band kept alongside it. Bodies are moved by the host, never stepped
// by Chipmunk.
type PhysicsWorld struct {
	space   *cp.Space
	ground  GroundFunc
	entries map[Entity]*physicsEntry

	shapeToEntity map[*cp.Shape]Entity
}

var _ ai.Physics = (*PhysicsWorld)(nil)

// NewPhysicsWorld creates an empty index.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	return &PhysicsWorld{
		space:         space,
		entries:       make(map[Entity]*physicsEntry),
		shapeToEntity: make(map[*cp.Shape]Entity),
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// SetGround installs the ground height source used for LayerTerrain queries.
func (pw *PhysicsWorld) SetGround(fn GroundFunc) {
	if pw == nil {
		return
	}
	pw.ground = fn
}

// GroundAt returns the ground height under (x, z).
func (pw *PhysicsWorld) GroundAt(x, z float64) (float64, bool) {
	if pw == nil || pw.ground == nil {
		return 0, false
	}
	return pw.ground(x, z)
}

// AddStatic registers a collider that never moves.
func (pw *PhysicsWorld) AddStatic(e Entity, pos mgl64.Vec3, radius, halfHeight float64, layer ai.Layer) error {
	if pw == nil {
		return nil
	}
	if _, ok := pw.entries[e]; ok {
		return ErrAlreadyRegistered
	}
	shape := cp.NewCircle(pw.space.StaticBody, radius, planar(pos))
	pw.attach(e, shape, &physicsEntry{
		body:       pw.space.StaticBody,
		shape:      shape,
		y:          pos.Y(),
		halfHeight: halfHeight,
		radius:     radius,
		center:     planar(pos),
		layer:      layer,
		static:     true,
	})
	return nil
}

// AddKinematic registers a collider the host moves with Move.
func (pw *PhysicsWorld) AddKinematic(e Entity, pos mgl64.Vec3, radius, halfHeight float64, layer ai.Layer) error {
	if pw == nil {
		return nil
	}
	if _, ok := pw.entries[e]; ok {
		return ErrAlreadyRegistered
	}
	body := cp.NewKinematicBody()
	body.SetPosition(planar(pos))
	pw.space.AddBody(body)

	shape := cp.NewCircle(body, radius, cp.Vector{})
	pw.attach(e, shape, &physicsEntry{
		body:       body,
		shape:      shape,
		y:          pos.Y(),
		halfHeight: halfHeight,
		radius:     radius,
		layer:      layer,
	})
	return nil
}

func (pw *PhysicsWorld) attach(e Entity, shape *cp.Shape, entry *physicsEntry) {
	shape.SetFilter(cp.ShapeFilter{Categories: uint(entry.layer), Mask: allCategories})
	shape.SetSensor(true)
	pw.space.AddShape(shape)
	pw.entries[e] = entry
	pw.shapeToEntity[shape] = e
}

// Move updates a kinematic collider's position.
func (pw *PhysicsWorld) Move(e Entity, pos mgl64.Vec3) {
	if pw == nil {
		return
	}
	entry, ok := pw.entries[e]
	if !ok || entry.static {
		return
	}
	entry.y = pos.Y()
	entry.body.SetPosition(planar(pos))
	// The space is never stepped, so re-inserting the shape is what
	// refreshes its cached bounds in the index.
	pw.space.RemoveShape(entry.shape)
	pw.space.AddShape(entry.shape)
}

// Remove drops e's collider. It is safe to call for unregistered entities.
func (pw *PhysicsWorld) Remove(e Entity) {
	if pw == nil {
		return
	}
	entry, ok := pw.entries[e]
	if !ok {
		return
	}
	delete(pw.entries, e)
	delete(pw.shapeToEntity, entry.shape)
	pw.space.RemoveShape(entry.shape)
	if !entry.static {
		pw.space.RemoveBody(entry.body)
	}
}

func (pw *PhysicsWorld) Has(e Entity) bool {
	if pw == nil {
		return false
	}
	_, ok := pw.entries[e]
	return ok
}

func (pw *PhysicsWorld) Len() int {
	if pw == nil {
		return 0
	}
	return len(pw.entries)
}

// Raycast returns the nearest collider or ground hit along dir within
// maxDist whose layer is in mask.
func (pw *PhysicsWorld) Raycast(origin, dir mgl64.Vec3, maxDist float64, mask ai.Layer) (ai.Hit, bool) {
	return pw.Sweep(origin, dir, maxDist, 0, mask, 0)
}

// Sweep is Raycast for a sphere of the given radius, ignoring exclude.
func (pw *PhysicsWorld) Sweep(origin, dir mgl64.Vec3, maxDist, radius float64, mask ai.Layer, exclude Entity) (ai.Hit, bool) {
	if pw == nil || maxDist <= 0 {
		return ai.Hit{}, false
	}
	l := dir.Len()
	if l < planarEpsilon {
		return ai.Hit{}, false
	}
	dir = dir.Mul(1 / l)
	end := origin.Add(dir.Mul(maxDist))

	best := ai.Hit{Distance: math.Inf(1)}
	found := false
	consider := func(h ai.Hit) {
		if h.Distance < best.Distance {
			best = h
			found = true
		}
	}

	start, stop := planar(origin), planar(end)
	filter := cp.ShapeFilter{Categories: allCategories, Mask: uint(mask)}

	if start.Distance(stop) < planarEpsilon {
		// Vertical ray: everything whose footprint contains the origin.
		pw.circleQuery(start, radius, filter, func(shape *cp.Shape, _ float64) {
			e, entry := pw.lookup(shape)
			if entry == nil || e == exclude {
				return
			}
			if h, ok := verticalHit(origin, dir, maxDist, radius, entry); ok {
				h.ID = uint64(e)
				consider(h)
			}
		})
	} else {
		pw.space.SegmentQuery(start, stop, radius, filter, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, _ interface{}) {
			e, entry := pw.lookup(shape)
			if entry == nil || e == exclude {
				return
			}
			p := origin.Add(dir.Mul(maxDist * alpha))
			if math.Abs(p.Y()-entry.y) > entry.halfHeight+radius {
				return
			}
			n := mgl64.Vec3{normal.X, 0, normal.Y}
			if n.LenSqr() < planarEpsilon {
				n = dir.Mul(-1)
			}
			consider(ai.Hit{Distance: maxDist * alpha, Point: p, Normal: n.Normalize(), ID: uint64(e)})
		}, nil)
	}

	if mask&ai.LayerTerrain != 0 {
		if h, ok := pw.groundHit(origin, dir, maxDist, radius); ok {
			consider(h)
		}
	}
	return best, found
}

func verticalHit(origin, dir mgl64.Vec3, maxDist, radius float64, entry *physicsEntry) (ai.Hit, bool) {
	top, bottom := entry.y+entry.halfHeight+radius, entry.y-entry.halfHeight-radius
	oy := origin.Y()
	var d float64
	switch {
	case oy >= bottom && oy <= top:
		d = 0
	case dir.Y() < 0 && oy > top:
		d = (oy - top) / -dir.Y()
	case dir.Y() > 0 && oy < bottom:
		d = (bottom - oy) / dir.Y()
	default:
		return ai.Hit{}, false
	}
	if d > maxDist {
		return ai.Hit{}, false
	}
	n := mgl64.Vec3{0, 1, 0}
	if dir.Y() > 0 {
		n = mgl64.Vec3{0, -1, 0}
	}
	return ai.Hit{Distance: d, Point: origin.Add(dir.Mul(d)), Normal: n}, true
}

// groundHit steps along the ray in chunks and intersects the flat ground
// under each sample.
func (pw *PhysicsWorld) groundHit(origin, dir mgl64.Vec3, maxDist, radius float64) (ai.Hit, bool) {
	if pw.ground == nil {
		return ai.Hit{}, false
	}
	const steps = 8
	for i := 0; i <= steps; i++ {
		d := maxDist * float64(i) / steps
		p := origin.Add(dir.Mul(d))
		h, ok := pw.ground(p.X(), p.Z())
		if !ok {
			continue
		}
		floor := h + radius
		if origin.Y() <= floor {
			return ai.Hit{Distance: 0, Point: mgl64.Vec3{origin.X(), h, origin.Z()}, Normal: mgl64.Vec3{0, 1, 0}}, true
		}
		if dir.Y() >= 0 {
			continue
		}
		t := (origin.Y() - floor) / -dir.Y()
		if t <= maxDist && t <= d+maxDist/steps {
			hp := origin.Add(dir.Mul(t))
			return ai.Hit{Distance: t, Point: mgl64.Vec3{hp.X(), h, hp.Z()}, Normal: mgl64.Vec3{0, 1, 0}}, true
		}
	}
	return ai.Hit{}, false
}

// OverlapSphere returns colliders in mask intersecting the sphere, nearest
// first.
func (pw *PhysicsWorld) OverlapSphere(center mgl64.Vec3, radius float64, mask ai.Layer) []ai.Collider {
	if pw == nil || radius < 0 {
		return nil
	}
	type found struct {
		c    ai.Collider
		dist float64
	}
	var hits []found
	filter := cp.ShapeFilter{Categories: allCategories, Mask: uint(mask)}
	pw.circleQuery(planar(center), radius, filter, func(shape *cp.Shape, distance float64) {
		e, entry := pw.lookup(shape)
		if entry == nil {
			return
		}
		if math.Abs(center.Y()-entry.y) > entry.halfHeight+radius {
			return
		}
		pos := pw.position(entry)
		hits = append(hits, found{c: ai.Collider{ID: uint64(e), Position: pos}, dist: distance})
	})

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].c.ID < hits[j].c.ID
	})
	out := make([]ai.Collider, len(hits))
	for i, h := range hits {
		out[i] = h.c
	}
	return out
}

// circleQuery calls fn for every shape within radius of p with its signed
// distance, negative when p is inside the shape.
func (pw *PhysicsWorld) circleQuery(p cp.Vector, radius float64, filter cp.ShapeFilter, fn func(shape *cp.Shape, distance float64)) {
	pw.space.BBQuery(cp.NewBBForCircle(p, radius), filter, func(shape *cp.Shape, _ interface{}) {
		info := shape.PointQuery(p)
		if info.Distance > radius {
			return
		}
		fn(shape, info.Distance)
	}, nil)
}

func (pw *PhysicsWorld) lookup(shape *cp.Shape) (Entity, *physicsEntry) {
	e, ok := pw.shapeToEntity[shape]
	if !ok {
		return 0, nil
	}
	return e, pw.entries[e]
}

func (pw *PhysicsWorld) position(entry *physicsEntry) mgl64.Vec3 {
	c := entry.center
	if !entry.static {
		c = entry.body.Position()
	}
	return mgl64.Vec3{c.X, entry.y, c.Y}
}

func planar(p mgl64.Vec3) cp.Vector {
	return cp.Vector{X: p.X(), Y: p.Z()}
}

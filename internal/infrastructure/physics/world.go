// Package physics owns the Chipmunk space: the player's rigid body, level
// walls, object colliders and trigger volumes. Contacts involving the player
// are turned into events that the game drains after each fixed step.
package physics

import (
	"maps"
	"math"
	"slices"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/keeper/internal/domain/entity"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeWall
	collisionTypeSolid
	collisionTypeBody
	collisionTypeTrigger
)

// EventType identifies a contact event
type EventType int

const (
	CollisionEnter EventType = iota
	TriggerEnter
	TriggerExit
)

// Event is a contact between the player and something else
type Event struct {
	Type  EventType
	Other entity.ObjectID
	Layer entity.Layer
	// RelativeVelocity is the other body's velocity as seen from the player
	RelativeVelocity entity.Vec2
}

// Config sizes the world
type Config struct {
	Damping      float64 // fraction of velocity kept per second
	PlayerRadius float64
	PlayerMass   float64
}

type shapeInfo struct {
	id    entity.ObjectID
	layer entity.Layer
}

type objectShapes struct {
	body    *cp.Body
	solid   *cp.Shape // nil for trigger-only objects
	trigger *cp.Shape
	added   bool
}

// World wraps a cp.Space
type World struct {
	space  *cp.Space
	player *cp.Body

	objects     map[entity.ObjectID]*objectShapes
	bodies      map[entity.ObjectID]*cp.Body
	overlapping map[entity.ObjectID]struct{}
	events      []Event
}

// NewWorld creates a space with a player body at spawn and walls for every solid tile
func NewWorld(level *entity.Level, cfg Config) *World {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetDamping(cfg.Damping)

	w := &World{
		space:       space,
		objects:     make(map[entity.ObjectID]*objectShapes),
		bodies:      make(map[entity.ObjectID]*cp.Body),
		overlapping: make(map[entity.ObjectID]struct{}),
	}

	w.addWalls(level)
	w.addPlayer(float64(level.SpawnX), float64(level.SpawnY), cfg)
	w.setupHandlers()
	return w
}

func (w *World) addWalls(level *entity.Level) {
	ts := float64(level.TileSize)
	for ty := 0; ty < level.Height; ty++ {
		for tx := 0; tx < level.Width; tx++ {
			if !level.GetTile(tx, ty).Solid {
				continue
			}
			x, y := float64(tx)*ts, float64(ty)*ts
			shape := cp.NewBox2(w.space.StaticBody, cp.BB{L: x, B: y, R: x + ts, T: y + ts}, 0)
			shape.SetCollisionType(collisionTypeWall)
			shape.SetFriction(0)
			w.space.AddShape(shape)
		}
	}
}

func (w *World) addPlayer(x, y float64, cfg Config) {
	mass := cfg.PlayerMass
	if mass <= 0 {
		mass = 1
	}
	radius := cfg.PlayerRadius
	if radius <= 0 {
		radius = 6
	}

	// infinite moment keeps the top-down body from spinning on contact
	body := w.space.AddBody(cp.NewBody(mass, math.Inf(1)))
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := w.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetCollisionType(collisionTypePlayer)
	shape.SetFriction(0)
	shape.UserData = shapeInfo{layer: entity.LayerPlayer}
	w.player = body
}

func (w *World) setupHandlers() {
	trigger := w.space.NewCollisionHandler(collisionTypePlayer, collisionTypeTrigger)
	trigger.UserData = w
	trigger.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world := userData.(*World)
		_, other := arb.Shapes()
		info, ok := other.UserData.(shapeInfo)
		if !ok {
			return false
		}
		if _, dup := world.overlapping[info.id]; !dup {
			world.overlapping[info.id] = struct{}{}
			world.events = append(world.events, Event{Type: TriggerEnter, Other: info.id, Layer: info.layer})
		}
		return false
	}
	trigger.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) {
		world := userData.(*World)
		_, other := arb.Shapes()
		if info, ok := other.UserData.(shapeInfo); ok {
			world.exit(info.id, info.layer)
		}
	}

	for _, ct := range []cp.CollisionType{collisionTypeSolid, collisionTypeBody} {
		contact := w.space.NewCollisionHandler(collisionTypePlayer, ct)
		contact.UserData = w
		contact.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
			world := userData.(*World)
			playerShape, other := arb.Shapes()
			info, ok := other.UserData.(shapeInfo)
			if !ok {
				return true
			}
			rel := other.Body().Velocity().Sub(playerShape.Body().Velocity())
			world.events = append(world.events, Event{
				Type:             CollisionEnter,
				Other:            info.id,
				Layer:            info.layer,
				RelativeVelocity: entity.Vec2{X: rel.X, Y: rel.Y},
			})
			return true
		}
	}
}

func (w *World) exit(id entity.ObjectID, layer entity.Layer) {
	if _, ok := w.overlapping[id]; !ok {
		return
	}
	delete(w.overlapping, id)
	w.events = append(w.events, Event{Type: TriggerExit, Other: id, Layer: layer})
}

// AddObject registers a level object. triggerW/H size its trigger volume;
// solid adds a blocking box the size of the sprite.
func (w *World) AddObject(obj *entity.Object, triggerW, triggerH int, solid bool) {
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: obj.Pos.X, Y: obj.Pos.Y})

	info := shapeInfo{id: obj.ID, layer: obj.Layer}
	shapes := &objectShapes{body: body}

	if triggerW > 0 && triggerH > 0 {
		shapes.trigger = cp.NewBox(body, float64(triggerW), float64(triggerH), 0)
		shapes.trigger.SetSensor(true)
		shapes.trigger.SetCollisionType(collisionTypeTrigger)
		shapes.trigger.UserData = info
	}
	if solid {
		shapes.solid = cp.NewBox(body, float64(obj.Width), float64(obj.Height), 0)
		shapes.solid.SetCollisionType(collisionTypeSolid)
		shapes.solid.SetFriction(0)
		shapes.solid.UserData = info
	}

	w.objects[obj.ID] = shapes
	w.SyncObject(obj)
}

// SyncObject mirrors an object's position and collider state into the space.
// A disabled or consumed object has its shapes removed; the player leaves its trigger.
func (w *World) SyncObject(obj *entity.Object) {
	shapes, ok := w.objects[obj.ID]
	if !ok {
		return
	}
	shapes.body.SetPosition(cp.Vector{X: obj.Pos.X, Y: obj.Pos.Y})

	want := obj.ColliderEnabled && obj.Active
	if want == shapes.added {
		return
	}
	if want {
		w.space.AddBody(shapes.body)
		for _, s := range shapes.list() {
			w.space.AddShape(s)
		}
	} else {
		w.exit(obj.ID, obj.Layer)
		for _, s := range shapes.list() {
			w.space.RemoveShape(s)
		}
		w.space.RemoveBody(shapes.body)
	}
	shapes.added = want
}

func (s *objectShapes) list() []*cp.Shape {
	out := make([]*cp.Shape, 0, 2)
	if s.trigger != nil {
		out = append(out, s.trigger)
	}
	if s.solid != nil {
		out = append(out, s.solid)
	}
	return out
}

// AddBody registers a moving body (enemy) with a circle collider
func (w *World) AddBody(id entity.ObjectID, pos entity.Vec2, radius float64, layer entity.Layer) {
	body := w.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})

	shape := w.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetCollisionType(collisionTypeBody)
	shape.UserData = shapeInfo{id: id, layer: layer}
	w.bodies[id] = body
}

// SetBodyVelocity sets a moving body's velocity in pixels/sec
func (w *World) SetBodyVelocity(id entity.ObjectID, v entity.Vec2) {
	if body, ok := w.bodies[id]; ok {
		body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
	}
}

// BodyPosition returns a moving body's position
func (w *World) BodyPosition(id entity.ObjectID) (entity.Vec2, bool) {
	body, ok := w.bodies[id]
	if !ok {
		return entity.Vec2{}, false
	}
	p := body.Position()
	return entity.Vec2{X: p.X, Y: p.Y}, true
}

// Step advances the simulation by dt seconds
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// Events returns and clears the events gathered since the last call
func (w *World) Events() []Event {
	out := w.events
	w.events = nil
	return out
}

// Overlapping returns the IDs whose trigger volume currently contains the player, ascending
func (w *World) Overlapping() []entity.ObjectID {
	return slices.Sorted(maps.Keys(w.overlapping))
}

// Position returns the player's position
func (w *World) Position() entity.Vec2 {
	p := w.player.Position()
	return entity.Vec2{X: p.X, Y: p.Y}
}

// Velocity returns the player's velocity
func (w *World) Velocity() entity.Vec2 {
	v := w.player.Velocity()
	return entity.Vec2{X: v.X, Y: v.Y}
}

// ApplyImpulse applies an impulse at the player's center
func (w *World) ApplyImpulse(impulse entity.Vec2) {
	w.player.ApplyImpulseAtWorldPoint(cp.Vector{X: impulse.X, Y: impulse.Y}, w.player.Position())
}

// SetPosition teleports the player and stops it
func (w *World) SetPosition(pos entity.Vec2) {
	w.player.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})
	w.player.SetVelocityVector(cp.Vector{})
}

// DebugShape is the bounding box of one collider in the space
type DebugShape struct {
	Min, Max entity.Vec2
	Sensor   bool
	Static   bool
}

// DebugShapes lists the bounding box of every shape currently in the space
func (w *World) DebugShapes() []DebugShape {
	var out []DebugShape
	w.space.EachShape(func(shape *cp.Shape) {
		bb := shape.BB()
		out = append(out, DebugShape{
			Min:    entity.Vec2{X: bb.L, Y: bb.B},
			Max:    entity.Vec2{X: bb.R, Y: bb.T},
			Sensor: shape.Sensor(),
			Static: shape.Body().GetType() == cp.BODY_STATIC,
		})
	})
	return out
}

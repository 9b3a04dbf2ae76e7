package system

import (
	"maps"
	"slices"

	"github.com/younwookim/keeper/internal/domain/entity"
)

// BodyMover drives kinematic bodies in the physics world
type BodyMover interface {
	SetBodyVelocity(id entity.ObjectID, v entity.Vec2)
}

// PatrolSystem moves enemies back and forth along their patrol paths
type PatrolSystem struct {
	ids []entity.ObjectID
}

// NewPatrolSystem creates a patrol system for the level's enemies
func NewPatrolSystem(enemies map[entity.ObjectID]*entity.Enemy) *PatrolSystem {
	return &PatrolSystem{ids: slices.Sorted(maps.Keys(enemies))}
}

// FixedUpdate advances every patrol by dt and pushes the velocities to the world
func (s *PatrolSystem) FixedUpdate(world BodyMover, enemies map[entity.ObjectID]*entity.Enemy, dt float64) {
	for _, id := range s.ids {
		enemy, ok := enemies[id]
		if !ok {
			continue
		}
		world.SetBodyVelocity(id, enemy.PatrolVelocity(dt))
	}
}

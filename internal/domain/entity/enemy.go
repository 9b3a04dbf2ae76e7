package entity

// Enemy is a patrolling body that hurts the player on contact
type Enemy struct {
	ID        ObjectID
	EnemyType string
	Speed     float64 // pixels/sec

	// Patrol between Start and Start + Dir*Distance
	StartX, StartY float64
	DirX, DirY     float64
	Distance       float64

	// State
	Travelled float64
	Forward   bool
}

// NewEnemy creates a new enemy patrolling along (dirX, dirY)
func NewEnemy(id ObjectID, x, y float64, enemyType string, dirX, dirY, distance, speed float64) *Enemy {
	dir := Vec2{dirX, dirY}.Normalize()
	return &Enemy{
		ID:        id,
		EnemyType: enemyType,
		Speed:     speed,
		StartX:    x,
		StartY:    y,
		DirX:      dir.X,
		DirY:      dir.Y,
		Distance:  distance,
		Forward:   true,
	}
}

// PatrolVelocity advances the patrol by dt and returns the desired velocity
// in pixels/sec. The enemy turns around at either end of its path.
func (e *Enemy) PatrolVelocity(dt float64) Vec2 {
	if e.Distance <= 0 || e.Speed <= 0 {
		return Vec2{}
	}
	e.Travelled += e.Speed * dt
	if e.Travelled >= e.Distance {
		e.Travelled -= e.Distance
		e.Forward = !e.Forward
	}
	sign := 1.0
	if !e.Forward {
		sign = -1.0
	}
	return Vec2{e.DirX * e.Speed * sign, e.DirY * e.Speed * sign}
}

package component

// Wander walks an enemy along one cardinal direction until something blocks
// it. Direction only changes in response to an obstacle contact.
type Wander struct {
	Direction Direction
	Speed     float64
	// Script optionally names a prefab script that picks the next direction.
	Script string
	// Blocked is set by the collision layer and consumed by the wander system.
	Blocked bool
}

// Velocity is Speed along the current direction.
func (w *Wander) Velocity() (x, y float64) {
	if w == nil {
		return 0, 0
	}
	ux, uy := w.Direction.Unit()
	return ux * w.Speed, uy * w.Speed
}

var WanderComponent = NewComponent[Wander]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

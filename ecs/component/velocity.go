package component

// Velocity is the per-frame motion request in pixels per second. Gameplay
// systems write it; the physics collaborator integrates it.
type Velocity struct {
	X float64
	Y float64
}

func (v *Velocity) Set(x, y float64) {
	v.X = x
	v.Y = y
}

func (v *Velocity) Zero() {
	v.X = 0
	v.Y = 0
}

var VelocityComponent = NewComponent[Velocity]()

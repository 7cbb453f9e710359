package component

// Facing is derived from the last nonzero movement input. FlipX mirrors the
// side animation for leftward movement.
type Facing struct {
	Dir   Direction
	FlipX bool
}

var FacingComponent = NewComponent[Facing]()

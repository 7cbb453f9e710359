package component

// Transform is the entity position in world pixels. X and Y name the center of
// the entity's collider.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()

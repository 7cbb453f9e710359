package component

// Category is the collision discriminant the dispatcher routes on.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryPlayer
	CategoryWall
	CategoryEnemy
	CategoryLoot
	CategoryProjectile
)

var categoryNames = [...]string{
	CategoryNone:       "none",
	CategoryPlayer:     "player",
	CategoryWall:       "wall",
	CategoryEnemy:      "enemy",
	CategoryLoot:       "loot",
	CategoryProjectile: "projectile",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Body declares an axis-aligned collider for the physics collaborator.
type Body struct {
	Category Category
	Width    float64
	Height   float64
	// Static bodies never move (walls, chests).
	Static bool
	// Sensor bodies report contacts without being pushed apart.
	Sensor bool
	// Disabled bodies are kept out of the physics space entirely, e.g. pooled
	// projectiles waiting in the pool.
	Disabled bool
	// Teleport moves an existing body to its Transform on the next physics
	// step instead of integrating from where it was. Physics clears it.
	Teleport bool
}

var BodyComponent = NewComponent[Body]()

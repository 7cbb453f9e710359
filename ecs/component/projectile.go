package component

// Projectile is one pooled throwable. Inactive projectiles are hidden and
// kept out of the physics space.
type Projectile struct {
	Active bool
	// Pool is the entity owning the ProjectilePool this slot belongs to.
	Pool uint64
}

var ProjectileComponent = NewComponent[Projectile]()

// DefaultProjectileCapacity bounds how many projectiles can be in flight.
const DefaultProjectileCapacity = 3

// ProjectilePool is a fixed set of projectile slots. Any inactive slot is as
// good as any other.
type ProjectilePool struct {
	Slots []uint64
}

var ProjectilePoolComponent = NewComponent[ProjectilePool]()

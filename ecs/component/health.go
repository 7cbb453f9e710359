package component

import "time"

// DefaultDamageRecovery is how long a hit keeps the player in HealthDamage.
const DefaultDamageRecovery = 250 * time.Millisecond

type HealthState uint8

const (
	HealthIdle HealthState = iota
	HealthDamage
	HealthDead
)

func (s HealthState) String() string {
	switch s {
	case HealthIdle:
		return "idle"
	case HealthDamage:
		return "damage"
	case HealthDead:
		return "dead"
	}
	return "unknown"
}

// DamageOutcome tells the caller what a damage event did.
type DamageOutcome uint8

const (
	DamageRejected DamageOutcome = iota
	DamageHurt
	DamageKilled
)

// Health is the hit-point state machine: idle, recovering from a hit, or
// dead. Dead is terminal.
type Health struct {
	Initial     int
	Current     int
	State       HealthState
	DamageTimer time.Duration
	Recover     time.Duration
}

func NewHealth(initial int) *Health {
	if initial <= 0 {
		initial = 1
	}
	return &Health{Initial: initial, Current: initial, Recover: DefaultDamageRecovery}
}

// Damage applies one point of damage. It is rejected while dead or while
// still recovering from the previous hit.
func (h *Health) Damage() DamageOutcome {
	if h == nil || h.Current <= 0 || h.State == HealthDamage || h.State == HealthDead {
		return DamageRejected
	}
	h.Current--
	if h.Current <= 0 {
		h.Current = 0
		h.State = HealthDead
		h.DamageTimer = 0
		return DamageKilled
	}
	h.State = HealthDamage
	h.DamageTimer = 0
	return DamageHurt
}

// Tick advances the recovery timer and reports whether this call returned
// the state machine to idle.
func (h *Health) Tick(dt time.Duration) bool {
	if h == nil || h.State != HealthDamage {
		return false
	}
	h.DamageTimer += dt
	limit := h.Recover
	if limit <= 0 {
		limit = DefaultDamageRecovery
	}
	if h.DamageTimer < limit {
		return false
	}
	h.State = HealthIdle
	h.DamageTimer = 0
	return true
}

// CanAct reports whether movement and interaction are processed.
func (h *Health) CanAct() bool {
	return h != nil && h.State == HealthIdle
}

func (h *Health) Dead() bool {
	return h != nil && h.State == HealthDead
}

var HealthComponent = NewComponent[Health]()

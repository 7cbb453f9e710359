package component

// HitTint marks an entity that should render with the red damage tint. The
// health system removes it when the damage state ends.
type HitTint struct{}

var HitTintComponent = NewComponent[HitTint]()

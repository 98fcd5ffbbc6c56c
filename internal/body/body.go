package body

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Body is a point mass in the universe. It carries no behavior beyond
// maintenance of its own state; all physics flows through the engine.
type Body struct {
	Name     string
	Kind     Kind
	Mass     float64
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Size     float64

	// Force is per-tick scratch: reset at the start of every force pass,
	// accumulated during it, consumed by integration. Not meaningful
	// between ticks.
	Force mgl64.Vec2

	// Attrs holds kind-specific descriptive fields, display only.
	Attrs Attributes

	trail    []mgl64.Vec2
	trailCap int
}

// New creates a body of the given kind with the kind's trail capacity.
func New(name string, kind Kind, mass float64, pos, vel mgl64.Vec2, size float64) *Body {
	return &Body{
		Name:     name,
		Kind:     kind,
		Mass:     mass,
		Position: pos,
		Velocity: vel,
		Size:     size,
		trailCap: kind.TrailCap(),
	}
}

// ResetForce clears the accumulated force for a new force pass.
func (b *Body) ResetForce() {
	b.Force = mgl64.Vec2{}
}

// AddForce accumulates a force contribution for the current pass.
func (b *Body) AddForce(f mgl64.Vec2) {
	b.Force = b.Force.Add(f)
}

// RecordTrail appends the current position to the trail, evicting the
// oldest entry once the kind's capacity is exceeded.
func (b *Body) RecordTrail() {
	b.trail = append(b.trail, b.Position)
	if len(b.trail) > b.trailCap {
		b.trail = b.trail[1:]
	}
}

// Trail returns the recorded position history, oldest first. The returned
// slice is owned by the body and must not be mutated.
func (b *Body) Trail() []mgl64.Vec2 {
	return b.trail
}

// Speed returns the magnitude of the body's velocity.
func (b *Body) Speed() float64 {
	return b.Velocity.Len()
}

// DistanceTo returns the Euclidean distance to another body.
func (b *Body) DistanceTo(other *Body) float64 {
	return b.Position.Sub(other.Position).Len()
}

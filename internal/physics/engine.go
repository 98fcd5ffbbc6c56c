package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/unisim/internal/body"
)

// Physical constants tuned for the simulation's unit scale.
const (
	// G is deliberately far below the real gravitational constant so that
	// solar-scale masses produce workable accelerations.
	G = 6.67430e-15

	// ForceDamping scales every pairwise force. Without it displacements
	// diverge within tens of ticks at these mass scales.
	ForceDamping = 1e-10
)

// Engine computes gravitational forces, integrates motion, and detects
// collisions over a body collection. It borrows the collection for the
// duration of a call and never retains it.
type Engine struct {
	G            float64
	ForceDamping float64

	// GravityEnabled gates both force accumulation and motion integration.
	// When false a step leaves every body untouched.
	GravityEnabled bool

	// CollisionDetection gates DetectCollisions.
	CollisionDetection bool

	// Workers > 1 splits the force pass across goroutines. Results are
	// identical to the sequential pass for each body regardless of
	// scheduling, because each body's force is summed by exactly one
	// worker over the pre-step snapshot.
	Workers int
}

// NewEngine returns an engine with the simulation's standard constants,
// gravity and collision detection enabled.
func NewEngine() *Engine {
	return &Engine{
		G:                  G,
		ForceDamping:       ForceDamping,
		GravityEnabled:     true,
		CollisionDetection: true,
		Workers:            1,
	}
}

// Step advances all bodies by dt: force accumulation, velocity integration,
// then position integration. With gravity disabled the step is a no-op;
// forces and motion are gated together.
func (e *Engine) Step(bodies []*body.Body, dt float64) {
	if !e.GravityEnabled {
		return
	}
	e.AccumulateForces(bodies)
	e.Integrate(bodies, dt)
}

// AccumulateForces resets every body's force and sums the pairwise
// gravitational attraction. Each unordered pair is computed once and
// applied equal-and-opposite. Coincident bodies and massless bodies
// contribute nothing.
func (e *Engine) AccumulateForces(bodies []*body.Body) {
	for _, b := range bodies {
		b.ResetForce()
	}

	if e.Workers > 1 && len(bodies) >= parallelThreshold {
		e.accumulateParallel(bodies)
		return
	}

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			f, ok := e.pairForce(bodies[i], bodies[j])
			if !ok {
				continue
			}
			bodies[i].AddForce(f)
			bodies[j].AddForce(f.Mul(-1))
		}
	}
}

// pairForce returns the damped gravitational force exerted on a by b.
// ok is false when the pair contributes no force.
func (e *Engine) pairForce(a, b *body.Body) (mgl64.Vec2, bool) {
	if a.Mass <= 0 || b.Mass <= 0 {
		return mgl64.Vec2{}, false
	}

	delta := b.Position.Sub(a.Position)
	dist := delta.Len()
	if dist == 0 {
		return mgl64.Vec2{}, false
	}

	mag := e.G * a.Mass * b.Mass / (dist * dist)
	return delta.Mul(mag * e.ForceDamping / dist), true
}

// Integrate applies accumulated forces to velocities, then velocities to
// positions, recording each body's trail. Velocity updates skip massless
// bodies and black holes; a black hole attracts but never moves under
// gravity.
func (e *Engine) Integrate(bodies []*body.Body, dt float64) {
	for _, b := range bodies {
		if b.Mass <= 0 || !b.Kind.Mobile() {
			continue
		}
		b.Velocity = b.Velocity.Add(b.Force.Mul(dt / b.Mass))
	}

	for _, b := range bodies {
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
		b.RecordTrail()
	}
}

// Collision is an unordered colliding pair, A preceding B in iteration
// order.
type Collision struct {
	A, B *body.Body
}

// DetectCollisions reports every pair whose separation is below the sum of
// the two sizes. Each unordered pair is reported at most once. Cost is
// O(n²) over the current body set.
func (e *Engine) DetectCollisions(bodies []*body.Body) []Collision {
	if !e.CollisionDetection {
		return nil
	}

	var collisions []Collision
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if bodies[i].DistanceTo(bodies[j]) < bodies[i].Size+bodies[j].Size {
				collisions = append(collisions, Collision{A: bodies[i], B: bodies[j]})
			}
		}
	}
	return collisions
}

// Resolve returns the loser of a collision: the body with strictly smaller
// mass, or B on a tie.
func (c Collision) Resolve() *body.Body {
	if c.A.Mass >= c.B.Mass {
		return c.B
	}
	return c.A
}

package physics_test

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/unisim/internal/body"
	"github.com/san-kum/unisim/internal/physics"
)

// testEngine uses unit constants so effects are visible at small masses.
func testEngine() *physics.Engine {
	e := physics.NewEngine()
	e.G = 1.0
	e.ForceDamping = 1.0
	return e
}

func planet(name string, mass float64, pos mgl64.Vec2) *body.Body {
	return body.New(name, body.Planet, mass, pos, mgl64.Vec2{}, 1)
}

var _ = Describe("force accumulation", func() {
	var e *physics.Engine

	BeforeEach(func() {
		e = testEngine()
	})

	It("applies equal and opposite forces to a pair", func() {
		a := planet("a", 4, mgl64.Vec2{0, 0})
		b := planet("b", 4, mgl64.Vec2{10, 0})

		e.AccumulateForces([]*body.Body{a, b})

		Expect(a.Force.Len()).To(BeNumerically("~", b.Force.Len(), 1e-12))
		Expect(a.Force.X()).To(BeNumerically("~", -b.Force.X(), 1e-12))
		Expect(a.Force.Y()).To(BeNumerically("~", -b.Force.Y(), 1e-12))
	})

	It("uses the inverse-square law scaled by the damping constant", func() {
		e.ForceDamping = 0.5
		a := planet("a", 2, mgl64.Vec2{0, 0})
		b := planet("b", 3, mgl64.Vec2{0, 4})

		e.AccumulateForces([]*body.Body{a, b})

		// F = K * G * m1 * m2 / d^2 = 0.5 * 1 * 6 / 16
		Expect(a.Force.Len()).To(BeNumerically("~", 0.5*6.0/16.0, 1e-12))
		Expect(a.Force.Y()).To(BeNumerically(">", 0))
	})

	It("contributes zero force for coincident bodies", func() {
		a := planet("a", 5, mgl64.Vec2{1, 1})
		b := planet("b", 5, mgl64.Vec2{1, 1})

		e.AccumulateForces([]*body.Body{a, b})

		Expect(a.Force).To(Equal(mgl64.Vec2{}))
		Expect(b.Force).To(Equal(mgl64.Vec2{}))
	})

	It("ignores massless bodies", func() {
		a := planet("a", 0, mgl64.Vec2{0, 0})
		b := planet("b", 5, mgl64.Vec2{10, 0})

		e.AccumulateForces([]*body.Body{a, b})

		Expect(a.Force).To(Equal(mgl64.Vec2{}))
		Expect(b.Force).To(Equal(mgl64.Vec2{}))
	})

	It("resets stale forces at the start of a pass", func() {
		a := planet("a", 5, mgl64.Vec2{0, 0})
		a.AddForce(mgl64.Vec2{100, 100})

		e.AccumulateForces([]*body.Body{a})

		Expect(a.Force).To(Equal(mgl64.Vec2{}))
	})

	It("matches the sequential pass when parallel", func() {
		var serial, parallel []*body.Body
		for i := 0; i < 100; i++ {
			p := mgl64.Vec2{float64(i%10) * 7, float64(i/10) * 13}
			serial = append(serial, planet("s", float64(i+1), p))
			parallel = append(parallel, planet("p", float64(i+1), p))
		}

		e.AccumulateForces(serial)

		pe := testEngine()
		pe.Workers = 4
		pe.AccumulateForces(parallel)

		for i := range serial {
			Expect(parallel[i].Force.X()).To(BeNumerically("~", serial[i].Force.X(), 1e-9))
			Expect(parallel[i].Force.Y()).To(BeNumerically("~", serial[i].Force.Y(), 1e-9))
		}
	})
})

var _ = Describe("integration", func() {
	var e *physics.Engine

	BeforeEach(func() {
		e = testEngine()
	})

	It("leaves an isolated body's velocity unchanged over many ticks", func() {
		b := planet("lonely", 5, mgl64.Vec2{3, 4})
		b.Velocity = mgl64.Vec2{1, -2}

		for i := 0; i < 100; i++ {
			e.Step([]*body.Body{b}, 0.1)
		}

		Expect(b.Velocity).To(Equal(mgl64.Vec2{1, -2}))
	})

	It("produces equal and opposite momentum changes", func() {
		a := planet("a", 2, mgl64.Vec2{0, 0})
		b := planet("b", 8, mgl64.Vec2{10, 0})

		e.Step([]*body.Body{a, b}, 0.5)

		dpA := a.Velocity.Mul(a.Mass)
		dpB := b.Velocity.Mul(b.Mass)
		Expect(dpA.X()).To(BeNumerically("~", -dpB.X(), 1e-12))
		Expect(dpA.Y()).To(BeNumerically("~", -dpB.Y(), 1e-12))

		// Velocity change is inversely proportional to own mass.
		Expect(a.Velocity.Len() / b.Velocity.Len()).To(BeNumerically("~", b.Mass/a.Mass, 1e-9))
	})

	It("never updates a black hole's velocity", func() {
		hole := body.New("hole", body.BlackHole, 1000, mgl64.Vec2{0, 0}, mgl64.Vec2{}, 5)
		b := planet("b", 1, mgl64.Vec2{20, 0})

		for i := 0; i < 10; i++ {
			e.Step([]*body.Body{hole, b}, 0.1)
		}

		Expect(hole.Velocity).To(Equal(mgl64.Vec2{}))
		// The black hole still pulls its neighbor inward.
		Expect(b.Velocity.X()).To(BeNumerically("<", 0))
	})

	It("freezes everything when gravity is disabled", func() {
		a := planet("a", 5, mgl64.Vec2{0, 0})
		a.Velocity = mgl64.Vec2{3, 3}
		b := planet("b", 5, mgl64.Vec2{10, 0})

		e.GravityEnabled = false
		e.Step([]*body.Body{a, b}, 1.0)

		Expect(a.Position).To(Equal(mgl64.Vec2{0, 0}))
		Expect(a.Velocity).To(Equal(mgl64.Vec2{3, 3}))
		Expect(b.Position).To(Equal(mgl64.Vec2{10, 0}))
	})

	It("draws two bodies strictly closer each tick until they collide", func() {
		a := planet("a", 5, mgl64.Vec2{-10, 0})
		b := planet("b", 5, mgl64.Vec2{10, 0})
		bodies := []*body.Body{a, b}

		prev := a.DistanceTo(b)
		collided := false
		for i := 0; i < 1000; i++ {
			e.Step(bodies, 0.1)
			d := a.DistanceTo(b)
			if len(e.DetectCollisions(bodies)) > 0 {
				collided = true
				break
			}
			Expect(d).To(BeNumerically("<", prev))
			prev = d
		}

		Expect(collided).To(BeTrue())
	})
})

var _ = Describe("collisions", func() {
	var e *physics.Engine

	BeforeEach(func() {
		e = testEngine()
	})

	It("reports a pair exactly once when separation is below the size sum", func() {
		a := planet("a", 5, mgl64.Vec2{0, 0})
		b := planet("b", 5, mgl64.Vec2{1.5, 0})
		c := planet("c", 5, mgl64.Vec2{100, 0})

		collisions := e.DetectCollisions([]*body.Body{a, b, c})

		Expect(collisions).To(HaveLen(1))
		Expect(collisions[0].A).To(Equal(a))
		Expect(collisions[0].B).To(Equal(b))
	})

	It("does not report pairs at exactly the size sum", func() {
		a := planet("a", 5, mgl64.Vec2{0, 0})
		b := planet("b", 5, mgl64.Vec2{2, 0})

		Expect(e.DetectCollisions([]*body.Body{a, b})).To(BeEmpty())
	})

	It("reports nothing when detection is disabled", func() {
		a := planet("a", 5, mgl64.Vec2{0, 0})
		b := planet("b", 5, mgl64.Vec2{0.5, 0})

		e.CollisionDetection = false
		Expect(e.DetectCollisions([]*body.Body{a, b})).To(BeEmpty())
	})

	It("resolves to the strictly smaller mass, second operand on ties", func() {
		heavy := planet("heavy", 10, mgl64.Vec2{0, 0})
		light := planet("light", 5, mgl64.Vec2{1, 0})
		equal := planet("equal", 10, mgl64.Vec2{0, 1})

		Expect(physics.Collision{A: heavy, B: light}.Resolve()).To(Equal(light))
		Expect(physics.Collision{A: light, B: heavy}.Resolve()).To(Equal(light))
		Expect(physics.Collision{A: heavy, B: equal}.Resolve()).To(Equal(equal))
	})

	It("marks both lighter bodies when three bodies mutually overlap", func() {
		a := planet("a", 10, mgl64.Vec2{0, 0})
		b := planet("b", 5, mgl64.Vec2{0.5, 0})
		c := planet("c", 5, mgl64.Vec2{0, 0.5})
		bodies := []*body.Body{a, b, c}

		collisions := e.DetectCollisions(bodies)
		Expect(collisions).To(HaveLen(3))

		losers := map[string]bool{}
		for _, col := range collisions {
			losers[col.Resolve().Name] = true
		}
		Expect(losers).To(HaveKey("b"))
		Expect(losers).To(HaveKey("c"))
		Expect(losers).NotTo(HaveKey("a"))
	})
})

var _ = Describe("orbital helpers", func() {
	var e *physics.Engine

	BeforeEach(func() {
		e = testEngine()
	})

	It("computes sqrt(G*M/d) for valid inputs", func() {
		Expect(e.OrbitalVelocity(100, 25)).To(BeNumerically("~", 2.0, 1e-12))
	})

	It("returns zero for non-positive mass or distance", func() {
		Expect(e.OrbitalVelocity(0, 100)).To(BeZero())
		Expect(e.OrbitalVelocity(-5, 100)).To(BeZero())
		Expect(e.OrbitalVelocity(100, 0)).To(BeZero())
		Expect(e.OrbitalVelocity(100, -1)).To(BeZero())
	})

	It("repositions along the current bearing at the requested distance", func() {
		central := planet("sun", 100, mgl64.Vec2{10, 10})
		sat := planet("sat", 1, mgl64.Vec2{13, 14})

		e.PlaceInOrbit(central, sat, 25)

		Expect(sat.Position.Sub(central.Position).Len()).To(BeNumerically("~", 25, 1e-9))
		// Bearing is preserved: still up-and-right of the central body.
		Expect(sat.Position.X()).To(BeNumerically(">", central.Position.X()))
		Expect(sat.Position.Y()).To(BeNumerically(">", central.Position.Y()))
	})

	It("adds a tangential velocity perpendicular to the radial direction", func() {
		central := planet("sun", 100, mgl64.Vec2{0, 0})
		central.Velocity = mgl64.Vec2{1, 1}
		sat := planet("sat", 1, mgl64.Vec2{25, 0})

		e.PlaceInOrbit(central, sat, 25)

		rel := sat.Velocity.Sub(central.Velocity)
		radial := sat.Position.Sub(central.Position)
		Expect(rel.Dot(radial)).To(BeNumerically("~", 0, 1e-9))
		Expect(rel.Len()).To(BeNumerically("~", e.OrbitalVelocity(100, 25), 1e-9))
		// Counter-clockwise: at bearing 0 the tangent points along +y.
		Expect(rel.Y()).To(BeNumerically(">", 0))
	})

	It("is a no-op for non-positive mass or distance", func() {
		central := planet("sun", 0, mgl64.Vec2{0, 0})
		sat := planet("sat", 1, mgl64.Vec2{25, 0})
		before := *sat

		e.PlaceInOrbit(central, sat, 25)
		Expect(sat.Position).To(Equal(before.Position))
		Expect(sat.Velocity).To(Equal(before.Velocity))

		central.Mass = 100
		e.PlaceInOrbit(central, sat, 0)
		Expect(sat.Position).To(Equal(before.Position))
	})
})

var _ = Describe("default constants", func() {
	It("keeps solar-scale forces finite and tiny", func() {
		e := physics.NewEngine()
		a := body.New("a", body.Star, 2e30, mgl64.Vec2{0, 0}, mgl64.Vec2{}, 20)
		b := body.New("b", body.Star, 2e30, mgl64.Vec2{100, 0}, mgl64.Vec2{}, 20)

		e.AccumulateForces([]*body.Body{a, b})

		Expect(math.IsInf(a.Force.Len(), 0)).To(BeFalse())
		Expect(math.IsNaN(a.Force.Len())).To(BeFalse())
		Expect(a.Force.Len()).To(BeNumerically(">", 0))
	})
})

package universe

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/san-kum/unisim/internal/body"
	"github.com/san-kum/unisim/internal/physics"
)

const solarMass = 2e30

// GenConfig holds universe generation parameters.
type GenConfig struct {
	// Size tunes the relative amount of bodies. Count ceilings derive
	// from it: Size/100 stars, Size/10 planets, Size/5 asteroids,
	// Size/1000 nebulae and black holes.
	Size int

	// Span is the half-extent of the inhabited region; positions land in
	// [-Span, Span] on both axes.
	Span float64

	// Seed makes generation reproducible. Equal seeds and sizes yield
	// identical universes.
	Seed int64
}

// DefaultGenConfig matches the simulation's standard universe scale.
func DefaultGenConfig() GenConfig {
	return GenConfig{Size: 3000, Span: 3000, Seed: 1}
}

// Generate produces the initial body set for the config: stars first, then
// planets (most orbiting a star), asteroids, nebulae, and black holes.
// The engine is consulted only for orbital placement.
func Generate(cfg GenConfig, eng *physics.Engine) []*body.Body {
	g := &generator{
		cfg:   cfg,
		eng:   eng,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		noise: opensimplex.NewNormalized(cfg.Seed),
	}

	g.stars()
	g.planets()
	g.asteroids()
	g.nebulae()
	g.blackHoles()
	g.stabilizeOrbits()

	return g.bodies
}

type generator struct {
	cfg   GenConfig
	eng   *physics.Engine
	rng   *rand.Rand
	noise opensimplex.Noise

	bodies   []*body.Body
	starList []*body.Body
	orbits   []orbit
}

type orbit struct {
	planet   *body.Body
	central  *body.Body
	distance float64
}

// position samples placements and keeps the densest of a handful of noise
// probes, clumping bodies into filaments instead of uniform scatter.
func (g *generator) position() mgl64.Vec2 {
	const probes = 4
	best := mgl64.Vec2{}
	bestScore := -1.0
	for i := 0; i < probes; i++ {
		p := mgl64.Vec2{
			(g.rng.Float64()*2 - 1) * g.cfg.Span,
			(g.rng.Float64()*2 - 1) * g.cfg.Span,
		}
		score := g.noise.Eval2(p.X()/g.cfg.Span*3, p.Y()/g.cfg.Span*3)
		if score > bestScore {
			bestScore = score
			best = p
		}
	}
	return best
}

func (g *generator) velocity() mgl64.Vec2 {
	return mgl64.Vec2{
		(g.rng.Float64()*2 - 1) * 2,
		(g.rng.Float64()*2 - 1) * 2,
	}
}

func (g *generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *generator) count(max int) int {
	if max < 1 {
		max = 1
	}
	return 1 + g.rng.Intn(max)
}

func (g *generator) stars() {
	for i := 0; i < g.count(g.cfg.Size/100); i++ {
		b := body.New(
			fmt.Sprintf("Star-%03d", i+1),
			body.Star,
			g.uniform(0.5*solarMass, 10*solarMass),
			g.position(),
			g.velocity(),
			g.uniform(15, 30),
		)
		b.Attrs = body.Attributes{
			Luminosity:  b.Mass / 1e30,
			Temperature: g.uniform(3000, 50000),
			Age:         g.uniform(0, 1e10),
		}
		g.add(b)
		g.starList = append(g.starList, b)
	}
}

func (g *generator) planets() {
	const (
		mercuryMass = 0.33e24
		jupiterMass = 1898e24
	)

	for i := 0; i < g.count(g.cfg.Size/10); i++ {
		name := fmt.Sprintf("Planet-%03d", i+1)
		mass := g.uniform(mercuryMass, jupiterMass)
		size := g.uniform(2, 71)

		var b *body.Body
		if len(g.starList) > 0 && g.rng.Float64() < 0.7 {
			// Orbit a random star at a random bearing.
			star := g.starList[g.rng.Intn(len(g.starList))]
			angle := g.uniform(0, 2*math.Pi)
			distance := g.uniform(50, 300)
			sin, cos := math.Sincos(angle)

			pos := star.Position.Add(mgl64.Vec2{distance * cos, distance * sin})
			b = body.New(name, body.Planet, mass, pos, star.Velocity, size)
			g.orbits = append(g.orbits, orbit{planet: b, central: star, distance: distance})
		} else {
			b = body.New(name, body.Planet, mass, g.position(), g.velocity(), size)
		}

		b.Attrs = body.Attributes{
			Atmosphere:  g.rng.Intn(2) == 0,
			Water:       g.rng.Intn(2) == 0,
			Temperature: g.uniform(200, 400),
		}
		g.add(b)
	}
}

func (g *generator) asteroids() {
	compositions := []string{"rock", "ice", "metal"}
	for i := 0; i < g.count(g.cfg.Size/5); i++ {
		b := body.New(
			fmt.Sprintf("Asteroid-%03d", i+1),
			body.Asteroid,
			g.uniform(1e12, 1e15),
			g.position(),
			g.velocity(),
			g.uniform(2, 5),
		)
		b.Attrs = body.Attributes{Composition: compositions[g.rng.Intn(len(compositions))]}
		g.add(b)
	}
}

func (g *generator) nebulae() {
	for i := 0; i < g.cfg.Size/1000; i++ {
		b := body.New(
			fmt.Sprintf("Nebula-%02d", i+1),
			body.Nebula,
			g.uniform(1e22, 1e24),
			g.position(),
			g.velocity(),
			g.uniform(20, 50),
		)
		b.Attrs = body.Attributes{Density: g.uniform(0.1, 1.0)}
		g.add(b)
	}
}

func (g *generator) blackHoles() {
	for i := 0; i < g.count(g.cfg.Size/1000); i++ {
		size := g.uniform(5, 15)
		b := body.New(
			fmt.Sprintf("BlackHole-%02d", i+1),
			body.BlackHole,
			g.uniform(solarMass, 1e4*solarMass),
			g.position(),
			mgl64.Vec2{},
			size,
		)
		b.Attrs = body.Attributes{EventHorizonRadius: size * 2}
		g.add(b)
	}
}

// stabilizeOrbits re-derives each captured planet's circular orbit from
// final positions, after all bodies exist.
func (g *generator) stabilizeOrbits() {
	for _, o := range g.orbits {
		g.eng.PlaceInOrbit(o.central, o.planet, o.distance)
	}
}

func (g *generator) add(b *body.Body) {
	g.bodies = append(g.bodies, b)
}

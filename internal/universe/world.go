package universe

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/unisim/internal/body"
	"github.com/san-kum/unisim/internal/physics"
)

// Tick size bounds in simulated years.
const (
	DefaultTickSize = 5.0
	MinTickSize     = 1.0
	MaxTickSize     = 1000.0
)

// World owns the ordered body collection and advances it tick by tick.
// Iteration order is insertion order, which fixes collision tie-breaking
// and makes runs reproducible for a given seed.
type World struct {
	engine *physics.Engine

	bodies []*body.Body
	index  map[string]int

	genCfg   GenConfig
	time     float64
	tickSize float64
}

// New creates an empty world around the given engine with the default
// tick size. Call Generate or Add to populate it.
func New(engine *physics.Engine, genCfg GenConfig) *World {
	return &World{
		engine:   engine,
		index:    make(map[string]int),
		genCfg:   genCfg,
		tickSize: DefaultTickSize,
	}
}

// Engine exposes the physics engine for toggles (gravity, collisions).
func (w *World) Engine() *physics.Engine { return w.engine }

// Add appends a body, keeping insertion order.
func (w *World) Add(b *body.Body) error {
	if _, ok := w.index[b.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, b.Name)
	}
	w.index[b.Name] = len(w.bodies)
	w.bodies = append(w.bodies, b)
	return nil
}

// Remove deletes a body by name. Removing an absent name is a no-op, which
// makes same-tick collision removals idempotent.
func (w *World) Remove(name string) {
	i, ok := w.index[name]
	if !ok {
		return
	}
	w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
	delete(w.index, name)
	for j := i; j < len(w.bodies); j++ {
		w.index[w.bodies[j].Name] = j
	}
}

// Body looks up a body by name.
func (w *World) Body(name string) (*body.Body, bool) {
	i, ok := w.index[name]
	if !ok {
		return nil, false
	}
	return w.bodies[i], true
}

// Bodies returns the collection in iteration order. The slice is owned by
// the world; callers must treat it as read-only.
func (w *World) Bodies() []*body.Body { return w.bodies }

// Len returns the current body count.
func (w *World) Len() int { return len(w.bodies) }

// Time returns elapsed simulated time.
func (w *World) Time() float64 { return w.time }

// TickSize returns the current per-tick time delta.
func (w *World) TickSize() float64 { return w.tickSize }

// AdjustTickSize changes the per-tick delta by delta, rejecting values
// outside [MinTickSize, MaxTickSize].
func (w *World) AdjustTickSize(delta float64) error {
	next := w.tickSize + delta
	if next < MinTickSize || next > MaxTickSize {
		return fmt.Errorf("%w: %.1f not in [%.1f, %.1f]", ErrTickSize, next, MinTickSize, MaxTickSize)
	}
	w.tickSize = next
	return nil
}

// Tick advances the simulation one step: force accumulation and
// integration, then collision detection against the pre-removal set, then
// a single deferred removal pass. A body reported in several collisions is
// removed once.
func (w *World) Tick() {
	w.engine.Step(w.bodies, w.tickSize)

	collisions := w.engine.DetectCollisions(w.bodies)
	if len(collisions) > 0 {
		losers := make([]string, 0, len(collisions))
		for _, c := range collisions {
			losers = append(losers, c.Resolve().Name)
		}
		for _, name := range losers {
			w.Remove(name)
		}
	}

	w.time += w.tickSize
}

// NearestBody returns the body closest to pos and its distance.
func (w *World) NearestBody(pos mgl64.Vec2) (*body.Body, float64, error) {
	if len(w.bodies) == 0 {
		return nil, 0, ErrNoBodies
	}

	nearest := w.bodies[0]
	min := pos.Sub(nearest.Position).Len()
	for _, b := range w.bodies[1:] {
		if d := pos.Sub(b.Position).Len(); d < min {
			min = d
			nearest = b
		}
	}
	return nearest, min, nil
}

// Generate populates the world from its generation config, replacing any
// existing bodies. Deterministic for a fixed seed.
func (w *World) Generate() {
	w.bodies = w.bodies[:0]
	w.index = make(map[string]int)
	for _, b := range Generate(w.genCfg, w.engine) {
		// Generated names are unique by construction.
		w.index[b.Name] = len(w.bodies)
		w.bodies = append(w.bodies, b)
	}
}

// Reset clears elapsed time and regenerates the universe with a new seed.
// Resetting with the same seed reproduces the identical initial body set.
func (w *World) Reset(seed int64) {
	w.genCfg.Seed = seed
	w.time = 0
	w.Generate()
}

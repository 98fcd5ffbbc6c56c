package body

// Kind is the closed set of celestial body variants.
type Kind int

const (
	Star Kind = iota
	Planet
	Asteroid
	Nebula
	BlackHole
)

var kindNames = [...]string{"star", "planet", "asteroid", "nebula", "black_hole"}

func (k Kind) String() string {
	if k < Star || k > BlackHole {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{Star, Planet, Asteroid, Nebula, BlackHole}
}

// TrailCap returns the trail capacity for the kind. Asteroids and nebulae
// keep shorter histories.
func (k Kind) TrailCap() int {
	switch k {
	case Asteroid:
		return 20
	case Nebula:
		return 10
	default:
		return 50
	}
}

// Mobile reports whether gravity may change the body's own velocity.
// A black hole exerts force on others but its velocity is never updated;
// it behaves as a near-stationary heavy attractor.
func (k Kind) Mobile() bool {
	return k != BlackHole
}

// Attributes carries kind-specific descriptive fields. Only the fields for
// the body's kind are meaningful; none of them participate in physics.
type Attributes struct {
	// Star
	Luminosity  float64 // relative to solar luminosity
	Temperature float64 // kelvin, also used by Planet
	Age         float64 // years

	// Planet
	Atmosphere bool
	Water      bool

	// Asteroid
	Composition string

	// Nebula
	Density float64

	// BlackHole
	EventHorizonRadius float64
}

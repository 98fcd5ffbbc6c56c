package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/unisim/internal/body"
)

// OrbitalVelocity returns the speed of a circular orbit at the given
// distance around a central mass, or 0 for non-positive inputs.
func (e *Engine) OrbitalVelocity(centralMass, distance float64) float64 {
	if distance <= 0 || centralMass <= 0 {
		return 0
	}
	return math.Sqrt(e.G * centralMass / distance)
}

// PlaceInOrbit repositions orbiting at the given radial distance from
// central along their current bearing and sets its velocity to central's
// velocity plus the tangential circular-orbit component, counter-clockwise.
// No-op for non-positive central mass or distance.
func (e *Engine) PlaceInOrbit(central, orbiting *body.Body, distance float64) {
	if central.Mass <= 0 || distance <= 0 {
		return
	}

	v := e.OrbitalVelocity(central.Mass, distance)

	angle := math.Atan2(
		orbiting.Position.Y()-central.Position.Y(),
		orbiting.Position.X()-central.Position.X(),
	)
	sin, cos := math.Sincos(angle)

	orbiting.Position = central.Position.Add(mgl64.Vec2{distance * cos, distance * sin})
	orbiting.Velocity = central.Velocity.Add(mgl64.Vec2{-v * sin, v * cos})
}

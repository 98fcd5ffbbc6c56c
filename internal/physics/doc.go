// Package physics implements the gravitational core of the simulation:
// brute-force pairwise force accumulation, velocity/position integration,
// collision detection over body sizes, and circular-orbit helpers.
//
// All arithmetic is double precision with no clamping; runaway values are
// possible and deliberately not prevented. Every edge case (zero distance,
// zero mass, non-positive orbital parameters) has a defined zero or no-op
// result rather than an error.
package physics

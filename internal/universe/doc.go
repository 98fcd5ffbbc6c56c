// Package universe owns the body collection and drives the physics engine.
//
// The [World] is the single owner of all simulation state: per tick it runs
// force accumulation, integration, and collision resolution, and exposes the
// read-only query surface (nearest body, statistics, descriptions) consumed
// by the presentation layer. Procedural generation lives here too; the
// physics engine never creates or destroys bodies.
//
// A World is not safe for concurrent use. The expected pattern is a strictly
// sequential render-then-tick loop with the World exclusively owned by it.
package universe

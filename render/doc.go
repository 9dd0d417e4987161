// Package render implements the rasterization pipeline: it binds a drawing
// surface directly over a caller-supplied pixel buffer, scales the drawing
// context so the document's viewport fills the target, and invokes the
// native renderer.
//
// Validation runs as ordered fail-fast gates before any native call: null
// checks, viewport and dimension checks, per-axis scale range (0, 1000], and
// only then library availability and surface binding. Gate failures map to
// invalid_parameter; missing libraries to capability_unavailable; failed
// surface or context creation to internal.
//
// Teardown (context, then surface) runs on every exit path once created, and
// the thread's x87 state is reset after every attempt regardless of outcome.
package render

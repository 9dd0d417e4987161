// Package native loads and binds the two shared libraries that carry the
// real SVG work: the parser (librsvg) and the rasterizer (cairo).
//
// # Loading
//
// The Loader binds each library lazily on first use, at most once per
// successful load, serialized by a mutex so concurrent first use is safe.
// Binding is all-or-nothing: if any required symbol is missing, the library
// handle is released and the slot stays empty. Failures are never cached, so
// a library installed after process start is picked up on the next call.
//
//	loader := native.NewLoader()
//	parser, err := loader.Parser() // dlopens librsvg on first call
//
// # Capability sets
//
// Parser and Raster are the fixed symbol sets required from each library.
// Components depend on these interfaces, not on dlopen directly, so tests
// substitute native.Fake via WithBinder:
//
//	fake := native.NewFake()
//	loader := native.NewLoader(native.WithBinder(fake))
//
// # Handles
//
// DocumentHandle, Surface, and DrawContext are opaque: pointer-sized values
// meaningful only to the library that issued them. The zero value is always
// invalid.
package native

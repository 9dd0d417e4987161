// Package svgbridge delegates SVG parsing and rasterization to natively
// loaded shared libraries (librsvg and cairo) behind a narrow dispatch
// boundary, and exposes the result as reference-counted document resources.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	svg-bridge/
//	├── document/   Caller-facing ref-counted Document and Factory
//	├── bridge/     Dispatch boundary: typed commands in, status codes out
//	├── render/     Rasterization pipeline over caller-owned pixel buffers
//	├── native/     Lazy dlopen/dlsym binding of the two library capability sets
//	└── errors/     Structured error types for debugging
//
// # Quick Start
//
// Parse a document and render it into a pixel buffer:
//
//	factory := document.NewFactory(native.NewLoader())
//	defer factory.Release()
//
//	doc, err := factory.CreateDocument(file, document.Size{Width: 100, Height: 100})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Release()
//
//	pixels := make([]byte, 50*200) // 50 rows, 200 bytes each
//	if err := doc.Render(pixels, 50, 50, 200); err != nil {
//	    log.Fatal(err)
//	}
//
// # Native libraries
//
// Nothing is loaded until first use. If librsvg or cairo is missing, calls
// fail with a capability_unavailable error rather than faulting, and a
// library installed later is picked up on the next call. All real parsing
// and drawing happens inside the native libraries; this module only carries
// handles, buffers, and status codes across the boundary.
//
// # Thread Safety
//
// Reference counts are atomic and every entry point may be called from any
// thread. The single caveat is the caller's: a pixel buffer must not be
// mutated by other threads while a render into it runs.
package svgbridge

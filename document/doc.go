// Package document provides the caller-facing, reference-counted SVG
// document resource.
//
// # Lifecycle
//
// A Factory creates documents; each document starts with one reference and
// pins its factory. AddRef and Release move the count atomically from any
// thread. The 1→0 transition frees the native handle exactly once and drops
// the factory reference; after it, the document must not be used.
//
//	loader := native.NewLoader()
//	factory := document.NewFactory(loader)
//
//	doc, err := factory.CreateDocument(file, document.Size{Width: 100, Height: 100})
//	if err != nil {
//	    // errors.KindReadFailed, KindParseFailed, or KindCapabilityUnavailable
//	}
//	defer doc.Release()
//
//	pixels := make([]byte, 50*200)
//	err = doc.Render(pixels, 50, 50, 200)
//
// # Pixel contract
//
// Render targets are 32 bits per pixel, premultiplied alpha, row-major with
// caller-specified stride of at least width*4 bytes. The buffer must not be
// mutated concurrently during a render; the package adds no locking of its
// own around caller memory.
package document

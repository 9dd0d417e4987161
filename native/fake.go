package native

import (
	"fmt"
	"sync"
)

// Fake is an in-memory Binder, Parser, and Raster used by tests across the
// tree. Every capability call is appended to Calls so tests can assert that a
// rejected request performed zero native work, and live handle counts verify
// the exactly-once release contract.
type Fake struct {
	mu sync.Mutex

	// Failure knobs.
	ParserUnavailable bool // BindParser fails
	RasterUnavailable bool // BindRaster fails
	RejectParse       bool // ParseData fails
	FailSurface       bool // SurfaceForData returns a null surface
	FailContext       bool // NewContext returns a null context

	// Call record, in order.
	Calls []string

	BindParserCalls int
	BindRasterCalls int

	ScaleX       float64
	ScaleY       float64
	LastViewport Rect

	next         uintptr
	live         map[DocumentHandle]bool
	liveContexts int
	liveSurfaces int
}

// NewFake creates a fake with no failures armed.
func NewFake() *Fake {
	return &Fake{live: make(map[DocumentHandle]bool)}
}

// SetParserUnavailable toggles parser bind failures, simulating the library
// appearing or disappearing between calls.
func (f *Fake) SetParserUnavailable(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ParserUnavailable = v
}

// SetRasterUnavailable toggles rasterizer bind failures.
func (f *Fake) SetRasterUnavailable(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RasterUnavailable = v
}

// LiveHandles returns the number of parsed documents not yet freed.
func (f *Fake) LiveHandles() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.live)
}

// LiveContexts returns the number of drawing contexts not yet destroyed.
func (f *Fake) LiveContexts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.liveContexts
}

// LiveSurfaces returns the number of surfaces not yet destroyed.
func (f *Fake) LiveSurfaces() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.liveSurfaces
}

// CallCount returns how many capability calls were made in total.
func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

func (f *Fake) record(call string) {
	f.Calls = append(f.Calls, call)
}

// Binder

func (f *Fake) BindParser(library string) (Parser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.BindParserCalls++
	if f.ParserUnavailable {
		return nil, fmt.Errorf("no such library %s", library)
	}
	return f, nil
}

func (f *Fake) BindRaster(library string) (Raster, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.BindRasterCalls++
	if f.RasterUnavailable {
		return nil, fmt.Errorf("no such library %s", library)
	}
	return f, nil
}

// Parser

func (f *Fake) ParseData(data []byte) (DocumentHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("parse")
	if f.RejectParse || len(data) == 0 {
		return 0, fmt.Errorf("parser rejected %d byte document", len(data))
	}
	f.next++
	h := DocumentHandle(f.next)
	f.live[h] = true
	return h, nil
}

func (f *Fake) FreeHandle(h DocumentHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("free")
	delete(f.live, h)
}

func (f *Fake) RenderDocument(h DocumentHandle, ctx DrawContext, viewport *Rect) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("render")
	f.LastViewport = *viewport
}

// Raster

func (f *Fake) SurfaceForData(pixels []byte, format, width, height, stride int32) Surface {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("surface")
	if f.FailSurface {
		return 0
	}
	f.next++
	f.liveSurfaces++
	return Surface(f.next)
}

func (f *Fake) NewContext(s Surface) DrawContext {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("context")
	if f.FailContext {
		return 0
	}
	f.next++
	f.liveContexts++
	return DrawContext(f.next)
}

func (f *Fake) Scale(ctx DrawContext, sx, sy float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("scale")
	f.ScaleX, f.ScaleY = sx, sy
}

func (f *Fake) DestroyContext(ctx DrawContext) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("destroy_context")
	f.liveContexts--
}

func (f *Fake) DestroySurface(s Surface) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("destroy_surface")
	f.liveSurfaces--
}

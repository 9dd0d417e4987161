package native

// DocumentHandle is an opaque reference to a parsed document inside the
// parser library. Handle 0 is always invalid.
type DocumentHandle uintptr

// Surface is an opaque reference to a drawing surface inside the rasterizer
// library.
type Surface uintptr

// DrawContext is an opaque reference to a drawing context bound to a Surface.
type DrawContext uintptr

// FormatARGB32 is the rasterizer's 32-bit premultiplied-alpha pixel format.
// The numeric value is part of the rasterizer's ABI.
const FormatARGB32 int32 = 0

// Rect is a viewport rectangle in document units. Layout matches the
// rectangle structure the parser library expects by pointer.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Parser is the capability set required from the parser library.
type Parser interface {
	// ParseData parses a complete document from data and returns an owned
	// handle. The native error detail, if any, is released before return.
	ParseData(data []byte) (DocumentHandle, error)

	// FreeHandle releases a handle obtained from ParseData.
	FreeHandle(h DocumentHandle)

	// RenderDocument draws the whole document into ctx, fitted to viewport,
	// with no clipping mask.
	RenderDocument(h DocumentHandle, ctx DrawContext, viewport *Rect)
}

// Raster is the capability set required from the rasterizer library.
type Raster interface {
	// SurfaceForData binds a surface directly over caller-owned pixel
	// memory. No copy is made; pixels must outlive the surface.
	SurfaceForData(pixels []byte, format, width, height, stride int32) Surface

	// NewContext creates a drawing context over a surface.
	NewContext(s Surface) DrawContext

	// Scale applies per-axis scale factors to the context.
	Scale(ctx DrawContext, sx, sy float64)

	// DestroyContext releases a drawing context.
	DestroyContext(ctx DrawContext)

	// DestroySurface releases a surface. The underlying pixel memory is
	// untouched; it belongs to the caller.
	DestroySurface(s Surface)
}

// Binder resolves a library name to its capability set. Binding is
// all-or-nothing: if any required symbol is missing the library handle is
// released and an error returned.
type Binder interface {
	BindParser(library string) (Parser, error)
	BindRaster(library string) (Raster, error)
}

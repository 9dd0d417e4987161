package render

import (
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/svg-bridge/errors"
	"github.com/wippyai/svg-bridge/native"
)

// minViewport is the smallest intrinsic document size the pipeline accepts.
// Documents with both dimensions at or below this are degenerate.
const minViewport = 0.01

// maxScale bounds the per-axis scale factor. A scale outside (0, maxScale]
// means a malformed request or a runaway render.
const maxScale = 1000.0

// Request carries one render invocation. It is validated fully before any
// native call and never mutated.
type Request struct {
	Handle    native.DocumentHandle
	Pixels    []byte  // caller-owned, 32bpp premultiplied, row-major
	SVGWidth  float64 // viewport width in document units
	SVGHeight float64 // viewport height in document units
	Width     uint32  // target width in pixels
	Height    uint32  // target height in pixels
	Stride    uint32  // bytes per row
}

// Pipeline rasterizes documents into caller-supplied pixel buffers.
type Pipeline struct {
	loader *native.Loader
}

// New creates a pipeline over the given loader.
func New(loader *native.Loader) *Pipeline {
	return &Pipeline{loader: loader}
}

// Render validates req, binds a surface over the caller's pixels, and invokes
// the native renderer. Teardown runs on every path once the surface exists,
// and the x87 state is reset after every attempt: cairo's trigonometric
// routines leave the precision flag sticky, which faults spuriously in
// threads running with unmasked exceptions.
func (p *Pipeline) Render(req *Request) error {
	defer resetFPEnv()

	if req.Handle == 0 || req.Pixels == nil {
		return errors.InvalidParameter(errors.PhaseRender, "null handle or target buffer")
	}

	if req.SVGWidth <= minViewport && req.SVGHeight <= minViewport {
		return errors.InvalidParameter(errors.PhaseRender,
			"degenerate viewport %gx%g", req.SVGWidth, req.SVGHeight)
	}

	if req.Width == 0 || req.Height == 0 || req.Stride == 0 {
		return errors.InvalidParameter(errors.PhaseRender,
			"zero dimension %dx%d stride=%d", req.Width, req.Height, req.Stride)
	}

	if uint64(len(req.Pixels)) < uint64(req.Stride)*uint64(req.Height) {
		return errors.InvalidParameter(errors.PhaseRender,
			"buffer %d bytes, need %d", len(req.Pixels), uint64(req.Stride)*uint64(req.Height))
	}

	// Pure arithmetic, so checked before any native work. An out-of-range
	// scale must never reach the libraries, loaded or not.
	scaleX := float64(req.Width) / req.SVGWidth
	scaleY := float64(req.Height) / req.SVGHeight

	if scaleX <= 0 || scaleX > maxScale || scaleY <= 0 || scaleY > maxScale {
		return errors.InvalidParameter(errors.PhaseRender,
			"scale %gx%g out of range", scaleX, scaleY)
	}

	parser, perr := p.loader.Parser()
	if perr != nil {
		return perr
	}
	raster, rerr := p.loader.Raster()
	if rerr != nil {
		return rerr
	}

	surface := raster.SurfaceForData(req.Pixels, native.FormatARGB32,
		int32(req.Width), int32(req.Height), int32(req.Stride))
	if surface == 0 {
		return errors.Internal(errors.PhaseRender, "surface creation failed")
	}
	defer raster.DestroySurface(surface)

	ctx := raster.NewContext(surface)
	if ctx == 0 {
		return errors.Internal(errors.PhaseRender, "context creation failed")
	}
	defer raster.DestroyContext(ctx)

	raster.Scale(ctx, scaleX, scaleY)

	viewport := native.Rect{Width: req.SVGWidth, Height: req.SVGHeight}

	start := time.Now()
	parser.RenderDocument(req.Handle, ctx, &viewport)
	Logger().Debug("rendered document",
		zap.Uint32("width", req.Width),
		zap.Uint32("height", req.Height),
		zap.Float64("scale_x", scaleX),
		zap.Float64("scale_y", scaleY),
		zap.Duration("elapsed", time.Since(start)))

	return nil
}

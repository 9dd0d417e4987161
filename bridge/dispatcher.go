package bridge

import (
	"go.uber.org/zap"

	"github.com/wippyai/svg-bridge/native"
	"github.com/wippyai/svg-bridge/render"
)

// Dispatcher is the sole channel to the native side: one command in, one
// status out. It is stateless and safe for concurrent use.
type Dispatcher struct {
	loader   *native.Loader
	pipeline *render.Pipeline
}

// New creates a dispatcher over the given loader.
func New(loader *native.Loader) *Dispatcher {
	return &Dispatcher{
		loader:   loader,
		pipeline: render.New(loader),
	}
}

// Loader exposes the dispatcher's loader for introspection.
func (d *Dispatcher) Loader() *native.Loader {
	return d.loader
}

// Dispatch executes one command and returns its status. Nil or unknown
// commands are invalid parameters.
func (d *Dispatcher) Dispatch(cmd Command) Status {
	switch c := cmd.(type) {
	case *CreateDocument:
		return d.createDocument(c)
	case *FreeDocument:
		return d.freeDocument(c)
	case *RenderDocument:
		return d.renderDocument(c)
	default:
		Logger().Warn("unknown command", zap.Any("command", cmd))
		return StatusInvalidParameter
	}
}

func (d *Dispatcher) createDocument(c *CreateDocument) Status {
	c.Handle = 0

	parser, err := d.loader.Parser()
	if err != nil {
		return StatusNotSupported
	}

	handle, err := parser.ParseData(c.Data)
	if err != nil {
		Logger().Warn("parse failed", zap.Int("size", len(c.Data)), zap.Error(err))
		return StatusUnsuccessful
	}

	Logger().Debug("created document",
		zap.Int("size", len(c.Data)), zap.Uint64("handle", uint64(handle)))
	c.Handle = handle
	return StatusOK
}

// freeDocument never triggers a load: a handle can only exist if the parser
// was bound at some point, and an unloaded parser means there is nothing to
// release.
func (d *Dispatcher) freeDocument(c *FreeDocument) Status {
	if c.Handle == 0 {
		return StatusOK
	}
	if parser, ok := d.loader.ParserIfLoaded(); ok {
		parser.FreeHandle(c.Handle)
	}
	return StatusOK
}

func (d *Dispatcher) renderDocument(c *RenderDocument) Status {
	err := d.pipeline.Render(&render.Request{
		Handle:    c.Handle,
		Pixels:    c.Pixels,
		SVGWidth:  c.SVGWidth,
		SVGHeight: c.SVGHeight,
		Width:     c.Width,
		Height:    c.Height,
		Stride:    c.Stride,
	})
	return statusFromError(err)
}

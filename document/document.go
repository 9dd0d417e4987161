package document

import (
	"io"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/svg-bridge/bridge"
	"github.com/wippyai/svg-bridge/errors"
	"github.com/wippyai/svg-bridge/native"
)

// Capability identifies a caller-visible contract a resource may answer for.
type Capability string

const (
	// CapabilityResource is the base contract every resource carries.
	CapabilityResource Capability = "resource"
	// CapabilityDocument is the SVG document contract.
	CapabilityDocument Capability = "svg-document"
)

// Document is a reference-counted handle to a parsed SVG document. It owns
// the opaque native handle exclusively: the handle is valid from successful
// creation until the last Release, is freed exactly once, and is never
// accessed afterwards.
//
// Reference counts move atomically from any thread; no other field mutates
// after construction.
type Document struct {
	refs     atomic.Int64
	handle   native.DocumentHandle
	viewport Size
	factory  *Factory
}

// CreateDocument reads the complete SVG document from r and parses it across
// the dispatch boundary. The returned document starts with one reference and
// pins its owning factory. On failure nothing leaks: a handle is only
// obtained when the whole operation succeeds.
func (f *Factory) CreateDocument(r io.Reader, viewport Size) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.ReadFailed("read document stream", err)
	}
	if len(data) == 0 {
		return nil, errors.ReadFailed("empty document stream", nil)
	}

	cmd := &bridge.CreateDocument{Data: data}
	switch st := f.dispatcher.Dispatch(cmd); st {
	case bridge.StatusOK:
	case bridge.StatusNotSupported:
		return nil, errors.CapabilityUnavailable(errors.PhaseResource, "svg parser", nil)
	default:
		return nil, errors.ParseFailed("parser rejected document")
	}

	doc := &Document{
		handle:   cmd.Handle,
		viewport: viewport,
		factory:  f,
	}
	doc.refs.Store(1)
	f.AddRef()

	Logger().Debug("document created",
		zap.Int("size", len(data)),
		zap.Float64("viewport_width", viewport.Width),
		zap.Float64("viewport_height", viewport.Height))
	return doc, nil
}

// AddRef increments the reference count and returns the new count.
func (d *Document) AddRef() int64 {
	return d.refs.Add(1)
}

// Release decrements the reference count and returns the new count. On the
// transition to zero the native handle is freed (skipped harmlessly if the
// parser capability is gone by then) and the factory reference is released.
func (d *Document) Release() int64 {
	refs := d.refs.Add(-1)
	if refs == 0 {
		d.factory.Dispatcher().Dispatch(&bridge.FreeDocument{Handle: d.handle})
		d.factory.Release()
		Logger().Debug("document destroyed")
	}
	return refs
}

// Factory returns the owning factory with a new reference on it.
func (d *Document) Factory() *Factory {
	d.factory.AddRef()
	return d.factory
}

// ViewportSize returns the viewport the document was created with.
func (d *Document) ViewportSize() Size {
	return d.viewport
}

// Query answers for the document's own contracts with a new reference on the
// document; any other capability is unsupported.
func (d *Document) Query(c Capability) (*Document, error) {
	switch c {
	case CapabilityResource, CapabilityDocument:
		d.AddRef()
		return d, nil
	default:
		return nil, errors.Unsupported(errors.PhaseResource, string(c))
	}
}

// Render rasterizes the document into pixels, a caller-owned 32bpp
// premultiplied buffer of height rows of stride bytes, scaling the
// document's viewport to fill width by height pixels.
func (d *Document) Render(pixels []byte, width, height, stride uint32) error {
	cmd := &bridge.RenderDocument{
		Handle:    d.handle,
		Pixels:    pixels,
		SVGWidth:  d.viewport.Width,
		SVGHeight: d.viewport.Height,
		Width:     width,
		Height:    height,
		Stride:    stride,
	}
	switch st := d.factory.Dispatcher().Dispatch(cmd); st {
	case bridge.StatusOK:
		return nil
	case bridge.StatusInvalidParameter:
		return errors.InvalidParameter(errors.PhaseResource,
			"render %dx%d stride=%d rejected", width, height, stride)
	case bridge.StatusNotSupported:
		return errors.CapabilityUnavailable(errors.PhaseResource, "svg renderer", nil)
	default:
		return errors.Internal(errors.PhaseResource, "native render failed")
	}
}

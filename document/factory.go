package document

import (
	"sync/atomic"

	"github.com/wippyai/svg-bridge/bridge"
	"github.com/wippyai/svg-bridge/native"
)

// Size is a viewport size in document units.
type Size struct {
	Width  float64
	Height float64
}

// Factory creates documents and owns the dispatch boundary they share.
// It is reference-counted: each live Document holds one reference, released
// when the document's own count reaches zero.
type Factory struct {
	refs       atomic.Int64
	dispatcher *bridge.Dispatcher
}

// NewFactory creates a factory over the given loader with one reference,
// owned by the caller.
func NewFactory(loader *native.Loader) *Factory {
	f := &Factory{dispatcher: bridge.New(loader)}
	f.refs.Store(1)
	return f
}

// AddRef increments the factory's reference count and returns the new count.
func (f *Factory) AddRef() int64 {
	return f.refs.Add(1)
}

// Release decrements the factory's reference count and returns the new
// count. The factory holds no native state of its own; the count exists so
// documents can pin their owner for back-reference queries.
func (f *Factory) Release() int64 {
	return f.refs.Add(-1)
}

// Dispatcher exposes the factory's dispatch boundary.
func (f *Factory) Dispatcher() *bridge.Dispatcher {
	return f.dispatcher
}

package bridge

import (
	"github.com/wippyai/svg-bridge/native"
)

// Command is the closed set of operations that cross the dispatch boundary.
// Each variant carries its own flat parameter block: byte and pixel buffers
// travel as slices with explicit dimensions, everything else by value.
//
// The set is sealed; the dispatcher matches exhaustively over it.
type Command interface {
	isCommand()
}

// CreateDocument parses Data into a native document. On StatusOK, Handle
// holds the new handle and its ownership passes to the caller.
type CreateDocument struct {
	Data   []byte
	Handle native.DocumentHandle // out
}

// FreeDocument releases a handle obtained from CreateDocument. A null handle
// or an unloaded parser makes it a no-op; it never fails.
type FreeDocument struct {
	Handle native.DocumentHandle
}

// RenderDocument rasterizes a document into caller-owned pixel memory.
type RenderDocument struct {
	Handle    native.DocumentHandle
	Pixels    []byte
	SVGWidth  float64
	SVGHeight float64
	Width     uint32
	Height    uint32
	Stride    uint32
}

func (*CreateDocument) isCommand() {}
func (*FreeDocument) isCommand()   {}
func (*RenderDocument) isCommand() {}

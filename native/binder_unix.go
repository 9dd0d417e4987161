//go:build darwin || freebsd || linux

package native

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// systemBinder resolves capability sets with dlopen/dlsym via purego.
type systemBinder struct{}

// parserSymbols and rasterSymbols are the required entry points per library.
// Missing any one of them fails the load for that library as a whole.
var parserSymbols = []string{
	"rsvg_handle_new_from_data",
	"g_object_unref",
	"g_error_free",
	"rsvg_handle_render_document",
}

var rasterSymbols = []string{
	"cairo_image_surface_create_for_data",
	"cairo_create",
	"cairo_destroy",
	"cairo_surface_destroy",
	"cairo_scale",
}

// open loads a library and resolves every name in symbols. On any failure the
// library handle is closed and nothing is cached, so a later attempt starts
// from scratch.
func open(library string, symbols []string) (map[string]uintptr, error) {
	handle, err := purego.Dlopen(library, purego.RTLD_NOW)
	if err != nil {
		return nil, fmt.Errorf("dlopen %s: %w", library, err)
	}

	addrs := make(map[string]uintptr, len(symbols))
	for _, name := range symbols {
		addr, err := purego.Dlsym(handle, name)
		if err != nil || addr == 0 {
			purego.Dlclose(handle)
			return nil, fmt.Errorf("dlsym %s in %s: %w", name, library, err)
		}
		addrs[name] = addr
	}
	return addrs, nil
}

type dlParser struct {
	newFromData    func(data *byte, length uintptr, gerr *uintptr) uintptr
	objectUnref    func(object uintptr)
	errorFree      func(gerr uintptr)
	renderDocument func(handle, ctx uintptr, viewport *Rect, id uintptr)
}

func (systemBinder) BindParser(library string) (Parser, error) {
	addrs, err := open(library, parserSymbols)
	if err != nil {
		return nil, err
	}

	p := &dlParser{}
	purego.RegisterFunc(&p.newFromData, addrs["rsvg_handle_new_from_data"])
	purego.RegisterFunc(&p.objectUnref, addrs["g_object_unref"])
	purego.RegisterFunc(&p.errorFree, addrs["g_error_free"])
	purego.RegisterFunc(&p.renderDocument, addrs["rsvg_handle_render_document"])
	return p, nil
}

func (p *dlParser) ParseData(data []byte) (DocumentHandle, error) {
	var ptr *byte
	if len(data) > 0 {
		ptr = &data[0]
	}

	var gerr uintptr
	handle := p.newFromData(ptr, uintptr(len(data)), &gerr)
	runtime.KeepAlive(data)

	if handle == 0 {
		// The native error detail never crosses the boundary; release it.
		if gerr != 0 {
			p.errorFree(gerr)
		}
		return 0, fmt.Errorf("parser rejected %d byte document", len(data))
	}
	return DocumentHandle(handle), nil
}

func (p *dlParser) FreeHandle(h DocumentHandle) {
	if h != 0 {
		p.objectUnref(uintptr(h))
	}
}

func (p *dlParser) RenderDocument(h DocumentHandle, ctx DrawContext, viewport *Rect) {
	p.renderDocument(uintptr(h), uintptr(ctx), viewport, 0)
}

type dlRaster struct {
	surfaceForData func(data *byte, format, width, height, stride int32) uintptr
	create         func(surface uintptr) uintptr
	destroy        func(ctx uintptr)
	surfaceDestroy func(surface uintptr)
	scale          func(ctx uintptr, sx, sy float64)
}

func (systemBinder) BindRaster(library string) (Raster, error) {
	addrs, err := open(library, rasterSymbols)
	if err != nil {
		return nil, err
	}

	r := &dlRaster{}
	purego.RegisterFunc(&r.surfaceForData, addrs["cairo_image_surface_create_for_data"])
	purego.RegisterFunc(&r.create, addrs["cairo_create"])
	purego.RegisterFunc(&r.destroy, addrs["cairo_destroy"])
	purego.RegisterFunc(&r.surfaceDestroy, addrs["cairo_surface_destroy"])
	purego.RegisterFunc(&r.scale, addrs["cairo_scale"])
	return r, nil
}

func (r *dlRaster) SurfaceForData(pixels []byte, format, width, height, stride int32) Surface {
	var ptr *byte
	if len(pixels) > 0 {
		ptr = &pixels[0]
	}
	s := r.surfaceForData(ptr, format, width, height, stride)
	runtime.KeepAlive(pixels)
	return Surface(s)
}

func (r *dlRaster) NewContext(s Surface) DrawContext {
	return DrawContext(r.create(uintptr(s)))
}

func (r *dlRaster) Scale(ctx DrawContext, sx, sy float64) {
	r.scale(uintptr(ctx), sx, sy)
}

func (r *dlRaster) DestroyContext(ctx DrawContext) {
	r.destroy(uintptr(ctx))
}

func (r *dlRaster) DestroySurface(s Surface) {
	r.surfaceDestroy(uintptr(s))
}

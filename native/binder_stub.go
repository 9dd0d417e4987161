//go:build !(darwin || freebsd || linux)

package native

import "fmt"

// systemBinder on platforms without dlopen support reports every library as
// unavailable. The loader surfaces this as capability_unavailable.
type systemBinder struct{}

func (systemBinder) BindParser(library string) (Parser, error) {
	return nil, fmt.Errorf("dynamic loading of %s not supported on this platform", library)
}

func (systemBinder) BindRaster(library string) (Raster, error) {
	return nil, fmt.Errorf("dynamic loading of %s not supported on this platform", library)
}

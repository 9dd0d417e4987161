package native

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/svg-bridge/errors"
)

// Default library names. Overridable via options for packagers that install
// differently-versioned sonames.
const (
	DefaultParserLibrary = "librsvg-2.so.2"
	DefaultRasterLibrary = "libcairo.so.2"
)

// Loader lazily binds the parser and rasterizer capability sets, at most once
// each per successful load. A failed load leaves the slot empty; the next
// call retries.
type Loader struct {
	mu        sync.Mutex
	binder    Binder
	parserLib string
	rasterLib string
	parser    Parser
	raster    Raster
}

// Option configures a Loader.
type Option func(*Loader)

// WithParserLibrary overrides the parser library name.
func WithParserLibrary(name string) Option {
	return func(l *Loader) { l.parserLib = name }
}

// WithRasterLibrary overrides the rasterizer library name.
func WithRasterLibrary(name string) Option {
	return func(l *Loader) { l.rasterLib = name }
}

// WithBinder substitutes the symbol binder. Tests use this to inject a fake.
func WithBinder(b Binder) Option {
	return func(l *Loader) { l.binder = b }
}

// NewLoader creates a loader with the platform binder and default library
// names. Nothing is opened until the first Parser or Raster call.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		binder:    systemBinder{},
		parserLib: DefaultParserLibrary,
		rasterLib: DefaultRasterLibrary,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Parser returns the parser capability set, binding it on first use.
func (l *Loader) Parser() (Parser, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.parser != nil {
		return l.parser, nil
	}

	p, err := l.binder.BindParser(l.parserLib)
	if err != nil {
		Logger().Warn("parser library unavailable",
			zap.String("library", l.parserLib), zap.Error(err))
		return nil, errors.CapabilityUnavailable(errors.PhaseLoad, l.parserLib, err)
	}

	Logger().Debug("parser library loaded", zap.String("library", l.parserLib))
	l.parser = p
	return p, nil
}

// Raster returns the rasterizer capability set, binding it on first use.
func (l *Loader) Raster() (Raster, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.raster != nil {
		return l.raster, nil
	}

	r, err := l.binder.BindRaster(l.rasterLib)
	if err != nil {
		Logger().Warn("rasterizer library unavailable",
			zap.String("library", l.rasterLib), zap.Error(err))
		return nil, errors.CapabilityUnavailable(errors.PhaseLoad, l.rasterLib, err)
	}

	Logger().Debug("rasterizer library loaded", zap.String("library", l.rasterLib))
	l.raster = r
	return r, nil
}

// ParserIfLoaded returns the parser capability only if a previous load
// succeeded. It never triggers a load; teardown paths use it so releasing a
// handle cannot fault when the environment changed underneath the process.
func (l *Loader) ParserIfLoaded() (Parser, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.parser, l.parser != nil
}

// ParserLoaded reports whether the parser capability is bound.
func (l *Loader) ParserLoaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.parser != nil
}

// RasterLoaded reports whether the rasterizer capability is bound.
func (l *Loader) RasterLoaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.raster != nil
}

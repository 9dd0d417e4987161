package native

import (
	"sync"
	"testing"

	stderrors "errors"

	"github.com/wippyai/svg-bridge/errors"
)

func TestLoader_BindsOnce(t *testing.T) {
	fake := NewFake()
	loader := NewLoader(WithBinder(fake))

	for i := 0; i < 3; i++ {
		if _, err := loader.Parser(); err != nil {
			t.Fatalf("Parser failed: %v", err)
		}
	}
	if fake.BindParserCalls != 1 {
		t.Fatalf("Expected 1 bind, got %d", fake.BindParserCalls)
	}

	for i := 0; i < 3; i++ {
		if _, err := loader.Raster(); err != nil {
			t.Fatalf("Raster failed: %v", err)
		}
	}
	if fake.BindRasterCalls != 1 {
		t.Fatalf("Expected 1 bind, got %d", fake.BindRasterCalls)
	}
}

func TestLoader_FailureNotCached(t *testing.T) {
	fake := NewFake()
	fake.ParserUnavailable = true
	loader := NewLoader(WithBinder(fake))

	_, err := loader.Parser()
	if err == nil {
		t.Fatal("Expected load failure")
	}
	target := &errors.Error{Phase: errors.PhaseLoad, Kind: errors.KindCapabilityUnavailable}
	if !stderrors.Is(err, target) {
		t.Fatalf("Expected capability_unavailable, got %v", err)
	}

	// Library shows up later; the next call must retry and succeed.
	fake.SetParserUnavailable(false)
	if _, err := loader.Parser(); err != nil {
		t.Fatalf("Retry after failure should succeed: %v", err)
	}
	if fake.BindParserCalls != 2 {
		t.Fatalf("Expected 2 bind attempts, got %d", fake.BindParserCalls)
	}
}

func TestLoader_ParserIfLoaded(t *testing.T) {
	fake := NewFake()
	loader := NewLoader(WithBinder(fake))

	if _, ok := loader.ParserIfLoaded(); ok {
		t.Fatal("ParserIfLoaded must not trigger a load")
	}
	if fake.BindParserCalls != 0 {
		t.Fatalf("ParserIfLoaded bound the library: %d calls", fake.BindParserCalls)
	}

	if _, err := loader.Parser(); err != nil {
		t.Fatalf("Parser failed: %v", err)
	}
	if _, ok := loader.ParserIfLoaded(); !ok {
		t.Fatal("ParserIfLoaded should see the bound parser")
	}
}

func TestLoader_ConcurrentFirstUse(t *testing.T) {
	fake := NewFake()
	loader := NewLoader(WithBinder(fake))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := loader.Parser(); err != nil {
				t.Errorf("Parser failed: %v", err)
			}
			if _, err := loader.Raster(); err != nil {
				t.Errorf("Raster failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if fake.BindParserCalls != 1 || fake.BindRasterCalls != 1 {
		t.Fatalf("Binding ran more than once: parser=%d raster=%d",
			fake.BindParserCalls, fake.BindRasterCalls)
	}
}

func TestLoader_Introspection(t *testing.T) {
	fake := NewFake()
	loader := NewLoader(WithBinder(fake))

	if loader.ParserLoaded() || loader.RasterLoaded() {
		t.Fatal("Nothing should be loaded before first use")
	}
	if _, err := loader.Raster(); err != nil {
		t.Fatalf("Raster failed: %v", err)
	}
	if loader.ParserLoaded() {
		t.Fatal("Loading the rasterizer must not load the parser")
	}
	if !loader.RasterLoaded() {
		t.Fatal("RasterLoaded should report true")
	}
}

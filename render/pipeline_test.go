package render

import (
	"testing"

	"github.com/wippyai/svg-bridge/errors"
	"github.com/wippyai/svg-bridge/native"
)

func newTestPipeline() (*Pipeline, *native.Fake) {
	fake := native.NewFake()
	loader := native.NewLoader(native.WithBinder(fake))
	return New(loader), fake
}

func validRequest(h native.DocumentHandle) *Request {
	return &Request{
		Handle:    h,
		Pixels:    make([]byte, 200*50),
		SVGWidth:  100,
		SVGHeight: 100,
		Width:     50,
		Height:    50,
		Stride:    200,
	}
}

func parseHandle(t *testing.T, fake *native.Fake) native.DocumentHandle {
	t.Helper()
	h, err := fake.ParseData([]byte("<svg/>"))
	if err != nil {
		t.Fatalf("ParseData failed: %v", err)
	}
	return h
}

func TestRender_Success(t *testing.T) {
	p, fake := newTestPipeline()
	h := parseHandle(t, fake)

	if err := p.Render(validRequest(h)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// 50 target pixels over 100 document units on each axis.
	if fake.ScaleX != 0.5 || fake.ScaleY != 0.5 {
		t.Fatalf("Expected scale (0.5, 0.5), got (%g, %g)", fake.ScaleX, fake.ScaleY)
	}

	vp := fake.LastViewport
	if vp.X != 0 || vp.Y != 0 || vp.Width != 100 || vp.Height != 100 {
		t.Fatalf("Expected viewport at origin 100x100, got %+v", vp)
	}

	if fake.LiveContexts() != 0 || fake.LiveSurfaces() != 0 {
		t.Fatal("Context or surface leaked after successful render")
	}
}

func TestRender_CallOrder(t *testing.T) {
	p, fake := newTestPipeline()
	h := parseHandle(t, fake)

	if err := p.Render(validRequest(h)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := []string{"parse", "surface", "context", "scale", "render", "destroy_context", "destroy_surface"}
	if len(fake.Calls) != len(want) {
		t.Fatalf("Expected calls %v, got %v", want, fake.Calls)
	}
	for i, call := range want {
		if fake.Calls[i] != call {
			t.Fatalf("Call %d: expected %s, got %v", i, call, fake.Calls)
		}
	}
}

func TestRender_InvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"null handle", func(r *Request) { r.Handle = 0 }},
		{"null buffer", func(r *Request) { r.Pixels = nil }},
		{"degenerate viewport", func(r *Request) { r.SVGWidth, r.SVGHeight = 0, 0 }},
		{"zero width", func(r *Request) { r.Width = 0 }},
		{"zero height", func(r *Request) { r.Height = 0 }},
		{"zero stride", func(r *Request) { r.Stride = 0 }},
		{"short buffer", func(r *Request) { r.Pixels = make([]byte, 100) }},
		{"negative viewport", func(r *Request) { r.SVGWidth = -100 }},
		{"scale too large", func(r *Request) { r.SVGWidth = 0.02 }},
		{"infinite scale", func(r *Request) { r.SVGWidth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, fake := newTestPipeline()
			req := validRequest(1)
			tt.mutate(req)

			err := p.Render(req)
			if !errors.IsKind(err, errors.KindInvalidParameter) {
				t.Fatalf("Expected invalid_parameter, got %v", err)
			}
			if fake.CallCount() != 0 {
				t.Fatalf("Rejected request made native calls: %v", fake.Calls)
			}
			if fake.BindParserCalls != 0 || fake.BindRasterCalls != 0 {
				t.Fatal("Rejected request attempted a library load")
			}
		})
	}
}

func TestRender_CapabilityUnavailable(t *testing.T) {
	p, fake := newTestPipeline()
	fake.RasterUnavailable = true

	err := p.Render(validRequest(1))
	if !errors.IsKind(err, errors.KindCapabilityUnavailable) {
		t.Fatalf("Expected capability_unavailable, got %v", err)
	}

	// Environment changes; the same pipeline must recover.
	fake.SetRasterUnavailable(false)
	h := parseHandle(t, fake)
	if err := p.Render(validRequest(h)); err != nil {
		t.Fatalf("Render after library became available failed: %v", err)
	}
}

func TestRender_SurfaceFailure(t *testing.T) {
	p, fake := newTestPipeline()
	fake.FailSurface = true
	h := parseHandle(t, fake)

	err := p.Render(validRequest(h))
	if !errors.IsKind(err, errors.KindInternal) {
		t.Fatalf("Expected internal, got %v", err)
	}
	if fake.LiveSurfaces() != 0 || fake.LiveContexts() != 0 {
		t.Fatal("Failed surface creation leaked state")
	}
}

func TestRender_ContextFailureDestroysSurface(t *testing.T) {
	p, fake := newTestPipeline()
	fake.FailContext = true
	h := parseHandle(t, fake)

	err := p.Render(validRequest(h))
	if !errors.IsKind(err, errors.KindInternal) {
		t.Fatalf("Expected internal, got %v", err)
	}
	if fake.LiveSurfaces() != 0 {
		t.Fatal("Surface not destroyed after context creation failed")
	}

	last := fake.Calls[len(fake.Calls)-1]
	if last != "destroy_surface" {
		t.Fatalf("Expected teardown to end with destroy_surface, got %v", fake.Calls)
	}
}

func TestRender_StrideWiderThanRow(t *testing.T) {
	p, fake := newTestPipeline()
	h := parseHandle(t, fake)

	req := validRequest(h)
	req.Stride = 256 // padded rows
	req.Pixels = make([]byte, 256*50)

	if err := p.Render(req); err != nil {
		t.Fatalf("Render with padded stride failed: %v", err)
	}
}

package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"

	"github.com/wippyai/svg-bridge/bridge"
	"github.com/wippyai/svg-bridge/document"
	"github.com/wippyai/svg-bridge/native"
	"github.com/wippyai/svg-bridge/render"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to SVG file")
		outFile     = flag.String("out", "out.png", "Output PNG path")
		width       = flag.Uint("width", 512, "Target width in pixels")
		height      = flag.Uint("height", 512, "Target height in pixels")
		viewport    = flag.String("viewport", "", "Document viewport as WxH in document units (default: target size)")
		resize      = flag.String("resize", "", "Resize output to WxH after rendering")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: svgrender -in <file.svg> [-out out.png] [-width N] [-height N]")
		fmt.Fprintln(os.Stderr, "       svgrender -in <file.svg> [-viewport WxH] [-resize WxH]")
		fmt.Fprintln(os.Stderr, "       svgrender -in <file.svg> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			native.SetLogger(logger)
			bridge.SetLogger(logger)
			render.SetLogger(logger)
			document.SetLogger(logger)
		}
	}

	if *interactive {
		if err := runInteractive(*inFile, uint32(*width), uint32(*height)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inFile, *outFile, uint32(*width), uint32(*height), *viewport, *resize); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(inFile, outFile string, width, height uint32, viewportStr, resizeStr string) error {
	vpW, vpH := float64(width), float64(height)
	if viewportStr != "" {
		w, h, err := parseSize(viewportStr)
		if err != nil {
			return fmt.Errorf("viewport: %w", err)
		}
		vpW, vpH = float64(w), float64(h)
	}

	factory := document.NewFactory(newLoader())
	defer factory.Release()

	file, err := os.Open(inFile)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	doc, err := factory.CreateDocument(file, document.Size{Width: vpW, Height: vpH})
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	defer doc.Release()

	img, err := renderImage(doc, width, height)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if resizeStr != "" {
		w, h, err := parseSize(resizeStr)
		if err != nil {
			return fmt.Errorf("resize: %w", err)
		}
		dst := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
		img = dst
	}

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	fmt.Printf("Rendered %s -> %s (%dx%d)\n", inFile, outFile, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

// newLoader builds the loader, honoring SVGBRIDGE_RSVG and SVGBRIDGE_CAIRO
// overrides for non-default sonames.
func newLoader() *native.Loader {
	var opts []native.Option
	if lib := os.Getenv("SVGBRIDGE_RSVG"); lib != "" {
		opts = append(opts, native.WithParserLibrary(lib))
	}
	if lib := os.Getenv("SVGBRIDGE_CAIRO"); lib != "" {
		opts = append(opts, native.WithRasterLibrary(lib))
	}
	return native.NewLoader(opts...)
}

// renderImage renders doc into a fresh buffer and converts it to an RGBA
// image. Both the native buffer and image.RGBA are alpha-premultiplied; only
// the channel order differs.
func renderImage(doc *document.Document, width, height uint32) (*image.RGBA, error) {
	stride := width * 4
	pixels := make([]byte, int(stride)*int(height))

	if err := doc.Render(pixels, width, height, stride); err != nil {
		return nil, err
	}
	return bgraToRGBA(pixels, int(width), int(height), int(stride)), nil
}

func bgraToRGBA(pixels []byte, width, height, stride int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := pixels[y*stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < width; x++ {
			dst[x*4+0] = src[x*4+2]
			dst[x*4+1] = src[x*4+1]
			dst[x*4+2] = src[x*4+0]
			dst[x*4+3] = src[x*4+3]
		}
	}
	return img
}

func parseSize(s string) (uint32, uint32, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("expected WxH, got %q", s)
	}
	pw, err := strconv.ParseUint(w, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("bad width %q", w)
	}
	ph, err := strconv.ParseUint(h, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("bad height %q", h)
	}
	if pw == 0 || ph == 0 {
		return 0, 0, fmt.Errorf("size %q has a zero dimension", s)
	}
	return uint32(pw), uint32(ph), nil
}

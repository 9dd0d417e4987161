package main

import (
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/svg-bridge/document"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	factory  *document.Factory
	doc      *document.Document
	preview  viewport.Model
	filename string
	fileSize int
	width    uint32
	height   uint32
	zoom     float64
	elapsed  time.Duration
	rendered bool
}

type renderDoneMsg struct {
	img     *image.RGBA
	elapsed time.Duration
	err     error
}

func runInteractive(inFile string, width, height uint32) error {
	data, err := os.ReadFile(inFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	factory := document.NewFactory(newLoader())
	doc, err := factory.CreateDocument(strings.NewReader(string(data)),
		document.Size{Width: float64(width), Height: float64(height)})
	if err != nil {
		factory.Release()
		return fmt.Errorf("create document: %w", err)
	}

	m := interactiveModel{
		factory:  factory,
		doc:      doc,
		preview:  viewport.New(80, 24),
		filename: inFile,
		fileSize: len(data),
		width:    width,
		height:   height,
		zoom:     1.0,
	}
	defer func() {
		doc.Release()
		factory.Release()
	}()

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m interactiveModel) Init() tea.Cmd {
	return m.renderCmd()
}

func (m interactiveModel) renderCmd() tea.Cmd {
	doc, w, h := m.doc, m.scaledWidth(), m.scaledHeight()
	return func() tea.Msg {
		start := time.Now()
		img, err := renderImage(doc, w, h)
		return renderDoneMsg{img: img, elapsed: time.Since(start), err: err}
	}
}

func (m interactiveModel) scaledWidth() uint32  { return uint32(float64(m.width) * m.zoom) }
func (m interactiveModel) scaledHeight() uint32 { return uint32(float64(m.height) * m.zoom) }

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			m.zoom *= 2
			m.rendered = false
			return m, m.renderCmd()
		case "-":
			if m.zoom > 0.125 {
				m.zoom /= 2
				m.rendered = false
				return m, m.renderCmd()
			}
		case "r":
			m.rendered = false
			return m, m.renderCmd()
		}

	case tea.WindowSizeMsg:
		m.preview.Width = msg.Width
		m.preview.Height = msg.Height - 8

	case renderDoneMsg:
		m.err = msg.err
		m.elapsed = msg.elapsed
		m.rendered = msg.err == nil
		if msg.img != nil {
			m.preview.SetContent(halfBlockPreview(msg.img, m.preview.Width))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("svgrender"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("File: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%s (%d bytes)", m.filename, m.fileSize)))
	b.WriteString("\n")

	vp := m.doc.ViewportSize()
	b.WriteString(labelStyle.Render("Viewport: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%gx%g units", vp.Width, vp.Height)))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Target: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%dx%d px (zoom %gx)",
		m.scaledWidth(), m.scaledHeight(), m.zoom)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.rendered {
		b.WriteString(labelStyle.Render("Rendered in: "))
		b.WriteString(valueStyle.Render(m.elapsed.String()))
		b.WriteString("\n\n")
		b.WriteString(m.preview.View())
	} else {
		b.WriteString(helpStyle.Render("rendering..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("+/- zoom • r re-render • ↑/↓ scroll • q quit"))
	return b.String()
}

// halfBlockPreview draws the image as terminal half-blocks, two pixel rows
// per text line, downsampling to fit maxCols columns.
func halfBlockPreview(img *image.RGBA, maxCols int) string {
	if maxCols < 8 {
		maxCols = 8
	}
	bounds := img.Bounds()
	step := 1
	for bounds.Dx()/step > maxCols {
		step++
	}

	var b strings.Builder
	for y := bounds.Min.Y; y+step < bounds.Max.Y; y += 2 * step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			top := img.RGBAAt(x, y)
			bottom := img.RGBAAt(x, y+step)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", top.R, top.G, top.B))).
				Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", bottom.R, bottom.G, bottom.B)))
			b.WriteString(style.Render("▀"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

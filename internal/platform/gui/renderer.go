// Package gui runs the maze simulation in an Ebiten window. The simulation
// goroutine records each frame as a display list; Ebiten's Draw replays the
// latest presented list on the main thread.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/maze-chase/internal/core"

	_ "image/jpeg" // Map and pacman assets are JPEG files
	_ "image/png"
)

type opKind int

const (
	opLine opKind = iota
	opImage
	opFill
)

// drawOp is one recorded draw call.
type drawOp struct {
	kind       opKind
	x0, y0     float32
	x1, y1     float32
	color      color.Color
	image      *ebiten.Image
	asset      string
	x, y, w, h int
}

// ImageLoader loads an image asset by path.
type ImageLoader func(path string) (*ebiten.Image, error)

// LoadImageFile loads an image from disk with ebitenutil.
func LoadImageFile(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	return img, err
}

// newPlaceholder creates the stand-in image for a missing asset.
var newPlaceholder = func(c core.Color) *ebiten.Image {
	img := ebiten.NewImage(core.CellSize, core.CellSize)
	img.Fill(c)
	return img
}

// WithPlaceholders wraps load so that asset files that do not exist are drawn
// as solid squares in the asset's color from colors. Other errors pass through.
func WithPlaceholders(load ImageLoader, colors map[string]core.Color, logger *log.Logger) ImageLoader {
	return func(path string) (*ebiten.Image, error) {
		img, err := load(path)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return img, err
		}
		c, ok := colors[path]
		if !ok {
			c = core.ColorGray
		}
		if logger != nil {
			logger.Warn("image asset missing, drawing a placeholder", "asset", path)
		}
		return newPlaceholder(c), nil
	}
}

// Renderer records frames for an Ebiten window. It implements sim.Renderer.
type Renderer struct {
	load ImageLoader

	// Owned by the simulation goroutine.
	images  map[string]*ebiten.Image
	pending []drawOp

	mu        sync.Mutex
	presented []drawOp
	frames    int
}

// NewRenderer creates a renderer that loads assets with load. A nil loader
// reads image files from disk.
func NewRenderer(load ImageLoader) *Renderer {
	if load == nil {
		load = LoadImageFile
	}
	return &Renderer{
		load:   load,
		images: make(map[string]*ebiten.Image),
	}
}

func (r *Renderer) Clear() error {
	r.pending = r.pending[:0]
	return nil
}

func (r *Renderer) DrawLine(p0, p1 core.Point, c core.Color) error {
	r.pending = append(r.pending, drawOp{
		kind:  opLine,
		x0:    float32(p0.X),
		y0:    float32(p0.Y),
		x1:    float32(p1.X),
		y1:    float32(p1.Y),
		color: c,
	})
	return nil
}

// DrawImage draws asset stretched over the rectangle. The asset is loaded on
// first use; a load failure is returned.
func (r *Renderer) DrawImage(asset string, x, y, w, h int) error {
	img, ok := r.images[asset]
	if !ok {
		var err error
		img, err = r.load(asset)
		if err != nil {
			return fmt.Errorf("gui: load image %q: %w", asset, err)
		}
		r.images[asset] = img
	}
	r.pending = append(r.pending, drawOp{kind: opImage, image: img, asset: asset, x: x, y: y, w: w, h: h})
	return nil
}

func (r *Renderer) FillRect(x, y, w, h int, c core.Color) error {
	r.pending = append(r.pending, drawOp{kind: opFill, x: x, y: y, w: w, h: h, color: c})
	return nil
}

// Present publishes the recorded frame to the window.
func (r *Renderer) Present() error {
	frame := make([]drawOp, len(r.pending))
	copy(frame, r.pending)

	r.mu.Lock()
	r.presented = frame
	r.frames++
	r.mu.Unlock()
	return nil
}

// Frames returns how many frames were presented.
func (r *Renderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *Renderer) latest() []drawOp {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.presented
}

// Draw replays the latest presented frame onto dst.
func (r *Renderer) Draw(dst *ebiten.Image) {
	dst.Fill(color.Black)
	for _, op := range r.latest() {
		switch op.kind {
		case opLine:
			vector.StrokeLine(dst, op.x0, op.y0, op.x1, op.y1, 1, op.color, false)
		case opFill:
			vector.DrawFilledRect(dst, float32(op.x), float32(op.y), float32(op.w), float32(op.h), op.color, false)
		case opImage:
			if op.image == nil {
				continue
			}
			b := op.image.Bounds()
			opts := &ebiten.DrawImageOptions{}
			opts.GeoM.Scale(float64(op.w)/float64(b.Dx()), float64(op.h)/float64(b.Dy()))
			opts.GeoM.Translate(float64(op.x), float64(op.y))
			dst.DrawImage(op.image, opts)
		}
	}
}

// Package placeholder draws the default image of each business category.
package placeholder

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	width  = 400
	height = 300
	// label glyphs are drawn at 7x13 and scaled up by this factor
	scale = 3
)

type renderer struct {
	mu    sync.Mutex
	cache map[entity.Category][]byte
}

// NewRenderer creates a renderer that caches each category image after the first draw.
func NewRenderer() service.PlaceholderRenderer {
	return &renderer{cache: make(map[entity.Category][]byte)}
}

// Render returns the PNG of category: its colour with the label centred on it.
func (r *renderer) Render(category entity.Category) ([]byte, error) {
	if !category.IsValid() {
		return nil, errors.Errorf("unknown category %q", category)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[category]; ok {
		return cached, nil
	}

	img := draw.Image(image.NewRGBA(image.Rect(0, 0, width, height)))
	red, green, blue := category.Color()
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: red, G: green, B: blue, A: 0xff}), image.Point{}, draw.Src)

	label := labelImage(strings.ToUpper(category.Label()))
	w, h := label.Bounds().Dx()*scale, label.Bounds().Dy()*scale
	if w > width-20 {
		w, h = label.Bounds().Dx()*2, label.Bounds().Dy()*2
	}
	x0, y0 := (width-w)/2, (height-h)/2
	draw.NearestNeighbor.Scale(img, image.Rect(x0, y0, x0+w, y0+h), label, label.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode placeholder")
	}

	r.cache[category] = buf.Bytes()

	return buf.Bytes(), nil
}

// labelImage draws text in white on a transparent image sized to fit it.
func labelImage(text string) *image.RGBA {
	face := basicfont.Face7x13
	metrics := face.Metrics()

	d := &font.Drawer{Face: face, Src: image.White}
	advance := d.MeasureString(text).Ceil()
	img := image.NewRGBA(image.Rect(0, 0, advance, metrics.Height.Ceil()))

	d.Dst = img
	d.Dot = fixed.Point26_6{X: 0, Y: metrics.Ascent}
	d.DrawString(text)

	return img
}

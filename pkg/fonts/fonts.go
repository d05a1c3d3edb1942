// Package fonts provides the embedded Go font family for raster rendering.
//
// The fonts come from golang.org/x/image/font/gofont and are compiled into
// the binary, so PNG output looks the same on every host. SVG output names
// the same family and lets the viewer fall back to system sans-serif fonts.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family name of the embedded font.
const FontFamily = "Go"

// FallbackFontFamily lists the SVG font stack.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

var (
	parseOnce sync.Once
	regular   *truetype.Font
	bold      *truetype.Font
	parseErr  error
)

func load() error {
	parseOnce.Do(func() {
		if regular, parseErr = truetype.Parse(goregular.TTF); parseErr != nil {
			parseErr = fmt.Errorf("parse regular font: %w", parseErr)
			return
		}
		if bold, parseErr = truetype.Parse(gobold.TTF); parseErr != nil {
			parseErr = fmt.Errorf("parse bold font: %w", parseErr)
		}
	})
	return parseErr
}

// Face returns a new face of the given point size at 72 DPI, so one point
// equals one logical unit. Faces are not safe for concurrent use; callers
// keep their own.
func Face(size float64, isBold bool) (font.Face, error) {
	if err := load(); err != nil {
		return nil, err
	}
	f := regular
	if isBold {
		f = bold
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

// Faces caches faces by size and weight for a single renderer.
type Faces struct {
	mu    sync.Mutex
	faces map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

// Get returns the cached face, creating it on first use.
func (c *Faces) Get(size float64, isBold bool) (font.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := faceKey{size, isBold}
	if f, ok := c.faces[k]; ok {
		return f, nil
	}
	f, err := Face(size, isBold)
	if err != nil {
		return nil, err
	}
	if c.faces == nil {
		c.faces = make(map[faceKey]font.Face)
	}
	c.faces[k] = f
	return f, nil
}

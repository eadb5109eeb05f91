// Package fonts keeps the demo's text faces, parsed once from the Go
// regular TTF.
package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Small FontName = "small"
	Title FontName = "title"
)

var sizes = map[FontName]float64{
	HUD:   12,
	Small: 10,
	Title: 24,
}

var faces = map[FontName]text.Face{}

// Get returns the face for name. Before Load, or if parsing failed, every
// name falls back to the built-in bitmap face.
func (f FontName) Get() text.Face {
	if face, ok := faces[f]; ok {
		return face
	}
	return text.NewGoXFace(basicfont.Face7x13)
}

// Load parses the bundled TTF at every size in use.
func Load() error {
	for name, size := range sizes {
		face, err := parse(goregular.TTF, size)
		if err != nil {
			return fmt.Errorf("load font %s: %w", name, err)
		}
		faces[name] = text.NewGoXFace(face)
	}
	return nil
}

func parse(ttf []byte, size float64) (font.Face, error) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(fontData, &truetype.Options{Size: size}), nil
}

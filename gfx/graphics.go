// Package gfx loads sprite sheets and draws static and animated sprites in
// game-unit coordinates.
package gfx

import (
	"image"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	_ "image/png"
)

const placeholderSize = 512

// Graphics loads and caches sprite sheets by path. A sheet that cannot be
// loaded resolves to a generated placeholder so the game stays runnable
// without assets.
type Graphics struct {
	sheets map[string]*ebiten.Image
}

func New() *Graphics {
	return &Graphics{sheets: make(map[string]*ebiten.Image)}
}

// Sheet returns the cached image for path, loading it on first use.
func (g *Graphics) Sheet(path string) *ebiten.Image {
	if img, ok := g.sheets[path]; ok {
		return img
	}
	img, err := loadImage(path)
	if err != nil {
		log.Printf("gfx: %s unavailable, using placeholder: %v", path, err)
		img = placeholder()
	}
	g.sheets[path] = img
	return img
}

func loadImage(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(src), nil
}

func placeholder() *ebiten.Image {
	img := ebiten.NewImage(placeholderSize, placeholderSize)
	img.Fill(colornames.Crimson)
	return img
}

// Package assets turns generated textures into GPU images on first use.
package assets

import (
	"github.com/automoto/retrofolio/textures"
	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas converts textures to ebiten images lazily and keeps them for the session. Nothing is
// uploaded until a renderer asks for it, so an Atlas can be built before the game loop runs.
type Atlas struct {
	textures *textures.Cache
	images   map[string]*ebiten.Image
	missing  map[string]bool
}

// NewAtlas wraps a texture cache. The cache is initialised if it is still empty.
func NewAtlas(cache *textures.Cache) *Atlas {
	cache.Init()
	return &Atlas{
		textures: cache,
		images:   make(map[string]*ebiten.Image),
		missing:  make(map[string]bool),
	}
}

// Image returns the GPU image for id, or nil when the id has no texture. A nil Atlas has no
// textures at all.
func (a *Atlas) Image(id string) *ebiten.Image {
	if a == nil {
		return nil
	}
	if img, ok := a.images[id]; ok {
		return img
	}
	if a.missing[id] {
		return nil
	}
	src, ok := a.textures.Get(id)
	if !ok {
		a.missing[id] = true
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	a.images[id] = img
	return img
}

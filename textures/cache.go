// Package textures draws the game's pixel-art sprites procedurally. Every texture is the
// product of fixed drawing steps, so two runs produce identical pixels.
package textures

import (
	"image"
	"sort"
)

// Texture ids
const (
	Ground    = "ground"
	Brick     = "brick"
	Question  = "question"
	UsedBlock = "used"
	Pipe      = "pipe"
	Cloud     = "cloud"
	Bush      = "bush"
	Castle    = "castle"
	Hero      = "hero"
	HeroIdle  = "hero_idle"
	HeroRun1  = "hero_run_1"
	HeroRun2  = "hero_run_2"
	HeroJump  = "hero_jump"
	Coin      = "coin"
	Goomba    = "goomba"
	Mushroom  = "mushroom"
	Hammer    = "hammer"
	Boss      = "bowser"
	Flag      = "flag"
)

// Cache holds generated textures keyed by id. It is populated once and only read afterwards.
type Cache struct {
	images map[string]*image.RGBA
}

func New() *Cache {
	return &Cache{images: map[string]*image.RGBA{}}
}

// Init draws every texture. Calling it again once populated does nothing.
func (c *Cache) Init() {
	if len(c.images) > 0 {
		return
	}

	c.images[Ground] = drawGround()
	c.images[Brick] = drawBrick()
	c.images[Question] = drawQuestion()
	c.images[UsedBlock] = drawUsedBlock()
	c.images[Pipe] = drawPipe()
	c.images[Cloud] = drawCloud()
	c.images[Bush] = drawBush()
	c.images[Castle] = drawCastle()

	c.images[HeroIdle] = drawHero(0, false)
	c.images[HeroRun1] = drawHero(4, false)
	c.images[HeroRun2] = drawHero(-4, false)
	c.images[HeroJump] = drawHero(0, true)
	c.images[Hero] = c.images[HeroIdle]

	c.images[Coin] = drawCoin()
	c.images[Goomba] = drawGoomba()
	c.images[Mushroom] = drawMushroom()
	c.images[Hammer] = drawHammer()
	c.images[Boss] = drawBoss()
	c.images[Flag] = drawFlag()
}

// Get returns the texture for id. Unknown ids report false and callers fall back to a flat fill.
func (c *Cache) Get(id string) (*image.RGBA, bool) {
	if id == "" {
		return nil, false
	}
	img, ok := c.images[id]
	return img, ok
}

// Keys returns the populated ids in sorted order.
func (c *Cache) Keys() []string {
	keys := make([]string, 0, len(c.images))
	for k := range c.images {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Cache) Len() int {
	return len(c.images)
}

package textures

import "image"

const spriteSize = 40

func drawCloud() *image.RGBA {
	const w, h = 150, 80
	img := newCanvas(w, h)
	white := rgb(255, 255, 255)
	fillCircle(img, 40, 40, 30, white)
	fillCircle(img, 80, 30, 35, white)
	fillCircle(img, 110, 45, 25, white)
	fillRect(img, 20, 50, 110, 20, white)
	fillCircle(img, 80, 30, 25, rgb(224, 240, 255))
	return img
}

func drawBush() *image.RGBA {
	const w, h = 100, 50
	img := newCanvas(w, h)
	leaf := rgb(34, 197, 94)
	edge := rgb(20, 83, 45)
	for _, hump := range [][3]float32{{30, 25, 20}, {70, 25, 20}, {50, 15, 20}} {
		fillCircle(img, hump[0], hump[1], hump[2], edge)
		fillCircle(img, hump[0], hump[1], hump[2]-2, leaf)
	}
	fillRect(img, 10, 25, 80, 25, edge)
	fillRect(img, 12, 25, 76, 23, leaf)
	return img
}

// drawHero draws one player frame. legOffset splits the legs for running frames.
func drawHero(legOffset int, jumping bool) *image.RGBA {
	img := newCanvas(spriteSize, spriteSize)
	red := rgb(239, 68, 68)
	blue := rgb(37, 99, 235)
	black := rgb(0, 0, 0)

	// head and cap
	fillRect(img, 10, 5, 20, 15, rgb(254, 202, 202))
	fillRect(img, 8, 5, 24, 6, red)
	fillRect(img, 8, 5, 14, 8, red)

	// shirt and overalls
	fillRect(img, 10, 20, 20, 12, red)
	fillRect(img, 12, 25, 16, 10, blue)
	fillRect(img, 12, 20, 4, 5, blue)
	fillRect(img, 24, 20, 4, 5, blue)

	// face
	fillRect(img, 22, 14, 8, 3, black)
	fillRect(img, 24, 10, 3, 3, black)

	if jumping {
		fillRect(img, 8, 32, 10, 8, blue)
		fillRect(img, 22, 30, 10, 6, blue)
		// raised fist
		fillRect(img, 30, 14, 6, 6, rgb(254, 202, 202))
		return img
	}
	fillRect(img, 10-legOffset, 35, 8, 5, blue)
	fillRect(img, 22+legOffset, 35, 8, 5, blue)
	return img
}

func drawCoin() *image.RGBA {
	const size = 32
	img := newCanvas(size, size)
	c := float32(size) / 2
	r := c - 2
	fillCircle(img, c, c, r, rgb(255, 215, 0))
	fillCircle(img, c, c, r-3, rgb(218, 165, 32))
	fillRect(img, size/2-2, 9, 4, 14, rgb(255, 215, 0))
	fillCircle(img, c-4, c-4, 4, rgb(255, 236, 139))
	strokeCircle(img, c, c, r, 2, rgb(184, 134, 11))
	return img
}

func drawGoomba() *image.RGBA {
	img := newCanvas(spriteSize, spriteSize)
	black := rgb(0, 0, 0)
	white := rgb(255, 255, 255)

	fillEllipse(img, spriteSize/2, 14, 16, 12, rgb(139, 69, 19))
	fillRect(img, 8, 16, 24, 12, rgb(222, 184, 135))

	// brows, eyes, pupils
	fillRect(img, 10, 16, 8, 3, black)
	fillRect(img, 22, 16, 8, 3, black)
	fillRect(img, 12, 19, 6, 6, white)
	fillRect(img, 22, 19, 6, 6, white)
	fillRect(img, 14, 21, 3, 3, black)
	fillRect(img, 24, 21, 3, 3, black)

	fillRect(img, 6, 28, 12, 10, rgb(93, 58, 26))
	fillRect(img, 22, 28, 12, 10, rgb(93, 58, 26))
	return img
}

func drawMushroom() *image.RGBA {
	img := newCanvas(spriteSize, spriteSize)
	fillEllipse(img, spriteSize/2, 14, 19, 15, rgb(139, 0, 0))
	fillEllipse(img, spriteSize/2, 14, 17, 13, rgb(220, 38, 38))

	white := rgb(255, 255, 255)
	fillCircle(img, 12, 10, 5, white)
	fillCircle(img, 28, 10, 5, white)
	fillCircle(img, 20, 6, 4, white)

	fillRect(img, 12, 20, 16, 16, rgb(245, 222, 179))
	fillRect(img, 14, 24, 4, 4, rgb(0, 0, 0))
	fillRect(img, 22, 24, 4, 4, rgb(0, 0, 0))
	return img
}

func drawHammer() *image.RGBA {
	img := newCanvas(spriteSize, spriteSize)
	// handle
	fillPolygon(img, rgb(146, 64, 14),
		[2]float32{17, 14}, [2]float32{23, 14}, [2]float32{23, 38}, [2]float32{17, 38})
	fillRect(img, 17, 34, 6, 4, rgb(120, 53, 15))
	// head
	fillRect(img, 6, 4, 28, 12, rgb(148, 163, 184))
	fillRect(img, 6, 4, 28, 3, rgb(226, 232, 240))
	strokeRect(img, 6, 4, 28, 12, 1, rgb(51, 65, 85))
	return img
}

// drawBoss is the final challenge: a horned, spiked brute twice the size of a regular hostile.
func drawBoss() *image.RGBA {
	const size = 80
	img := newCanvas(size, size)
	shell := rgb(22, 101, 52)
	skin := rgb(234, 179, 8)
	horn := rgb(254, 243, 199)
	black := rgb(0, 0, 0)

	// shell with spikes
	fillEllipse(img, 44, 48, 30, 24, shell)
	for i := 0; i < 4; i++ {
		x := float32(22 + i*14)
		fillPolygon(img, horn, [2]float32{x, 32}, [2]float32{x + 5, 18}, [2]float32{x + 10, 32})
	}

	// belly and head
	fillEllipse(img, 36, 56, 18, 16, rgb(253, 230, 138))
	fillEllipse(img, 22, 30, 16, 14, skin)
	fillPolygon(img, horn, [2]float32{12, 20}, [2]float32{8, 4}, [2]float32{18, 16})
	fillPolygon(img, horn, [2]float32{26, 18}, [2]float32{32, 2}, [2]float32{34, 18})

	// angry eye and teeth
	fillRect(img, 14, 24, 8, 6, rgb(255, 255, 255))
	fillRect(img, 16, 26, 4, 4, rgb(220, 38, 38))
	fillRect(img, 12, 22, 12, 2, black)
	for x := 8; x < 30; x += 5 {
		fillPolygon(img, rgb(255, 255, 255), [2]float32{float32(x), 36}, [2]float32{float32(x) + 2.5, 41}, [2]float32{float32(x) + 5, 36})
	}

	// feet
	fillRect(img, 20, 70, 16, 10, skin)
	fillRect(img, 50, 70, 16, 10, skin)
	return img
}

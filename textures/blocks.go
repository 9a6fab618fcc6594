package textures

import (
	"image"
	"image/color"
	"math"
)

const blockSize = 50

func drawGround() *image.RGBA {
	img := newCanvas(blockSize, blockSize)
	fillRect(img, 0, 0, blockSize, blockSize, rgb(139, 69, 19))

	// grass cap
	fillRect(img, 0, 0, blockSize, 10, rgb(34, 139, 34))
	fillRect(img, 0, 0, blockSize, 3, rgb(50, 205, 50))

	speckle(img, 10, 0, 12, blockSize-8, blockSize-16, 4, rgb(93, 64, 55))
	strokeRect(img, 0, 0, blockSize, blockSize, 2, rgb(62, 39, 35))
	return img
}

func drawBrick() *image.RGBA {
	img := newCanvas(blockSize, blockSize)
	fillRect(img, 0, 0, blockSize, blockSize, rgb(178, 34, 34))

	mortar := rgb(211, 211, 211)
	fillRect(img, 0, 0, blockSize, 2, mortar)
	fillRect(img, 0, 24, blockSize, 2, mortar)
	fillRect(img, 24, 0, 2, 24, mortar)
	fillRect(img, 12, 24, 2, 26, mortar)
	fillRect(img, 38, 24, 2, 26, mortar)

	shadow := rgba(0, 0, 0, 51)
	fillRect(img, 0, 2, blockSize, 2, shadow)
	fillRect(img, 0, 26, blockSize, 2, shadow)
	return img
}

func drawQuestion() *image.RGBA {
	img := newCanvas(blockSize, blockSize)
	fillRect(img, 0, 0, blockSize, blockSize, rgb(248, 147, 29))
	rivets(img, rgb(184, 54, 18))

	const scale = 3
	w, h := glyphSize("?", scale)
	x := (blockSize - w) / 2
	y := (blockSize - h) / 2
	drawGlyph(img, "?", x+2, y+2, scale, rgb(255, 228, 181))
	drawGlyph(img, "?", x, y, scale, rgb(255, 255, 255))
	strokeRect(img, 0, 0, blockSize, blockSize, 2, rgb(120, 53, 15))
	return img
}

// drawUsedBlock is the inert look a question block takes after it has been hit.
func drawUsedBlock() *image.RGBA {
	img := newCanvas(blockSize, blockSize)
	fillRect(img, 0, 0, blockSize, blockSize, rgb(120, 53, 15))
	rivets(img, rgb(69, 26, 3))
	fillRect(img, 2, 2, blockSize-4, 3, rgba(255, 255, 255, 40))
	strokeRect(img, 0, 0, blockSize, blockSize, 2, rgb(69, 26, 3))
	return img
}

// rivets marks the four corners of a block.
func rivets(img *image.RGBA, c color.RGBA) {
	for _, p := range [][2]int{{2, 2}, {blockSize - 6, 2}, {2, blockSize - 6}, {blockSize - 6, blockSize - 6}} {
		fillRect(img, p[0], p[1], 4, 4, c)
	}
}

func drawPipe() *image.RGBA {
	const w, h, head = 80, 100, 30
	img := newCanvas(w, h)
	stops := []color.RGBA{rgb(0, 68, 0), rgb(0, 136, 0), rgb(0, 170, 0), rgb(0, 136, 0), rgb(0, 68, 0)}
	hGradient(img, 5, head, w-10, h-head, stops...)
	hGradient(img, 0, 0, w, head, stops...)

	outline := rgb(0, 0, 0)
	strokeRect(img, 0, 0, w, head, 2, outline)
	strokeRect(img, 5, head, w-10, h-head, 2, outline)
	return img
}

func drawCastle() *image.RGBA {
	const size = 150
	img := newCanvas(size, size)
	stone := rgb(226, 232, 240)
	dark := rgb(148, 163, 184)

	fillRect(img, 30, 60, 90, 90, stone)
	fillRect(img, 20, 60, 30, 90, stone)
	fillRect(img, 100, 60, 30, 90, stone)

	// battlements and keep
	fillRect(img, 15, 40, 40, 20, dark)
	fillRect(img, 95, 40, 40, 20, dark)
	fillRect(img, 45, 20, 60, 40, dark)
	for x := 15; x < 55; x += 10 {
		fillRect(img, x, 34, 5, 6, dark)
	}
	for x := 95; x < 135; x += 10 {
		fillRect(img, x, 34, 5, 6, dark)
	}

	// arched door
	door := rgb(15, 23, 42)
	fillRect(img, 50, 125, 50, 25, door)
	fillPolygon(img, door, ellipsePoints(75, 125, 25, 25, math.Pi, 2*math.Pi)...)

	// windows
	fillRect(img, 30, 80, 10, 16, door)
	fillRect(img, 110, 80, 10, 16, door)

	// pennant on a pole
	fillRect(img, 74, 4, 2, 36, rgb(71, 85, 105))
	fillPolygon(img, rgb(239, 68, 68), [2]float32{76, 5}, [2]float32{100, 15}, [2]float32{76, 25})
	return img
}

func drawFlag() *image.RGBA {
	const w, h = 24, 32
	img := newCanvas(w, h)
	fillRect(img, 2, 0, 2, h, rgb(71, 85, 105))
	fillRect(img, 4, 2, 18, 12, rgb(255, 255, 255))
	fillRect(img, 4, 6, 18, 4, rgb(37, 99, 235))
	strokeRect(img, 4, 2, 18, 12, 1, rgb(30, 41, 59))
	fillCircle(img, 3, 1, 2, rgb(255, 215, 0))
	return img
}

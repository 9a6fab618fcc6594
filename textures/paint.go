package textures

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// circleSegments is the polygon resolution used for circles and ellipses.
const circleSegments = 48

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func rgba(r, g, b, a uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func newCanvas(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// fillRect composites a rectangle over img, so translucent colors shade what is below.
func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// strokeRect draws a rectangle outline of the given thickness inside the rectangle.
func strokeRect(img *image.RGBA, x, y, w, h, t int, c color.RGBA) {
	fillRect(img, x, y, w, t, c)
	fillRect(img, x, y+h-t, w, t, c)
	fillRect(img, x, y, t, h, c)
	fillRect(img, x+w-t, y, t, h, c)
}

// fillPolygon rasterizes a closed polygon with anti-aliased edges.
func fillPolygon(img *image.RGBA, c color.RGBA, pts ...[2]float32) {
	if len(pts) < 3 {
		return
	}
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
	z.Draw(img, b, image.NewUniform(c), image.Point{})
}

func ellipsePoints(cx, cy, rx, ry float32, from, to float64) [][2]float32 {
	pts := make([][2]float32, 0, circleSegments+1)
	for i := 0; i <= circleSegments; i++ {
		a := from + (to-from)*float64(i)/circleSegments
		pts = append(pts, [2]float32{
			cx + rx*float32(math.Cos(a)),
			cy + ry*float32(math.Sin(a)),
		})
	}
	return pts
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry float32, c color.RGBA) {
	fillPolygon(img, c, ellipsePoints(cx, cy, rx, ry, 0, 2*math.Pi)...)
}

func fillCircle(img *image.RGBA, cx, cy, r float32, c color.RGBA) {
	fillEllipse(img, cx, cy, r, r, c)
}

// strokeCircle draws a ring of width t centered on radius r.
func strokeCircle(img *image.RGBA, cx, cy, r, t float32, c color.RGBA) {
	outer := ellipsePoints(cx, cy, r+t/2, r+t/2, 0, 2*math.Pi)
	inner := ellipsePoints(cx, cy, r-t/2, r-t/2, 2*math.Pi, 0)
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	addPath(z, outer)
	addPath(z, inner)
	z.Draw(img, b, image.NewUniform(c), image.Point{})
}

func addPath(z *vector.Rasterizer, pts [][2]float32) {
	z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
}

// speckle scatters small rectangles at positions derived from the loop index only.
func speckle(img *image.RGBA, count, x0, y0, w, h, size int, c color.RGBA) {
	for i := 0; i < count; i++ {
		sx := x0 + (i*37+11)%w
		sy := y0 + (i*53+7)%h
		sw := size + i%3
		sh := size/2 + i%2
		fillRect(img, sx, sy, sw, sh, c)
	}
}

// drawGlyph renders text with the 7x13 bitmap face and blows it up by an integer scale,
// keeping hard pixel edges.
func drawGlyph(img *image.RGBA, s string, x, y, scale int, c color.RGBA) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	h := face.Height
	small := newCanvas(w, h)
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(s)

	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			px := small.RGBAAt(sx, sy)
			if px.A == 0 {
				continue
			}
			fillRect(img, x+sx*scale, y+sy*scale, scale, scale, px)
		}
	}
}

// glyphSize reports the footprint drawGlyph would cover.
func glyphSize(s string, scale int) (int, int) {
	face := basicfont.Face7x13
	return font.MeasureString(face, s).Ceil() * scale, face.Height * scale
}

// hGradient fills a rectangle with a horizontal gradient through the given stops.
func hGradient(img *image.RGBA, x, y, w, h int, stops ...color.RGBA) {
	if len(stops) == 0 || w <= 0 {
		return
	}
	for i := 0; i < w; i++ {
		t := float64(i) / float64(max(w-1, 1))
		fillRect(img, x+i, y, 1, h, lerpStops(stops, t))
	}
}

func lerpStops(stops []color.RGBA, t float64) color.RGBA {
	if len(stops) == 1 {
		return stops[0]
	}
	pos := t * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	f := pos - float64(i)
	a, b := stops[i], stops[i+1]
	mix := func(p, q uint8) uint8 {
		return uint8(math.Round(float64(p) + (float64(q)-float64(p))*f))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

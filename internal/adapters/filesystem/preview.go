package filesystem

import (
	"fmt"

	"tracklist/internal/domain"
)

const (
	previewMargin = 8
	tileWidth     = 32 // isometric tile width in pixels before scaling
	tileHeight    = 16
	heightStep    = 4 // pixels per z unit before scaling
)

type screenPoint struct {
	x, y float64
	z    int
}

// DrawPreview rasterises a design's layout into pixels: one isometric view
// per quarter turn, each domain.PreviewImageSize bytes of palette indices.
func (r *Repository) DrawPreview(d *domain.Design, opts domain.PreviewOptions, pixels []byte) error {
	if len(pixels) < domain.PreviewSize {
		return fmt.Errorf("preview buffer too small: %d < %d", len(pixels), domain.PreviewSize)
	}
	clear(pixels[:domain.PreviewSize])

	maxZ := 1
	for _, p := range d.Layout {
		maxZ = max(maxZ, p.Z)
	}

	for rot := 0; rot < domain.PreviewRotations; rot++ {
		img := pixels[rot*domain.PreviewImageSize : (rot+1)*domain.PreviewImageSize]

		track := project(d.Layout, rot)
		var scenery []screenPoint
		if opts.Scenery {
			scenery = project(d.Scenery, rot)
		}
		fit := fitTransform(append(append([]screenPoint(nil), track...), scenery...))

		for _, p := range scenery {
			x, y := fit(p)
			fillRect(img, x-1, y-1, 3, 3, domain.PaletteScenery)
		}
		for i, p := range track {
			x, y := fit(p)
			if p.z > 0 && i%4 == 0 {
				_, gy := fit(screenPoint{x: p.x, y: p.y + float64(p.z*heightStep)})
				drawLine(img, x, y, x, gy, domain.PaletteSupport)
			}
			if i == 0 {
				continue
			}
			px, py := fit(track[i-1])
			t := float32(p.z) / float32(maxZ)
			drawLine(img, px, py, x, y, domain.Lerp(domain.PaletteTrackLow, domain.PaletteTrackHigh, t))
		}
	}
	return nil
}

// project rotates points by rot quarter turns and maps them to isometric
// screen space.
func project(points []domain.TrackPoint, rot int) []screenPoint {
	out := make([]screenPoint, len(points))
	for i, p := range points {
		x, y := p.X, p.Y
		for range rot {
			x, y = -y, x
		}
		out[i] = screenPoint{
			x: float64(x-y) * tileWidth / 2,
			y: float64(x+y)*tileHeight/2 - float64(p.Z*heightStep),
			z: p.Z,
		}
	}
	return out
}

// fitTransform returns a mapping that scales and centres points into the
// preview image.
func fitTransform(points []screenPoint) func(screenPoint) (int, int) {
	if len(points) == 0 {
		return func(screenPoint) (int, int) { return domain.PreviewWidth / 2, domain.PreviewHeight / 2 }
	}

	minX, maxX := points[0].x, points[0].x
	minY, maxY := points[0].y, points[0].y
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.x), max(maxX, p.x)
		minY, maxY = min(minY, p.y), max(maxY, p.y)
	}

	availW := float64(domain.PreviewWidth - 2*previewMargin)
	availH := float64(domain.PreviewHeight - 2*previewMargin)
	scale := 1.0
	if w := maxX - minX; w > 0 {
		scale = availW / w
	}
	if h := maxY - minY; h > 0 {
		scale = min(scale, availH/h)
	}
	if maxX == minX && maxY == minY {
		scale = 1
	}

	offX := (float64(domain.PreviewWidth) - (maxX-minX)*scale) / 2
	offY := (float64(domain.PreviewHeight) - (maxY-minY)*scale) / 2
	return func(p screenPoint) (int, int) {
		return int(offX + (p.x-minX)*scale), int(offY + (p.y-minY)*scale)
	}
}

func setPixel(img []byte, x, y int, c uint8) {
	if x < 0 || y < 0 || x >= domain.PreviewWidth || y >= domain.PreviewHeight {
		return
	}
	img[y*domain.PreviewWidth+x] = c
}

func fillRect(img []byte, x, y, w, h int, c uint8) {
	for dy := range h {
		for dx := range w {
			setPixel(img, x+dx, y+dy, c)
		}
	}
}

// drawLine draws a Bresenham line, clipped to the image.
func drawLine(img []byte, x0, y0, x1, y1 int, c uint8) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		setPixel(img, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

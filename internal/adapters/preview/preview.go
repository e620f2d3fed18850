// Package preview turns palette-index preview buffers into images.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"

	"tracklist/internal/domain"
)

var (
	trackLow  = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	trackHigh = color.RGBA{R: 230, G: 60, B: 40, A: 255}
	scenery   = color.RGBA{R: 70, G: 160, B: 70, A: 255}
	support   = color.RGBA{R: 150, G: 150, B: 150, A: 255}
)

var palette = buildPalette()

func buildPalette() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.RGBA{}
	}
	span := float32(domain.PaletteTrackHigh - domain.PaletteTrackLow)
	for i := int(domain.PaletteTrackLow); i <= int(domain.PaletteTrackHigh); i++ {
		t := float32(i-int(domain.PaletteTrackLow)) / span
		p[i] = color.RGBA{
			R: uint8(domain.FLerp(float32(trackLow.R), float32(trackHigh.R), t)),
			G: uint8(domain.FLerp(float32(trackLow.G), float32(trackHigh.G), t)),
			B: uint8(domain.FLerp(float32(trackLow.B), float32(trackHigh.B), t)),
			A: 255,
		}
	}
	for i := int(domain.PaletteScenery); i < int(domain.PaletteSupport); i++ {
		p[i] = scenery
	}
	for i := int(domain.PaletteSupport); i < len(p); i++ {
		p[i] = support
	}
	return p
}

// Palette returns the colours used for preview palette indices.
func Palette() color.Palette {
	out := make(color.Palette, len(palette))
	copy(out, palette)
	return out
}

// Image wraps one rotation of a preview buffer as a paletted image.
func Image(pixels []byte, rotation int) (*image.Paletted, error) {
	if len(pixels) < domain.PreviewSize {
		return nil, fmt.Errorf("preview buffer too small: %d < %d", len(pixels), domain.PreviewSize)
	}
	if rotation < 0 || rotation >= domain.PreviewRotations {
		return nil, fmt.Errorf("rotation out of range: %d", rotation)
	}
	start := rotation * domain.PreviewImageSize
	return Frame(pixels[start : start+domain.PreviewImageSize])
}

// Frame wraps the pixels of a single rotation as a paletted image.
func Frame(pix []byte) (*image.Paletted, error) {
	if len(pix) != domain.PreviewImageSize {
		return nil, fmt.Errorf("preview frame has %d pixels, want %d", len(pix), domain.PreviewImageSize)
	}
	img := image.NewPaletted(image.Rect(0, 0, domain.PreviewWidth, domain.PreviewHeight), palette)
	copy(img.Pix, pix)
	return img, nil
}

// Thumbnail returns one rotation scaled to width, keeping the aspect ratio.
// A width of zero or the native width returns the image unscaled.
func Thumbnail(pixels []byte, rotation, width int) (image.Image, error) {
	img, err := Image(pixels, rotation)
	if err != nil {
		return nil, err
	}
	return Scale(img, width), nil
}

// Scale resizes img to width, keeping the aspect ratio. A width of zero or
// the current width returns img itself.
func Scale(img image.Image, width int) image.Image {
	if width <= 0 || width == img.Bounds().Dx() {
		return img
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos)
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return nil
}

// Save writes img to path. The format follows the file extension.
func Save(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save preview: %w", err)
	}
	return nil
}

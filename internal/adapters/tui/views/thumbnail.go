package views

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tracklist/internal/adapters/preview"
)

const halfBlock = "▀"

// RenderThumbnail draws one preview rotation as terminal text, cols
// characters wide. Each character cell shows two stacked pixels.
func RenderThumbnail(pix []byte, cols int) (string, error) {
	frame, err := preview.Frame(pix)
	if err != nil {
		return "", err
	}
	img := preview.Scale(frame, cols)
	b := img.Bounds()

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := cellColor(img, x, y)
			bottom := cellColor(img, x, y+1)
			sb.WriteString(cell(top, bottom))
		}
		if y+2 < b.Max.Y {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

// cellColor returns the terminal colour of a pixel, or "" when it is
// transparent or outside the image.
func cellColor(img image.Image, x, y int) lipgloss.Color {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return ""
	}
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	if c.A < 0x80 {
		return ""
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}

func cell(top, bottom lipgloss.Color) string {
	switch {
	case top == "" && bottom == "":
		return " "
	case top == "":
		return lipgloss.NewStyle().Foreground(bottom).Render("▄")
	case bottom == "":
		return lipgloss.NewStyle().Foreground(top).Render(halfBlock)
	default:
		return lipgloss.NewStyle().Foreground(top).Background(bottom).Render(halfBlock)
	}
}

package filesystem

import (
	"bytes"
	"testing"

	"tracklist/internal/domain"
)

func loopDesign() *domain.Design {
	return &domain.Design{
		RideType: 52,
		Layout: []domain.TrackPoint{
			{X: 0, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 2}, {X: 8, Y: 0, Z: 6},
			{X: 8, Y: 4, Z: 6}, {X: 4, Y: 4, Z: 3}, {X: 0, Y: 4, Z: 0},
		},
		Scenery: []domain.TrackPoint{{X: 10, Y: 10, Z: 0}},
	}
}

func countColour(img []byte, c uint8) int {
	return bytes.Count(img, []byte{c})
}

func TestDrawPreview(t *testing.T) {
	_, repo := setupDesignDir(t)
	pixels := make([]byte, domain.PreviewSize)

	if err := repo.DrawPreview(loopDesign(), domain.PreviewOptions{}, pixels); err != nil {
		t.Fatalf("DrawPreview failed: %v", err)
	}

	for rot := 0; rot < domain.PreviewRotations; rot++ {
		img := pixels[rot*domain.PreviewImageSize : (rot+1)*domain.PreviewImageSize]
		if countColour(img, domain.PaletteBackground) == len(img) {
			t.Errorf("rotation %d is blank", rot)
		}
		if n := countColour(img, domain.PaletteScenery); n != 0 {
			t.Errorf("rotation %d drew %d scenery pixels without scenery", rot, n)
		}
	}

	first := pixels[:domain.PreviewImageSize]
	second := pixels[domain.PreviewImageSize : 2*domain.PreviewImageSize]
	if bytes.Equal(first, second) {
		t.Error("rotations should differ")
	}
}

func TestDrawPreview_Scenery(t *testing.T) {
	_, repo := setupDesignDir(t)
	pixels := make([]byte, domain.PreviewSize)

	if err := repo.DrawPreview(loopDesign(), domain.PreviewOptions{Scenery: true}, pixels); err != nil {
		t.Fatalf("DrawPreview failed: %v", err)
	}
	if countColour(pixels[:domain.PreviewImageSize], domain.PaletteScenery) == 0 {
		t.Error("expected scenery pixels")
	}
}

func TestDrawPreview_ClearsBuffer(t *testing.T) {
	_, repo := setupDesignDir(t)
	pixels := bytes.Repeat([]byte{99}, domain.PreviewSize)

	if err := repo.DrawPreview(&domain.Design{}, domain.PreviewOptions{}, pixels); err != nil {
		t.Fatalf("DrawPreview failed: %v", err)
	}
	if n := countColour(pixels, 99); n != 0 {
		t.Errorf("%d stale pixels left in buffer", n)
	}
}

func TestDrawPreview_BufferTooSmall(t *testing.T) {
	_, repo := setupDesignDir(t)
	if err := repo.DrawPreview(loopDesign(), domain.PreviewOptions{}, make([]byte, 10)); err == nil {
		t.Error("expected error for short buffer")
	}
}

package domain

// Palette indices written into preview buffers.
const (
	PaletteBackground uint8 = 0
	PaletteTrackLow   uint8 = 16  // Track at ground level
	PaletteTrackHigh  uint8 = 200 // Track at the design's highest point
	PaletteScenery    uint8 = 240
	PaletteSupport    uint8 = 248
)

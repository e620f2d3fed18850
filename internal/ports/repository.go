package ports

import "tracklist/internal/domain"

// DesignRepository defines the interface for design file storage
type DesignRepository interface {
	// ListDesigns returns the designs matching a ride selection. A selection
	// with no matching files yields an empty slice, not an error.
	ListDesigns(sel domain.RideSelection) ([]domain.DesignRef, error)

	// LoadDesign parses a design file
	LoadDesign(path string) (*domain.Design, error)
}

// PreviewRenderer rasterises designs into preview buffers
type PreviewRenderer interface {
	// DrawPreview fills pixels (domain.PreviewSize bytes, one image per
	// rotation) with palette indices
	DrawPreview(design *domain.Design, opts domain.PreviewOptions, pixels []byte) error
}

// DesignManager defines the file operations available in manager mode
type DesignManager interface {
	Rename(path, newName string) (domain.DesignRef, error)
	Delete(path string) error
}

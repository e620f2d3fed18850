package httpapi

// DesignItem is one row of a design listing.
type DesignItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Cost *int32 `json:"cost,omitempty"`
}

// DesignListResponse is the body of GET /api/designs.
type DesignListResponse struct {
	RideType  int          `json:"ride_type"`
	Vehicle   string       `json:"vehicle,omitempty"`
	RideName  string       `json:"ride_name"`
	SortKey   string       `json:"sort_key"`
	Ascending bool         `json:"ascending"`
	Designs   []DesignItem `json:"designs"`
	TotalCost *int32       `json:"total_cost,omitempty"`
}

// SortKeyItem is one sort key offered for a ride type.
type SortKeyItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// StatItem is one line of a design's statistics block.
type StatItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DesignDetail is the body of GET /api/design.
type DesignDetail struct {
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	RideType int        `json:"ride_type"`
	RideName string     `json:"ride_name"`
	Vehicle  string     `json:"vehicle,omitempty"`
	Cost     int32      `json:"cost"`
	Stats    []StatItem `json:"stats"`
	Warnings []string   `json:"warnings"`
}

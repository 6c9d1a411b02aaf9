package scene2d

// Scene2D is a top-down plan view of a building model for an SVG renderer.
// Coordinates are [x, z] pairs in feet.
type Scene2D struct {
	Metadata    Metadata     `json:"metadata"`
	Site        []Site2D     `json:"site"`
	Foundation  [][2]float64 `json:"foundation,omitempty"`
	RoofOutline [][2]float64 `json:"roof_outline,omitempty"`
	Ridges      []Line2D     `json:"ridges,omitempty"`
	Floors      []Floor2D    `json:"floors"`
}

// Metadata holds building-level summary data.
type Metadata struct {
	Style       string     `json:"style"`
	Stories     int        `json:"stories"`
	Width       float64    `json:"width"`
	Depth       float64    `json:"depth"`
	Extent      [2]float64 `json:"extent_min"`
	ExtentMax   [2]float64 `json:"extent_max"`
	GeneratedAt string     `json:"generated_at"`
}

// Site2D is one site element outline.
type Site2D struct {
	ID      string       `json:"id"`
	Type    string       `json:"type"`
	Polygon [][2]float64 `json:"polygon"`
}

// Line2D is a straight segment.
type Line2D struct {
	Start [2]float64 `json:"start"`
	End   [2]float64 `json:"end"`
}

// Floor2D is the plan of one story.
type Floor2D struct {
	Index     int          `json:"index"`
	Elevation float64      `json:"elevation"`
	Outline   [][2]float64 `json:"outline"`
	Walls     []Wall2D     `json:"walls"`
	Openings  []Opening2D  `json:"openings"`
	Rooms     []Room2D     `json:"rooms"`
}

// Wall2D is a wall centerline drawn at its thickness.
type Wall2D struct {
	ID        string     `json:"id"`
	Start     [2]float64 `json:"start"`
	End       [2]float64 `json:"end"`
	Thickness float64    `json:"thickness"`
	Exterior  bool       `json:"exterior"`
}

// Opening2D is a door or window drawn as a gap in its wall.
type Opening2D struct {
	WallID string     `json:"wall_id"`
	Type   string     `json:"type"`
	Start  [2]float64 `json:"start"`
	End    [2]float64 `json:"end"`
	Width  float64    `json:"width"`
}

// Room2D is a labeled room rectangle.
type Room2D struct {
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Polygon  [][2]float64 `json:"polygon"`
	Label    [2]float64   `json:"label"`
	AreaSqFt float64      `json:"area_sqft"`
}

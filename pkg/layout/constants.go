package layout

// Building dimensions shared by the generators. All values in feet.
const (
	ExteriorWallThickness   = 0.5
	InteriorWallThickness   = 0.333
	FoundationWallThickness = 0.667

	StoryHeight        = 9.0  // default ceiling height
	FloorToFloor       = 10.0 // story height plus floor framing
	FloorSlabThickness = 0.75

	FootprintAspect = 1.5 // width : depth

	DefaultRoomWidth = 12.0
	DefaultRoomDepth = 10.0
	MaxRoomSpan      = 200.0 // longest parseable room side
)

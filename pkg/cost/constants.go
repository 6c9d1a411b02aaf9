package cost

// Unit costs for a visualization-grade residential estimate, in US dollars.
// Areas are square feet and lengths are feet.
const (
	FoundationCostPerSqFt   = 14.0 // slab on grade including footing
	FloorCostPerSqFt        = 48.0 // framed and finished floor area
	ExteriorWallCostPerSqFt = 32.0 // net of openings, sheathed and clad
	InteriorWallCostPerSqFt = 11.0 // both faces, finished
	RoofCostPerSqFt         = 9.5  // sloped area, underlayment and covering
	WindowCostPerSqFt       = 70.0 // glazed area
	DoorCost                = 1400.0
	PavingCostPerSqFt       = 9.0  // driveway, walkway, patio
	DeckCostPerSqFt         = 38.0 // decks and porches

	// FlatRoofPremium scales roof cost for membrane roofs.
	FlatRoofPremium = 1.25
	// SoftCostRatio covers design, permits and contractor overhead.
	SoftCostRatio = 0.18
)

// Default financing terms used by the CLI and server.
const (
	DefaultInterestRate = 0.065
	DefaultTermYears    = 30
	DefaultDownPayment  = 0.20
)

package plan

// Demo returns the reference two-story modern farmhouse used in docs and
// tests. Each call returns a fresh copy.
func Demo() *PlanDescription {
	return &PlanDescription{
		Stories:              2,
		TotalSquareFootage:   3200,
		ArchitecturalStyle:   "modern_farmhouse",
		RoofType:             "gable",
		IsRegionalWetClimate: true,
		Rooms: []RoomSpec{
			{Name: "Great Room", Dimensions: "20' x 18'", CeilingHeight: "vaulted"},
			{Name: "Kitchen", Dimensions: "16' x 14'", Notes: "island with seating"},
			{Name: "Dining", Dimensions: "14' x 12'"},
			{Name: "Mudroom", Dimensions: "8' x 10'"},
			{Name: "Primary Suite", Dimensions: "16' x 15'", CeilingHeight: "10 ft"},
			{Name: "Bedroom 2", Dimensions: "12' x 12'"},
			{Name: "Bonus Room", Dimensions: "18' x 14'"},
		},
		SpecialFeatures: []string{"attached 2-car garage", "covered deck"},
	}
}

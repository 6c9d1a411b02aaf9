package plan

import "strings"

// PlanDescription is the structured architectural plan a model is generated
// from. It is produced upstream by plan analysis and treated as read-only.
type PlanDescription struct {
	Stories              int        `yaml:"stories" json:"stories" toml:"stories"`
	TotalSquareFootage   float64    `yaml:"total_square_footage" json:"total_square_footage" toml:"total_square_footage"`
	ArchitecturalStyle   string     `yaml:"architectural_style" json:"architectural_style" toml:"architectural_style"`
	RoofType             string     `yaml:"roof_type" json:"roof_type" toml:"roof_type"`
	IsRegionalWetClimate bool       `yaml:"is_regional_wet_climate" json:"is_regional_wet_climate" toml:"is_regional_wet_climate"`
	Rooms                []RoomSpec `yaml:"rooms" json:"rooms" toml:"rooms"`
	SpecialFeatures      []string   `yaml:"special_features" json:"special_features" toml:"special_features"`
}

// RoomSpec is one entry of the plan's room schedule. Dimensions and
// CeilingHeight are free text as read off the source drawing, e.g. "14'6\" x 12'"
// or "vaulted".
type RoomSpec struct {
	Name          string `yaml:"name" json:"name" toml:"name"`
	Dimensions    string `yaml:"dimensions,omitempty" json:"dimensions,omitempty" toml:"dimensions,omitempty"`
	CeilingHeight string `yaml:"ceiling_height,omitempty" json:"ceiling_height,omitempty" toml:"ceiling_height,omitempty"`
	Notes         string `yaml:"notes,omitempty" json:"notes,omitempty" toml:"notes,omitempty"`
}

// HasFeature reports whether any special-feature tag contains keyword,
// ignoring case. "3-Car Garage" has the feature "garage".
func (p PlanDescription) HasFeature(keyword string) bool {
	keyword = strings.ToLower(keyword)
	for _, f := range p.SpecialFeatures {
		if strings.Contains(strings.ToLower(f), keyword) {
			return true
		}
	}
	return false
}

// Style is a normalized architectural style.
type Style string

const (
	StyleModern                Style = "modern"
	StyleContemporary          Style = "contemporary"
	StyleNorthwestContemporary Style = "northwest_contemporary"
	StyleCraftsman             Style = "craftsman"
	StyleFarmhouse             Style = "farmhouse"
	StyleModernFarmhouse       Style = "modern_farmhouse"
	StyleColonial              Style = "colonial"
	StyleRanch                 Style = "ranch"
	StyleTraditional           Style = "traditional"
	StyleMediterranean         Style = "mediterranean"
	StyleCapeCod               Style = "cape_cod"
	StyleVictorian             Style = "victorian"
)

// Styles lists every supported style.
var Styles = []Style{
	StyleModern, StyleContemporary, StyleNorthwestContemporary, StyleCraftsman,
	StyleFarmhouse, StyleModernFarmhouse, StyleColonial, StyleRanch,
	StyleTraditional, StyleMediterranean, StyleCapeCod, StyleVictorian,
}

// ParseStyle normalizes a free-text style. Unknown styles resolve to
// StyleTraditional with ok set to false.
func ParseStyle(s string) (Style, bool) {
	key := normalizeKey(s)
	for _, st := range Styles {
		if string(st) == key {
			return st, true
		}
	}
	switch key {
	case "pnw_contemporary", "pacific_northwest", "northwest":
		return StyleNorthwestContemporary, true
	case "midcentury_modern", "mid_century_modern":
		return StyleModern, true
	case "spanish":
		return StyleMediterranean, true
	}
	return StyleTraditional, false
}

// Pitch returns the roof rise over run for the style.
func (s Style) Pitch() float64 {
	switch s {
	case StyleModern:
		return 2.0 / 12
	case StyleContemporary:
		return 3.0 / 12
	case StyleNorthwestContemporary, StyleRanch, StyleMediterranean:
		return 4.0 / 12
	case StyleCraftsman:
		return 5.0 / 12
	case StyleTraditional:
		return 6.0 / 12
	case StyleFarmhouse, StyleModernFarmhouse:
		return 7.0 / 12
	case StyleColonial:
		return 8.0 / 12
	case StyleCapeCod, StyleVictorian:
		return 10.0 / 12
	default:
		return 6.0 / 12
	}
}

// LargeGlazing reports whether the style uses oversized modern windows and a
// wide rear slider.
func (s Style) LargeGlazing() bool {
	switch s {
	case StyleModern, StyleContemporary, StyleNorthwestContemporary, StyleModernFarmhouse:
		return true
	default:
		return false
	}
}

// RoofType selects the roof topology.
type RoofType string

const (
	RoofGable   RoofType = "gable"
	RoofHip     RoofType = "hip"
	RoofFlat    RoofType = "flat"
	RoofShed    RoofType = "shed"
	RoofGambrel RoofType = "gambrel"
	RoofMansard RoofType = "mansard"
)

// RoofTypes lists every supported roof type.
var RoofTypes = []RoofType{RoofGable, RoofHip, RoofFlat, RoofShed, RoofGambrel, RoofMansard}

// ParseRoofType normalizes a free-text roof type. Unknown values fall back to
// RoofGable with ok set to false.
func ParseRoofType(s string) (RoofType, bool) {
	key := normalizeKey(s)
	for _, rt := range RoofTypes {
		if string(rt) == key {
			return rt, true
		}
	}
	return RoofGable, false
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	return s
}

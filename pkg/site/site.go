// Package site lays out the lot around the building: property line, walkway,
// driveway, deck or patio, and porch.
package site

import (
	"fmt"

	"github.com/ChicagoDave/houseplanner/pkg/geo"
	"github.com/ChicagoDave/houseplanner/pkg/layout"
	"github.com/ChicagoDave/houseplanner/pkg/plan"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
)

// ElementType identifies a site element.
type ElementType string

const (
	ElementPropertyLine ElementType = "property_line"
	ElementWalkway      ElementType = "walkway"
	ElementDriveway     ElementType = "driveway"
	ElementPatio        ElementType = "patio"
	ElementDeck         ElementType = "deck"
	ElementPorch        ElementType = "porch"
)

// Lot dimensions in feet.
const (
	FrontSetback    = 15.0
	SideMargin      = 15.0 // property line beyond each side of the building
	RearMargin      = 25.0 // property line behind the back wall
	GarageBayWidth  = 25.0
	DrivewayWidth   = 20.0
	WalkwayFraction = 0.04 // of building width
	DeckFraction    = 0.5
	DeckDepth       = 14.0
	PorchFraction   = 0.7
	PorchDepth      = 6.0
)

// Element is a flat site feature outlined in plan coordinates.
type Element struct {
	ID      string      `json:"id"`
	Type    ElementType `json:"type"`
	Polygon geo.Polygon `json:"polygon"`
}

// Features are the plan's site-relevant feature flags.
type Features struct {
	Garage bool
	Deck   bool
	Patio  bool
	Porch  bool
}

// FeaturesOf reads the feature flags from a plan's special-feature tags.
func FeaturesOf(p plan.PlanDescription) Features {
	return Features{
		Garage: p.HasFeature("garage"),
		Deck:   p.HasFeature("deck"),
		Patio:  p.HasFeature("patio"),
		Porch:  p.HasFeature("porch"),
	}
}

// GarageBay returns the garage footprint east of the building, or false if
// the plan has no garage.
func GarageBay(fp layout.Footprint, f Features) (geo.Rectangle, bool) {
	if !f.Garage {
		return geo.Rectangle{}, false
	}
	return geo.Rectangle{X: fp.Width, Z: 0, W: GarageBayWidth, D: fp.Depth}, true
}

// Generate lays out the site around a footprint. The street is on the front
// (+Z) side; the entry door is at 0.4 of the front wall.
func Generate(fp layout.Footprint, f Features) ([]Element, *validation.Report) {
	report := validation.NewReport()
	w, d := fp.Width, fp.Depth
	extent := w
	if bay, ok := GarageBay(fp, f); ok {
		extent = bay.X + bay.W
	}

	elements := []Element{{
		ID:      "site-property-line",
		Type:    ElementPropertyLine,
		Polygon: geo.Rect(-SideMargin, -RearMargin, extent+2*SideMargin, d+RearMargin+FrontSetback),
	}}

	walkStart := d
	if f.Porch {
		pw := PorchFraction * w
		elements = append(elements, Element{
			ID:      "site-porch",
			Type:    ElementPorch,
			Polygon: geo.Rect((w-pw)/2, d, pw, PorchDepth),
		})
		walkStart = d + PorchDepth
	}

	walkW := WalkwayFraction * w
	elements = append(elements, Element{
		ID:      "site-walkway",
		Type:    ElementWalkway,
		Polygon: geo.Rect(0.4*w-walkW/2, walkStart, walkW, d+FrontSetback-walkStart),
	})

	if f.Garage {
		elements = append(elements, Element{
			ID:      "site-driveway",
			Type:    ElementDriveway,
			Polygon: geo.Rect(w+(GarageBayWidth-DrivewayWidth)/2, d, DrivewayWidth, FrontSetback),
		})
	}

	if f.Deck || f.Patio {
		typ := ElementDeck
		if !f.Deck {
			typ = ElementPatio
		}
		dw := DeckFraction * w
		elements = append(elements, Element{
			ID:      fmt.Sprintf("site-%s", typ),
			Type:    typ,
			Polygon: geo.Rect((w-dw)/2, -DeckDepth, dw, DeckDepth),
		})
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelGeometry,
		Message: fmt.Sprintf("site: %d elements", len(elements)),
	})
	return elements, report
}

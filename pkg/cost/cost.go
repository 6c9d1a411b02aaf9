// Package cost produces a rough construction estimate for a generated
// building model.
package cost

import (
	"math"

	"github.com/ChicagoDave/houseplanner/pkg/model"
	"github.com/ChicagoDave/houseplanner/pkg/plan"
	"github.com/ChicagoDave/houseplanner/pkg/site"
)

// Breakdown itemizes costs by category.
type Breakdown struct {
	Foundation    float64 `json:"foundation"`
	Floors        float64 `json:"floors"`
	ExteriorWalls float64 `json:"exterior_walls"`
	InteriorWalls float64 `json:"interior_walls"`
	Roof          float64 `json:"roof"`
	Windows       float64 `json:"windows"`
	Doors         float64 `json:"doors"`
	Site          float64 `json:"site"`
	Soft          float64 `json:"soft"`
	Total         float64 `json:"total"`
}

// Financing describes a construction loan.
type Financing struct {
	InterestRate float64 `json:"interest_rate"`
	TermYears    int     `json:"term_years"`
	DownPayment  float64 `json:"down_payment"` // fraction of total
}

// DefaultFinancing returns the default loan terms.
func DefaultFinancing() Financing {
	return Financing{
		InterestRate: DefaultInterestRate,
		TermYears:    DefaultTermYears,
		DownPayment:  DefaultDownPayment,
	}
}

// Report is the complete cost output.
type Report struct {
	Estimate  Breakdown `json:"estimate"`
	Financing Financing `json:"financing"`

	Summary struct {
		TotalConstruction float64 `json:"total_construction"`
		PerSquareFoot     float64 `json:"per_square_foot"`
		LoanAmount        float64 `json:"loan_amount"`
		AnnualDebtService float64 `json:"annual_debt_service"`
		MonthlyPayment    float64 `json:"monthly_payment"`
	} `json:"summary"`
}

// Estimate prices m from its quantities. Hard costs come from the model's
// geometry; soft costs are a fixed share of hard costs.
func Estimate(m *model.BuildingModel, f Financing) *Report {
	report := &Report{Financing: f}
	stats := m.Stats()

	var b Breakdown
	if slab, ok := m.Foundation(); ok {
		b.Foundation = slab.Polygon.Area() * FoundationCostPerSqFt
	}
	b.Floors = stats.GrossFloorArea * FloorCostPerSqFt
	b.ExteriorWalls = stats.WallArea * ExteriorWallCostPerSqFt
	for _, w := range m.Walls {
		if !w.IsExterior {
			b.InteriorWalls += w.Length() * w.Height * InteriorWallCostPerSqFt
		}
	}

	b.Roof = stats.RoofArea * RoofCostPerSqFt
	if m.Metadata.RoofType == plan.RoofFlat {
		b.Roof *= FlatRoofPremium
	}
	b.Windows = stats.GlazingArea * WindowCostPerSqFt
	b.Doors = float64(stats.Doors) * DoorCost
	b.Site = siteCost(m.SiteElements)

	hard := b.Foundation + b.Floors + b.ExteriorWalls + b.InteriorWalls +
		b.Roof + b.Windows + b.Doors + b.Site
	b.Soft = hard * SoftCostRatio
	b.Total = hard + b.Soft
	report.Estimate = b

	loan := b.Total * (1 - clamp01(f.DownPayment))
	annual := computeAnnualDebtService(loan, f.InterestRate, f.TermYears)

	report.Summary.TotalConstruction = b.Total
	if stats.GrossFloorArea > 0 {
		report.Summary.PerSquareFoot = b.Total / stats.GrossFloorArea
	}
	report.Summary.LoanAmount = loan
	report.Summary.AnnualDebtService = annual
	report.Summary.MonthlyPayment = annual / 12
	return report
}

func siteCost(elems []site.Element) float64 {
	var total float64
	for _, e := range elems {
		area := e.Polygon.Area()
		switch e.Type {
		case site.ElementDriveway, site.ElementWalkway, site.ElementPatio:
			total += area * PavingCostPerSqFt
		case site.ElementDeck, site.ElementPorch:
			total += area * DeckCostPerSqFt
		}
	}
	return total
}

// computeAnnualDebtService uses the standard annuity formula.
// P * r(1+r)^n / ((1+r)^n - 1)
// At 0% interest, returns principal / term.
func computeAnnualDebtService(principal, rate float64, termYears int) float64 {
	if termYears <= 0 {
		return 0
	}
	if rate <= 0 {
		return principal / float64(termYears)
	}
	n := float64(termYears)
	factor := math.Pow(1+rate, n)
	return principal * rate * factor / (factor - 1)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ChicagoDave/houseplanner/pkg/cost"
	"github.com/ChicagoDave/houseplanner/pkg/model"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
)

func printValidationReport(w io.Writer, r *validation.Report) {
	printResults(w, styleError.Render(fmt.Sprintf("ERRORS (%d):", len(r.Errors))), r.Errors, true)
	printResults(w, styleWarning.Render(fmt.Sprintf("WARNINGS (%d):", len(r.Warnings))), r.Warnings, true)
	printResults(w, styleDim.Render(fmt.Sprintf("INFO (%d):", len(r.Info))), r.Info, false)

	if r.Valid {
		fmt.Fprintf(w, "Result: %s (%s)\n", styleSuccess.Render("VALID"), r.Summary)
	} else {
		fmt.Fprintf(w, "Result: %s (%s)\n", styleError.Render("INVALID"), r.Summary)
	}
}

func printResults(w io.Writer, heading string, results []validation.Result, detail bool) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintln(w, heading)
	for _, res := range results {
		fmt.Fprintf(w, "  %s\n", res)
		if !detail {
			continue
		}
		if res.PlanPath != "" {
			fmt.Fprintf(w, "    -> %s = %v\n", res.PlanPath, res.ActualValue)
		}
		if res.Expected != "" {
			fmt.Fprintf(w, "    expected: %s\n", res.Expected)
		}
		for _, s := range res.Suggestions {
			fmt.Fprintf(w, "    * %s\n", s)
		}
	}
	fmt.Fprintln(w)
}

// printSummary writes a quantity takeoff for m. Areas are rounded to whole
// square feet and grouped for the English locale.
func printSummary(w io.Writer, m *model.BuildingModel, s model.Stats) {
	p := message.NewPrinter(language.English)
	num := func(v float64) string {
		return styleNumber.Render(p.Sprintf("%d", int64(math.Round(v))))
	}

	md := m.Metadata
	fmt.Fprintln(w, styleTitle.Render("Building Model"))
	fmt.Fprintf(w, "  Style:            %s, %d %s\n", md.Style, md.Stories, plural(md.Stories, "story", "stories"))
	fmt.Fprintf(w, "  Plan area:        %s sq ft\n", num(md.TotalSquareFootage))
	fmt.Fprintf(w, "  Footprint:        %.2f x %.2f ft\n", md.Footprint.Width, md.Footprint.Depth)
	fmt.Fprintf(w, "  Roof:             %s, pitch %.2f, overhang %.0f ft\n", md.RoofType, md.Pitch, md.Overhang)
	fmt.Fprintln(w)

	fmt.Fprintln(w, styleTitle.Render("Takeoff"))
	fmt.Fprintf(w, "  Walls:            %d exterior, %d interior\n", s.ExteriorWalls, s.InteriorWalls)
	fmt.Fprintf(w, "  Openings:         %d doors, %d windows\n", s.Doors, s.Windows)
	fmt.Fprintf(w, "  Rooms placed:     %d\n", s.PlacedRooms)
	fmt.Fprintf(w, "  Gross floor area: %s sq ft\n", num(s.GrossFloorArea))
	fmt.Fprintf(w, "  Exterior wall:    %s sq ft\n", num(s.WallArea))
	fmt.Fprintf(w, "  Glazing:          %s sq ft\n", num(s.GlazingArea))
	fmt.Fprintf(w, "  Roof area:        %s sq ft over %d planes\n", num(s.RoofArea), s.RoofPlanes)
	fmt.Fprintf(w, "  Ridge elevation:  %.2f ft\n", s.RidgeElevation)
	fmt.Fprintf(w, "  Bounding box:     %.2f x %.2f x %.2f ft\n", m.BoundingBox.Width, m.BoundingBox.Depth, m.BoundingBox.Height)
	fmt.Fprintf(w, "  Site elements:    %d\n", s.SiteElements)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func printCostReport(w io.Writer, r *cost.Report) {
	fmt.Fprintln(w, styleTitle.Render("Construction Estimate"))
	fmt.Fprintln(w)

	b := r.Estimate
	rows := []struct {
		label string
		value float64
	}{
		{"Foundation", b.Foundation},
		{"Floors", b.Floors},
		{"Exterior walls", b.ExteriorWalls},
		{"Interior walls", b.InteriorWalls},
		{"Roof", b.Roof},
		{"Windows", b.Windows},
		{"Doors", b.Doors},
		{"Site", b.Site},
		{"Soft costs", b.Soft},
	}
	fmt.Fprintf(w, "%-18s %12s\n", "Category", "Cost")
	fmt.Fprintf(w, "%-18s %12s\n", "------------------", "------------")
	for _, row := range rows {
		fmt.Fprintf(w, "%-18s %12s\n", row.label, formatMoney(row.value))
	}
	fmt.Fprintf(w, "%-18s %12s\n", "TOTAL", styleNumber.Render(formatMoney(b.Total)))

	fmt.Fprintln(w)
	fmt.Fprintln(w, styleTitle.Render("Financing"))
	fmt.Fprintf(w, "  Per square foot:  $%s\n", formatMoney(r.Summary.PerSquareFoot))
	fmt.Fprintf(w, "  Loan amount:      $%s (%.0f%% down)\n", formatMoney(r.Summary.LoanAmount), r.Financing.DownPayment*100)
	fmt.Fprintf(w, "  Monthly payment:  $%s at %.2f%% over %d years\n",
		formatMoney(r.Summary.MonthlyPayment), r.Financing.InterestRate*100, r.Financing.TermYears)
}

// formatMoney abbreviates millions and groups smaller amounts.
func formatMoney(v float64) string {
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM", v/1_000_000)
	}
	return message.NewPrinter(language.English).Sprintf("%d", int64(math.Round(v)))
}

package validation

import (
	"fmt"
	"strings"

	"github.com/ChicagoDave/houseplanner/pkg/plan"
)

// Supported plan bounds.
const (
	MinStories         = 1
	MaxStories         = 3
	MinSqFtPerStory    = 400.0
	MaxTotalSquareFeet = 20000.0
)

// ValidatePlan performs schema validation on a parsed plan. It checks
// structural correctness before any geometry is generated. Generation itself
// never fails; errors here mean the generator will have to substitute
// defaults.
func ValidatePlan(p *plan.PlanDescription) *Report {
	r := NewReport()

	if p == nil {
		r.AddError(Result{
			Level:   LevelSchema,
			Message: "plan is nil",
		})
		return r
	}

	validateStories(p, r)
	validateSquareFootage(p, r)
	validateStyle(p, r)
	validateRoofType(p, r)
	validateRooms(p, r)

	return r
}

func validateStories(p *plan.PlanDescription, r *Report) {
	if p.Stories < MinStories || p.Stories > MaxStories {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("stories %d is outside the supported range (%d-%d)", p.Stories, MinStories, MaxStories),
			PlanPath:    "stories",
			ActualValue: p.Stories,
			Expected:    fmt.Sprintf("%d-%d", MinStories, MaxStories),
		})
	}
}

func validateSquareFootage(p *plan.PlanDescription, r *Report) {
	if p.TotalSquareFootage <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "total_square_footage must be greater than 0",
			PlanPath:    "total_square_footage",
			ActualValue: p.TotalSquareFootage,
			Expected:    "> 0",
		})
		return
	}
	if p.TotalSquareFootage > MaxTotalSquareFeet {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("total_square_footage %.0f is unusually large for a single residence and will be clamped to %.0f", p.TotalSquareFootage, MaxTotalSquareFeet),
			PlanPath:    "total_square_footage",
			ActualValue: p.TotalSquareFootage,
			Expected:    fmt.Sprintf("<= %.0f", MaxTotalSquareFeet),
		})
	}
	if p.Stories >= MinStories {
		perStory := p.TotalSquareFootage / float64(p.Stories)
		if perStory < MinSqFtPerStory {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%.0f sq ft per story leaves little room for a layout", perStory),
				PlanPath:    "total_square_footage",
				ActualValue: perStory,
				Expected:    fmt.Sprintf(">= %.0f per story", MinSqFtPerStory),
				Suggestions: []string{"Reduce the story count or check the square footage"},
			})
		}
	}
}

func validateStyle(p *plan.PlanDescription, r *Report) {
	if _, ok := plan.ParseStyle(p.ArchitecturalStyle); !ok {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unrecognized architectural_style %q; traditional proportions will be used", p.ArchitecturalStyle),
			PlanPath:    "architectural_style",
			ActualValue: p.ArchitecturalStyle,
			Expected:    joinStyles(),
		})
	}
}

func validateRoofType(p *plan.PlanDescription, r *Report) {
	if _, ok := plan.ParseRoofType(p.RoofType); !ok {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unrecognized roof_type %q; a gable roof will be generated", p.RoofType),
			PlanPath:    "roof_type",
			ActualValue: p.RoofType,
			Expected:    joinRoofTypes(),
		})
	}
}

func validateRooms(p *plan.PlanDescription, r *Report) {
	if len(p.Rooms) == 0 {
		r.AddInfo(Result{
			Level:    LevelSchema,
			Message:  "plan has no rooms; only the exterior shell will be generated",
			PlanPath: "rooms",
		})
		return
	}

	seen := make(map[string]int, len(p.Rooms))
	for i, room := range p.Rooms {
		name := strings.TrimSpace(room.Name)
		if name == "" {
			r.AddError(Result{
				Level:    LevelSchema,
				Message:  fmt.Sprintf("rooms[%d] has an empty name", i),
				PlanPath: fmt.Sprintf("rooms[%d].name", i),
				Expected: "non-empty string",
			})
			continue
		}
		key := strings.ToLower(name)
		if prev, exists := seen[key]; exists {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("duplicate room name %q at rooms[%d] and rooms[%d]", name, prev, i),
				PlanPath:    fmt.Sprintf("rooms[%d].name", i),
				ActualValue: name,
			})
		}
		seen[key] = i
	}
}

func joinStyles() string {
	names := make([]string, len(plan.Styles))
	for i, s := range plan.Styles {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func joinRoofTypes() string {
	names := make([]string, len(plan.RoofTypes))
	for i, rt := range plan.RoofTypes {
		names[i] = string(rt)
	}
	return strings.Join(names, " | ")
}

package model

import (
	"github.com/ChicagoDave/houseplanner/pkg/plan"
	"github.com/ChicagoDave/houseplanner/pkg/validation"
)

// Check validates a plan end to end: schema lint, a trial generation, and a
// structural check of the resulting model. Schema findings from the trial
// generation are dropped since ValidatePlan already reports them.
func Check(p *plan.PlanDescription) *validation.Report {
	report := validation.ValidatePlan(p)
	if p == nil {
		return report
	}

	m, genReport := Generate(p)
	report.Merge(withoutLevel(genReport, validation.LevelSchema))
	report.Merge(ValidateModel(&m))
	return report
}

func withoutLevel(r *validation.Report, level validation.Level) *validation.Report {
	out := validation.NewReport()
	for _, res := range r.Errors {
		if res.Level != level {
			out.AddError(res)
		}
	}
	for _, res := range r.Warnings {
		if res.Level != level {
			out.AddWarning(res)
		}
	}
	for _, res := range r.Info {
		if res.Level != level {
			out.AddInfo(res)
		}
	}
	return out
}

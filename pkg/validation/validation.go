// Package validation records what plan checking and model generation found:
// rejected input, substituted defaults, dropped rooms and geometry defects.
package validation

import "fmt"

// Level names the stage that produced a result.
type Level string

const (
	LevelSchema   Level = "schema"   // plan fields and their ranges
	LevelLayout   Level = "layout"   // room packing
	LevelGeometry Level = "geometry" // generated walls, slabs, roof and site
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is one finding. PlanPath points into the plan document, for example
// "rooms[3].dimensions" or "stories".
type Result struct {
	Level       Level    `json:"level"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	PlanPath    string   `json:"plan_path,omitempty"`
	ActualValue any      `json:"actual_value,omitempty"`
	Expected    string   `json:"expected,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// String returns the stage and message, e.g. "[layout] room ... was omitted".
func (r Result) String() string {
	return fmt.Sprintf("[%s] %s", r.Level, r.Message)
}

// Report collects the results of one check or generation run. A plan with
// errors is rejected; warnings mark input that was repaired.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport returns a valid report with no results.
func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.summarize()
	return r
}

// AddError records a result that makes the plan unusable.
func (r *Report) AddError(res Result) { r.add(SeverityError, res) }

// AddWarning records input that was clamped, defaulted or dropped.
func (r *Report) AddWarning(res Result) { r.add(SeverityWarning, res) }

// AddInfo records a note that needs no action.
func (r *Report) AddInfo(res Result) { r.add(SeverityInfo, res) }

func (r *Report) add(sev Severity, res Result) {
	res.Severity = sev
	switch sev {
	case SeverityError:
		r.Errors = append(r.Errors, res)
		r.Valid = false
	case SeverityWarning:
		r.Warnings = append(r.Warnings, res)
	default:
		r.Info = append(r.Info, res)
	}
	r.summarize()
}

// Merge appends the results of a later stage. A nil report is ignored.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	r.Valid = r.Valid && other.Valid
	r.summarize()
}

// HasWarnings reports whether any input was repaired.
func (r *Report) HasWarnings() bool {
	return len(r.Warnings) > 0
}

func (r *Report) summarize() {
	r.Summary = fmt.Sprintf("%s, %s, %d info",
		count(len(r.Errors), "error"), count(len(r.Warnings), "warning"), len(r.Info))
}

func count(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

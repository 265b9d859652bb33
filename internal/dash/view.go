// Package dash is the pure filtering, aggregation and derived-metrics engine
// behind the dashboard. Every function is a deterministic function of its
// inputs: the host owns the single mutable View and passes it in on each
// recomputation, and no row is ever mutated here.
package dash

import "strings"

// Sort mode tokens. Unknown modes fall back to SortDateDesc.
const (
	SortDateDesc    = "date-desc"
	SortDateAsc     = "date-asc"
	SortCreatorAsc  = "creator-asc"
	SortPlatformAsc = "platform-asc"
	SortStatusAsc   = "status-asc"
)

// SortModes lists the valid sort tokens in display order.
var SortModes = []string{SortDateDesc, SortDateAsc, SortCreatorAsc, SortPlatformAsc, SortStatusAsc}

// DefaultTarget is the monthly target applied when none is configured or
// persisted. ResetTarget is what the reset action restores.
const (
	DefaultTarget = 30
	ResetTarget   = 60
)

// View is the filter/view state read by every engine computation. The host
// application owns the one mutable instance; the engine treats it as
// read-only input and signals corrections back through FilterResult instead
// of mutating in place.
type View struct {
	Month    string // month key; empty means latest available month
	Creator  string // empty = all creators
	Platform string // empty = all platforms
	Status   string // status-filter token, see content.TokenCompleted etc.
	Search   string // case-folded free-text term
	Day      string // selected day key; empty = none
	Sort     string // sort mode token
	Target   int    // monthly target, always > 0 after normalization
	Theme    string // irrelevant to the engine, carried for persistence
}

// Normalize clamps a view into valid form: positive target, known sort mode,
// case-folded trimmed search. It is applied once at the boundary (load or
// user input), mirroring what a loader must do with persisted values.
func (v View) Normalize() View {
	if v.Target <= 0 {
		v.Target = DefaultTarget
	}
	if !validSort(v.Sort) {
		v.Sort = SortDateDesc
	}
	v.Search = strings.ToLower(strings.TrimSpace(v.Search))
	return v
}

// Reset returns the view with all filters cleared, the sort restored to the
// default, and the target bumped to the reset value, keeping month and theme.
func (v View) Reset() View {
	return View{
		Month:  v.Month,
		Sort:   SortDateDesc,
		Target: ResetTarget,
		Theme:  v.Theme,
	}
}

func validSort(mode string) bool {
	for _, m := range SortModes {
		if m == mode {
			return true
		}
	}
	return false
}

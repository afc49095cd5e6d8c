package calendar

import "slices"

// DisabledPolicy decides which days cannot be picked: a set of specific
// days plus an optional rule rejecting every day after today.
type DisabledPolicy struct {
	DisableFuture bool
	dates         map[Date]struct{}
}

// NewDisabledPolicy returns a policy disabling the given dates
func NewDisabledPolicy(disableFuture bool, dates ...Date) DisabledPolicy {
	return DisabledPolicy{DisableFuture: disableFuture}.WithDates(dates...)
}

// WithDate returns a copy of p that also disables d. The receiver is not
// modified.
func (p DisabledPolicy) WithDate(d Date) DisabledPolicy {
	return p.WithDates(d)
}

// WithDates returns a copy of p that also disables every date in dates. The
// set is copied once; zero dates are skipped.
func (p DisabledPolicy) WithDates(dates ...Date) DisabledPolicy {
	if len(dates) == 0 {
		return p
	}
	set := make(map[Date]struct{}, len(p.dates)+len(dates))
	for k := range p.dates {
		set[k] = struct{}{}
	}
	for _, d := range dates {
		if !d.IsZero() {
			set[d] = struct{}{}
		}
	}
	p.dates = set
	return p
}

// Dates returns the explicitly disabled days in chronological order
func (p DisabledPolicy) Dates() []Date {
	out := make([]Date, 0, len(p.dates))
	for d := range p.dates {
		out = append(out, d)
	}
	slices.SortFunc(out, Date.Compare)
	return out
}

// IsDisabled reports whether d is excluded by the policy. Future means
// strictly after today.
func (p DisabledPolicy) IsDisabled(d, today Date) bool {
	if _, ok := p.dates[d]; ok {
		return true
	}
	return p.DisableFuture && d.After(today)
}

// IsSelectable reports whether a grid cell may be picked. Boundary cells from
// adjacent months are never selectable, whatever the policy says.
func IsSelectable(cell Cell, p DisabledPolicy, today Date) bool {
	return cell.InCurrentMonth && !p.IsDisabled(cell.Date, today)
}

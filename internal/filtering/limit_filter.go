package filtering

import (
	"context"

	"github.com/spigell/crs-analyzer/internal/explorer"
)

type limitFilter struct {
	max      int
	disabled bool
}

// NewLimit creates a filter that keeps only the first max combinations of the
// ranked list. A non-positive limit disables the filter.
func NewLimit(max int) Filter {
	return &limitFilter{
		max:      max,
		disabled: max <= 0,
	}
}

func (f *limitFilter) Name() string { return "limit" }

func (f *limitFilter) Disable(string) { f.disabled = true }

func (f *limitFilter) IsEnabled() bool { return !f.disabled }

func (f *limitFilter) Apply(_ context.Context, r *explorer.Results) (*explorer.Results, Step, error) {
	initial := r.Len()
	if r.Len() > f.max {
		r.Items = r.Items[:f.max]
	}

	return r, Step{Initial: initial, Dropped: initial - r.Len(), Left: r.Len()}, nil
}

package filtering

import (
	"context"

	"github.com/spigell/crs-analyzer/internal/explorer"
)

type cutoffFilter struct {
	minScore int
	disabled bool
}

// NewCutoff creates a filter that drops combinations scoring below minScore.
// A non-positive cutoff disables the filter.
func NewCutoff(minScore int) Filter {
	return &cutoffFilter{
		minScore: minScore,
		disabled: minScore <= 0,
	}
}

func (f *cutoffFilter) Name() string { return "cutoff" }

func (f *cutoffFilter) Disable(string) { f.disabled = true }

func (f *cutoffFilter) IsEnabled() bool { return !f.disabled }

func (f *cutoffFilter) Apply(_ context.Context, r *explorer.Results) (*explorer.Results, Step, error) {
	initial := r.Len()

	kept := r.Items[:0]
	for _, item := range r.Items {
		if item.Score >= f.minScore {
			kept = append(kept, item)
		}
	}
	r.Items = kept

	return r, Step{Initial: initial, Dropped: initial - r.Len(), Left: r.Len()}, nil
}

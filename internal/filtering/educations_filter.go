package filtering

import (
	"context"

	"github.com/spigell/crs-analyzer/internal/explorer"
)

type educationsFilter struct {
	educations []string
}

// NewExcludedEducations creates a filter that removes combinations using the
// given education levels.
func NewExcludedEducations(educations []string) Filter {
	return &educationsFilter{
		educations: educations,
	}
}

func (f *educationsFilter) Name() string { return "educations" }

func (f *educationsFilter) Disable(string) {}

func (f *educationsFilter) IsEnabled() bool { return true }

func (f *educationsFilter) Apply(_ context.Context, r *explorer.Results) (*explorer.Results, Step, error) {
	initial := r.Len()
	if len(f.educations) == 0 {
		return r, Step{Initial: initial, Dropped: 0, Left: r.Len()}, nil
	}

	excluded := r.Exclude(explorer.CombinationEducationField, f.educations)

	return r, Step{Initial: initial, Dropped: len(excluded), Left: r.Len()}, nil
}

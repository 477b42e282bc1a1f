// Package advisor turns a score breakdown into actionable improvement advice.
package advisor

import (
	"context"

	"github.com/spigell/crs-analyzer/internal/crs"
)

// Advice is the outcome of reviewing a scored profile.
type Advice struct {
	// Summary is a one line judgement of how competitive the score is.
	Summary string
	// Priorities lists concrete improvements, most impactful first.
	Priorities []string
	// Raw holds the unparsed provider response when one exists.
	Raw string
}

// Advisor reviews a profile together with its breakdown.
type Advisor interface {
	Advise(ctx context.Context, profile crs.Profile, breakdown crs.Breakdown) (*Advice, error)
}

package advisor

import (
	"context"
	"fmt"

	"github.com/spigell/crs-analyzer/internal/crs"
)

// Score bands observed in recent invitation rounds.
const (
	excellentScore   = 500
	competitiveScore = 470
	moderateScore    = 430
)

// Component thresholds below which an improvement is worth naming.
const (
	topLanguagePoints  = 120
	bachelorPoints     = 120
	goodTransferPoints = 50
	agingStartsAt      = 30
)

type ruleBased struct{}

// NewRuleBased returns the built-in advisor. It needs no external provider
// and never fails.
func NewRuleBased() Advisor {
	return &ruleBased{}
}

func (a *ruleBased) Advise(_ context.Context, profile crs.Profile, b crs.Breakdown) (*Advice, error) {
	advice := &Advice{}

	switch {
	case b.Total >= excellentScore:
		advice.Summary = fmt.Sprintf("Excellent score (%d). Very competitive for invitation rounds.", b.Total)
	case b.Total >= competitiveScore:
		advice.Summary = fmt.Sprintf("Good score (%d). A real chance in typical rounds, which cut off around %d-%d.", b.Total, competitiveScore, excellentScore)
	case b.Total >= moderateScore:
		advice.Summary = fmt.Sprintf("Moderate score (%d). Improvements needed to clear the usual %d-%d cutoffs.", b.Total, competitiveScore, excellentScore)
	default:
		advice.Summary = fmt.Sprintf("Low score (%d). Significant improvements needed to be competitive.", b.Total)
	}

	if b.Language < topLanguagePoints {
		advice.Priorities = append(advice.Priorities,
			"Improve language skills to CLB 9 or higher. Language has the highest impact per point.")
	}
	if profile.Age >= agingStartsAt {
		advice.Priorities = append(advice.Priorities,
			"Apply soon: age points decay every year from 30 onwards.")
	}
	if b.Education < bachelorPoints {
		advice.Priorities = append(advice.Priorities,
			"Consider a higher credential: a four year bachelor or above adds substantial points.")
	}
	if b.Transferability < goodTransferPoints {
		advice.Priorities = append(advice.Priorities,
			"Work on skill transferability: pairing strong language with education or experience earns bonus points.")
	}

	return advice, nil
}

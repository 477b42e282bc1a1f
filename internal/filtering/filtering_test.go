package filtering

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/spigell/crs-analyzer/internal/crs"
	"github.com/spigell/crs-analyzer/internal/explorer"
)

func rankedFixture() *explorer.Results {
	return explorer.TopK(explorer.Ranges{
		Ages:            explorer.AgeSpan(25, 30),
		Educations:      []crs.Education{crs.BachelorFourYear, crs.MasterDegree},
		Languages:       []crs.Language{crs.CLB8, crs.CLB9},
		WorkExperiences: []crs.WorkExperience{crs.TwoYears, crs.ThreeYears},
		ForeignYears:    2,
	}, -1)
}

func TestCutoffFilter(t *testing.T) {
	t.Parallel()

	results := rankedFixture()
	min := results.Best().Score - 20

	filtered, err := New([]Filter{NewCutoff(min)}, zap.NewNop()).RunFilters(context.Background(), results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filtered.Len() == 0 {
		t.Fatal("expected the best combinations to survive the cutoff")
	}
	for _, item := range filtered.Items {
		if item.Score < min {
			t.Fatalf("combination below cutoff survived: %s", item.Label())
		}
	}
}

func TestCutoffFilterDisabledWithoutThreshold(t *testing.T) {
	t.Parallel()

	if NewCutoff(0).IsEnabled() {
		t.Fatal("expected a zero cutoff to disable the filter")
	}

	results := rankedFixture()
	initial := results.Len()

	filtered, err := New([]Filter{NewCutoff(0)}, zap.NewNop()).RunFilters(context.Background(), results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filtered.Len() != initial {
		t.Fatalf("disabled filter dropped combinations: %d -> %d", initial, filtered.Len())
	}
}

func TestExcludedEducationsFilter(t *testing.T) {
	t.Parallel()

	results := rankedFixture()

	filtered, err := New([]Filter{
		NewExcludedEducations([]string{string(crs.MasterDegree)}),
	}, zap.NewNop()).RunFilters(context.Background(), results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, item := range filtered.Items {
		if item.Profile.Education == crs.MasterDegree {
			t.Fatalf("excluded education survived: %s", item.Label())
		}
	}
}

func TestLimitFilter(t *testing.T) {
	t.Parallel()

	results := rankedFixture()

	filtered, err := New([]Filter{NewLimit(3)}, zap.NewNop()).RunFilters(context.Background(), results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filtered.Len() != 3 {
		t.Fatalf("expected 3 combinations, got %d", filtered.Len())
	}
}

func TestFiltersRunInOrder(t *testing.T) {
	t.Parallel()

	results := rankedFixture()

	filtered, err := New([]Filter{
		NewExcludedEducations([]string{string(crs.BachelorFourYear)}),
		NewLimit(2),
	}, zap.NewNop()).RunFilters(context.Background(), results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filtered.Len() != 2 {
		t.Fatalf("expected 2 combinations, got %d", filtered.Len())
	}
	for _, item := range filtered.Items {
		if item.Profile.Education != crs.MasterDegree {
			t.Fatalf("expected only master degree combinations, got %s", item.Label())
		}
	}
}

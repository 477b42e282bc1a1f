package explorer

import (
	"testing"

	"github.com/spigell/crs-analyzer/internal/crs"
)

func testRanges() Ranges {
	return Ranges{
		Ages:            AgeSpan(25, 27),
		Educations:      []crs.Education{crs.BachelorFourYear, crs.MasterDegree},
		Languages:       []crs.Language{crs.CLB8, crs.CLB9},
		WorkExperiences: []crs.WorkExperience{crs.TwoYears, crs.ThreeYears},
		ForeignYears:    2,
	}
}

func TestIteratorCoversWholeProduct(t *testing.T) {
	t.Parallel()

	r := testRanges()
	it := NewIterator(r)

	seen := make(map[crs.Profile]bool)
	count := 0
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		if seen[p] {
			t.Fatalf("profile visited twice: %+v", p)
		}
		seen[p] = true
		count++
	}

	if count != r.Size() {
		t.Fatalf("expected %d combinations, got %d", r.Size(), count)
	}

	if _, ok := it.Next(); ok {
		t.Fatal("expected the iterator to stay exhausted")
	}

	it.Reset()
	if _, ok := it.Next(); !ok {
		t.Fatal("expected the iterator to restart after Reset")
	}
}

func TestIteratorOrder(t *testing.T) {
	t.Parallel()

	it := NewIterator(Ranges{
		Ages:            []int{25, 26},
		Educations:      []crs.Education{crs.MasterDegree},
		Languages:       []crs.Language{crs.CLB9},
		WorkExperiences: []crs.WorkExperience{crs.TwoYears, crs.ThreeYears},
	})

	first, _ := it.Next()
	second, _ := it.Next()
	third, _ := it.Next()

	if first.Age != 25 || first.WorkExperience != crs.TwoYears {
		t.Fatalf("unexpected first combination: %+v", first)
	}
	if second.Age != 25 || second.WorkExperience != crs.ThreeYears {
		t.Fatalf("expected work experience to vary fastest, got %+v", second)
	}
	if third.Age != 26 {
		t.Fatalf("expected age to vary slowest, got %+v", third)
	}
}

func TestTopK(t *testing.T) {
	t.Parallel()

	r := testRanges()
	k := 5

	results := TopK(r, k)

	if results.Len() != k {
		t.Fatalf("expected %d results, got %d", k, results.Len())
	}

	prev := results.Items[0].Score
	for _, item := range results.Items[1:] {
		if item.Score > prev {
			t.Fatalf("results are not in non-increasing score order: %d after %d", item.Score, prev)
		}
		prev = item.Score
	}

	best := results.Best()
	expect := crs.TotalScore(crs.Profile{
		Age:            25,
		Education:      crs.MasterDegree,
		Language:       crs.CLB9,
		WorkExperience: crs.ThreeYears,
		ForeignYears:   2,
	})
	if best.Score != expect {
		t.Fatalf("expected the best score to be %d, got %d", expect, best.Score)
	}

	for _, item := range results.Items {
		if item.Profile.Age < 25 || item.Profile.Age > 27 {
			t.Fatalf("combination outside the supplied age range: %+v", item.Profile)
		}
		if item.Profile.ForeignYears != 2 {
			t.Fatalf("foreign years not held fixed: %+v", item.Profile)
		}
	}
}

func TestTopKStableTies(t *testing.T) {
	t.Parallel()

	// clb_9 and clb_10_plus share every transferability tier, so identical
	// profiles apart from language may tie. Equal scores must keep
	// enumeration order.
	results := TopK(Ranges{
		Ages:            []int{25, 26},
		Educations:      []crs.Education{crs.MasterDegree},
		Languages:       []crs.Language{crs.CLB9},
		WorkExperiences: []crs.WorkExperience{crs.ThreeYears},
		ForeignYears:    2,
	}, 2)

	if results.Len() != 2 {
		t.Fatalf("expected 2 results, got %d", results.Len())
	}
	if results.Items[0].Profile.Age != 25 {
		t.Fatalf("expected the first enumerated profile to win the tie, got age %d", results.Items[0].Profile.Age)
	}
}

func TestTopKLargerThanProduct(t *testing.T) {
	t.Parallel()

	r := testRanges()
	results := TopK(r, 1000)
	if results.Len() != r.Size() {
		t.Fatalf("expected all %d combinations, got %d", r.Size(), results.Len())
	}
}

func TestTopKEmptyRange(t *testing.T) {
	t.Parallel()

	results := TopK(Ranges{
		Ages:       nil,
		Educations: []crs.Education{crs.MasterDegree},
		Languages:  []crs.Language{crs.CLB9},
	}, 10)

	if results.Len() != 0 {
		t.Fatalf("expected no results for an empty range, got %d", results.Len())
	}
	if results.Best() != nil {
		t.Fatal("expected no best combination for an empty range")
	}
}

func TestResultsExclude(t *testing.T) {
	t.Parallel()

	results := TopK(testRanges(), -1)
	initial := results.Len()

	excluded := results.Exclude(CombinationEducationField, []string{string(crs.MasterDegree)})

	if len(excluded) == 0 {
		t.Fatal("expected some combinations to be excluded")
	}
	if results.Len()+len(excluded) != initial {
		t.Fatalf("expected %d combinations after excluding %d, got %d", initial-len(excluded), len(excluded), results.Len())
	}
	for _, item := range results.Items {
		if item.Profile.Education == crs.MasterDegree {
			t.Fatalf("excluded education still present: %+v", item.Profile)
		}
	}
}

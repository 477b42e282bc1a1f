// Package explorer enumerates candidate profiles over configured factor
// ranges and ranks them by total score.
package explorer

import (
	"sort"

	"github.com/spigell/crs-analyzer/internal/crs"
)

// Ranges describes the factor values to enumerate. Foreign experience is held
// fixed for the whole exploration. An empty slice for any factor makes the
// enumeration empty.
type Ranges struct {
	Ages            []int
	Educations      []crs.Education
	Languages       []crs.Language
	WorkExperiences []crs.WorkExperience
	ForeignYears    int
}

// Size returns the number of combinations the ranges produce.
func (r Ranges) Size() int {
	return len(r.Ages) * len(r.Educations) * len(r.Languages) * len(r.WorkExperiences)
}

// AgeSpan expands an inclusive [min, max] age range into explicit values.
// It returns nil when max is below min.
func AgeSpan(min, max int) []int {
	if max < min {
		return nil
	}
	ages := make([]int, 0, max-min+1)
	for age := min; age <= max; age++ {
		ages = append(ages, age)
	}
	return ages
}

// Iterator walks the Cartesian product of the ranges lazily, so callers can
// cap exploration cost without materializing every combination. The order is
// fixed: ages vary slowest, work experience fastest.
type Iterator struct {
	ranges     Ranges
	age        int
	education  int
	language   int
	experience int
}

// NewIterator returns an iterator positioned before the first combination.
func NewIterator(r Ranges) *Iterator {
	return &Iterator{ranges: r}
}

// Next returns the next profile in enumeration order. The second return value
// is false once the product is exhausted.
func (it *Iterator) Next() (crs.Profile, bool) {
	r := it.ranges
	if it.age >= len(r.Ages) || len(r.Educations) == 0 || len(r.Languages) == 0 || len(r.WorkExperiences) == 0 {
		return crs.Profile{}, false
	}

	p := crs.Profile{
		Age:            r.Ages[it.age],
		Education:      r.Educations[it.education],
		Language:       r.Languages[it.language],
		WorkExperience: r.WorkExperiences[it.experience],
		ForeignYears:   r.ForeignYears,
	}

	it.experience++
	if it.experience == len(r.WorkExperiences) {
		it.experience = 0
		it.language++
	}
	if it.language == len(r.Languages) {
		it.language = 0
		it.education++
	}
	if it.education == len(r.Educations) {
		it.education = 0
		it.age++
	}

	return p, true
}

// Reset rewinds the iterator to the first combination.
func (it *Iterator) Reset() {
	it.age, it.education, it.language, it.experience = 0, 0, 0, 0
}

// TopK scores every combination in the ranges and returns the k best in
// non-increasing score order. Ties keep enumeration order, so the first
// combination encountered wins. An empty range yields an empty result list.
func TopK(r Ranges, k int) *Results {
	results := &Results{Items: make([]*Combination, 0, r.Size())}

	it := NewIterator(r)
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		results.Items = append(results.Items, &Combination{
			Profile: p,
			Score:   crs.TotalScore(p),
		})
	}

	sort.SliceStable(results.Items, func(i, j int) bool {
		return results.Items[i].Score > results.Items[j].Score
	})

	if k >= 0 && len(results.Items) > k {
		results.Items = results.Items[:k]
	}

	return results
}

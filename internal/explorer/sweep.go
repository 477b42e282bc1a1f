package explorer

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/spigell/crs-analyzer/internal/crs"
)

// Factor names a profile dimension a sweep can vary.
type Factor string

const (
	FactorAge            Factor = "age"
	FactorEducation      Factor = "education"
	FactorLanguage       Factor = "language"
	FactorWorkExperience Factor = "work_experience"
)

// SweepPoint is one row of a single factor sweep: the swept value and the
// full breakdown it produced.
type SweepPoint struct {
	Value     string        `json:"value"`
	Breakdown crs.Breakdown `json:"breakdown"`
}

// SingleFactorSweep varies one factor over the given values while every other
// factor keeps the value from fixed, returning one point per value in input
// order. Age values that do not parse as integers follow the fail-soft table
// policy and score 0 age points.
func SingleFactorSweep(factor Factor, values []string, fixed crs.Profile) []SweepPoint {
	points := make([]SweepPoint, 0, len(values))

	for _, value := range values {
		p := fixed
		switch factor {
		case FactorAge:
			// A parse failure leaves age 0 and scores like any other
			// out-of-range age.
			p.Age, _ = strconv.Atoi(value)
		case FactorEducation:
			p.Education = crs.Education(value)
		case FactorLanguage:
			p.Language = crs.Language(value)
		case FactorWorkExperience:
			p.WorkExperience = crs.WorkExperience(value)
		}

		points = append(points, SweepPoint{
			Value:     value,
			Breakdown: crs.Score(p),
		})
	}

	return points
}

// AgeSweep sweeps every age in the inclusive range with the fixed profile.
func AgeSweep(min, max int, fixed crs.Profile) []SweepPoint {
	values := make([]string, 0, max-min+1)
	for _, age := range AgeSpan(min, max) {
		values = append(values, strconv.Itoa(age))
	}
	return SingleFactorSweep(FactorAge, values, fixed)
}

// EducationSweep sweeps all known education levels with the fixed profile.
func EducationSweep(fixed crs.Profile) []SweepPoint {
	values := make([]string, 0)
	for _, education := range crs.Educations() {
		values = append(values, string(education))
	}
	return SingleFactorSweep(FactorEducation, values, fixed)
}

// LanguageSweep sweeps all known CLB levels with the fixed profile.
func LanguageSweep(fixed crs.Profile) []SweepPoint {
	values := make([]string, 0)
	for _, language := range crs.Languages() {
		values = append(values, string(language))
	}
	return SingleFactorSweep(FactorLanguage, values, fixed)
}

// WriteSweepCSV writes sweep points as CSV rows in sweep order.
func WriteSweepCSV(w io.Writer, factor Factor, points []SweepPoint) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{string(factor), "age", "education", "language", "work_experience", "transferability", "total"}); err != nil {
		return err
	}

	for _, point := range points {
		b := point.Breakdown
		row := []string{
			point.Value,
			strconv.Itoa(b.Age),
			strconv.Itoa(b.Education),
			strconv.Itoa(b.Language),
			strconv.Itoa(b.WorkExperience),
			strconv.Itoa(b.Transferability),
			strconv.Itoa(b.Total),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

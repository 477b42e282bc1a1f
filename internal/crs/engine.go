package crs

import (
	"errors"
	"fmt"
)

// Breakdown holds the per-factor points of a single evaluation. It is derived
// data, recomputed on every call and never cached.
type Breakdown struct {
	Age             int `json:"age"`
	Education       int `json:"education"`
	Language        int `json:"language"`
	WorkExperience  int `json:"work_experience"`
	Transferability int `json:"transferability"`
	Total           int `json:"total"`
}

// Score evaluates the profile and returns the full breakdown. It never fails:
// unknown categorical values and out-of-range ages degrade to 0 points, per
// the table lookup policy documented on the package.
func Score(p Profile) Breakdown {
	b := Breakdown{
		Age:             AgePoints(p.Age),
		Education:       EducationPoints(p.Education),
		Language:        LanguagePoints(p.Language),
		WorkExperience:  WorkExperiencePoints(p.WorkExperience),
		Transferability: TransferabilityPoints(p),
	}
	b.Total = b.Age + b.Education + b.Language + b.WorkExperience + b.Transferability

	return b
}

// TotalScore returns only the total, equal to the sum of the Breakdown fields.
func TotalScore(p Profile) int {
	return Score(p).Total
}

// ValidateProfile is the strict counterpart to the fail-soft scoring path.
// It reports every field holding an unknown categorical value or an age the
// tables do not cover. Score does not call it; callers who want strictness
// must do so explicitly.
func ValidateProfile(p Profile) error {
	var errs []error

	if p.Age < ageBrackets[0].lo || p.Age >= ageBrackets[len(ageBrackets)-1].hi {
		errs = append(errs, fmt.Errorf("age %d is outside the scored range [%d, %d)",
			p.Age, ageBrackets[0].lo, ageBrackets[len(ageBrackets)-1].hi))
	}

	if _, ok := educationPoints[p.Education]; !ok {
		errs = append(errs, fmt.Errorf("unknown education level: %q", p.Education))
	}

	if _, ok := languagePerSkill[p.Language]; !ok {
		errs = append(errs, fmt.Errorf("unknown language level: %q", p.Language))
	}

	if _, ok := workExperiencePoints[p.WorkExperience]; !ok {
		errs = append(errs, fmt.Errorf("unknown work experience: %q", p.WorkExperience))
	}

	if p.ForeignYears < 0 {
		errs = append(errs, fmt.Errorf("foreign experience years must not be negative, got %d", p.ForeignYears))
	}

	return errors.Join(errs...)
}

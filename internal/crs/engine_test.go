package crs

import (
	"strings"
	"testing"
)

func TestScoreBachelorProfile(t *testing.T) {
	t.Parallel()

	b := Score(Profile{
		Age:            28,
		Education:      BachelorFourYear,
		Language:       CLB8,
		WorkExperience: TwoYears,
		ForeignYears:   1,
	})

	if b.Age != 110 {
		t.Fatalf("expected 110 age points, got %d", b.Age)
	}
	if b.Education != 120 {
		t.Fatalf("expected 120 education points, got %d", b.Education)
	}
	if b.Language != 92 {
		t.Fatalf("expected 92 language points, got %d", b.Language)
	}
	if b.WorkExperience != 53 {
		t.Fatalf("expected 53 work experience points, got %d", b.WorkExperience)
	}
	// 13 from each pairing: education+language, education+experience and
	// foreign experience+language.
	if b.Transferability != 39 {
		t.Fatalf("expected 39 transferability points, got %d", b.Transferability)
	}
	if b.Total != 414 {
		t.Fatalf("expected a 414 total, got %d", b.Total)
	}
}

func TestTransferabilityForeignOneYearBonus(t *testing.T) {
	t.Parallel()

	// Secondary education and no canadian experience keep the other two
	// pairings at zero, so the foreign experience+language bonus is the only
	// contribution.
	base := Profile{
		Education:      Secondary,
		WorkExperience: NoExperience,
		ForeignYears:   1,
	}

	tests := []struct {
		language Language
		expect   int
	}{
		{CLB8, 13},
		{CLB9, 25},
		{CLB6, 0},
	}

	for _, tt := range tests {
		p := base
		p.Language = tt.language
		if got := TransferabilityPoints(p); got != tt.expect {
			t.Fatalf("expected %d transferability points for one foreign year with %s, got %d", tt.expect, tt.language, got)
		}
	}

	p := base
	p.Language = CLB8
	p.ForeignYears = 0
	if got := TransferabilityPoints(p); got != 0 {
		t.Fatalf("expected no transferability points without foreign experience, got %d", got)
	}
}

func TestScoreMasterProfileCapsTransferability(t *testing.T) {
	t.Parallel()

	b := Score(Profile{
		Age:            35,
		Education:      MasterDegree,
		Language:       CLB9,
		WorkExperience: FiveYears,
		ForeignYears:   2,
	})

	// 50 (education+language) + 50 (education+experience) + 25
	// (foreign+language) clamp to the 100 point cap.
	if b.Transferability != TransferabilityCap {
		t.Fatalf("expected transferability capped at %d, got %d", TransferabilityCap, b.Transferability)
	}
	if b.Total != 524 {
		t.Fatalf("expected a 524 total, got %d", b.Total)
	}
}

func TestScoreMaximum(t *testing.T) {
	t.Parallel()

	b := Score(Profile{
		Age:            25,
		Education:      DoctoralDegree,
		Language:       CLB10Plus,
		WorkExperience: FiveYears,
		ForeignYears:   3,
	})

	if b.Total != 576 {
		t.Fatalf("expected the maximum total of 576, got %d", b.Total)
	}
}

func TestScoreTotalMatchesComponents(t *testing.T) {
	t.Parallel()

	for _, education := range Educations() {
		for _, language := range Languages() {
			for _, experience := range WorkExperiences() {
				for _, age := range []int{17, 18, 28, 35, 46, 47} {
					p := Profile{
						Age:            age,
						Education:      education,
						Language:       language,
						WorkExperience: experience,
						ForeignYears:   2,
					}

					b := Score(p)
					sum := b.Age + b.Education + b.Language + b.WorkExperience + b.Transferability
					if b.Total != sum {
						t.Fatalf("total %d does not match component sum %d for %+v", b.Total, sum, p)
					}
					if b.Transferability < 0 || b.Transferability > TransferabilityCap {
						t.Fatalf("transferability %d out of bounds for %+v", b.Transferability, p)
					}
					if got := TotalScore(p); got != b.Total {
						t.Fatalf("TotalScore returned %d, breakdown says %d", got, b.Total)
					}
				}
			}
		}
	}
}

func TestScoreUnknownValuesDegradeToZero(t *testing.T) {
	t.Parallel()

	b := Score(Profile{
		Age:       16,
		Education: Education("bootcamp"),
		Language:  Language("fluent"),
	})

	if b.Age != 0 || b.Education != 0 || b.Language != 0 || b.WorkExperience != 0 {
		t.Fatalf("expected unknown values to score zero, got %+v", b)
	}
}

func TestValidateProfile(t *testing.T) {
	t.Parallel()

	valid := Profile{
		Age:            30,
		Education:      Secondary,
		Language:       CLB6,
		WorkExperience: OneYear,
	}
	if err := ValidateProfile(valid); err != nil {
		t.Fatalf("unexpected error for a valid profile: %v", err)
	}

	err := ValidateProfile(Profile{
		Age:            50,
		Education:      Education("bootcamp"),
		Language:       Language("fluent"),
		WorkExperience: WorkExperience("some"),
		ForeignYears:   -1,
	})
	if err == nil {
		t.Fatal("expected an error for an invalid profile")
	}

	for _, want := range []string{"age 50", "bootcamp", "fluent", "some", "negative"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected the error to mention %q, got: %v", want, err)
		}
	}
}
